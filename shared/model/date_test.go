package model_test

import (
	"deportur/shared/model"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Fecha    model.Date     `json:"fecha"`
	Opcional *model.Date    `json:"opcional,omitempty"`
	Creada   model.DateTime `json:"creada"`
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "date", input: `"2025-01-05"`, expected: "2025-01-05"},
		{name: "datetime", input: `"2025-01-05T18:30:00"`, expected: "2025-01-05"},
		{name: "rfc3339", input: `"2025-01-05T10:00:00Z"`, expected: "2025-01-05"},
		{name: "null", input: `null`, expected: ""},
		{name: "empty", input: `""`, expected: ""},
		{name: "garbage", input: `"05/01/2025"`, wantErr: true},
		{name: "number", input: `20250105`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var date model.Date

			err := json.Unmarshal([]byte(tt.input), &date)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, date.String())
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	date := model.NewDate(2025, time.January, 1)

	data, err := json.Marshal(payload{Fecha: date, Opcional: nil})

	require.NoError(t, err)
	assert.JSONEq(t, `{"fecha":"2025-01-01","creada":null}`, string(data))

	data, err = json.Marshal(payload{})

	require.NoError(t, err)
	assert.JSONEq(t, `{"fecha":null,"creada":null}`, string(data))
}

func TestDate_After(t *testing.T) {
	start := model.NewDate(2025, time.January, 1)
	end := model.NewDate(2025, time.January, 5)

	assert.True(t, end.After(start))
	assert.False(t, start.After(end))
	assert.False(t, start.After(start))
}

func TestDateTime_UnmarshalJSON(t *testing.T) {
	var value payload

	err := json.Unmarshal([]byte(`{"fecha":"2025-02-01","creada":"2025-01-31T09:15:00"}`), &value)

	require.NoError(t, err)
	assert.Equal(t, 9, value.Creada.Hour())
	assert.Equal(t, 15, value.Creada.Minute())
	assert.Equal(t, "2025-02-01", value.Fecha.String())
}
