package validator_test

import (
	"deportur/shared/failure"
	"deportur/shared/validator"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test structs for validation
type ValidTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Age      int    `validate:"gte=0,lte=120" json:"age"`
	Category string `validate:"oneof=user admin guest" json:"category"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        interface{}
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "age out of range",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      150,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "invalid",
			},
			expectError: true,
		},
		{
			name: "negative age",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      -1,
				Category: "user",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct[ValidTestStruct](tt.data.(*ValidTestStruct))

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       25,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "admin",
			tag:         "oneof=user admin guest",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "invalid",
			tag:         "oneof=user admin guest",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","age":25,"category":"user"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","age":25,"category":"user"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data ValidTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

// Test custom validation messages
func TestValidationMessages(t *testing.T) {
	data := &ValidTestStruct{}
	err := validator.ValidateStruct[ValidTestStruct](data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	// Check that error message contains field name and is descriptive
	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}

// Test validation error handling
func TestValidationErrorHandling(t *testing.T) {
	// Test with multiple validation errors
	data := &ValidTestStruct{
		Name:     "",        // required violation
		Email:    "invalid", // email violation
		Age:      -1,        // gte violation
		Category: "invalid", // oneof violation
	}

	err := validator.ValidateStruct[ValidTestStruct](data)
	if err == nil {
		t.Fatal("expected validation error")
	}

	// The error should be descriptive and contain information about the failure
	errorMsg := err.Error()
	if errorMsg == "" {
		t.Error("expected non-empty error message")
	}

	t.Logf("Error message: %s", errorMsg)
}

// Test that the validator package initializes correctly
func TestValidatorInitialization(t *testing.T) {
	// Test that we can validate basic structs without panic
	// This indirectly tests that the init() function worked correctly
	data := &ValidTestStruct{
		Name:     "Test",
		Email:    "test@example.com",
		Age:      25,
		Category: "user",
	}

	err := validator.ValidateStruct[ValidTestStruct](data)
	if err != nil {
		t.Errorf("expected no validation error for valid struct, got: %v", err)
	}
}

type customerForm struct {
	Nombre        string `json:"nombre" validate:"required,max=100"`
	TipoDocumento string `json:"tipoDocumento" validate:"required,document_type"`
	Email         string `json:"email" validate:"omitempty,loose_email,max=100"`
	Coordenadas   string `json:"coordenadas" validate:"omitempty,coordinates"`
	Capacidad     *int   `json:"capacidadMaxima" validate:"omitempty,min=1"`
	Imagen        string `json:"imagen" validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=0.001"`
}

type rangeForm struct {
	Min int `json:"minDias"`
	Max int `json:"maxDias"`
}

func (f *rangeForm) Validate() error {
	if f.Max < f.Min {
		return errors.New("maxDias must be greater than or equal to minDias")
	}

	return nil
}

func TestCustomTags(t *testing.T) {
	zero := 0

	tests := []struct {
		name            string
		form            customerForm
		expectedMessage string
	}{
		{
			name: "valid",
			form: customerForm{Nombre: "Ana", TipoDocumento: "CC", Email: "ana@example.com", Coordenadas: "4.6, -74.08"},
		},
		{
			name:            "json field name in message",
			form:            customerForm{TipoDocumento: "CC"},
			expectedMessage: "nombre is required",
		},
		{
			name:            "document type",
			form:            customerForm{Nombre: "Ana", TipoDocumento: "NIT"},
			expectedMessage: "tipoDocumento must be one of CC CE PASAPORTE",
		},
		{
			name:            "loose email",
			form:            customerForm{Nombre: "Ana", TipoDocumento: "CE", Email: "ana@example"},
			expectedMessage: "email must be a valid email address",
		},
		{
			name:            "coordinates",
			form:            customerForm{Nombre: "Ana", TipoDocumento: "CC", Coordenadas: "north"},
			expectedMessage: "coordenadas must be in the form latitude,longitude",
		},
		{
			name:            "numeric minimum",
			form:            customerForm{Nombre: "Ana", TipoDocumento: "CC", Capacidad: &zero},
			expectedMessage: "capacidadMaxima must be greater than or equal to 1",
		},
		{
			name:            "string maximum",
			form:            customerForm{Nombre: strings.Repeat("a", 101), TipoDocumento: "CC"},
			expectedMessage: "nombre must be at most 100 characters",
		},
		{
			name:            "mimetype",
			form:            customerForm{Nombre: "Ana", TipoDocumento: "CC", Imagen: "data:text/plain;base64,SGVsbG8="},
			expectedMessage: "imagen must be one of image/png image/jpeg",
		},
		{
			name:            "file size",
			form:            customerForm{Nombre: "Ana", TipoDocumento: "CC", Imagen: "data:image/png;base64," + strings.Repeat("QUFB", 400)},
			expectedMessage: "imagen must not exceed 0.001 MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.form)

			if tt.expectedMessage == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expectedMessage, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidatable(t *testing.T) {
	err := validator.ValidateStruct(&rangeForm{Min: 5, Max: 2})

	require.Error(t, err)
	assert.Equal(t, "maxDias must be greater than or equal to minDias", err.Error())
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	assert.NoError(t, validator.ValidateStruct(&rangeForm{Min: 2, Max: 5}))
}

type trimmedForm struct {
	Name string `json:"name" validate:"required,max=5"`
}

func (f *trimmedForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
}

func TestNormalizable(t *testing.T) {
	form := trimmedForm{Name: "   "}

	err := validator.ValidateStruct(&form)
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())

	form = trimmedForm{Name: "  Kayak  "}
	require.NoError(t, validator.ValidateStruct(&form))
	assert.Equal(t, "Kayak", form.Name)
}
