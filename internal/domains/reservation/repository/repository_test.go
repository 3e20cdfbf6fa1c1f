package repository_test

import (
	"context"
	"deportur/infras/backend"
	"deportur/infras/otel/mocks"
	"deportur/internal/domains/reservation/model"
	"deportur/internal/domains/reservation/repository"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T, handler http.HandlerFunc) repository.Reservation {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := backend.TokenProviderFunc(func(context.Context) (string, error) {
		return "tok", nil
	})

	return repository.New(backend.NewWithHTTPClient(server.URL+"/api/", server.Client(), tokens, mocks.NewOtel(), nil))
}

func TestRepository_ChangeStatus(t *testing.T) {
	tests := []struct {
		name   string
		status model.Status
	}{
		{name: "confirm", status: model.StatusConfirmed},
		{name: "start", status: model.StatusInProgress},
		{name: "finish", status: model.StatusFinished},
		{name: "cancel", status: model.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "/api/reservas/7/estado", r.URL.Path)
				assert.Equal(t, string(tt.status), r.URL.Query().Get("estado"))

				_, _ = w.Write([]byte(`{"idReserva":7,"estado":"` + string(tt.status) + `"}`))
			})

			res, err := repo.ChangeStatus(context.Background(), 7, tt.status)

			require.NoError(t, err)
			assert.Equal(t, int64(7), res.ID)
			assert.Equal(t, tt.status, res.Status)
		})
	}
}

func TestRepository_DeleteCancels(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/reservas/7/cancelar", r.URL.Path)

		_, _ = w.Write([]byte(`{"idReserva":7,"estado":"CANCELADA"}`))
	})

	require.NoError(t, repo.Delete(context.Background(), 7))
}
