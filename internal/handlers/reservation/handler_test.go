package reservation_test

import (
	"deportur/infras/otel/mocks"
	"deportur/internal/domains/reservation/model"
	serviceMocks "deportur/internal/domains/reservation/service/mocks"
	"deportur/internal/domains/reservation/wizard"
	wizardMocks "deportur/internal/domains/reservation/wizard/mocks"
	"deportur/internal/handlers/reservation"
	"deportur/shared/failure"
	"deportur/shared/listing"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockReservation, *wizardMocks.MockWizard) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockReservation(ctrl)
	svc.EXPECT().Schema().Return(model.Schema()).AnyTimes()
	wiz := wizardMocks.NewMockWizard(ctrl)

	handler := reservation.New(svc, wiz, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc, wiz
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, http.NoBody))

	return recorder
}

func TestHandler_WizardRoutesBeforeID(t *testing.T) {
	router, _, wiz := newRouter(t)

	wiz.EXPECT().Current(gomock.Any()).Return(wizard.View{Days: 4}, nil)
	wiz.EXPECT().Reset(gomock.Any()).Return(nil)

	recorder := serve(router, http.MethodGet, "/reservations/wizard")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data wizard.View `json:"data"`
	}

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 4, body.Data.Days)

	recorder = serve(router, http.MethodDelete, "/reservations/wizard")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_IDRoutes(t *testing.T) {
	router, svc, _ := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), int64(5)).Return(model.Reservation{ID: 5, Status: model.StatusPending}, nil)
	svc.EXPECT().Delete(gomock.Any(), int64(5), listing.DecisionPending).
		Return(listing.DeleteOutcome{ID: 5, Message: "Cancel reservation #5?"}, nil)

	recorder := serve(router, http.MethodGet, "/reservations/5")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data model.Reservation `json:"data"`
	}

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.Data.ID)

	recorder = serve(router, http.MethodDelete, "/reservations/5")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_NonNumericIDIsRejected(t *testing.T) {
	router, _, _ := newRouter(t)

	recorder := serve(router, http.MethodGet, "/reservations/wizards")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_ChangeStatus(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		status       model.Status
		err          error
		expectedCode int
	}{
		{name: "confirm", target: "/reservations/7/status?status=CONFIRMADA", status: model.StatusConfirmed, expectedCode: http.StatusOK},
		{name: "status is normalized", target: "/reservations/7/status?status=en_progreso", status: model.StatusInProgress, expectedCode: http.StatusOK},
		{
			name:         "transition refused",
			target:       "/reservations/7/status?status=PENDIENTE",
			status:       model.StatusPending,
			err:          failure.Conflict("A reservation that is Confirmada cannot be set to Pendiente."),
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc, _ := newRouter(t)

			svc.EXPECT().ChangeStatus(gomock.Any(), int64(7), tt.status).Return(model.Reservation{ID: 7, Status: tt.status}, tt.err)

			recorder := serve(router, http.MethodPatch, tt.target)
			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_ConfirmUsesService(t *testing.T) {
	router, svc, _ := newRouter(t)

	svc.EXPECT().Confirm(gomock.Any(), int64(3)).Return(model.Reservation{ID: 3, Status: model.StatusConfirmed}, nil)

	recorder := serve(router, http.MethodPatch, "/reservations/3/confirm")
	assert.Equal(t, http.StatusOK, recorder.Code)
}
