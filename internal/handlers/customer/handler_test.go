package customer_test

import (
	"deportur/infras/otel/mocks"
	"deportur/internal/domains/customer/model"
	"deportur/internal/domains/customer/model/dto"
	serviceMocks "deportur/internal/domains/customer/service/mocks"
	"deportur/internal/handlers/customer"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"deportur/shared/listing"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockCustomer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockCustomer(ctrl)
	svc.EXPECT().Schema().Return(model.Schema()).AnyTimes()

	handler := customer.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_ListPassesQuery(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		List(gomock.Any(), &listing.Query{Search: "ana", Filters: map[string]string{model.FilterDocumentType: "CC"}}, true).
		Return(listing.View[model.Customer]{Items: []model.Customer{{ID: 1, FirstName: "Ana"}}, Total: 3, Matched: 1}, nil)

	recorder := serve(router, http.MethodGet, "/customers?search=ana&document_type=CC&refresh=true", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data listing.View[model.Customer] `json:"data"`
	}

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Data.Total)
	assert.Equal(t, "Ana", body.Data.Items[0].FirstName)
}

func TestHandler_ListKeepsStoredQuery(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().List(gomock.Any(), nil, false).Return(listing.View[model.Customer]{}, nil)

	recorder := serve(router, http.MethodGet, "/customers", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_DeleteConfirmation(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		decision     listing.Decision
		outcome      listing.DeleteOutcome
		err          error
		expectedCode int
	}{
		{
			name:         "pending asks for confirmation",
			target:       "/customers/7",
			decision:     listing.DecisionPending,
			err:          failure.PreconditionRequired("Delete customer Ana López?"),
			expectedCode: http.StatusPreconditionRequired,
		},
		{
			name:         "declined",
			target:       "/customers/7?confirm=false",
			decision:     listing.DecisionDeclined,
			outcome:      listing.DeleteOutcome{ID: 7, Message: "Nothing was deleted."},
			expectedCode: http.StatusOK,
		},
		{
			name:         "confirmed",
			target:       "/customers/7?confirm=true",
			decision:     listing.DecisionConfirmed,
			outcome:      listing.DeleteOutcome{ID: 7, Deleted: true},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().Delete(gomock.Any(), int64(7), tt.decision).Return(tt.outcome, tt.err)

			recorder := serve(router, http.MethodDelete, tt.target, "")
			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_DeleteInvalidID(t *testing.T) {
	router, _ := newRouter(t)

	recorder := serve(router, http.MethodDelete, "/customers/abc?confirm=true", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "id must be a positive number")
}

func TestHandler_SelectAndDeleteSelected(t *testing.T) {
	router, svc := newRouter(t)

	gomock.InOrder(
		svc.EXPECT().Select(gomock.Any(), int64(4)).Return(model.Customer{ID: 4}, nil),
		svc.EXPECT().DeleteSelected(gomock.Any(), listing.DecisionConfirmed).Return(listing.DeleteOutcome{ID: 4, Deleted: true}, nil),
	)

	recorder := serve(router, http.MethodPut, "/customers/selection", `{"id": 4}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = serve(router, http.MethodDelete, "/customers/selected?confirm=true", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"deleted":true`)
}

func TestHandler_SelectRequiresID(t *testing.T) {
	router, _ := newRouter(t)

	recorder := serve(router, http.MethodPut, "/customers/selection", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_CreateCustomer(t *testing.T) {
	t.Run("valid request reaches the service trimmed", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Create(gomock.Any(), dto.CustomerRequest{
				FirstName:    "Ana",
				LastName:     "López",
				Document:     "99887766",
				DocumentType: "CC",
				Email:        "ana@example.com",
			}).
			Return(model.Customer{ID: 11, FirstName: "Ana"}, nil)

		body := `{"nombre":" Ana ","apellido":"López","documento":"99887766","tipoDocumento":"cc","email":"ana@example.com"}`

		recorder := serve(router, http.MethodPost, "/customers", body)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("missing name never reaches the service", func(t *testing.T) {
		router, _ := newRouter(t)

		body := `{"apellido":"López","documento":"99887766","tipoDocumento":"CC"}`

		recorder := serve(router, http.MethodPost, "/customers", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "is required")
	})
}

func TestHandler_GetCustomerByDocument(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().GetByDocument(gomock.Any(), "99887766").Return(model.Customer{}, failure.NotFound("customer"))

	recorder := serve(router, http.MethodGet, "/customers/document/99887766", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_Export(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Export(gomock.Any()).Return([]byte("xlsx"), nil)

	recorder := serve(router, http.MethodGet, "/customers/export", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, constant.ContentTypeXLSX, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.Regexp(t, `customers-\d{8}-\d{6}\.xlsx`, recorder.Header().Get(constant.RequestHeaderContentDisposition))
}
