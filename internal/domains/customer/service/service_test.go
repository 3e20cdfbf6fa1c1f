package service_test

import (
	"context"
	"deportur/infras/otel/mocks"
	activityModel "deportur/internal/domains/activity/model"
	activityDto "deportur/internal/domains/activity/model/dto"
	activityMocks "deportur/internal/domains/activity/service/mocks"
	repoMocks "deportur/internal/domains/customer/mocks"
	"deportur/internal/domains/customer/model"
	"deportur/internal/domains/customer/model/dto"
	"deportur/internal/domains/customer/service"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"deportur/shared/listing"
	"deportur/shared/session"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sessionContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeySessionID, "operator-1")
}

func newService(t *testing.T) (service.Customer, *repoMocks.MockCustomer, *activityMocks.MockActivity) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := repoMocks.NewMockCustomer(ctrl)
	activity := activityMocks.NewMockActivity(ctrl)

	return service.New(repo, session.NewMemoryStore(time.Hour), activity, mocks.NewOtel()), repo, activity
}

func ptr(value string) *string {
	return &value
}

func TestCustomer_CreateSendsOneTrimmedRequest(t *testing.T) {
	svc, repo, activity := newService(t)

	repo.EXPECT().Create(gomock.Any(), model.Input{
		FirstName:    "Ana",
		LastName:     "López",
		Document:     "99887766",
		DocumentType: model.DocumentCitizenID,
		Email:        ptr("ana@example.com"),
	}).Return(model.Customer{ID: 31, FirstName: "Ana", LastName: "López", Document: "99887766", DocumentType: model.DocumentCitizenID}, nil).Times(1)

	activity.EXPECT().Record(gomock.Any(), activityDto.Entry{
		Action:   activityModel.ActionCreate,
		Entity:   model.EntityName,
		EntityID: 31,
		Summary:  "Ana López",
	}).Times(1)

	res, err := svc.Create(sessionContext(), dto.CustomerRequest{
		FirstName:    " Ana ",
		LastName:     "López  ",
		Document:     " 99887766",
		DocumentType: "CC",
		Phone:        "   ",
		Email:        " ana@example.com ",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(31), res.ID)
}

func TestCustomer_CreateValidation(t *testing.T) {
	valid := dto.CustomerRequest{FirstName: "Ana", LastName: "López", Document: "99887766", DocumentType: "CC"}

	tests := []struct {
		name          string
		mutate        func(req *dto.CustomerRequest)
		expectedError string
	}{
		{name: "missing first name", mutate: func(req *dto.CustomerRequest) { req.FirstName = " " }, expectedError: "nombre is required"},
		{name: "missing last name", mutate: func(req *dto.CustomerRequest) { req.LastName = "" }, expectedError: "apellido is required"},
		{name: "missing document", mutate: func(req *dto.CustomerRequest) { req.Document = "" }, expectedError: "documento is required"},
		{name: "missing document type", mutate: func(req *dto.CustomerRequest) { req.DocumentType = "" }, expectedError: "tipoDocumento is required"},
		{name: "unknown document type", mutate: func(req *dto.CustomerRequest) { req.DocumentType = "NIT" }, expectedError: "tipoDocumento must be one of CC CE PASAPORTE"},
		{name: "malformed email", mutate: func(req *dto.CustomerRequest) { req.Email = "ana@example" }, expectedError: "email must be a valid email address"},
		{name: "long document", mutate: func(req *dto.CustomerRequest) { req.Document = "123456789012345678901" }, expectedError: "documento must be at most 20 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newService(t)

			req := valid
			tt.mutate(&req)

			_, err := svc.Create(sessionContext(), req)

			require.Error(t, err)
			assert.Equal(t, tt.expectedError, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestCustomer_CreateSurfacesBackendMessage(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(model.Customer{}, failure.BadRequestFromString("Ya existe un cliente con el documento 99887766"))

	_, err := svc.Create(sessionContext(), dto.CustomerRequest{FirstName: "Ana", LastName: "López", Document: "99887766", DocumentType: "CC"})

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, "Ya existe un cliente con el documento 99887766", fail.Message)
}

func TestCustomer_Update(t *testing.T) {
	svc, repo, activity := newService(t)

	repo.EXPECT().Update(gomock.Any(), int64(31), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, input model.Input) (model.Customer, error) {
			assert.Equal(t, "Ana María", input.FirstName)
			assert.Nil(t, input.Email)
			assert.Equal(t, ptr("3001234567"), input.Phone)

			return model.Customer{ID: 31, FirstName: "Ana María", LastName: "López"}, nil
		})
	activity.EXPECT().Record(gomock.Any(), gomock.Any()).Times(1)

	res, err := svc.Update(sessionContext(), 31, dto.CustomerRequest{
		FirstName:    "Ana María",
		LastName:     "López",
		Document:     "99887766",
		DocumentType: "cc",
		Phone:        "3001234567",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana María López", res.FullName())
}

func TestCustomer_GetByDocument(t *testing.T) {
	svc, repo, _ := newService(t)

	_, err := svc.GetByDocument(sessionContext(), "  ")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	repo.EXPECT().GetByDocument(gomock.Any(), "99887766").Return(model.Customer{}, failure.NotFound("The requested resource was not found."))

	_, err = svc.GetByDocument(sessionContext(), " 99887766 ")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestCustomer_ListFilters(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().List(gomock.Any()).Return([]model.Customer{
		{ID: 1, FirstName: "Ana", LastName: "López", Document: "99887766", DocumentType: model.DocumentCitizenID, Reservations: 12},
		{ID: 2, FirstName: "John", LastName: "Smith", Document: "X123", DocumentType: model.DocumentPassport, Reservations: 6},
		{ID: 3, FirstName: "Luis", LastName: "Pérez", Document: "1020", DocumentType: model.DocumentCitizenID, LoyaltyTier: model.TierSilver},
	}, nil)

	ctx := sessionContext()

	view, err := svc.List(ctx, &listing.Query{Filters: map[string]string{model.FilterDocumentType: "CC"}}, false)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Matched)

	view, err = svc.List(ctx, &listing.Query{Filters: map[string]string{model.FilterLoyaltyTier: "PLATA"}}, false)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, int64(2), view.Items[0].ID)
	assert.Equal(t, int64(3), view.Items[1].ID)

	view, err = svc.List(ctx, &listing.Query{Search: "9988"}, false)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Ana", view.Items[0].FirstName)
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, model.TierBronze, model.TierFor(0))
	assert.Equal(t, model.TierBronze, model.TierFor(4))
	assert.Equal(t, model.TierSilver, model.TierFor(5))
	assert.Equal(t, model.TierSilver, model.TierFor(9))
	assert.Equal(t, model.TierGold, model.TierFor(10))
}
