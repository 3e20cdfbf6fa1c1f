package service_test

import (
	"context"
	"deportur/infras/otel/mocks"
	activityModel "deportur/internal/domains/activity/model"
	activityDto "deportur/internal/domains/activity/model/dto"
	activityMocks "deportur/internal/domains/activity/service/mocks"
	repoMocks "deportur/internal/domains/destination/mocks"
	"deportur/internal/domains/destination/model"
	"deportur/internal/domains/destination/model/dto"
	"deportur/internal/domains/destination/service"
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

func newService(t *testing.T) (service.Destination, *repoMocks.MockDestination, *activityMocks.MockActivity) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := repoMocks.NewMockDestination(ctrl)
	activity := activityMocks.NewMockActivity(ctrl)

	return service.New(repo, session.NewMemoryStore(time.Hour), activity, mocks.NewOtel()), repo, activity
}

func TestDestination_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.DestinationRequest
		expectedInput *model.Input
		expectedError string
	}{
		{
			name: "splits coordinates and defaults to active",
			req: dto.DestinationRequest{
				Name:        "  Playa Blanca ",
				Department:  "Bolívar",
				City:        "Cartagena",
				Coordinates: "10.2346, -75.6012",
				Type:        "playa",
			},
			expectedInput: func() *model.Input {
				lat, long := 10.2346, -75.6012
				beach := model.TypeBeach

				return &model.Input{
					Name:       "Playa Blanca",
					Department: "Bolívar",
					City:       "Cartagena",
					Latitude:   &lat,
					Longitude:  &long,
					Type:       &beach,
					Active:     true,
				}
			}(),
		},
		{
			name:          "missing city",
			req:           dto.DestinationRequest{Name: "Guatapé", Department: "Antioquia", City: "  "},
			expectedError: "ciudad is required",
		},
		{
			name:          "malformed coordinates",
			req:           dto.DestinationRequest{Name: "Guatapé", Department: "Antioquia", City: "Guatapé", Coordinates: "north"},
			expectedError: "coordenadas must be in the form latitude,longitude",
		},
		{
			name:          "latitude out of range",
			req:           dto.DestinationRequest{Name: "Guatapé", Department: "Antioquia", City: "Guatapé", Coordinates: "95,10"},
			expectedError: "latitud must be between -90 and 90",
		},
		{
			name: "capacity below one",
			req: dto.DestinationRequest{Name: "Guatapé", Department: "Antioquia", City: "Guatapé", MaxCapacity: func() *int {
				zero := 0

				return &zero
			}()},
			expectedError: "capacidadMaxima must be greater than or equal to 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, activity := newService(t)

			if tt.expectedInput != nil {
				repo.EXPECT().Create(gomock.Any(), *tt.expectedInput).Return(model.Destination{ID: 4, Name: "Playa Blanca"}, nil)
				activity.EXPECT().Record(gomock.Any(), activityDto.Entry{
					Action:   activityModel.ActionCreate,
					Entity:   model.EntityName,
					EntityID: 4,
					Summary:  "Playa Blanca",
				})
			}

			res, err := svc.Create(sessionContext(), tt.req)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(4), res.ID)
		})
	}
}

func TestDestination_CreateRefetchesList(t *testing.T) {
	svc, repo, activity := newService(t)
	ctx := sessionContext()

	gomock.InOrder(
		repo.EXPECT().List(gomock.Any()).Return([]model.Destination{{ID: 1, Name: "Guatapé"}}, nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Destination{ID: 2, Name: "Salento"}, nil),
		repo.EXPECT().List(gomock.Any()).Return([]model.Destination{{ID: 1, Name: "Guatapé"}, {ID: 2, Name: "Salento"}}, nil),
	)
	activity.EXPECT().Record(gomock.Any(), gomock.Any()).Times(1)

	view, err := svc.List(ctx, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Total)

	_, err = svc.Create(ctx, dto.DestinationRequest{Name: "Salento", Department: "Quindío", City: "Salento"})
	require.NoError(t, err)

	view, err = svc.List(ctx, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Total)
}

func TestDestination_Filters(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().List(gomock.Any()).Return([]model.Destination{
		{ID: 1, Name: "Playa Blanca", Department: "Bolívar", City: "Cartagena", Type: model.TypeBeach, Active: true},
		{ID: 2, Name: "Nevado", Department: "Caldas", City: "Manizales", Type: model.TypeMountain, Active: false},
		{ID: 3, Name: "Tayrona", Department: "Magdalena", City: "Santa Marta", Type: model.TypeBeach, Active: false},
	}, nil)

	view, err := svc.List(sessionContext(), &listing.Query{Filters: map[string]string{model.FilterType: "PLAYA", model.FilterActive: "false"}}, false)

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Tayrona", view.Items[0].Name)

	view, err = svc.List(sessionContext(), &listing.Query{Search: "caldas"}, false)

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(2), view.Items[0].ID)
}

func TestDestination_DeleteRecordsActivity(t *testing.T) {
	svc, repo, activity := newService(t)
	ctx := sessionContext()

	repo.EXPECT().List(gomock.Any()).Return([]model.Destination{{ID: 1, Name: "Guatapé"}}, nil)
	repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	activity.EXPECT().Record(gomock.Any(), activityDto.Entry{
		Action:   activityModel.ActionDelete,
		Entity:   model.EntityName,
		EntityID: 1,
		Summary:  "Guatapé",
	})

	_, err := svc.Delete(ctx, 1, listing.DecisionPending)
	assert.Equal(t, http.StatusPreconditionRequired, failure.GetCode(err))

	outcome, err := svc.Delete(ctx, 1, listing.DecisionConfirmed)
	require.NoError(t, err)
	assert.True(t, outcome.Deleted)

	view, err := svc.List(ctx, nil, false)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestDestination_DisplayLocation(t *testing.T) {
	assert.Equal(t, "Cartagena, Bolívar", model.Destination{City: "Cartagena", Department: "Bolívar"}.DisplayLocation())
	assert.Equal(t, "Cartagena", model.Destination{City: "Cartagena"}.DisplayLocation())
	assert.Equal(t, "Centro", model.Destination{City: "Cartagena", Location: "Centro"}.DisplayLocation())
}
