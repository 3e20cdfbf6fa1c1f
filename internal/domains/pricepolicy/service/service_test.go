package service_test

import (
	"context"
	"deportur/infras/otel/mocks"
	activityModel "deportur/internal/domains/activity/model"
	activityDto "deportur/internal/domains/activity/model/dto"
	activityMocks "deportur/internal/domains/activity/service/mocks"
	customer "deportur/internal/domains/customer/model"
	repoMocks "deportur/internal/domains/pricepolicy/mocks"
	"deportur/internal/domains/pricepolicy/model"
	"deportur/internal/domains/pricepolicy/model/dto"
	"deportur/internal/domains/pricepolicy/service"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"deportur/shared/listing"
	gModel "deportur/shared/model"
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

func newService(t *testing.T) (service.PricePolicy, *repoMocks.MockPricePolicy, *activityMocks.MockActivity) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := repoMocks.NewMockPricePolicy(ctrl)
	activity := activityMocks.NewMockActivity(ctrl)

	return service.New(repo, session.NewMemoryStore(time.Hour), activity, mocks.NewOtel()), repo, activity
}

func floatPtr(value float64) *float64 {
	return &value
}

func intPtr(value int) *int {
	return &value
}

func TestPricePolicy_Create(t *testing.T) {
	gold := customer.TierGold

	tests := []struct {
		name          string
		req           dto.PricePolicyRequest
		expectedInput *model.Input
		expectedError string
	}{
		{
			name: "season discount keeps only its window",
			req: dto.PricePolicyRequest{
				BasicRequest: dto.BasicRequest{Name: " Temporada baja ", Type: "descuento_temporada", Percentage: floatPtr(15)},
				ConditionsRequest: dto.ConditionsRequest{
					StartDate:   "2026-02-01",
					EndDate:     "2026-03-15",
					MinDays:     intPtr(3),
					LoyaltyTier: "ORO",
				},
			},
			expectedInput: &model.Input{
				Name:       "Temporada baja",
				Type:       model.TypeSeasonDiscount,
				Percentage: 15,
				StartDate:  gModel.NewDate(2026, time.February, 1),
				EndDate:    gModel.NewDate(2026, time.March, 15),
				Active:     true,
			},
		},
		{
			name: "customer discount",
			req: dto.PricePolicyRequest{
				BasicRequest:      dto.BasicRequest{Name: "Clientes oro", Type: "DESCUENTO_CLIENTE", Percentage: floatPtr(10)},
				ConditionsRequest: dto.ConditionsRequest{StartDate: "2026-02-01", LoyaltyTier: "oro"},
			},
			expectedInput: &model.Input{
				Name:        "Clientes oro",
				Type:        model.TypeCustomerDiscount,
				Percentage:  10,
				Active:      true,
				LoyaltyTier: &gold,
			},
		},
		{
			name:          "percentage above 100",
			req:           dto.PricePolicyRequest{BasicRequest: dto.BasicRequest{Name: "IVA", Type: "IMPUESTO", Percentage: floatPtr(120)}},
			expectedError: "porcentaje must be less than or equal to 100",
		},
		{
			name:          "percentage missing",
			req:           dto.PricePolicyRequest{BasicRequest: dto.BasicRequest{Name: "IVA", Type: "IMPUESTO"}},
			expectedError: "porcentaje is required",
		},
		{
			name: "duration range reversed",
			req: dto.PricePolicyRequest{
				BasicRequest:      dto.BasicRequest{Name: "Semana", Type: "DESCUENTO_DURACION", Percentage: floatPtr(5)},
				ConditionsRequest: dto.ConditionsRequest{MinDays: intPtr(7), MaxDays: intPtr(3)},
			},
			expectedError: "maxDias must be greater than or equal to minDias",
		},
		{
			name: "customer discount without tier",
			req: dto.PricePolicyRequest{
				BasicRequest: dto.BasicRequest{Name: "Clientes", Type: "DESCUENTO_CLIENTE", Percentage: floatPtr(5)},
			},
			expectedError: "nivelFidelizacion is required",
		},
		{
			name: "peak window reversed",
			req: dto.PricePolicyRequest{
				BasicRequest:      dto.BasicRequest{Name: "Navidad", Type: "RECARGO_FECHA_PICO", Percentage: floatPtr(20)},
				ConditionsRequest: dto.ConditionsRequest{StartDate: "2026-12-31", EndDate: "2026-12-20"},
			},
			expectedError: "fechaFin must be on or after fechaInicio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, activity := newService(t)

			if tt.expectedInput != nil {
				repo.EXPECT().Create(gomock.Any(), *tt.expectedInput).Return(model.PricePolicy{ID: 8, Name: tt.expectedInput.Name}, nil)
				activity.EXPECT().Record(gomock.Any(), activityDto.Entry{
					Action:   activityModel.ActionCreate,
					Entity:   model.EntityName,
					EntityID: 8,
					Summary:  tt.expectedInput.Name,
				})
			}

			_, err := svc.Create(sessionContext(), tt.req)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestPricePolicy_SetStatus(t *testing.T) {
	tests := []struct {
		name           string
		active         bool
		expectedAction activityModel.Action
	}{
		{name: "activate", active: true, expectedAction: activityModel.ActionActivate},
		{name: "deactivate", active: false, expectedAction: activityModel.ActionDeactivate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, activity := newService(t)
			ctx := sessionContext()

			gomock.InOrder(
				repo.EXPECT().List(gomock.Any()).Return([]model.PricePolicy{{ID: 3, Name: "IVA", Active: !tt.active}}, nil),
				repo.EXPECT().SetActive(gomock.Any(), int64(3), tt.active).Return(model.PricePolicy{ID: 3, Name: "IVA", Active: tt.active}, nil),
				repo.EXPECT().List(gomock.Any()).Return([]model.PricePolicy{{ID: 3, Name: "IVA", Active: tt.active}}, nil),
			)
			activity.EXPECT().Record(gomock.Any(), activityDto.Entry{
				Action:   tt.expectedAction,
				Entity:   model.EntityName,
				EntityID: 3,
				Summary:  "IVA",
			})

			_, err := svc.List(ctx, nil, false)
			require.NoError(t, err)

			res, err := svc.SetStatus(ctx, 3, dto.StatusRequest{Active: &tt.active})
			require.NoError(t, err)
			assert.Equal(t, tt.active, res.Active)

			view, err := svc.List(ctx, &listing.Query{Filters: map[string]string{model.FilterActive: "true"}}, false)
			require.NoError(t, err)
			assert.Equal(t, tt.active, len(view.Items) == 1)
		})
	}
}

func TestPricePolicy_SetStatusRequiresValue(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.SetStatus(sessionContext(), 3, dto.StatusRequest{})
	require.Error(t, err)
	assert.Equal(t, "activo is required", err.Error())
}
