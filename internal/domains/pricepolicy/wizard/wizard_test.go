package wizard_test

import (
	"context"
	"deportur/infras/otel/mocks"
	customer "deportur/internal/domains/customer/model"
	"deportur/internal/domains/pricepolicy/model"
	"deportur/internal/domains/pricepolicy/model/dto"
	"deportur/internal/domains/pricepolicy/wizard"
	wizardMocks "deportur/internal/domains/pricepolicy/wizard/mocks"
	"deportur/shared/constant"
	"deportur/shared/failure"
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

func newWizard(t *testing.T) (wizard.Wizard, *wizardMocks.MockPolicies) {
	t.Helper()

	policies := wizardMocks.NewMockPolicies(gomock.NewController(t))

	return wizard.New(session.NewMemoryStore(time.Hour), policies, mocks.NewOtel()), policies
}

func percentage(value float64) *float64 {
	return &value
}

func intPtr(value int) *int {
	return &value
}

func TestWizard_CreateDurationDiscount(t *testing.T) {
	w, policies := newWizard(t)
	ctx := sessionContext()

	policies.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.PricePolicyRequest) (model.PricePolicy, error) {
			assert.Equal(t, "Semana completa", req.Name)
			assert.Equal(t, "DESCUENTO_DURACION", req.Type)
			assert.Equal(t, 7, *req.MinDays)
			assert.Nil(t, req.MaxDays)

			return model.PricePolicy{ID: 12, Name: req.Name}, nil
		})

	_, err := w.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, "nombre is required", err.Error())

	view, err := w.SetBasic(ctx, dto.BasicRequest{Name: "Semana completa", Type: "descuento_duracion", Percentage: percentage(10)})
	require.NoError(t, err)
	assert.Equal(t, wizard.StepBasic, view.Step)
	assert.Equal(t, []string{"minDias", "maxDias"}, view.ConditionFields)

	view, err = w.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepConditions, view.Step)

	_, err = w.SetConditions(ctx, dto.ConditionsRequest{MinDays: intPtr(7), MaxDays: intPtr(3)})
	require.NoError(t, err)

	_, err = w.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, "maxDias must be greater than or equal to minDias", err.Error())
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	view, err = w.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepConditions, view.Step)

	_, err = w.SetConditions(ctx, dto.ConditionsRequest{MinDays: intPtr(7)})
	require.NoError(t, err)

	view, err = w.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepScope, view.Step)

	res, err := w.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.ID)

	view, err = w.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepBasic, view.Step)
	assert.Empty(t, view.Basic.Name)
}

func TestWizard_PercentageRange(t *testing.T) {
	w, _ := newWizard(t)
	ctx := sessionContext()

	_, err := w.SetBasic(ctx, dto.BasicRequest{Name: "IVA", Type: "IMPUESTO", Percentage: percentage(-1)})
	require.NoError(t, err)

	_, err = w.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, "porcentaje must be greater than or equal to 0", err.Error())
}

func TestWizard_BackNeverValidates(t *testing.T) {
	w, _ := newWizard(t)
	ctx := sessionContext()

	view, err := w.Back(ctx)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepBasic, view.Step)
}

func TestWizard_EditUpdatesExisting(t *testing.T) {
	w, policies := newWizard(t)
	ctx := sessionContext()
	gold := customer.TierGold

	policies.EXPECT().Get(gomock.Any(), int64(4)).Return(model.PricePolicy{
		ID:          4,
		Name:        "Clientes oro",
		Type:        model.TypeCustomerDiscount,
		Percentage:  10,
		LoyaltyTier: &gold,
		Active:      true,
		Destination: &model.DestinationRef{ID: 2, Name: "Guatapé"},
	}, nil)
	policies.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, req dto.PricePolicyRequest) (model.PricePolicy, error) {
			assert.InDelta(t, 12.5, *req.Percentage, 0.001)
			assert.Equal(t, "ORO", req.LoyaltyTier)
			require.NotNil(t, req.DestinationID)
			assert.Equal(t, int64(2), *req.DestinationID)

			return model.PricePolicy{ID: 4}, nil
		})

	view, err := w.Edit(ctx, 4)
	require.NoError(t, err)
	require.NotNil(t, view.EditingID)
	assert.Equal(t, "Clientes oro", view.Basic.Name)

	_, err = w.SetBasic(ctx, dto.BasicRequest{Name: "Clientes oro", Type: "DESCUENTO_CLIENTE", Percentage: percentage(12.5), Active: view.Basic.Active})
	require.NoError(t, err)

	res, err := w.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.ID)
}

func TestState_ConditionsPerType(t *testing.T) {
	state := wizard.NewState()
	state.Basic = dto.BasicRequest{Name: "Navidad", Type: "RECARGO_FECHA_PICO", Percentage: percentage(20)}
	state.Conditions = dto.ConditionsRequest{StartDate: "2026-12-20", MinDays: intPtr(2)}

	require.NoError(t, state.Complete())
	assert.Equal(t, []string{"fechaInicio", "fechaFin"}, state.ConditionFields())

	req := state.Request()
	req.Normalize()
	input := req.ToInput()

	assert.Equal(t, gModel.NewDate(2026, time.December, 20), input.StartDate)
	assert.True(t, input.EndDate.IsZero())
	assert.Nil(t, input.MinDays)

	state.Basic.Type = "IMPUESTO"
	assert.Empty(t, state.ConditionFields())
}
