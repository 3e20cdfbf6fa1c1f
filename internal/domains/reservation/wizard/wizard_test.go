package wizard_test

import (
	"context"
	"deportur/infras/otel/mocks"
	customer "deportur/internal/domains/customer/model"
	destination "deportur/internal/domains/destination/model"
	equipment "deportur/internal/domains/equipment/model"
	equipmentDto "deportur/internal/domains/equipment/model/dto"
	"deportur/internal/domains/reservation/model"
	"deportur/internal/domains/reservation/model/dto"
	"deportur/internal/domains/reservation/wizard"
	wizardMocks "deportur/internal/domains/reservation/wizard/mocks"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"deportur/shared/session"
	"deportur/shared/timezone"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	wizard       wizard.Wizard
	customers    *wizardMocks.MockCustomers
	destinations *wizardMocks.MockDestinations
	equipment    *wizardMocks.MockEquipment
	reservations *wizardMocks.MockReservations
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		customers:    wizardMocks.NewMockCustomers(ctrl),
		destinations: wizardMocks.NewMockDestinations(ctrl),
		equipment:    wizardMocks.NewMockEquipment(ctrl),
		reservations: wizardMocks.NewMockReservations(ctrl),
	}
	f.wizard = wizard.New(session.NewMemoryStore(time.Hour), f.customers, f.destinations, f.equipment, f.reservations, mocks.NewOtel())

	return f
}

func sessionContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeySessionID, "operator-1")
}

func day(offset int) string {
	return timezone.Today().AddDate(0, 0, offset).Format(time.DateOnly)
}

func TestWizard_FullFlow(t *testing.T) {
	f := newFixture(t)
	ctx := sessionContext()

	f.customers.EXPECT().Get(gomock.Any(), int64(1)).Return(customer.Customer{ID: 1, FirstName: "Ana", LastName: "López", Document: "1020"}, nil)
	f.destinations.EXPECT().Get(gomock.Any(), int64(2)).Return(destination.Destination{ID: 2, Name: "Guatapé"}, nil)
	f.equipment.EXPECT().CheckAvailability(gomock.Any(), equipmentDto.AvailabilityRequest{DestinationID: 2, Start: day(1), End: day(4)}).
		Return(equipment.Availability{DestinationID: 2, Available: true, Count: 3, EquipmentIDs: []int64{10, 11, 12}, Message: "Hay equipos disponibles"}, nil)
	f.equipment.EXPECT().Get(gomock.Any(), int64(10)).Return(equipment.Equipment{ID: 10, Name: "Kayak", RentalPrice: 50000}, nil)
	f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.ReservationRequest) (model.Reservation, error) {
			assert.Equal(t, int64(1), req.CustomerID)
			assert.Equal(t, int64(2), req.DestinationID)
			assert.Equal(t, day(1), req.StartDate)
			assert.Equal(t, day(4), req.EndDate)
			assert.Equal(t, []int64{10}, req.EquipmentIDs)

			return model.Reservation{ID: 77, Status: model.StatusPending}, nil
		})

	view, err := f.wizard.SetClient(ctx, dto.WizardClientRequest{CustomerID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Ana López", view.Customer.Name)

	view, err = f.wizard.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepSchedule, view.Step)

	view, err = f.wizard.SetSchedule(ctx, dto.WizardScheduleRequest{DestinationID: 2, StartDate: day(1), EndDate: day(4)})
	require.NoError(t, err)
	require.NotNil(t, view.Availability)
	assert.True(t, view.Availability.Available)
	assert.Equal(t, 3, view.Availability.Count)
	assert.Equal(t, 4, view.Days)

	view, err = f.wizard.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepEquipment, view.Step)

	_, err = f.wizard.SetLine(ctx, dto.WizardLineRequest{EquipmentID: 10})
	require.NoError(t, err)

	// a second add of the same equipment merges into one line
	view, err = f.wizard.SetLine(ctx, dto.WizardLineRequest{EquipmentID: 10})
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.InDelta(t, 400000.0, view.PreviewTotal, 0.001)

	view, err = f.wizard.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepConfirm, view.Step)

	res, err := f.wizard.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(77), res.ID)

	view, err = f.wizard.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepClient, view.Step)
	assert.Nil(t, view.Customer)
	assert.Empty(t, view.Lines)
}

func TestWizard_NextKeepsStepOnInvalidRange(t *testing.T) {
	f := newFixture(t)
	ctx := sessionContext()

	f.customers.EXPECT().Get(gomock.Any(), int64(1)).Return(customer.Customer{ID: 1, FirstName: "Ana"}, nil)
	f.destinations.EXPECT().Get(gomock.Any(), int64(2)).Return(destination.Destination{ID: 2, Name: "Guatapé"}, nil)

	_, err := f.wizard.SetClient(ctx, dto.WizardClientRequest{CustomerID: 1})
	require.NoError(t, err)
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)

	view, err := f.wizard.SetSchedule(ctx, dto.WizardScheduleRequest{DestinationID: 2, StartDate: day(5), EndDate: day(2)})
	require.NoError(t, err)
	require.NotNil(t, view.Availability)
	assert.NotEmpty(t, view.Availability.Error)

	_, err = f.wizard.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, "fechaFin must be on or after fechaInicio", err.Error())
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	view, err = f.wizard.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepSchedule, view.Step)
}

func TestWizard_AvailabilityFailureDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	ctx := sessionContext()

	f.destinations.EXPECT().Get(gomock.Any(), int64(2)).Return(destination.Destination{ID: 2, Name: "Guatapé"}, nil)
	f.equipment.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Return(equipment.Availability{}, errors.New("connection refused"))

	view, err := f.wizard.SetSchedule(ctx, dto.WizardScheduleRequest{DestinationID: 2, StartDate: day(1), EndDate: day(2)})
	require.NoError(t, err)
	require.NotNil(t, view.Availability)
	assert.Equal(t, "Availability could not be checked.", view.Availability.Error)
	assert.False(t, view.Availability.Available)
}

func TestWizard_PartialScheduleSkipsAvailability(t *testing.T) {
	f := newFixture(t)

	f.destinations.EXPECT().Get(gomock.Any(), int64(2)).Return(destination.Destination{ID: 2, Name: "Guatapé"}, nil)

	view, err := f.wizard.SetSchedule(sessionContext(), dto.WizardScheduleRequest{DestinationID: 2, StartDate: day(1)})
	require.NoError(t, err)
	assert.Nil(t, view.Availability)
	assert.Equal(t, 0, view.Days)
}

func TestWizard_SetLineQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := sessionContext()

	f.equipment.EXPECT().Get(gomock.Any(), int64(10)).Return(equipment.Equipment{ID: 10, Name: "Kayak", RentalPrice: 50000}, nil)

	_, err := f.wizard.SetLine(ctx, dto.WizardLineRequest{EquipmentID: 10})
	require.NoError(t, err)

	zero := 0
	view, err := f.wizard.SetLine(ctx, dto.WizardLineRequest{EquipmentID: 10, Quantity: &zero})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Lines[0].Quantity)

	three := 3
	view, err = f.wizard.SetLine(ctx, dto.WizardLineRequest{EquipmentID: 10, Quantity: &three})
	require.NoError(t, err)
	assert.Equal(t, 3, view.Lines[0].Quantity)

	view, err = f.wizard.RemoveLine(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestWizard_SubmitIncomplete(t *testing.T) {
	f := newFixture(t)

	_, err := f.wizard.Submit(sessionContext())
	require.Error(t, err)
	assert.Equal(t, "idCliente is required", err.Error())
}

func TestWizard_SubmitBackendErrorKeepsState(t *testing.T) {
	f := newFixture(t)
	ctx := sessionContext()

	f.customers.EXPECT().Get(gomock.Any(), int64(1)).Return(customer.Customer{ID: 1, FirstName: "Ana"}, nil)
	f.destinations.EXPECT().Get(gomock.Any(), int64(2)).Return(destination.Destination{ID: 2}, nil)
	f.equipment.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Return(equipment.Availability{Available: true}, nil)
	f.equipment.EXPECT().Get(gomock.Any(), int64(10)).Return(equipment.Equipment{ID: 10}, nil)
	f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(model.Reservation{}, failure.BadRequestFromString("El equipo Kayak no está disponible"))

	_, err := f.wizard.SetClient(ctx, dto.WizardClientRequest{CustomerID: 1})
	require.NoError(t, err)
	_, err = f.wizard.SetSchedule(ctx, dto.WizardScheduleRequest{DestinationID: 2, StartDate: day(0), EndDate: day(1)})
	require.NoError(t, err)
	_, err = f.wizard.SetLine(ctx, dto.WizardLineRequest{EquipmentID: 10})
	require.NoError(t, err)

	_, err = f.wizard.Submit(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "El equipo Kayak no está disponible")

	view, err := f.wizard.Current(ctx)
	require.NoError(t, err)
	assert.NotNil(t, view.Customer)
	assert.Len(t, view.Lines, 1)
}

func TestWizard_NoSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.wizard.Current(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}
