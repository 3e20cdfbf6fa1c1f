// Package wizard assembles a reservation over four steps: client, destination and dates,
// equipment, and confirmation.
package wizard

//go:generate go run go.uber.org/mock/mockgen -source=./wizard.go -destination=./mocks/wizard_mock.go -package=mocks

import (
	"context"
	"deportur/infras/otel"
	customer "deportur/internal/domains/customer/model"
	destination "deportur/internal/domains/destination/model"
	equipment "deportur/internal/domains/equipment/model"
	equipmentDto "deportur/internal/domains/equipment/model/dto"
	"deportur/internal/domains/reservation/model"
	"deportur/internal/domains/reservation/model/dto"
	"deportur/shared/constant"
	"deportur/shared/failure"
	gModel "deportur/shared/model"
	"deportur/shared/session"
	"deportur/shared/timezone"
	"deportur/shared/validator"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const sessionKey = "reservation-wizard"

const availabilityUnavailable = "Availability could not be checked."

type Customers interface {
	Get(ctx context.Context, id int64) (customer.Customer, error)
}

type Destinations interface {
	Get(ctx context.Context, id int64) (destination.Destination, error)
}

type Equipment interface {
	Get(ctx context.Context, id int64) (equipment.Equipment, error)
	CheckAvailability(ctx context.Context, req equipmentDto.AvailabilityRequest) (equipment.Availability, error)
}

type Reservations interface {
	Create(ctx context.Context, req dto.ReservationRequest) (model.Reservation, error)
}

// View is the wizard state with its derived figures.
type View struct {
	State
	StepName     string  `json:"step_name"`
	Days         int     `json:"dias"`
	PreviewTotal float64 `json:"total_estimado"`
}

type Wizard interface {
	Current(ctx context.Context) (View, error)
	Reset(ctx context.Context) error
	SetClient(ctx context.Context, req dto.WizardClientRequest) (View, error)
	SetSchedule(ctx context.Context, req dto.WizardScheduleRequest) (View, error)
	SetLine(ctx context.Context, req dto.WizardLineRequest) (View, error)
	RemoveLine(ctx context.Context, equipmentID int64) (View, error)
	Next(ctx context.Context) (View, error)
	Back(ctx context.Context) (View, error)
	Submit(ctx context.Context) (model.Reservation, error)
}

type wizardImpl struct {
	store        session.Store
	customers    Customers
	destinations Destinations
	equipment    Equipment
	reservations Reservations
	otel         otel.Otel
}

func New(
	store session.Store,
	customers Customers,
	destinations Destinations,
	equipment Equipment,
	reservations Reservations,
	otel otel.Otel,
) Wizard {
	return &wizardImpl{
		store:        store,
		customers:    customers,
		destinations: destinations,
		equipment:    equipment,
		reservations: reservations,
		otel:         otel,
	}
}

func (w *wizardImpl) Current(ctx context.Context) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservationWizard.Current")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	return view(state), nil
}

func (w *wizardImpl) Reset(ctx context.Context) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservationWizard.Reset")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, err := sessionID(ctx)
	if err != nil {
		return err
	}

	if err = w.store.Delete(ctx, sessionID, sessionKey); err != nil {
		log.Error().Err(err).Msg("failed to reset reservation wizard")

		return fmt.Errorf("failed to reset reservation wizard: %w", err)
	}

	return nil
}

func (w *wizardImpl) SetClient(ctx context.Context, req dto.WizardClientRequest) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservationWizard.SetClient")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	client, err := w.customers.Get(ctx, req.CustomerID)
	if err != nil {
		return res, fmt.Errorf("failed to get wizard client: %w", err)
	}

	state.SetCustomer(Customer{ID: client.ID, Name: client.FullName(), Document: client.Document})

	return w.save(ctx, sessionID, state)
}

// SetSchedule stores the destination and dates and, once both dates form a valid range,
// checks equipment availability. A failed check is kept as a message and never blocks.
func (w *wizardImpl) SetSchedule(ctx context.Context, req dto.WizardScheduleRequest) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservationWizard.SetSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	start, end, err := req.Dates()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	place, err := w.destinations.Get(ctx, req.DestinationID)
	if err != nil {
		return res, fmt.Errorf("failed to get wizard destination: %w", err)
	}

	state.SetSchedule(Destination{ID: place.ID, Name: place.Name}, start, end)

	switch {
	case state.ScheduleReady():
		state.Availability = w.checkAvailability(ctx, state)
	case !start.IsZero() && !end.IsZero():
		state.Availability = &Availability{Error: "Dates must form a valid range to check availability."}
	}

	return w.save(ctx, sessionID, state)
}

func (w *wizardImpl) SetLine(ctx context.Context, req dto.WizardLineRequest) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservationWizard.SetLine")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	if req.Quantity != nil && state.HasLine(req.EquipmentID) {
		if !state.SetQuantity(req.EquipmentID, *req.Quantity) {
			return view(state), nil
		}

		return w.save(ctx, sessionID, state)
	}

	if req.Quantity != nil && *req.Quantity < 1 {
		return view(state), nil
	}

	item, err := w.equipment.Get(ctx, req.EquipmentID)
	if err != nil {
		return res, fmt.Errorf("failed to get wizard equipment: %w", err)
	}

	line := Line{EquipmentID: item.ID, Name: item.Name, Quantity: 1, DailyPrice: item.RentalPrice}
	if req.Quantity != nil {
		line.Quantity = *req.Quantity
	}

	state.AddLine(line)

	return w.save(ctx, sessionID, state)
}

func (w *wizardImpl) RemoveLine(ctx context.Context, equipmentID int64) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservationWizard.RemoveLine")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	state.RemoveLine(equipmentID)

	return w.save(ctx, sessionID, state)
}

func (w *wizardImpl) Next(ctx context.Context) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservationWizard.Next")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	if err = state.Next(today()); err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	return w.save(ctx, sessionID, state)
}

func (w *wizardImpl) Back(ctx context.Context) (res View, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservationWizard.Back")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	state.Back()

	return w.save(ctx, sessionID, state)
}

// Submit creates the reservation and starts a fresh wizard.
func (w *wizardImpl) Submit(ctx context.Context) (res model.Reservation, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservationWizard.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, state, err := w.open(ctx)
	if err != nil {
		return res, err
	}

	if err = state.Complete(today()); err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	res, err = w.reservations.Create(ctx, state.Request())
	if err != nil {
		return res, fmt.Errorf("failed to submit reservation wizard: %w", err)
	}

	if err = w.store.Delete(ctx, sessionID, sessionKey); err != nil {
		log.Warn().Err(err).Msg("failed to reset reservation wizard after submit")
	}

	return res, nil
}

func (w *wizardImpl) checkAvailability(ctx context.Context, state State) *Availability {
	req := equipmentDto.AvailabilityRequest{
		DestinationID: state.Destination.ID,
		Start:         state.StartDate.String(),
		End:           state.EndDate.String(),
	}

	res, err := w.equipment.CheckAvailability(ctx, req)
	if err != nil {
		log.Warn().Err(err).Int64("destination", req.DestinationID).Msg("failed to check availability for reservation wizard")

		message := availabilityUnavailable

		var fail *failure.Failure
		if errors.As(err, &fail) && fail.Message != constant.Empty {
			message = fail.Message
		}

		return &Availability{Error: message}
	}

	return &Availability{
		Available:    res.Available,
		Count:        res.Count,
		EquipmentIDs: res.EquipmentIDs,
		Message:      res.Message,
	}
}

func (w *wizardImpl) open(ctx context.Context) (string, State, error) {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return constant.Empty, State{}, err
	}

	state := NewState()

	if _, err = w.store.Load(ctx, sessionID, sessionKey, &state); err != nil {
		log.Error().Err(err).Msg("failed to load reservation wizard")

		return constant.Empty, State{}, fmt.Errorf("failed to load reservation wizard: %w", err)
	}

	if state.Step < StepClient || state.Step > StepConfirm {
		state.Step = StepClient
	}

	return sessionID, state, nil
}

func (w *wizardImpl) save(ctx context.Context, sessionID string, state State) (View, error) {
	if err := w.store.Save(ctx, sessionID, sessionKey, state); err != nil {
		log.Error().Err(err).Msg("failed to save reservation wizard")

		return View{}, fmt.Errorf("failed to save reservation wizard: %w", err)
	}

	return view(state), nil
}

func sessionID(ctx context.Context) (string, error) {
	id, err := session.ID(ctx)
	if err != nil {
		return constant.Empty, failure.Unauthorized(err.Error()) //nolint:wrapcheck
	}

	return id, nil
}

func view(state State) View {
	return View{
		State:        state,
		StepName:     state.Step.Name(),
		Days:         state.Days(),
		PreviewTotal: state.PreviewTotal(),
	}
}

func today() gModel.Date {
	return gModel.Date{Time: timezone.Today()}
}
