package wizard

import (
	"deportur/internal/domains/reservation/model/dto"
	"deportur/shared"
	gModel "deportur/shared/model"
	"errors"
)

type Step int

const (
	StepClient Step = iota + 1
	StepSchedule
	StepEquipment
	StepConfirm
)

func (s Step) Name() string {
	switch s {
	case StepClient:
		return "client"
	case StepSchedule:
		return "destination"
	case StepEquipment:
		return "equipment"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

var (
	errCustomerRequired    = errors.New("idCliente is required")
	errDestinationRequired = errors.New("idDestino is required")
	errDatesRequired       = errors.New("fechaInicio and fechaFin are required")
	errEndBeforeStart      = errors.New("fechaFin must be on or after fechaInicio")
	errStartInPast         = errors.New("fechaInicio cannot be in the past")
	errLinesRequired       = errors.New("at least one equipment is required")
)

type Customer struct {
	ID       int64  `json:"idCliente"`
	Name     string `json:"nombre"`
	Document string `json:"documento,omitempty"`
}

type Destination struct {
	ID   int64  `json:"idDestino"`
	Name string `json:"nombre"`
}

type Line struct {
	EquipmentID int64   `json:"idEquipo"`
	Name        string  `json:"nombre"`
	Quantity    int     `json:"cantidad"`
	DailyPrice  float64 `json:"precioPorDia"`
}

// Availability is the last availability check of the chosen destination and dates. Error
// is set instead when the check could not run.
type Availability struct {
	Available    bool    `json:"disponible"`
	Count        int     `json:"equiposDisponibles"`
	EquipmentIDs []int64 `json:"idsEquiposDisponibles,omitempty"`
	Message      string  `json:"mensaje,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// State is the reservation being assembled, stored in the operator session between steps.
type State struct {
	Step         Step          `json:"step"`
	Customer     *Customer     `json:"cliente,omitempty"`
	Destination  *Destination  `json:"destino,omitempty"`
	StartDate    gModel.Date   `json:"fechaInicio"`
	EndDate      gModel.Date   `json:"fechaFin"`
	Lines        []Line        `json:"equipos"`
	Availability *Availability `json:"disponibilidad,omitempty"`
}

func NewState() State {
	return State{Step: StepClient, Lines: []Line{}}
}

// Gate reports why step cannot be left forward, or nil when it can.
func (s *State) Gate(step Step, today gModel.Date) error {
	switch step {
	case StepClient:
		if s.Customer == nil {
			return errCustomerRequired
		}
	case StepSchedule:
		if s.Destination == nil {
			return errDestinationRequired
		}

		if s.StartDate.IsZero() || s.EndDate.IsZero() {
			return errDatesRequired
		}

		if s.StartDate.After(s.EndDate) {
			return errEndBeforeStart
		}

		if today.After(s.StartDate) {
			return errStartInPast
		}
	case StepEquipment:
		if len(s.Lines) == 0 {
			return errLinesRequired
		}
	case StepConfirm:
	}

	return nil
}

// Next advances one step when the current step's gate passes. The step is unchanged on error.
func (s *State) Next(today gModel.Date) error {
	if err := s.Gate(s.Step, today); err != nil {
		return err
	}

	if s.Step < StepConfirm {
		s.Step++
	}

	return nil
}

// Back goes one step back without validating.
func (s *State) Back() {
	if s.Step > StepClient {
		s.Step--
	}
}

// Complete checks every gate in order.
func (s *State) Complete(today gModel.Date) error {
	for step := StepClient; step < StepConfirm; step++ {
		if err := s.Gate(step, today); err != nil {
			return err
		}
	}

	return nil
}

func (s *State) SetCustomer(customer Customer) {
	s.Customer = &customer
}

// SetSchedule replaces the destination and dates and drops the previous availability check.
func (s *State) SetSchedule(destination Destination, start, end gModel.Date) {
	s.Destination = &destination
	s.StartDate = start
	s.EndDate = end
	s.Availability = nil
}

// ScheduleReady reports whether the destination and a valid date range are set.
func (s *State) ScheduleReady() bool {
	return s.Destination != nil && !s.StartDate.IsZero() && !s.EndDate.IsZero() && !s.StartDate.After(s.EndDate)
}

// AddLine adds the equipment, or increases its quantity by one when already present.
func (s *State) AddLine(line Line) {
	for i := range s.Lines {
		if s.Lines[i].EquipmentID == line.EquipmentID {
			s.Lines[i].Quantity++

			return
		}
	}

	line.Quantity = max(line.Quantity, 1)
	s.Lines = append(s.Lines, line)
}

// SetQuantity changes a line quantity. Values below one are ignored.
func (s *State) SetQuantity(equipmentID int64, quantity int) bool {
	if quantity < 1 {
		return false
	}

	for i := range s.Lines {
		if s.Lines[i].EquipmentID == equipmentID {
			s.Lines[i].Quantity = quantity

			return true
		}
	}

	return false
}

func (s *State) HasLine(equipmentID int64) bool {
	for _, line := range s.Lines {
		if line.EquipmentID == equipmentID {
			return true
		}
	}

	return false
}

func (s *State) RemoveLine(equipmentID int64) {
	lines := s.Lines[:0]

	for _, line := range s.Lines {
		if line.EquipmentID != equipmentID {
			lines = append(lines, line)
		}
	}

	s.Lines = lines
}

// Days is the inclusive rental length, zero until a valid range is set.
func (s *State) Days() int {
	if s.StartDate.IsZero() || s.EndDate.IsZero() || s.StartDate.After(s.EndDate) {
		return 0
	}

	return shared.InclusiveDays(s.StartDate.Time, s.EndDate.Time)
}

// PreviewTotal estimates the price from the per-day prices. The backend computes the final
// amount with its price policies.
func (s *State) PreviewTotal() float64 {
	days := float64(s.Days())
	total := 0.0

	for _, line := range s.Lines {
		total += float64(line.Quantity) * line.DailyPrice * days
	}

	return total
}

// Request builds the create body. The backend books each equipment once, so quantities
// only affect the preview.
func (s *State) Request() dto.ReservationRequest {
	ids := make([]int64, 0, len(s.Lines))
	for _, line := range s.Lines {
		ids = append(ids, line.EquipmentID)
	}

	req := dto.ReservationRequest{
		StartDate:    s.StartDate.String(),
		EndDate:      s.EndDate.String(),
		EquipmentIDs: dto.UniqueIDs(ids),
	}

	if s.Customer != nil {
		req.CustomerID = s.Customer.ID
	}

	if s.Destination != nil {
		req.DestinationID = s.Destination.ID
	}

	return req
}
