package model

import (
	"deportur/shared/export"
	"deportur/shared/listing"
	gModel "deportur/shared/model"
	"strconv"
	"strings"
)

const (
	EntityName   = "reservation"
	ScreenName   = "reservations"
	ResourcePath = "/reservas"

	FilterStatus      = "status"
	FilterCustomer    = "customer"
	FilterDestination = "destination"
)

type Status string

const (
	StatusPending    Status = "PENDIENTE"
	StatusConfirmed  Status = "CONFIRMADA"
	StatusInProgress Status = "EN_PROGRESO"
	StatusFinished   Status = "FINALIZADA"
	StatusCancelled  Status = "CANCELADA"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusFinished, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusConfirmed:
		return "Confirmada"
	case StatusInProgress:
		return "En progreso"
	case StatusFinished:
		return "Finalizada"
	case StatusCancelled:
		return "Cancelada"
	default:
		return string(s)
	}
}

// CanMoveTo reports whether a reservation in s may be set to next. Reservations move forward
// one step at a time and only pending or confirmed ones can be cancelled.
func (s Status) CanMoveTo(next Status) bool {
	switch next {
	case StatusPending:
		return false
	case StatusConfirmed:
		return s == StatusPending
	case StatusInProgress:
		return s == StatusConfirmed
	case StatusFinished:
		return s == StatusInProgress
	case StatusCancelled:
		return s == StatusPending || s == StatusConfirmed
	default:
		return false
	}
}

// Badge is the display variant of the status.
func (s Status) Badge() string {
	switch s {
	case StatusPending:
		return "warning"
	case StatusConfirmed:
		return "info"
	case StatusInProgress:
		return "primary"
	case StatusFinished:
		return "success"
	case StatusCancelled:
		return "danger"
	default:
		return "neutral"
	}
}

type CustomerSummary struct {
	ID        int64  `json:"idCliente"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Document  string `json:"documento"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"telefono,omitempty"`
}

func (c CustomerSummary) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type DestinationSummary struct {
	ID         int64  `json:"idDestino"`
	Name       string `json:"nombre"`
	Department string `json:"departamento,omitempty"`
	City       string `json:"ciudad,omitempty"`
}

type EquipmentSummary struct {
	ID    int64  `json:"idEquipo"`
	Name  string `json:"nombre"`
	Brand string `json:"marca,omitempty"`
	Type  string `json:"tipo,omitempty"`
}

type Detail struct {
	ID        int64             `json:"idDetalle"`
	Equipment *EquipmentSummary `json:"equipo,omitempty"`
	UnitPrice float64           `json:"precioUnitario"`
}

// Reservation is a booking as returned by the backend. Amounts are computed server side.
type Reservation struct {
	ID          int64               `json:"idReserva"`
	CreatedAt   gModel.DateTime     `json:"fechaCreacion"`
	StartDate   gModel.Date         `json:"fechaInicio"`
	EndDate     gModel.Date         `json:"fechaFin"`
	Status      Status              `json:"estado"`
	Customer    *CustomerSummary    `json:"cliente,omitempty"`
	Destination *DestinationSummary `json:"destino,omitempty"`
	Details     []Detail            `json:"detalles,omitempty"`
	Subtotal    float64             `json:"subtotal"`
	Discounts   float64             `json:"descuentos"`
	Surcharges  float64             `json:"recargos"`
	Taxes       float64             `json:"impuestos"`
	Total       float64             `json:"total"`
}

func (r Reservation) CustomerID() int64 {
	if r.Customer == nil {
		return 0
	}

	return r.Customer.ID
}

func (r Reservation) CustomerName() string {
	if r.Customer == nil {
		return ""
	}

	return r.Customer.FullName()
}

func (r Reservation) DestinationID() int64 {
	if r.Destination == nil {
		return 0
	}

	return r.Destination.ID
}

func (r Reservation) DestinationName() string {
	if r.Destination == nil {
		return ""
	}

	return r.Destination.Name
}

// Summary identifies the reservation in activity entries.
func (r Reservation) Summary() string {
	summary := "#" + strconv.FormatInt(r.ID, 10)

	if name := r.CustomerName(); name != "" {
		summary += " " + name
	}

	return summary
}

// Input is the create and update body of /reservas. Equipment ids are unique.
type Input struct {
	CustomerID    int64       `json:"idCliente"`
	StartDate     gModel.Date `json:"fechaInicio"`
	EndDate       gModel.Date `json:"fechaFin"`
	DestinationID int64       `json:"idDestino"`
	EquipmentIDs  []int64     `json:"idsEquipos"`
}

func Schema() listing.Schema[Reservation] {
	return listing.Schema[Reservation]{
		Name:   ScreenName,
		Entity: EntityName,
		Key:    func(item Reservation) int64 { return item.ID },
		Label:  func(item Reservation) string { return item.Summary() },
		Search: []func(Reservation) string{
			func(item Reservation) string { return item.CustomerName() },
			func(item Reservation) string { return item.DestinationName() },
		},
		Filters: []listing.Filter[Reservation]{
			{Name: FilterStatus, Value: func(item Reservation) string { return string(item.Status) }},
			{Name: FilterCustomer, Value: func(item Reservation) string { return strconv.FormatInt(item.CustomerID(), 10) }},
			{Name: FilterDestination, Value: func(item Reservation) string { return strconv.FormatInt(item.DestinationID(), 10) }},
		},
		Columns: []export.Column[Reservation]{
			{Header: "ID", Value: func(item Reservation) any { return item.ID }},
			{Header: "Cliente", Value: func(item Reservation) any { return item.CustomerName() }},
			{Header: "Destino", Value: func(item Reservation) any { return item.DestinationName() }},
			{Header: "Fecha inicio", Value: func(item Reservation) any { return item.StartDate.String() }},
			{Header: "Fecha fin", Value: func(item Reservation) any { return item.EndDate.String() }},
			{Header: "Estado", Value: func(item Reservation) any { return item.Status.Label() }},
			{Header: "Equipos", Value: func(item Reservation) any { return len(item.Details) }},
			{Header: "Subtotal", Value: func(item Reservation) any { return item.Subtotal }},
			{Header: "Descuentos", Value: func(item Reservation) any { return item.Discounts }},
			{Header: "Recargos", Value: func(item Reservation) any { return item.Surcharges }},
			{Header: "Impuestos", Value: func(item Reservation) any { return item.Taxes }},
			{Header: "Total", Value: func(item Reservation) any { return item.Total }},
		},
		// Deleting a reservation cancels it, the row stays with a new status.
		KeepOnDelete: true,
	}
}
