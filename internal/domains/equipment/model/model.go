package model

import (
	destination "deportur/internal/domains/destination/model"
	equipmentType "deportur/internal/domains/equipmenttype/model"
	"deportur/shared/export"
	"deportur/shared/listing"
	gModel "deportur/shared/model"
	"strconv"
)

const (
	EntityName   = "equipment"
	ScreenName   = "equipment"
	ResourcePath = "/equipos"
	ImageDir     = "equipment"

	FilterType        = "type"
	FilterDestination = "destination"
	FilterCondition   = "condition"
	FilterAvailable   = "available"
)

// Condition is the physical or operational state of an item.
type Condition string

const (
	ConditionNew           Condition = "NUEVO"
	ConditionGood          Condition = "BUENO"
	ConditionFair          Condition = "REGULAR"
	ConditionAvailable     Condition = "DISPONIBLE"
	ConditionReserved      Condition = "RESERVADO"
	ConditionInMaintenance Condition = "EN_MANTENIMIENTO"
	ConditionMaintenance   Condition = "MANTENIMIENTO"
	ConditionOutOfService  Condition = "FUERA_DE_SERVICIO"
)

// Badge is the display variant of a condition.
type Badge string

const (
	BadgeSuccess Badge = "success"
	BadgeInfo    Badge = "info"
	BadgeWarning Badge = "warning"
	BadgeDanger  Badge = "danger"
	BadgeNeutral Badge = "neutral"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionAvailable, ConditionReserved,
		ConditionInMaintenance, ConditionMaintenance, ConditionOutOfService:
		return true
	default:
		return false
	}
}

func (c Condition) Label() string {
	switch c {
	case ConditionNew:
		return "Nuevo"
	case ConditionGood:
		return "Bueno"
	case ConditionFair:
		return "Regular"
	case ConditionAvailable:
		return "Disponible"
	case ConditionReserved:
		return "Reservado"
	case ConditionInMaintenance, ConditionMaintenance:
		return "En mantenimiento"
	case ConditionOutOfService:
		return "Fuera de servicio"
	default:
		return string(c)
	}
}

func (c Condition) Badge() Badge {
	switch c {
	case ConditionNew, ConditionGood, ConditionAvailable:
		return BadgeSuccess
	case ConditionReserved, ConditionInMaintenance, ConditionMaintenance:
		return BadgeInfo
	case ConditionFair:
		return BadgeWarning
	case ConditionOutOfService:
		return BadgeDanger
	default:
		return BadgeNeutral
	}
}

type Equipment struct {
	ID          int64                        `json:"idEquipo"`
	Name        string                       `json:"nombre"`
	Type        *equipmentType.EquipmentType `json:"tipo,omitempty"`
	Brand       string                       `json:"marca"`
	Condition   Condition                    `json:"estado"`
	RentalPrice float64                      `json:"precioAlquiler"`
	AcquiredOn  gModel.Date                  `json:"fechaAdquisicion"`
	Destination *destination.Destination     `json:"destino,omitempty"`
	Available   bool                         `json:"disponible"`
	ImageURL    string                       `json:"imagenUrl,omitempty"`
	UsageCount  int                          `json:"contadorUso"`
}

func (e Equipment) TypeID() int64 {
	if e.Type == nil {
		return 0
	}

	return e.Type.ID
}

func (e Equipment) TypeName() string {
	if e.Type == nil {
		return ""
	}

	return e.Type.Name
}

func (e Equipment) DestinationID() int64 {
	if e.Destination == nil {
		return 0
	}

	return e.Destination.ID
}

func (e Equipment) DestinationName() string {
	if e.Destination == nil {
		return ""
	}

	return e.Destination.Name
}

// Input is the create and update body of /equipos.
type Input struct {
	Name          string      `json:"nombre"`
	TypeID        int64       `json:"idTipo"`
	Brand         string      `json:"marca"`
	Condition     Condition   `json:"estado"`
	RentalPrice   float64     `json:"precioAlquiler"`
	AcquiredOn    gModel.Date `json:"fechaAdquisicion"`
	DestinationID int64       `json:"idDestino"`
	Available     bool        `json:"disponible"`
	ImageURL      *string     `json:"imagenUrl,omitempty"`
}

// InputFromModel rebuilds the update body of an existing item.
func InputFromModel(e Equipment) Input {
	input := Input{
		Name:          e.Name,
		TypeID:        e.TypeID(),
		Brand:         e.Brand,
		Condition:     e.Condition,
		RentalPrice:   e.RentalPrice,
		AcquiredOn:    e.AcquiredOn,
		DestinationID: e.DestinationID(),
		Available:     e.Available,
	}

	if e.ImageURL != "" {
		imageURL := e.ImageURL
		input.ImageURL = &imageURL
	}

	return input
}

// Availability is the answer of the backend availability check for a destination and
// date range.
type Availability struct {
	DestinationID   int64   `json:"idDestino"`
	DestinationName string  `json:"nombreDestino"`
	Available       bool    `json:"disponible"`
	Count           int     `json:"equiposDisponibles"`
	EquipmentIDs    []int64 `json:"idsEquiposDisponibles"`
	Message         string  `json:"mensaje"`
}

func Schema() listing.Schema[Equipment] {
	return listing.Schema[Equipment]{
		Name:   ScreenName,
		Entity: EntityName,
		Key:    func(item Equipment) int64 { return item.ID },
		Label:  func(item Equipment) string { return item.Name },
		Search: []func(Equipment) string{
			func(item Equipment) string { return item.Name },
			func(item Equipment) string { return item.Brand },
		},
		Filters: []listing.Filter[Equipment]{
			{Name: FilterType, Value: func(item Equipment) string { return strconv.FormatInt(item.TypeID(), 10) }},
			{Name: FilterDestination, Value: func(item Equipment) string { return strconv.FormatInt(item.DestinationID(), 10) }},
			{Name: FilterCondition, Value: func(item Equipment) string { return string(item.Condition) }},
			{Name: FilterAvailable, Value: func(item Equipment) string { return strconv.FormatBool(item.Available) }},
		},
		Columns: []export.Column[Equipment]{
			{Header: "ID", Value: func(item Equipment) any { return item.ID }},
			{Header: "Nombre", Value: func(item Equipment) any { return item.Name }},
			{Header: "Tipo", Value: func(item Equipment) any { return item.TypeName() }},
			{Header: "Marca", Value: func(item Equipment) any { return item.Brand }},
			{Header: "Estado", Value: func(item Equipment) any { return item.Condition.Label() }},
			{Header: "Precio por día", Value: func(item Equipment) any { return item.RentalPrice }},
			{Header: "Fecha de adquisición", Value: func(item Equipment) any { return item.AcquiredOn.String() }},
			{Header: "Destino", Value: func(item Equipment) any { return item.DestinationName() }},
			{Header: "Disponible", Value: func(item Equipment) any { return item.Available }},
			{Header: "Usos", Value: func(item Equipment) any { return item.UsageCount }},
		},
	}
}
