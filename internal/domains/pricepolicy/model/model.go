package model

import (
	customer "deportur/internal/domains/customer/model"
	"deportur/shared/export"
	"deportur/shared/listing"
	gModel "deportur/shared/model"
	"fmt"
	"strconv"
)

const (
	EntityName   = "price policy"
	ScreenName   = "price-policies"
	ResourcePath = "/politicas-precio"

	FilterType   = "type"
	FilterActive = "active"
)

type Type string

const (
	TypeSeasonDiscount   Type = "DESCUENTO_TEMPORADA"
	TypeDurationDiscount Type = "DESCUENTO_DURACION"
	TypeCustomerDiscount Type = "DESCUENTO_CLIENTE"
	TypePeakSurcharge    Type = "RECARGO_FECHA_PICO"
	TypeTax              Type = "IMPUESTO"
)

var Types = []Type{TypeSeasonDiscount, TypeDurationDiscount, TypeCustomerDiscount, TypePeakSurcharge, TypeTax}

func (t Type) Valid() bool {
	switch t {
	case TypeSeasonDiscount, TypeDurationDiscount, TypeCustomerDiscount, TypePeakSurcharge, TypeTax:
		return true
	default:
		return false
	}
}

func (t Type) Label() string {
	switch t {
	case TypeSeasonDiscount:
		return "Descuento por Temporada"
	case TypeDurationDiscount:
		return "Descuento por Duración"
	case TypeCustomerDiscount:
		return "Descuento por Cliente"
	case TypePeakSurcharge:
		return "Recargo Fecha Pico"
	case TypeTax:
		return "Impuesto"
	default:
		return string(t)
	}
}

// UsesDateWindow reports whether the policy applies within a date window.
func (t Type) UsesDateWindow() bool {
	return t == TypeSeasonDiscount || t == TypePeakSurcharge
}

// UsesDayRange reports whether the policy applies by rental length.
func (t Type) UsesDayRange() bool {
	return t == TypeDurationDiscount
}

// UsesLoyaltyTier reports whether the policy applies to a customer tier.
func (t Type) UsesLoyaltyTier() bool {
	return t == TypeCustomerDiscount
}

type DestinationRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Location string `json:"ubicacion,omitempty"`
}

type EquipmentTypeRef struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

type EquipmentRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Brand string `json:"marca,omitempty"`
}

type PricePolicy struct {
	ID            int64                 `json:"idPolitica"`
	Name          string                `json:"nombre"`
	Description   string                `json:"descripcion,omitempty"`
	Type          Type                  `json:"tipoPolitica"`
	Percentage    float64               `json:"porcentaje"`
	StartDate     gModel.Date           `json:"fechaInicio"`
	EndDate       gModel.Date           `json:"fechaFin"`
	MinDays       *int                  `json:"minDias,omitempty"`
	MaxDays       *int                  `json:"maxDias,omitempty"`
	LoyaltyTier   *customer.LoyaltyTier `json:"nivelFidelizacion,omitempty"`
	Active        bool                  `json:"activo"`
	CreatedAt     gModel.DateTime       `json:"fechaCreacion"`
	UpdatedAt     gModel.DateTime       `json:"fechaActualizacion"`
	Destination   *DestinationRef       `json:"destino,omitempty"`
	EquipmentType *EquipmentTypeRef     `json:"tipoEquipo,omitempty"`
	Equipment     *EquipmentRef         `json:"equipo,omitempty"`
}

// DateWindow renders the dates the policy applies in.
func (p PricePolicy) DateWindow() string {
	if p.StartDate.IsZero() && p.EndDate.IsZero() {
		return "Sin restricción de fechas"
	}

	start, end := "Inicio", "Permanente"

	if !p.StartDate.IsZero() {
		start = p.StartDate.String()
	}

	if !p.EndDate.IsZero() {
		end = p.EndDate.String()
	}

	return start + " → " + end
}

// DayRange renders the rental lengths the policy applies to.
func (p PricePolicy) DayRange() string {
	minDays, maxDays := positive(p.MinDays), positive(p.MaxDays)

	switch {
	case minDays == 0 && maxDays == 0:
		return "Cualquier duración"
	case maxDays == 0:
		return fmt.Sprintf("Desde %d días", minDays)
	case minDays == 0:
		return fmt.Sprintf("Hasta %d días", maxDays)
	default:
		return fmt.Sprintf("%d - %d días", minDays, maxDays)
	}
}

// Scope renders the narrowest entity the policy is limited to.
func (p PricePolicy) Scope() string {
	switch {
	case p.Equipment != nil:
		return "Equipo: " + p.Equipment.Name
	case p.EquipmentType != nil:
		return "Tipo: " + p.EquipmentType.Name
	case p.Destination != nil:
		return "Destino: " + p.Destination.Name
	default:
		return "General"
	}
}

func positive(value *int) int {
	if value == nil || *value < 0 {
		return 0
	}

	return *value
}

// Input is the create and update body of /politicas-precio. Absent conditions are sent as
// null so an edit can clear them.
type Input struct {
	Name            string                `json:"nombre"`
	Description     *string               `json:"descripcion"`
	Type            Type                  `json:"tipoPolitica"`
	Percentage      float64               `json:"porcentaje"`
	StartDate       gModel.Date           `json:"fechaInicio"`
	EndDate         gModel.Date           `json:"fechaFin"`
	Active          bool                  `json:"activo"`
	MinDays         *int                  `json:"minDias"`
	MaxDays         *int                  `json:"maxDias"`
	LoyaltyTier     *customer.LoyaltyTier `json:"nivelFidelizacion"`
	DestinationID   *int64                `json:"destinoId"`
	EquipmentTypeID *int64                `json:"tipoEquipoId"`
	EquipmentID     *int64                `json:"equipoId"`
}

func Schema() listing.Schema[PricePolicy] {
	return listing.Schema[PricePolicy]{
		Name:   ScreenName,
		Entity: EntityName,
		Key:    func(item PricePolicy) int64 { return item.ID },
		Label:  func(item PricePolicy) string { return item.Name },
		Search: []func(PricePolicy) string{
			func(item PricePolicy) string { return item.Name },
		},
		Filters: []listing.Filter[PricePolicy]{
			{Name: FilterType, Value: func(item PricePolicy) string { return string(item.Type) }},
			{Name: FilterActive, Value: func(item PricePolicy) string { return strconv.FormatBool(item.Active) }},
		},
		Columns: []export.Column[PricePolicy]{
			{Header: "ID", Value: func(item PricePolicy) any { return item.ID }},
			{Header: "Nombre", Value: func(item PricePolicy) any { return item.Name }},
			{Header: "Tipo", Value: func(item PricePolicy) any { return item.Type.Label() }},
			{Header: "Porcentaje", Value: func(item PricePolicy) any { return item.Percentage }},
			{Header: "Fechas", Value: func(item PricePolicy) any { return item.DateWindow() }},
			{Header: "Duración", Value: func(item PricePolicy) any { return item.DayRange() }},
			{Header: "Nivel", Value: func(item PricePolicy) any {
				if item.LoyaltyTier == nil {
					return ""
				}

				return item.LoyaltyTier.Label()
			}},
			{Header: "Alcance", Value: func(item PricePolicy) any { return item.Scope() }},
			{Header: "Activa", Value: func(item PricePolicy) any { return item.Active }},
		},
	}
}
