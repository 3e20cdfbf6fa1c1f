package model

import (
	destination "deportur/internal/domains/destination/model"
	"deportur/shared/export"
	"deportur/shared/listing"
	"strings"
)

const (
	EntityName   = "customer"
	ScreenName   = "customers"
	ResourcePath = "/clientes"

	FilterDocumentType = "document_type"
	FilterLoyaltyTier  = "loyalty_tier"
)

type DocumentType string

const (
	DocumentCitizenID DocumentType = "CC"
	DocumentForeignID DocumentType = "CE"
	DocumentPassport  DocumentType = "PASAPORTE"
)

func (d DocumentType) Valid() bool {
	switch d {
	case DocumentCitizenID, DocumentForeignID, DocumentPassport:
		return true
	default:
		return false
	}
}

func (d DocumentType) Label() string {
	switch d {
	case DocumentCitizenID:
		return "Cédula de Ciudadanía"
	case DocumentForeignID:
		return "Cédula de Extranjería"
	case DocumentPassport:
		return "Pasaporte"
	default:
		return string(d)
	}
}

// LoyaltyTier grows with the number of reservations a customer made.
type LoyaltyTier string

const (
	TierBronze LoyaltyTier = "BRONCE"
	TierSilver LoyaltyTier = "PLATA"
	TierGold   LoyaltyTier = "ORO"
)

const (
	silverFrom = 5
	goldFrom   = 10
)

// TierFor returns the tier earned with count reservations.
func TierFor(count int) LoyaltyTier {
	switch {
	case count >= goldFrom:
		return TierGold
	case count >= silverFrom:
		return TierSilver
	default:
		return TierBronze
	}
}

func (l LoyaltyTier) Valid() bool {
	switch l {
	case TierBronze, TierSilver, TierGold:
		return true
	default:
		return false
	}
}

func (l LoyaltyTier) Label() string {
	switch l {
	case TierBronze:
		return "Bronce"
	case TierSilver:
		return "Plata"
	case TierGold:
		return "Oro"
	default:
		return string(l)
	}
}

type Customer struct {
	ID                   int64                    `json:"idCliente"`
	FirstName            string                   `json:"nombre"`
	LastName             string                   `json:"apellido"`
	Document             string                   `json:"documento"`
	DocumentType         DocumentType             `json:"tipoDocumento"`
	Phone                string                   `json:"telefono,omitempty"`
	Email                string                   `json:"email,omitempty"`
	Address              string                   `json:"direccion,omitempty"`
	Reservations         int                      `json:"numeroReservas"`
	PreferredDestination *destination.Destination `json:"destinoPreferido,omitempty"`
	LoyaltyTier          LoyaltyTier              `json:"nivelFidelizacion,omitempty"`
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Tier is the tier sent by the backend, or the one earned by the reservation count.
func (c Customer) Tier() LoyaltyTier {
	if c.LoyaltyTier.Valid() {
		return c.LoyaltyTier
	}

	return TierFor(c.Reservations)
}

// Input is the create and update body of /clientes.
type Input struct {
	FirstName    string       `json:"nombre"`
	LastName     string       `json:"apellido"`
	Document     string       `json:"documento"`
	DocumentType DocumentType `json:"tipoDocumento"`
	Phone        *string      `json:"telefono,omitempty"`
	Email        *string      `json:"email,omitempty"`
	Address      *string      `json:"direccion,omitempty"`
}

func Schema() listing.Schema[Customer] {
	return listing.Schema[Customer]{
		Name:   ScreenName,
		Entity: EntityName,
		Key:    func(item Customer) int64 { return item.ID },
		Label:  Customer.FullName,
		Search: []func(Customer) string{
			func(item Customer) string { return item.FirstName },
			func(item Customer) string { return item.LastName },
			func(item Customer) string { return item.Document },
			func(item Customer) string { return item.Email },
		},
		Filters: []listing.Filter[Customer]{
			{Name: FilterDocumentType, Value: func(item Customer) string { return string(item.DocumentType) }},
			{Name: FilterLoyaltyTier, Value: func(item Customer) string { return string(item.Tier()) }},
		},
		Columns: []export.Column[Customer]{
			{Header: "ID", Value: func(item Customer) any { return item.ID }},
			{Header: "Nombre", Value: func(item Customer) any { return item.FirstName }},
			{Header: "Apellido", Value: func(item Customer) any { return item.LastName }},
			{Header: "Tipo documento", Value: func(item Customer) any { return string(item.DocumentType) }},
			{Header: "Documento", Value: func(item Customer) any { return item.Document }},
			{Header: "Email", Value: func(item Customer) any { return item.Email }},
			{Header: "Teléfono", Value: func(item Customer) any { return item.Phone }},
			{Header: "Reservas", Value: func(item Customer) any { return item.Reservations }},
			{Header: "Nivel", Value: func(item Customer) any { return item.Tier().Label() }},
		},
	}
}
