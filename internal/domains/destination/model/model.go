package model

import (
	"deportur/shared/export"
	"deportur/shared/listing"
	"fmt"
	"strconv"
	"strings"
)

const (
	EntityName   = "destination"
	ScreenName   = "destinations"
	ResourcePath = "/destinos"

	FilterActive = "active"
	FilterType   = "type"
)

// Type is the kind of place a destination is.
type Type string

const (
	TypeBeach     Type = "PLAYA"
	TypeMountain  Type = "MONTAÑA"
	TypeCity      Type = "CIUDAD"
	TypeRural     Type = "RURAL"
	TypeAdventure Type = "AVENTURA"
	TypeCultural  Type = "CULTURAL"
	TypeEcologic  Type = "ECOLOGICO"
)

var Types = []Type{TypeBeach, TypeMountain, TypeCity, TypeRural, TypeAdventure, TypeCultural, TypeEcologic}

func (t Type) Valid() bool {
	switch t {
	case TypeBeach, TypeMountain, TypeCity, TypeRural, TypeAdventure, TypeCultural, TypeEcologic:
		return true
	default:
		return false
	}
}

func (t Type) Label() string {
	switch t {
	case TypeBeach:
		return "Playa"
	case TypeMountain:
		return "Montaña"
	case TypeCity:
		return "Ciudad"
	case TypeRural:
		return "Rural"
	case TypeAdventure:
		return "Aventura"
	case TypeCultural:
		return "Cultural"
	case TypeEcologic:
		return "Ecológico"
	default:
		return string(t)
	}
}

type Destination struct {
	ID          int64    `json:"idDestino"`
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion,omitempty"`
	Department  string   `json:"departamento"`
	City        string   `json:"ciudad"`
	Address     string   `json:"direccion,omitempty"`
	Latitude    *float64 `json:"latitud,omitempty"`
	Longitude   *float64 `json:"longitud,omitempty"`
	MaxCapacity *int     `json:"capacidadMaxima,omitempty"`
	Type        Type     `json:"tipoDestino,omitempty"`
	Active      bool     `json:"activo"`
	Location    string   `json:"ubicacion,omitempty"`
}

// DisplayLocation is "city, department" unless the backend already sent a location.
func (d Destination) DisplayLocation() string {
	if d.Location != "" {
		return d.Location
	}

	parts := make([]string, 0, 2)

	for _, part := range []string{d.City, d.Department} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

// Coordinates renders the position as "lat,long", empty when unknown.
func (d Destination) Coordinates() string {
	if d.Latitude == nil || d.Longitude == nil {
		return ""
	}

	return fmt.Sprintf("%s,%s", strconv.FormatFloat(*d.Latitude, 'f', -1, 64), strconv.FormatFloat(*d.Longitude, 'f', -1, 64))
}

// Input is the create and update body of /destinos.
type Input struct {
	Name        string   `json:"nombre"`
	Description *string  `json:"descripcion,omitempty"`
	Department  string   `json:"departamento"`
	City        string   `json:"ciudad"`
	Address     *string  `json:"direccion,omitempty"`
	Latitude    *float64 `json:"latitud,omitempty"`
	Longitude   *float64 `json:"longitud,omitempty"`
	MaxCapacity *int     `json:"capacidadMaxima,omitempty"`
	Type        *Type    `json:"tipoDestino,omitempty"`
	Active      bool     `json:"activo"`
}

func Schema() listing.Schema[Destination] {
	return listing.Schema[Destination]{
		Name:   ScreenName,
		Entity: EntityName,
		Key:    func(item Destination) int64 { return item.ID },
		Label:  func(item Destination) string { return item.Name },
		Search: []func(Destination) string{
			func(item Destination) string { return item.Name },
			func(item Destination) string { return item.Department },
			func(item Destination) string { return item.City },
		},
		Filters: []listing.Filter[Destination]{
			{Name: FilterActive, Value: func(item Destination) string { return strconv.FormatBool(item.Active) }},
			{Name: FilterType, Value: func(item Destination) string { return string(item.Type) }},
		},
		Columns: []export.Column[Destination]{
			{Header: "ID", Value: func(item Destination) any { return item.ID }},
			{Header: "Nombre", Value: func(item Destination) any { return item.Name }},
			{Header: "Departamento", Value: func(item Destination) any { return item.Department }},
			{Header: "Ciudad", Value: func(item Destination) any { return item.City }},
			{Header: "Tipo", Value: func(item Destination) any { return item.Type.Label() }},
			{Header: "Capacidad", Value: func(item Destination) any {
				if item.MaxCapacity == nil {
					return ""
				}

				return *item.MaxCapacity
			}},
			{Header: "Coordenadas", Value: func(item Destination) any { return item.Coordinates() }},
			{Header: "Activo", Value: func(item Destination) any { return item.Active }},
		},
	}
}
