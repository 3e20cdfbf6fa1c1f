package dto

import (
	"deportur/internal/domains/destination/model"
	"deportur/shared"
	"strconv"
	"strings"
)

type DestinationRequest struct {
	Name        string   `json:"nombre"          validate:"required,max=100"`
	Description string   `json:"descripcion"     validate:"max=500"`
	Department  string   `json:"departamento"    validate:"required,max=50"`
	City        string   `json:"ciudad"          validate:"required,max=50"`
	Address     string   `json:"direccion"       validate:"max=200"`
	Latitude    *float64 `json:"latitud"         validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitud"        validate:"omitempty,longitude"`
	Coordinates string   `json:"coordenadas"     validate:"omitempty,coordinates"`
	MaxCapacity *int     `json:"capacidadMaxima" validate:"omitempty,min=1"`
	Type        string   `json:"tipoDestino"     validate:"omitempty,oneof=PLAYA MONTAÑA CIUDAD RURAL AVENTURA CULTURAL ECOLOGICO"`
	Active      *bool    `json:"activo"`
}

// Normalize trims the text fields and splits a "lat,long" pair into the two coordinates.
func (r *DestinationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Department = strings.TrimSpace(r.Department)
	r.City = strings.TrimSpace(r.City)
	r.Address = strings.TrimSpace(r.Address)
	r.Coordinates = strings.ReplaceAll(r.Coordinates, " ", "")
	r.Type = strings.ToUpper(strings.TrimSpace(r.Type))

	latitude, longitude, ok := strings.Cut(r.Coordinates, ",")
	if !ok {
		return
	}

	lat, latErr := strconv.ParseFloat(latitude, 64)
	long, longErr := strconv.ParseFloat(longitude, 64)

	if latErr == nil && longErr == nil {
		r.Latitude = &lat
		r.Longitude = &long
	}
}

func (r *DestinationRequest) ToInput() model.Input {
	input := model.Input{
		Name:        r.Name,
		Description: shared.TrimPtr(r.Description),
		Department:  r.Department,
		City:        r.City,
		Address:     shared.TrimPtr(r.Address),
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		MaxCapacity: r.MaxCapacity,
		Active:      true,
	}

	if r.Type != "" {
		destinationType := model.Type(r.Type)
		input.Type = &destinationType
	}

	if r.Active != nil {
		input.Active = *r.Active
	}

	return input
}
