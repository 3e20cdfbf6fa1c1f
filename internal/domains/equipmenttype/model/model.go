package model

import (
	"deportur/shared/export"
	"deportur/shared/listing"
)

const (
	EntityName   = "equipment type"
	ScreenName   = "equipment-types"
	ResourcePath = "/tipos-equipo"
)

type EquipmentType struct {
	ID          int64  `json:"idTipo"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
}

// Input is the create and update body of /tipos-equipo.
type Input struct {
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion,omitempty"`
}

// Schema has no dropdown filters. Equipment types carry no active flag on the backend, so
// there is nothing an "active" filter could match on.
func Schema() listing.Schema[EquipmentType] {
	return listing.Schema[EquipmentType]{
		Name:   ScreenName,
		Entity: EntityName,
		Key:    func(item EquipmentType) int64 { return item.ID },
		Label:  func(item EquipmentType) string { return item.Name },
		Search: []func(EquipmentType) string{
			func(item EquipmentType) string { return item.Name },
			func(item EquipmentType) string { return item.Description },
		},
		Columns: []export.Column[EquipmentType]{
			{Header: "ID", Value: func(item EquipmentType) any { return item.ID }},
			{Header: "Nombre", Value: func(item EquipmentType) any { return item.Name }},
			{Header: "Descripción", Value: func(item EquipmentType) any { return item.Description }},
		},
	}
}
