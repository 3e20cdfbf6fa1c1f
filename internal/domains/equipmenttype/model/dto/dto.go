package dto

import (
	"deportur/internal/domains/equipmenttype/model"
	"deportur/shared"
	"strings"
)

type EquipmentTypeRequest struct {
	Name        string `json:"nombre"      validate:"required,max=50"`
	Description string `json:"descripcion" validate:"max=200"`
}

func (r *EquipmentTypeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *EquipmentTypeRequest) ToInput() model.Input {
	return model.Input{
		Name:        r.Name,
		Description: shared.TrimPtr(r.Description),
	}
}
