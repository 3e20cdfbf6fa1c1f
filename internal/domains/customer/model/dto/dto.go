package dto

import (
	"deportur/internal/domains/customer/model"
	"deportur/shared"
	"strings"
)

type CustomerRequest struct {
	FirstName    string `json:"nombre"        validate:"required,max=100"`
	LastName     string `json:"apellido"      validate:"required,max=100"`
	Document     string `json:"documento"     validate:"required,max=20"`
	DocumentType string `json:"tipoDocumento" validate:"required,document_type"`
	Phone        string `json:"telefono"      validate:"max=20"`
	Email        string `json:"email"         validate:"omitempty,loose_email,max=100"`
	Address      string `json:"direccion"     validate:"max=200"`
}

func (r *CustomerRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Document = strings.TrimSpace(r.Document)
	r.DocumentType = strings.ToUpper(strings.TrimSpace(r.DocumentType))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
}

// ToInput builds the backend body. Empty optional fields are left out.
func (r *CustomerRequest) ToInput() model.Input {
	return model.Input{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Document:     r.Document,
		DocumentType: model.DocumentType(r.DocumentType),
		Phone:        shared.TrimPtr(r.Phone),
		Email:        shared.TrimPtr(r.Email),
		Address:      shared.TrimPtr(r.Address),
	}
}
