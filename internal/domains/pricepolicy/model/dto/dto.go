package dto

import (
	customer "deportur/internal/domains/customer/model"
	"deportur/internal/domains/pricepolicy/model"
	"deportur/shared"
	gModel "deportur/shared/model"
	"errors"
	"strings"
)

// BasicRequest is the name, type and percentage of a policy.
type BasicRequest struct {
	Name        string   `json:"nombre"       validate:"required,max=100"`
	Description string   `json:"descripcion"  validate:"max=500"`
	Type        string   `json:"tipoPolitica" validate:"required,oneof=DESCUENTO_TEMPORADA DESCUENTO_DURACION DESCUENTO_CLIENTE RECARGO_FECHA_PICO IMPUESTO"`
	Percentage  *float64 `json:"porcentaje"   validate:"required,gte=0,lte=100"`
	Active      *bool    `json:"activo"`
}

func (r *BasicRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Type = strings.ToUpper(strings.TrimSpace(r.Type))
}

// ConditionsRequest holds the conditions of every policy type. Only the ones of the chosen
// type are kept.
type ConditionsRequest struct {
	StartDate   string `json:"fechaInicio"`
	EndDate     string `json:"fechaFin"`
	MinDays     *int   `json:"minDias"           validate:"omitempty,min=1"`
	MaxDays     *int   `json:"maxDias"           validate:"omitempty,min=1"`
	LoyaltyTier string `json:"nivelFidelizacion" validate:"omitempty,oneof=BRONCE PLATA ORO"`
}

func (r *ConditionsRequest) Normalize() {
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.LoyaltyTier = strings.ToUpper(strings.TrimSpace(r.LoyaltyTier))
}

// Clear drops the conditions that do not belong to policyType.
func (r *ConditionsRequest) Clear(policyType model.Type) {
	if !policyType.UsesDateWindow() {
		r.StartDate, r.EndDate = "", ""
	}

	if !policyType.UsesDayRange() {
		r.MinDays, r.MaxDays = nil, nil
	}

	if !policyType.UsesLoyaltyTier() {
		r.LoyaltyTier = ""
	}
}

// Dates parses the optional date window.
func (r *ConditionsRequest) Dates() (start, end gModel.Date, err error) {
	if r.StartDate != "" {
		if start, err = gModel.ParseDate(r.StartDate); err != nil {
			return start, end, errors.New("fechaInicio must be a valid date")
		}
	}

	if r.EndDate != "" {
		if end, err = gModel.ParseDate(r.EndDate); err != nil {
			return start, end, errors.New("fechaFin must be a valid date")
		}
	}

	return start, end, nil
}

// Check applies the rules of policyType.
func (r *ConditionsRequest) Check(policyType model.Type) error {
	switch {
	case policyType.UsesDateWindow():
		start, end, err := r.Dates()
		if err != nil {
			return err
		}

		if !start.IsZero() && !end.IsZero() && start.After(end) {
			return errors.New("fechaFin must be on or after fechaInicio")
		}
	case policyType.UsesDayRange():
		if r.MinDays != nil && r.MaxDays != nil && *r.MaxDays < *r.MinDays {
			return errors.New("maxDias must be greater than or equal to minDias")
		}
	case policyType.UsesLoyaltyTier():
		if r.LoyaltyTier == "" {
			return errors.New("nivelFidelizacion is required")
		}
	}

	return nil
}

// ScopeRequest optionally limits a policy to a destination, an equipment type or an item.
type ScopeRequest struct {
	DestinationID   *int64 `json:"destinoId"    validate:"omitempty,gt=0"`
	EquipmentTypeID *int64 `json:"tipoEquipoId" validate:"omitempty,gt=0"`
	EquipmentID     *int64 `json:"equipoId"     validate:"omitempty,gt=0"`
}

type PricePolicyRequest struct {
	BasicRequest
	ConditionsRequest
	ScopeRequest
}

func (r *PricePolicyRequest) Normalize() {
	r.BasicRequest.Normalize()
	r.ConditionsRequest.Normalize()
	r.ConditionsRequest.Clear(model.Type(r.Type))
}

func (r *PricePolicyRequest) Validate() error {
	return r.Check(model.Type(r.Type))
}

func (r *PricePolicyRequest) ToInput() model.Input {
	start, end, _ := r.Dates()

	input := model.Input{
		Name:            r.Name,
		Description:     shared.TrimPtr(r.Description),
		Type:            model.Type(r.Type),
		StartDate:       start,
		EndDate:         end,
		Active:          true,
		MinDays:         r.MinDays,
		MaxDays:         r.MaxDays,
		DestinationID:   r.DestinationID,
		EquipmentTypeID: r.EquipmentTypeID,
		EquipmentID:     r.EquipmentID,
	}

	if r.Percentage != nil {
		input.Percentage = *r.Percentage
	}

	if r.Active != nil {
		input.Active = *r.Active
	}

	if r.LoyaltyTier != "" {
		tier := customer.LoyaltyTier(r.LoyaltyTier)
		input.LoyaltyTier = &tier
	}

	return input
}

// FromModel rebuilds the request of an existing policy, for editing.
func FromModel(policy model.PricePolicy) PricePolicyRequest {
	percentage := policy.Percentage
	active := policy.Active

	req := PricePolicyRequest{
		BasicRequest: BasicRequest{
			Name:        policy.Name,
			Description: policy.Description,
			Type:        string(policy.Type),
			Percentage:  &percentage,
			Active:      &active,
		},
		ConditionsRequest: ConditionsRequest{
			StartDate: policy.StartDate.String(),
			EndDate:   policy.EndDate.String(),
			MinDays:   policy.MinDays,
			MaxDays:   policy.MaxDays,
		},
	}

	if policy.LoyaltyTier != nil {
		req.LoyaltyTier = string(*policy.LoyaltyTier)
	}

	if policy.Destination != nil {
		id := policy.Destination.ID
		req.DestinationID = &id
	}

	if policy.EquipmentType != nil {
		id := policy.EquipmentType.ID
		req.EquipmentTypeID = &id
	}

	if policy.Equipment != nil {
		id := policy.Equipment.ID
		req.EquipmentID = &id
	}

	return req
}

// StatusRequest toggles a policy.
type StatusRequest struct {
	Active *bool `json:"activo" validate:"required"`
}
