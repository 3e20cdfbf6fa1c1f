package dto

import (
	"deportur/internal/domains/reservation/model"
	gModel "deportur/shared/model"
	"errors"
	"strings"
)

type ReservationRequest struct {
	CustomerID    int64   `json:"idCliente"   validate:"required,gt=0"`
	StartDate     string  `json:"fechaInicio" validate:"required"`
	EndDate       string  `json:"fechaFin"    validate:"required"`
	DestinationID int64   `json:"idDestino"   validate:"required,gt=0"`
	EquipmentIDs  []int64 `json:"idsEquipos"  validate:"required,min=1,dive,gt=0"`

	start gModel.Date
	end   gModel.Date
}

func (r *ReservationRequest) Normalize() {
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
}

func (r *ReservationRequest) Validate() error {
	start, err := gModel.ParseDate(r.StartDate)
	if err != nil {
		return errors.New("fechaInicio must be a valid date")
	}

	end, err := gModel.ParseDate(r.EndDate)
	if err != nil {
		return errors.New("fechaFin must be a valid date")
	}

	if start.After(end) {
		return errors.New("fechaFin must be on or after fechaInicio")
	}

	r.start, r.end = start, end

	return nil
}

func (r *ReservationRequest) ToInput() model.Input {
	return model.Input{
		CustomerID:    r.CustomerID,
		StartDate:     r.start,
		EndDate:       r.end,
		DestinationID: r.DestinationID,
		EquipmentIDs:  UniqueIDs(r.EquipmentIDs),
	}
}

// UniqueIDs drops repeated ids, keeping the first occurrence order.
func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}

type WizardClientRequest struct {
	CustomerID int64 `json:"idCliente" validate:"required,gt=0"`
}

// WizardScheduleRequest carries the destination and dates step. Dates may be sent one at a
// time while the operator fills the form.
type WizardScheduleRequest struct {
	DestinationID int64  `json:"idDestino"   validate:"required,gt=0"`
	StartDate     string `json:"fechaInicio"`
	EndDate       string `json:"fechaFin"`
}

func (r *WizardScheduleRequest) Normalize() {
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
}

// Dates parses the non-empty dates. A missing date stays zero.
func (r *WizardScheduleRequest) Dates() (start, end gModel.Date, err error) {
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

func (r *WizardScheduleRequest) Validate() error {
	_, _, err := r.Dates()

	return err
}

// WizardLineRequest adds an equipment line, or sets its quantity when cantidad is sent.
type WizardLineRequest struct {
	EquipmentID int64 `json:"idEquipo" validate:"required,gt=0"`
	Quantity    *int  `json:"cantidad"`
}
