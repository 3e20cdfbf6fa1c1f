package dto

import (
	"deportur/internal/domains/activity/model"
	"deportur/shared"
	"time"
)

// Entry is what a service reports after a successful change.
type Entry struct {
	Action   model.Action
	Entity   string
	EntityID int64
	Summary  string
}

func (e Entry) ToModel(actor string, at time.Time) model.Activity {
	return model.Activity{
		Actor:     actor,
		Action:    e.Action,
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		Summary:   e.Summary,
		CreatedAt: at,
	}
}

// Event is the payload published for every recorded activity.
type Event struct {
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   int64     `json:"entity_id"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *Event) FromModel(activity model.Activity) {
	e.Actor = activity.Actor
	e.Action = string(activity.Action)
	e.Entity = activity.Entity
	e.EntityID = activity.EntityID
	e.Summary = activity.Summary
	e.OccurredAt = activity.CreatedAt
}

type ActivityResponse struct {
	ID        int64     `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  int64     `json:"entity_id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *ActivityResponse) FromModel(activity model.Activity) {
	r.ID = activity.ID
	r.Actor = activity.Actor
	r.Action = string(activity.Action)
	r.Entity = activity.Entity
	r.EntityID = activity.EntityID
	r.Summary = activity.Summary
	r.CreatedAt = activity.CreatedAt
}

type GetActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetActivitiesResponse) FromModels(models []model.Activity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Activities = make([]ActivityResponse, len(models))
	for i, mod := range models {
		r.Activities[i].FromModel(mod)
	}
}
