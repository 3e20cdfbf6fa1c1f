package model

import "time"

const (
	TableName  = "activities"
	EntityName = "activity"

	FieldID        = "id"
	FieldActor     = "actor"
	FieldAction    = "action"
	FieldEntity    = "entity"
	FieldEntityID  = "entity_id"
	FieldCreatedAt = "created_at"
)

// Action is the kind of change an operator made.
type Action string

const (
	ActionCreate     Action = "create"
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionConfirm    Action = "confirm"
	ActionCancel     Action = "cancel"
	ActionActivate   Action = "activate"
	ActionDeactivate Action = "deactivate"
	ActionUpload     Action = "upload"
)

func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionConfirm, ActionCancel,
		ActionActivate, ActionDeactivate, ActionUpload:
		return true
	default:
		return false
	}
}

type Activity struct {
	ID        int64     `db:"id"         insert:"-"`
	Actor     string    `db:"actor"`
	Action    Action    `db:"action"`
	Entity    string    `db:"entity"`
	EntityID  int64     `db:"entity_id"`
	Summary   string    `db:"summary"`
	CreatedAt time.Time `db:"created_at"`
}
