package dto

// SelectionRequest stages a row of a list screen.
type SelectionRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}
