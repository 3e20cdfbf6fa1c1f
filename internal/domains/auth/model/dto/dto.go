package dto

import (
	"slices"
)

// Operator is the signed in user as seen by the console.
type Operator struct {
	ID      string   `json:"id"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Roles   []string `json:"roles"`
	IsAdmin bool     `json:"is_admin"`
}

func (o *Operator) HasRole(role string) bool {
	return slices.Contains(o.Roles, role)
}

// LoginRequest carries the page to return to after the provider redirects back.
type LoginRequest struct {
	ReturnTo string `json:"return_to" validate:"omitempty,max=500"`
}

type RedirectResponse struct {
	URL string `json:"url"`
}
