package listing

import (
	"strconv"
	"strings"
)

// Decision is the operator's answer to a delete confirmation prompt.
type Decision int

const (
	DecisionPending Decision = iota
	DecisionConfirmed
	DecisionDeclined
)

// ParseDecision reads the confirm query value. Anything that is not a boolean leaves the
// decision pending.
func ParseDecision(value string) Decision {
	confirmed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return DecisionPending
	}

	if confirmed {
		return DecisionConfirmed
	}

	return DecisionDeclined
}

// DeleteOutcome reports what happened to a delete request.
type DeleteOutcome struct {
	ID      int64  `json:"id"`
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}
