package backend

import (
	"bytes"
	"deportur/shared/failure"
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"
)

const (
	MessageNotFound = "The requested resource was not found."
	MessageConflict = "The resource conflicts with an existing record."
	MessageInvalid  = "The request is invalid."

	maxMessageLength = 500
)

// FailureFromResponse maps a non-2xx backend answer to a Failure. A message sent by the
// backend replaces the default text.
func FailureFromResponse(status int, body []byte) error {
	message := serverMessage(body)

	pick := func(fallback string) string {
		if message != "" {
			return message
		}

		return fallback
	}

	switch {
	case status == http.StatusUnauthorized:
		return failure.New(http.StatusUnauthorized, pick(failure.SessionExpiredError.Message)) // nolint:wrapcheck
	case status == http.StatusForbidden:
		return failure.New(http.StatusForbidden, pick(failure.NoPermissionError.Message)) // nolint:wrapcheck
	case status == http.StatusNotFound:
		return failure.NotFound(pick(MessageNotFound)) // nolint:wrapcheck
	case status == http.StatusConflict:
		return failure.Conflict(pick(MessageConflict)) // nolint:wrapcheck
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return failure.BadRequestFromString(pick(MessageInvalid)) // nolint:wrapcheck
	default:
		return failure.New(http.StatusInternalServerError, pick(failure.GenericError.Message)) // nolint:wrapcheck
	}
}

// serverMessage extracts a message from a plain-text body, a JSON string or a JSON object
// carrying "message" or "error". The "error" of a framework error envelope is the reason
// phrase and is skipped.
func serverMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	switch trimmed[0] {
	case '{':
		var payload map[string]any
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return ""
		}

		if message, ok := payload["message"].(string); ok && strings.TrimSpace(message) != "" {
			return clip(message)
		}

		if _, envelope := payload["status"]; envelope {
			return ""
		}

		if message, ok := payload["error"].(string); ok {
			return clip(message)
		}

		return ""
	case '"':
		var message string
		if err := json.Unmarshal(trimmed, &message); err != nil {
			return ""
		}

		return clip(message)
	case '<', '[':
		return ""
	default:
		return clip(string(trimmed))
	}
}

// clip keeps at most maxMessageLength bytes without splitting a character.
func clip(message string) string {
	message = strings.TrimSpace(message)
	if len(message) <= maxMessageLength {
		return message
	}

	cut := maxMessageLength
	for cut > 0 && !utf8.RuneStart(message[cut]) {
		cut--
	}

	return message[:cut]
}
