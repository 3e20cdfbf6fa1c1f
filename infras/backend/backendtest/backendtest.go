// Package backendtest holds helpers for tests that mock the backend client.
package backendtest

import (
	"context"
	"encoding/json"
	"net/url"
)

type DoFunc func(ctx context.Context, method, path string, query url.Values, body, dest any) error

// Respond fills dest with the JSON form of value, like a backend answering with it.
func Respond(value any) DoFunc {
	return func(_ context.Context, _, _ string, _ url.Values, _, dest any) error {
		if dest == nil {
			return nil
		}

		payload, err := json.Marshal(value)
		if err != nil {
			return err
		}

		return json.Unmarshal(payload, dest)
	}
}

// Capture stores the request body in target and then answers with value.
func Capture(target *any, value any) DoFunc {
	respond := Respond(value)

	return func(ctx context.Context, method, path string, query url.Values, body, dest any) error {
		*target = body

		return respond(ctx, method, path, query, body, dest)
	}
}
