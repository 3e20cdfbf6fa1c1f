// Package backend is the typed client of the DeporTur REST backend. Every call carries the
// operator's bearer token and maps error statuses to failures.
package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"bytes"
	"context"
	"deportur/config"
	"deportur/infras/metrics"
	"deportur/infras/otel"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	otelGlobal "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const maxBodySize = 10 << 20

// Client performs one JSON request against the backend. dest may be nil.
type Client interface {
	Do(ctx context.Context, method, path string, query url.Values, body, dest any) error
}

type client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	otel       otel.Otel
	metrics    *metrics.Metrics
}

func New(cfg *config.Config, tokens TokenProvider, otel otel.Otel, metrics *metrics.Metrics) Client {
	return NewWithHTTPClient(cfg.Backend.BaseURL, &http.Client{
		Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	}, tokens, otel, metrics)
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client, tokens TokenProvider, otel otel.Otel, metrics *metrics.Metrics) Client {
	return &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		otel:       otel,
		metrics:    metrics,
	}
}

func (c *client) Do(ctx context.Context, method, path string, query url.Values, body, dest any) (err error) {
	resource := resourceName(path)

	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, fmt.Sprintf("%s.backend.%s.%s", constant.OtelExternalScopeName, resource, method))
	defer scope.End()
	defer scope.TraceIfError(err)

	token, err := c.tokens.Token(ctx)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("no token for backend call")

		return failure.SessionExpiredError
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			log.Error().Err(marshalErr).Str("path", path).Msg("failed to encode backend request")

			return fmt.Errorf("failed to encode request body: %w", marshalErr)
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	request.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if body != nil {
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if requestID, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && requestID != "" {
		request.Header.Set(constant.RequestHeaderRequestID, requestID)
	}

	otelGlobal.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(request.Header))

	scope.SetAttributes(map[string]any{
		"http.method": method,
		"http.url":    endpoint,
	})

	started := time.Now()

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.metrics.ObserveBackend(method, resource, 0, time.Since(started))

		if errors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("backend call cancelled: %w", ctx.Err())
		}

		log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend unreachable")

		return failure.BadGateway(failure.GenericError.Message) // nolint:wrapcheck
	}
	defer response.Body.Close()

	c.metrics.ObserveBackend(method, resource, response.StatusCode, time.Since(started))
	scope.SetAttribute("http.status_code", response.StatusCode)

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to read backend response")

		return failure.BadGateway(failure.GenericError.Message) // nolint:wrapcheck
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		err = FailureFromResponse(response.StatusCode, payload)

		log.Warn().
			Int("status", response.StatusCode).
			Str("method", method).
			Str("path", path).
			Str("message", err.Error()).
			Msg("backend rejected request")

		return err
	}

	if dest == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	if err = json.Unmarshal(payload, dest); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to decode backend response")

		return failure.BadGateway(failure.GenericError.Message) // nolint:wrapcheck
	}

	return nil
}

func resourceName(path string) string {
	trimmed := strings.Trim(path, "/")
	if idx := strings.Index(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	if trimmed == "" {
		return "root"
	}

	return trimmed
}

// Get decodes a GET response into T.
func Get[T any](ctx context.Context, c Client, path string, query url.Values) (T, error) {
	var res T

	err := c.Do(ctx, http.MethodGet, path, query, nil, &res)

	return res, err //nolint:wrapcheck
}

// Send issues a request with a JSON body and decodes the response into T.
func Send[T any](ctx context.Context, c Client, method, path string, query url.Values, body any) (T, error) {
	var res T

	err := c.Do(ctx, method, path, query, body, &res)

	return res, err //nolint:wrapcheck
}
