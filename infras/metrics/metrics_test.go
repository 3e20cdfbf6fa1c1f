package metrics_test

import (
	"deportur/config"
	"deportur/infras/metrics"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetrics() *metrics.Metrics {
	cfg := &config.Config{}
	cfg.Metrics.Namespace = "deportur_admin"

	return metrics.New(cfg)
}

func TestObserve(t *testing.T) {
	m := newMetrics()

	m.ObserveHTTP(http.MethodGet, "/v1/customers", http.StatusOK, 10*time.Millisecond)
	m.ObserveBackend(http.MethodGet, "clientes", http.StatusOK, 5*time.Millisecond)
	m.ObserveBackend(http.MethodDelete, "clientes", 0, time.Millisecond)
	m.ObserveActivity("cliente", "create", nil)
	m.ObserveActivity("cliente", "delete", errors.New("db down"))

	expected := `
# HELP deportur_admin_activities_recorded_total Operator activities by entity, action and outcome.
# TYPE deportur_admin_activities_recorded_total counter
deportur_admin_activities_recorded_total{action="create",entity="cliente",result="ok"} 1
deportur_admin_activities_recorded_total{action="delete",entity="cliente",result="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "deportur_admin_activities_recorded_total"))

	count, err := testutil.GatherAndCount(m.Registry(), "deportur_admin_backend_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Second)
		m.ObserveBackend(http.MethodGet, "x", http.StatusOK, time.Second)
		m.ObserveActivity("x", "y", nil)
	})
}

func TestHandler(t *testing.T) {
	m := newMetrics()
	m.ObserveHTTP(http.MethodGet, "/healthz", http.StatusOK, time.Millisecond)

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "deportur_admin_http_requests_total")
}
