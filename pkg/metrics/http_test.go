package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPMetricsNilRegisterer(t *testing.T) {
	m := NewHTTPMetrics(nil)
	require.NotNil(t, m)

	// All methods should be safe no-ops without a registry.
	m.ObserveRequest("GET", "/v1/products", "200", time.Millisecond)
	m.IncInFlight()
	m.DecInFlight()
}

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/v1/products", "200", 25*time.Millisecond)
	m.ObserveRequest("GET", "/v1/products", "200", 30*time.Millisecond)
	m.ObserveRequest("POST", "/v1/cart/items", "401", 5*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/v1/products", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("POST", "/v1/cart/items", "401")))
}

func TestInFlightGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.IncInFlight()
	m.IncInFlight()
	assert.Equal(t, float64(2), testutil.ToFloat64(m.inflight))

	m.DecInFlight()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.inflight))
}
