package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe(http.MethodPost, "/api/v1/checkout", http.StatusCreated, 25*time.Millisecond)
	m.Observe(http.MethodPost, "/api/v1/checkout", http.StatusCreated, 40*time.Millisecond)
	m.Observe(http.MethodGet, "/api/v1/products", http.StatusOK, time.Millisecond)

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPost, "/api/v1/checkout", "201"))
	assert.Equal(t, 2.0, got)
}

func TestObserveNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe(http.MethodGet, "/", http.StatusOK, 0) // must not panic

	unregistered := NewHTTPMetrics(nil)
	unregistered.Observe(http.MethodGet, "/", http.StatusOK, 0)
}
