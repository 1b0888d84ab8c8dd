package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCreated(t *testing.T) {
	m := New()
	m.Created(OriginAPI, 1)
	m.Created(OriginScrape, 3)
	m.Created(OriginScrape, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpdatesCreated.WithLabelValues(OriginAPI)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.UpdatesCreated.WithLabelValues(OriginScrape)))
}

func TestHandler(t *testing.T) {
	m := New()
	m.RequestsTotal.WithLabelValues("GET", "/api/all", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `updates_http_requests_total{method="GET",path="/api/all",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
