package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/metrics"
	"github.com/dmitrymomot/validkit/pkg/schema"
)

type rawAge struct {
	Age string `json:"age"`
}

type age struct {
	Age int `json:"age"`
}

func TestCollector_ObserveValidation(t *testing.T) {
	t.Parallel()

	collector := metrics.NewCollector("test", nil)
	ages := schema.NewBuilder[rawAge, age]("age", schema.WithObserver(collector)).
		Field("age",
			schema.TryMap("parse_int", strconv.Atoi),
			schema.Check("age >= 0", func(n int) bool { return n >= 0 }),
		).
		MustBuild()

	_, err := ages.Validate(rawAge{Age: "42"})
	require.NoError(t, err)
	_, err = ages.Validate(rawAge{Age: "-1"})
	require.Error(t, err)
	_, err = ages.Validate(rawAge{Age: "x"})
	require.Error(t, err)

	expected := `
# HELP test_validations_total Total number of Validate calls by result and failing phase
# TYPE test_validations_total counter
test_validations_total{phase="fields",result="invalid",schema="age"} 2
test_validations_total{phase="none",result="valid",schema="age"} 1
`
	require.NoError(t, testutil.CollectAndCompare(collector.Registry(), strings.NewReader(expected), "test_validations_total"))

	expected = `
# HELP test_validation_failures_total Total number of reported failures by failing phase
# TYPE test_validation_failures_total counter
test_validation_failures_total{phase="fields",schema="age"} 2
`
	require.NoError(t, testutil.CollectAndCompare(collector.Registry(), strings.NewReader(expected), "test_validation_failures_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.Registry(), "test_validation_duration_seconds"))
}

func TestCollector_Middleware(t *testing.T) {
	t.Parallel()

	collector := metrics.NewCollector("", nil)
	r := chi.NewRouter()
	r.Use(collector.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	r.Handle("/metrics", collector.Handler())

	for _, id := range []string{"1", "2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
		require.Equal(t, http.StatusAccepted, w.Code)
	}

	expected := `
# HELP validkit_http_requests_total Total number of HTTP requests by route and status
# TYPE validkit_http_requests_total counter
validkit_http_requests_total{method="GET",route="/items/{id}",status="202"} 2
`
	require.NoError(t, testutil.CollectAndCompare(collector.Registry(), strings.NewReader(expected), "validkit_http_requests_total"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "validkit_http_requests_total")
}
