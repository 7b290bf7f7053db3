package metric

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewNavigation(t *testing.T) {
	reg := prometheus.NewRegistry()
	nav := NewNavigation(reg)

	nav.Navigations.Increment("analytics")
	nav.Navigations.Increment("analytics")
	nav.Searches.Increment("miss")

	c := nav.Navigations.(*Counter)
	assert.Equal(t, 2.0, testutil.ToFloat64(c.vec.WithLabelValues("analytics")))
	assert.Equal(t, "navigations_total", c.Name)

	rec := httptest.NewRecorder()
	GetHandlerForRegistry(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `supernav_navigations_total{item="analytics"} 2`)
	assert.Contains(t, rec.Body.String(), `supernav_searches_total{outcome="miss"} 1`)
}

func TestNopNavigation(t *testing.T) {
	nav := NopNavigation()
	assert.NotPanics(t, func() {
		nav.Navigations.Increment("x")
		nav.Searches.Increment("hit")
		nav.Favorites.Increment("add")
		nav.Removals.Increment("recent")
	})
}
