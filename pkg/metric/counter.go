package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "supernav"

type IncrementalCounter interface {
	Increment(val ...string)
}

type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) IncrementalCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// Nop discards increments.
type Nop struct{}

func (Nop) Increment(...string) {}

// Navigation counts panel interactions.
type Navigation struct {
	// Navigations counts visits through the panel by item id.
	Navigations IncrementalCounter
	// Searches counts searches by outcome (hit, miss).
	Searches IncrementalCounter
	// Favorites counts favorite toggles by action (add, remove).
	Favorites IncrementalCounter
	// Removals counts list removals by list (favorites, recent).
	Removals IncrementalCounter
}

// NewNavigation registers the navigation counters with reg.
func NewNavigation(reg prometheus.Registerer) *Navigation {
	return &Navigation{
		Navigations: NewCounterWithRegistry(reg, "navigations_total", "Visits made through the navigation panel.", "item"),
		Searches:    NewCounterWithRegistry(reg, "searches_total", "Searches run against the navigation panel.", "outcome"),
		Favorites:   NewCounterWithRegistry(reg, "favorite_toggles_total", "Favorite toggles.", "action"),
		Removals:    NewCounterWithRegistry(reg, "list_removals_total", "Entries removed from visitor lists.", "list"),
	}
}

// NopNavigation returns counters that discard increments.
func NopNavigation() *Navigation {
	return &Navigation{Navigations: Nop{}, Searches: Nop{}, Favorites: Nop{}, Removals: Nop{}}
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
