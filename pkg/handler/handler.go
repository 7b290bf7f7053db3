// Package handler exposes the navigation panel over HTTP: the menu tree,
// search, the visitor lists and the rendered page.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mchmarny/supernav/pkg/menu"
	"github.com/mchmarny/supernav/pkg/metric"
	"github.com/mchmarny/supernav/pkg/navigator"
	"github.com/mchmarny/supernav/pkg/render"
	"github.com/mchmarny/supernav/pkg/storage"
)

// Handlers serves the navigation endpoints for every visitor.
type Handlers struct {
	registry *menu.Registry
	provider storage.Provider
	options  render.Options
	labels   navigator.Labels
	metrics  *metric.Navigation
	logger   *slog.Logger
}

// Option configures Handlers.
type Option func(*Handlers)

// WithOptions sets the presentation settings of rendered fragments.
func WithOptions(o render.Options) Option {
	return func(h *Handlers) { h.options = o }
}

// WithLabels sets the panel labels.
func WithLabels(l navigator.Labels) Option {
	return func(h *Handlers) { h.labels = l }
}

// WithMetrics sets the counters incremented by the handlers.
func WithMetrics(m *metric.Navigation) Option {
	return func(h *Handlers) {
		if m != nil {
			h.metrics = m
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handlers) {
		if l != nil {
			h.logger = l
		}
	}
}

// New creates the handlers. A nil provider keeps visitor lists for the
// duration of a request only.
func New(reg *menu.Registry, provider storage.Provider, opts ...Option) *Handlers {
	h := &Handlers{
		registry: reg,
		provider: provider,
		labels:   navigator.DefaultLabels(),
		metrics:  metric.NopNavigation(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	h.options = h.options.Merge()

	return h
}

// Routes registers every endpoint on r.
func (h *Handlers) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", menu.Handler(h.registry).ServeHTTP)
		r.Get("/search", h.Search)

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.Favorites)
			r.Post("/{id}", h.ToggleFavorite)
			r.Delete("/{id}", h.Remove(navigator.ListFavorites))
		})

		r.Route("/recent", func(r chi.Router) {
			r.Get("/", h.Recent)
			r.Delete("/{id}", h.Remove(navigator.ListRecent))
		})
	})

	r.Route("/ui", func(r chi.Router) {
		r.Get("/search", h.SearchSSE)
		r.Post("/favorites/{id}", h.ToggleFavoriteSSE)
		r.Delete("/favorites/{id}", h.RemoveSSE(navigator.ListFavorites))
		r.Delete("/recent/{id}", h.RemoveSSE(navigator.ListRecent))
	})

	r.Get(h.options.NavigatePath+"{id}", h.Navigate)
	r.Get("/*", h.Page)
}

// controller builds the panel state for the requesting visitor. Storage
// failures degrade to an in-memory controller.
func (h *Handlers) controller(w http.ResponseWriter, r *http.Request) *navigator.Controller {
	var store storage.Store
	if h.provider != nil {
		s, err := h.provider.For(w, r)
		if err != nil {
			h.logger.Warn("visitor storage unavailable", "error", err)
		} else {
			store = s
		}
	}

	return navigator.New(r.Context(), store,
		navigator.WithMenu(h.registry.Config().Nodes()),
		navigator.WithLabels(h.labels),
		navigator.WithLogger(h.logger),
	)
}

func (h *Handlers) panel(c *navigator.Controller, currentURL string) render.Panel {
	return render.Panel{
		Options:    h.options,
		Config:     h.registry.Config(),
		Controller: c,
		CurrentURL: currentURL,
	}
}

// Search responds with the search hits for the q parameter as JSON.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	c := h.controller(w, r)
	results := h.search(c, r.URL.Query().Get("q"))
	if results == nil {
		results = []navigator.Result{}
	}
	h.writeJSON(w, http.StatusOK, results)
}

func (h *Handlers) search(c *navigator.Controller, q string) []navigator.Result {
	results := c.Search(q)
	if c.Mode() != navigator.Searching {
		return nil
	}

	outcome := "hit"
	if len(results) == 0 {
		outcome = "miss"
	}
	h.metrics.Searches.Increment(outcome)
	h.logger.Debug("search", "query", q, "results", len(results))

	return results
}

// Favorites responds with the visitor favorites.
func (h *Handlers) Favorites(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.controller(w, r).Favorites())
}

// Recent responds with the recently visited items, most recent first.
func (h *Handlers) Recent(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.controller(w, r).Recents())
}

type favoriteResponse struct {
	ID        string `json:"id"`
	Favorited bool   `json:"favorited"`
}

// ToggleFavorite adds or removes the item from favorites.
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	favorited, err := h.toggleFavorite(r, h.controller(w, r), id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, favoriteResponse{ID: id, Favorited: favorited})
}

func (h *Handlers) toggleFavorite(r *http.Request, c *navigator.Controller, id string) (bool, error) {
	e, parent, ok := c.Lookup(id)
	if !ok {
		return false, fmt.Errorf("item %q not found", id)
	}

	favorited := c.ToggleFavorite(r.Context(), e, parent)

	action := "add"
	if !favorited {
		action = "remove"
	}
	h.metrics.Favorites.Increment(action)

	return favorited, nil
}

// Remove returns a handler deleting an entry from list.
func (h *Handlers) Remove(list navigator.List) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.remove(r, h.controller(w, r), list, chi.URLParam(r, "id")); err != nil {
			h.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handlers) remove(r *http.Request, c *navigator.Controller, list navigator.List, id string) error {
	if !c.Remove(r.Context(), list, id) {
		return fmt.Errorf("item %q not in %s", id, list)
	}
	h.metrics.Removals.Increment(string(list))
	return nil
}

// Navigate records the visit and redirects to the item URL.
func (h *Handlers) Navigate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c := h.controller(w, r)

	e, parent, ok := c.Lookup(id)
	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("item %q not found", id))
		return
	}

	target, ok := c.Navigate(r.Context(), e, parent)
	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("item %q has no url", id))
		return
	}

	h.metrics.Navigations.Increment(id)
	h.logger.Info("navigating", "id", id, "url", target)

	http.Redirect(w, r, target, http.StatusFound)
}

// Page renders a document for the requested path with the navigation panel.
// The primary parameter selects and opens a category, q runs a search.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	c := h.controller(w, r)
	p := h.panel(c, r.URL.Path)

	query := r.URL.Query()
	if id := query.Get("primary"); id != "" {
		c.SelectPrimary(id)
		c.Open()
	}
	if q := query.Get("q"); strings.TrimSpace(q) != "" {
		p.Results = h.search(c, q)
		c.Open()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Page(h.pageTitle(r.URL.Path), p).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}

func (h *Handlers) pageTitle(path string) string {
	if item := itemForURL(h.registry.Config().Items, path); item != nil {
		return item.Title
	}
	return h.options.Title
}

func itemForURL(items []*menu.Item, path string) *menu.Item {
	for _, item := range items {
		if item.URL != "" && item.URL == path {
			return item
		}
		if found := itemForURL(item.Children, path); found != nil {
			return found
		}
	}
	return nil
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.logger.Debug("handling error response",
		"status", status,
		"message", message,
	)
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data any) {
	b, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("failed to marshal JSON response", "error", err)
		http.Error(w, "error, see logs for details", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
