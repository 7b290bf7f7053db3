package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/mchmarny/supernav/pkg/navigator"
	"github.com/mchmarny/supernav/pkg/render"
)

// SearchSignals are the client signals sent with a search request.
type SearchSignals struct {
	Query string `json:"query"`
}

// SearchSSE patches the search results fragment for the query signal.
func (h *Handlers) SearchSSE(w http.ResponseWriter, r *http.Request) {
	// signals are read before the SSE writer takes over the response
	var signals SearchSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	c := h.controller(w, r)
	p := h.panel(c, "")
	p.Results = h.search(c, signals.Query)

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(render.SearchResults(p)); err != nil {
		h.logger.Error("failed to patch search results", "error", err)
		_ = sse.ConsoleError(err)
	}
}

// ToggleFavoriteSSE toggles the favorite state of an item and patches the
// overlay. The primary and url parameters restore the panel on screen.
func (h *Handlers) ToggleFavoriteSSE(w http.ResponseWriter, r *http.Request) {
	c, p := h.actionPanel(w, r)
	if _, err := h.toggleFavorite(r, c, chi.URLParam(r, "id")); err != nil {
		h.consoleError(w, r, err)
		return
	}
	h.patchOverlay(w, r, p)
}

// RemoveSSE returns a handler deleting an entry from list and patching the
// overlay.
func (h *Handlers) RemoveSSE(list navigator.List) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, p := h.actionPanel(w, r)
		if err := h.remove(r, c, list, chi.URLParam(r, "id")); err != nil {
			h.consoleError(w, r, err)
			return
		}
		h.patchOverlay(w, r, p)
	}
}

func (h *Handlers) actionPanel(w http.ResponseWriter, r *http.Request) (*navigator.Controller, render.Panel) {
	query := r.URL.Query()
	c := h.controller(w, r)
	if id := query.Get("primary"); id != "" {
		c.SelectPrimary(id)
	}
	c.Open()
	return c, h.panel(c, query.Get("url"))
}

// patchOverlay must run after every storage write since the SSE writer
// sends the headers.
func (h *Handlers) patchOverlay(w http.ResponseWriter, r *http.Request, p render.Panel) {
	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(render.Overlay(p)); err != nil {
		h.logger.Error("failed to patch overlay", "error", err)
		_ = sse.ConsoleError(err)
	}
}

func (h *Handlers) consoleError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Debug("ui action failed", "path", r.URL.Path, "error", err)
	sse := datastar.NewSSE(w, r)
	_ = sse.ConsoleError(err)
}
