// Package menu provides the navigation tree: items, the builder used to
// declare them, the configuration that owns them and selection resolution.
package menu

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Handler returns an HTTP handler that responds with the active menu tree as JSON.
func Handler(reg *Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("handling menu request",
			"method", r.Method,
			"url", r.URL.Path,
		)

		nodes := reg.Config().Nodes()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(nodes); err != nil {
			slog.Error("failed to encode menu", "error", err)
			return
		}

		slog.Debug("menu response sent",
			"url", r.URL.Path,
			"items", len(nodes),
			"status", http.StatusOK,
		)
	})
}
