package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mgwunna/portfolio/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
	Pages int  `json:"pages"`
}

// Readyz is ready once at least one page is servable.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages := d.PageIndex.Count()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if pages == 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		_ = json.NewEncoder(w).Encode(readyzResponse{
			Ready: pages > 0,
			Pages: pages,
		})
	}
}
