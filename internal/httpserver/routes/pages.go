package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mgwunna/portfolio/internal/httpserver/deps"
	"github.com/mgwunna/portfolio/internal/httpserver/handlers"
	"github.com/mgwunna/portfolio/internal/httpserver/mw"
)

func init() { Register(registerPages) }

// Pages are resolved against the index, so every path not claimed by
// another route falls through to the catch-all.
func registerPages(r chi.Router, d deps.Deps) {
	pages := r
	if d.RateLimit.Burst > 0 {
		cfg := d.RateLimit
		cfg.TrustProxy = d.TrustProxy
		pages = r.With(mw.RateLimit(cfg))
	}

	pages.Get("/partials/footer", handlers.Footer(d))
	pages.Get("/*", handlers.Page(d))
}
