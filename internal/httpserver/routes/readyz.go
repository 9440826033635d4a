package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mgwunna/portfolio/internal/httpserver/deps"
	"github.com/mgwunna/portfolio/internal/httpserver/handlers"
	"github.com/mgwunna/portfolio/internal/httpserver/mw"
)

func init() { Register(registerHealth) }

// Liveness stays open for orchestrators; readiness and infra follow the CIDR list.
func registerHealth(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))

	ops := r.With(mw.AllowCIDRs(d.AllowedCIDRS, d.TrustProxy, d.Logger))
	ops.Get("/readyz", handlers.Readyz(d))
	ops.Get("/infra", handlers.Infra(d))
}
