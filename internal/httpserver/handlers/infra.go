package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mgwunna/portfolio/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool             `json:"ok"`
	PagesLoaded *int             `json:"pages_loaded,omitempty"`
	LastReload  string           `json:"last_reload,omitempty"`
	Source      string           `json:"source,omitempty"`
	Mode        string           `json:"mode,omitempty"`
	Impact      string           `json:"impact,omitempty"`
	Views       map[string]int64 `json:"views,omitempty"`
	Error       string           `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		pages := d.PageIndex.Count()
		lastReload := d.PageIndex.GetLastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format(time.RFC3339)
		}

		source := d.ContentFile
		if source == "" {
			source = "embedded"
		}

		components := map[string]componentStatus{
			"content": {
				OK:          pages > 0,
				PagesLoaded: &pages,
				LastReload:  lastReloadStr,
				Source:      source,
			},
			"redis": checkRedis(r.Context(), d),
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func overallStatus(components map[string]componentStatus) string {
	if content, exists := components["content"]; exists {
		if !content.OK {
			return "critical"
		}
	}

	// Redis only backs snapshots and view counters.
	if redis, exists := components["redis"]; exists && !redis.OK {
		return "degraded"
	}

	return "ok"
}

func checkRedis(parent context.Context, d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "views-not-persisted",
			Error:  "redis not configured",
		}
	}

	ctx, cancel := context.WithTimeout(parent, 2*time.Second)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "views-not-persisted",
			Error:  err.Error(),
		}
	}

	status := componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "views-persisted",
	}
	if views, err := d.Store.GetViewStats(ctx); err == nil && len(views) > 0 {
		status.Views = views
	}
	return status
}
