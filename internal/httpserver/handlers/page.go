package handlers

import (
	"context"
	"net/http"
	"time"

	g "maragu.dev/gomponents"

	"github.com/mgwunna/portfolio/internal/httpserver/deps"
	"github.com/mgwunna/portfolio/internal/logger"
	"github.com/mgwunna/portfolio/internal/metrics"
	"github.com/mgwunna/portfolio/internal/view"
)

const (
	htmlContentType = "text/html; charset=utf-8"
	notFoundLabel   = "not_found"
	viewsTimeout    = 500 * time.Millisecond
)

// Page renders the page registered at the request path, or the 404 document.
func Page(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		site := d.PageIndex.Site()

		page, ok := d.PageIndex.Lookup(r.URL.Path)
		if !ok {
			writeHTML(w, d, http.StatusNotFound, notFoundLabel, d.Renderer.NotFound(site, r.URL.Path))
			return
		}

		if !writeHTML(w, d, http.StatusOK, page.Slug, d.Renderer.Page(site, page)) || r.Method != http.MethodGet {
			return
		}

		d.PageIndex.IncrementViews(page.Slug)
		if d.Store != nil {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), viewsTimeout)
			defer cancel()
			if _, err := d.Store.IncrementViews(ctx, page.Slug); err != nil {
				d.Logger.Debug("failed to persist page view",
					logger.String("slug", page.Slug),
					logger.Error(err))
			}
		}
	}
}

// Footer serves the footer on its own, for embedding into other documents.
func Footer(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHTML(w, d, http.StatusOK, "footer", d.Renderer.Footer())
	}
}

// writeHTML renders n before touching the response so a failed render
// still produces a clean 500. It reports whether the body was written.
func writeHTML(w http.ResponseWriter, d deps.Deps, status int, label string, n g.Node) bool {
	start := time.Now()
	body, err := view.Render(n)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordRender(label, metrics.StatusError, elapsed)
		d.Logger.Error("failed to render document",
			logger.String("page", label),
			logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return false
	}
	metrics.RecordRender(label, metrics.StatusOK, elapsed)

	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		d.Logger.Debug("failed to write response", logger.Error(err))
	}
	return true
}
