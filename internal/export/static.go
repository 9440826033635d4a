// Package export renders the site to plain files for static hosting.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/mgwunna/portfolio/internal/domain"
	"github.com/mgwunna/portfolio/internal/logger"
	"github.com/mgwunna/portfolio/internal/utils"
	"github.com/mgwunna/portfolio/internal/view"
)

const (
	notFoundFile = "404.html"
	footerFile   = "partials/footer.html"
	indexFile    = "index.html"
)

// Builder writes rendered documents under an output directory.
type Builder struct {
	renderer *view.Renderer
	logger   logger.Logger
}

func NewBuilder(renderer *view.Renderer, log logger.Logger) *Builder {
	return &Builder{renderer: renderer, logger: log}
}

// Result lists the files written, relative to the output directory.
type Result struct {
	Files   []string
	Skipped int
}

// Build renders every enabled page to <out>/<path>/index.html, the not found
// document to <out>/404.html and the footer partial to <out>/partials/footer.html.
func (b *Builder) Build(outDir string, site domain.Site, pages []*domain.Page) (Result, error) {
	var res Result

	if outDir == "" {
		return res, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, page := range pages {
		if page.Disabled {
			res.Skipped++
			continue
		}

		rel, err := pageFile(page.Path)
		if err != nil {
			return res, fmt.Errorf("page %s: %w", page.Slug, err)
		}
		if err := b.write(outDir, rel, b.renderer.Page(site, page)); err != nil {
			return res, fmt.Errorf("page %s: %w", page.Slug, err)
		}
		res.Files = append(res.Files, rel)
	}

	if err := b.write(outDir, notFoundFile, b.renderer.NotFound(site, "/404")); err != nil {
		return res, err
	}
	res.Files = append(res.Files, notFoundFile)

	if err := b.write(outDir, footerFile, b.renderer.Footer()); err != nil {
		return res, err
	}
	res.Files = append(res.Files, footerFile)

	b.logger.Info("static build completed",
		logger.String("out", outDir),
		logger.Int("files", len(res.Files)),
		logger.Int("skipped", res.Skipped))

	return res, nil
}

// pageFile maps a site path to its index.html, relative to the output root.
func pageFile(path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("path %q is not absolute", path)
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return "", fmt.Errorf("path %q escapes the output directory", path)
		}
	}

	clean := strings.Trim(filepath.ToSlash(filepath.Clean(path)), "/")
	if clean == "" {
		return indexFile, nil
	}
	return clean + "/" + indexFile, nil
}

func (b *Builder) write(outDir, rel string, n g.Node) (err error) {
	body, err := view.Render(n)
	if err != nil {
		return err
	}

	target := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", rel, err)
	}
	defer utils.CloseInto(f, &err)

	if _, err := f.Write(body); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}

	b.logger.Debug("wrote file", logger.String("file", rel))
	return nil
}
