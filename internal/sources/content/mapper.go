package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/mgwunna/portfolio/internal/domain"
)

// SourceName is recorded in domain.Page.Sources for pages read from site.yaml
const SourceName = "content"

// Mapper converts site.yaml entries to domain entities
type Mapper struct {
	now func() time.Time
}

// NewMapper creates a new mapper instance
func NewMapper(now func() time.Time) *Mapper {
	if now == nil {
		now = time.Now
	}
	return &Mapper{now: now}
}

// MapSite converts the site metadata
func (m *Mapper) MapSite(config *SiteConfig) domain.Site {
	return domain.Site{
		Title:       strings.TrimSpace(config.Site.Title),
		Description: strings.TrimSpace(config.Site.Description),
		Owner:       strings.TrimSpace(config.Site.Owner),
		Language:    strings.TrimSpace(config.Site.Language),
	}
}

// MapPages converts the page list to []domain.Page.
// Pages without a path or with a path not starting with "/" are skipped,
// and the first page wins when two share a path or slug.
func (m *Mapper) MapPages(config *SiteConfig) ([]*domain.Page, error) {
	var pages []*domain.Page
	now := m.now()
	seenPaths := make(map[string]bool, len(config.Pages))
	seenSlugs := make(map[string]bool, len(config.Pages))

	for _, props := range config.Pages {
		path := strings.TrimSpace(props.Path)
		if path == "" || !strings.HasPrefix(path, "/") {
			continue
		}

		slug := strings.TrimSpace(props.Slug)
		if slug == "" {
			slug = slugFromPath(path)
		}

		if seenPaths[path] || seenSlugs[slug] {
			continue
		}
		seenPaths[path] = true
		seenSlugs[slug] = true

		pages = append(pages, &domain.Page{
			Slug:      slug,
			Path:      path,
			Title:     strings.TrimSpace(props.Title),
			Heading:   strings.TrimSpace(props.Heading),
			Intro:     strings.TrimSpace(props.Intro),
			Sections:  mapSections(props.Sections),
			Sources:   []string{SourceName},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no valid pages found in content config")
	}

	return pages, nil
}

func mapSections(props []SectionProps) []domain.Section {
	if len(props) == 0 {
		return nil
	}

	sections := make([]domain.Section, 0, len(props))
	for _, s := range props {
		section := domain.Section{
			Heading: strings.TrimSpace(s.Heading),
			Body:    strings.TrimSpace(s.Body),
		}
		for _, l := range s.Links {
			if l.Href == "" {
				continue
			}
			section.Links = append(section.Links, domain.NavEntry{Href: l.Href, Label: l.Label})
		}
		sections = append(sections, section)
	}
	return sections
}

// slugFromPath derives a slug from a route
// Example: "/" -> "home", "/blog/first-post" -> "blog-first-post"
func slugFromPath(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "home"
	}
	return strings.ReplaceAll(strings.ToLower(trimmed), "/", "-")
}
