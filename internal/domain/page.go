package domain

import "time"

// Site holds the metadata shared by every rendered document.
type Site struct {
	// Title is used as the suffix of every document title.
	Title string

	// Description is emitted as the meta description of pages
	// that don't provide their own intro.
	Description string

	// Owner is the name shown in the header.
	Owner string

	// Language is the value of the <html lang> attribute.
	Language string
}

// Page represents a routable page of the site.
//
// A Page is uniquely identified by its Slug; Path is what the
// router matches against and what footer links point to.
type Page struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// Slug is the canonical unique identifier.
	// Example: about
	Slug string

	// Path is the site-relative route of the page.
	// Example: /about
	Path string

	// ─────────────────────────────
	// Content
	// (may be overwritten by content reload)
	// ─────────────────────────────

	Title    string
	Heading  string
	Intro    string
	Sections []Section

	// ─────────────────────────────
	// Provenance & observation
	// ─────────────────────────────

	// Sources indicates where this page was loaded from.
	// Example: content, redis
	Sources []string

	// Views is the number of times the page was served.
	Views int64

	// CreatedAt is the first time the page was loaded.
	CreatedAt time.Time

	// UpdatedAt is updated on any mutation.
	UpdatedAt time.Time

	// ─────────────────────────────
	// Liveness & cleanup
	// ─────────────────────────────

	// Disabled marks a page removed from the content file.
	// Disabled pages are not served and may be garbage-collected later.
	Disabled bool
}

// Section is a titled block of page content.
type Section struct {
	Heading string
	Body    string
	Links   []NavEntry
}

// HasSource reports whether the page was loaded from source.
func (p *Page) HasSource(source string) bool {
	for _, s := range p.Sources {
		if s == source {
			return true
		}
	}
	return false
}
