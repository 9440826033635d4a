package index

import (
	"sort"
	"sync"
	"time"

	"github.com/mgwunna/portfolio/internal/domain"
)

// PageIndex provides in-memory storage and lookup for pages.
// It is the primary source for request handling; Redis only mirrors it.
//
// Getters return copies so callers never observe concurrent view increments.
type PageIndex struct {
	mu         sync.RWMutex
	site       domain.Site
	pages      map[string]*domain.Page // Slug -> Page
	paths      map[string]string       // Path -> Slug
	lastReload time.Time               // Timestamp of last pages reload
	now        func() time.Time
}

// NewPageIndex creates a new page index
func NewPageIndex() *PageIndex {
	return &PageIndex{
		pages: make(map[string]*domain.Page),
		paths: make(map[string]string),
		now:   time.Now,
	}
}

// UpdatePages replaces all pages in the index
func (idx *PageIndex) UpdatePages(pages []*domain.Page) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	// Clear and rebuild
	idx.pages = make(map[string]*domain.Page, len(pages))
	idx.paths = make(map[string]string, len(pages))
	for _, page := range pages {
		idx.putLocked(page)
	}
	idx.lastReload = idx.now()
}

// ReplacePages swaps in a freshly loaded page set in one critical section.
// Views and CreatedAt carry over from pages already indexed, and indexed pages
// missing from the set stay behind, disabled since now. It returns a snapshot
// of the resulting pages and how many were newly disabled.
func (idx *PageIndex) ReplacePages(pages []*domain.Page, now time.Time) ([]*domain.Page, int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	next := make([]*domain.Page, 0, len(pages)+len(idx.pages))
	loaded := make(map[string]bool, len(pages))
	for _, page := range pages {
		clone := *page
		if old, ok := idx.pages[clone.Slug]; ok {
			clone.Views = old.Views
			if !old.CreatedAt.IsZero() {
				clone.CreatedAt = old.CreatedAt
			}
		}
		loaded[clone.Slug] = true
		next = append(next, &clone)
	}

	disabled := 0
	for slug, old := range idx.pages {
		if loaded[slug] {
			continue
		}
		clone := *old
		if !clone.Disabled {
			clone.Disabled = true
			clone.UpdatedAt = now
			disabled++
		}
		next = append(next, &clone)
	}

	idx.pages = make(map[string]*domain.Page, len(next))
	idx.paths = make(map[string]string, len(next))
	for _, page := range next {
		idx.putLocked(page)
	}
	idx.lastReload = idx.now()

	return idx.snapshotLocked(), disabled
}

// SetSite replaces the site metadata
func (idx *PageIndex) SetSite(site domain.Site) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.site = site
}

// Site returns the site metadata
func (idx *PageIndex) Site() domain.Site {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.site
}

// GetPage retrieves a page by slug
func (idx *PageIndex) GetPage(slug string) (*domain.Page, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	page, ok := idx.pages[slug]
	if !ok {
		return nil, false
	}
	clone := *page
	return &clone, true
}

// Lookup retrieves the enabled page served at path
func (idx *PageIndex) Lookup(path string) (*domain.Page, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	slug, ok := idx.paths[path]
	if !ok {
		return nil, false
	}
	page := idx.pages[slug]
	if page == nil || page.Disabled {
		return nil, false
	}
	clone := *page
	return &clone, true
}

// GetAllPages returns all pages, disabled ones included, ordered by path
func (idx *PageIndex) GetAllPages() []*domain.Page {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.snapshotLocked()
}

func (idx *PageIndex) snapshotLocked() []*domain.Page {
	pages := make([]*domain.Page, 0, len(idx.pages))
	for _, page := range idx.pages {
		clone := *page
		pages = append(pages, &clone)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Path < pages[j].Path })
	return pages
}

// AddPage adds or updates a single page
func (idx *PageIndex) AddPage(page *domain.Page) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if old, ok := idx.pages[page.Slug]; ok && idx.paths[old.Path] == page.Slug {
		delete(idx.paths, old.Path)
	}
	idx.putLocked(page)
}

// DeletePage removes a page from the index
func (idx *PageIndex) DeletePage(slug string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if page, ok := idx.pages[slug]; ok {
		if idx.paths[page.Path] == slug {
			delete(idx.paths, page.Path)
		}
		delete(idx.pages, slug)
	}
}

// Count returns the number of enabled pages in the index
func (idx *PageIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	count := 0
	for _, page := range idx.pages {
		if !page.Disabled {
			count++
		}
	}
	return count
}

// IncrementViews increments the view counter of a page
func (idx *PageIndex) IncrementViews(slug string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if page, ok := idx.pages[slug]; ok {
		page.Views++
	}
}

// GetLastReload returns the timestamp of the last pages reload
func (idx *PageIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}

// putLocked stores a copy of page. An enabled page takes its path
// over from a disabled one.
func (idx *PageIndex) putLocked(page *domain.Page) {
	clone := *page
	idx.pages[clone.Slug] = &clone

	if owner, ok := idx.paths[clone.Path]; ok && owner != clone.Slug {
		if current := idx.pages[owner]; current != nil && !current.Disabled && clone.Disabled {
			return
		}
	}
	idx.paths[clone.Path] = clone.Slug
}
