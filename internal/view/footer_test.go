package view

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func TestSiteFooterLinks(t *testing.T) {
	doc := parse(t, NewSiteFooter(fixedClock("2023-06-15T12:00:00Z")))

	expected := []struct {
		href  string
		label string
	}{
		{"/", "Home"},
		{"/about", "About"},
		{"/skills", "Skills"},
		{"/articles", "Articles"},
		{"/projects", "Projects"},
	}

	links := doc.Find("footer a")
	if links.Length() != len(expected) {
		t.Fatalf("footer has %d links, want %d", links.Length(), len(expected))
	}

	links.Each(func(i int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); href != expected[i].href {
			t.Errorf("link %d href = %q, want %q", i, href, expected[i].href)
		}
		if label := s.Text(); label != expected[i].label {
			t.Errorf("link %d label = %q, want %q", i, label, expected[i].label)
		}
		if class, _ := s.Attr("class"); class != NavLinkClass {
			t.Errorf("link %d class = %q, want %q", i, class, NavLinkClass)
		}
	})
}

func TestSiteFooterCopyright(t *testing.T) {
	tests := []struct {
		name     string
		now      string
		expected string
	}{
		{
			name:     "mid year",
			now:      "2023-06-15T12:00:00Z",
			expected: "© 2023 Mg Wunna. All rights reserved.",
		},
		{
			name:     "first instant of the year",
			now:      "2030-01-01T00:00:00Z",
			expected: "© 2030 Mg Wunna. All rights reserved.",
		},
		{
			name:     "last instant of the year",
			now:      "1999-12-31T23:59:59Z",
			expected: "© 1999 Mg Wunna. All rights reserved.",
		},
		{
			name:     "year of the clock's own location",
			now:      "2000-01-01T02:00:00+03:00",
			expected: "© 2000 Mg Wunna. All rights reserved.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, NewSiteFooter(fixedClock(tt.now)))

			got := doc.Find("footer p").Text()
			if got != tt.expected {
				t.Errorf("copyright = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSiteFooterStructure(t *testing.T) {
	doc := parse(t, NewSiteFooter(fixedClock("2023-06-15T12:00:00Z")))

	footer := doc.Find("footer")
	if footer.Length() != 1 {
		t.Fatalf("found %d footer elements, want 1", footer.Length())
	}
	if class, _ := footer.Attr("class"); class != "mt-24 flex-none" {
		t.Errorf("footer class = %q", class)
	}

	// footer > outer(2 divs) > divider > inner(2 divs) > row > [links, p]
	divider := footer.Children().Children().Children()
	if class, _ := divider.Attr("class"); class != "border-t border-zinc-100 pb-16 pt-10 dark:border-zinc-700/40" {
		t.Errorf("divider class = %q", class)
	}

	row := doc.Find("footer p").Parent()
	if class, _ := row.Attr("class"); class != "flex flex-col items-center justify-between gap-6 sm:flex-row" {
		t.Errorf("row class = %q", class)
	}

	group := doc.Find("footer a").Parent()
	if group.Length() != 1 {
		t.Fatalf("links are spread over %d parents, want 1", group.Length())
	}
	if class, _ := group.Attr("class"); class != "flex flex-wrap justify-center gap-x-6 gap-y-1 text-sm font-medium text-zinc-800 dark:text-zinc-200" {
		t.Errorf("link group class = %q", class)
	}

	if class, _ := doc.Find("footer p").Attr("class"); class != "text-sm text-zinc-400 dark:text-zinc-500" {
		t.Errorf("copyright class = %q", class)
	}
}

func TestSiteFooterIdempotent(t *testing.T) {
	f := NewSiteFooter(fixedClock("2023-06-15T12:00:00Z"))

	first := renderString(t, f)
	second := renderString(t, f)
	if first != second {
		t.Errorf("renders differ for a fixed clock:\n%s\n%s", first, second)
	}
}

func TestSiteFooterReadsClockOnEveryRender(t *testing.T) {
	years := []int{2023, 2024}
	calls := 0
	f := NewSiteFooter(func() time.Time {
		y := years[calls%len(years)]
		calls++
		return time.Date(y, time.March, 1, 0, 0, 0, 0, time.UTC)
	})

	first := renderString(t, f)
	second := renderString(t, f)

	if !strings.Contains(first, "© 2023 ") {
		t.Errorf("first render missing 2023: %s", first)
	}
	if !strings.Contains(second, "© 2024 ") {
		t.Errorf("second render missing 2024: %s", second)
	}
	if calls != 2 {
		t.Errorf("clock read %d times, want 2", calls)
	}
}

func TestSiteFooterCollaborators(t *testing.T) {
	f := NewSiteFooter(fixedClock("2023-06-15T12:00:00Z"))

	var hrefs []string
	f.Link = func(href string, children ...g.Node) g.Node {
		hrefs = append(hrefs, href)
		return A(append([]g.Node{Href(href), g.Attr("data-router", "client")}, children...)...)
	}
	f.Outer = func(children ...g.Node) g.Node {
		return Section(append([]g.Node{ID("outer")}, children...)...)
	}
	f.Inner = func(children ...g.Node) g.Node {
		return Section(append([]g.Node{ID("inner")}, children...)...)
	}

	doc := parse(t, f)

	if len(hrefs) != 5 {
		t.Fatalf("link renderer called %d times, want 5", len(hrefs))
	}
	if doc.Find("footer > section#outer > div > section#inner").Length() != 1 {
		t.Error("custom containers were not nested as outer > divider > inner")
	}

	links := doc.Find("a[data-router=client]")
	if links.Length() != 5 {
		t.Errorf("found %d client links, want 5", links.Length())
	}
	links.Each(func(i int, s *goquery.Selection) {
		if class, _ := s.Attr("class"); class != NavLinkClass {
			t.Errorf("link %d class = %q, want %q", i, class, NavLinkClass)
		}
	})
}

func TestSiteFooterConcurrentRenders(t *testing.T) {
	f := NewSiteFooter(fixedClock("2023-06-15T12:00:00Z"))
	want := renderString(t, f)

	var wg sync.WaitGroup
	results := make([]string, 16)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := Render(f)
			results[i], errs[i] = string(out), err
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if errs[i] != nil {
			t.Errorf("render %d failed: %v", i, errs[i])
			continue
		}
		if got != want {
			t.Errorf("render %d differs from sequential render", i)
		}
	}
}

func TestNewSiteFooterNilClock(t *testing.T) {
	f := NewSiteFooter(nil)

	year := time.Now().Year()
	out := renderString(t, f)
	if !strings.Contains(out, "© ") || !strings.Contains(out, " Mg Wunna. All rights reserved.") {
		t.Fatalf("unexpected copyright in %s", out)
	}
	// The year may roll over between the two clock reads.
	if !strings.Contains(out, "© "+time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")) &&
		!strings.Contains(out, "© "+time.Date(year+1, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")) {
		t.Errorf("copyright does not carry the current year: %s", out)
	}
}
