package view

import (
	"io"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mgwunna/portfolio/internal/domain"
)

// CopyrightHolder is the name printed in the copyright line.
const CopyrightHolder = "Mg Wunna"

// SiteFooter renders the page footer: the footer navigation and the copyright line.
//
// SiteFooter implements g.Node. The clock is read on every Render call,
// so one SiteFooter can be shared by concurrent requests.
type SiteFooter struct {
	Now   func() time.Time
	Link  LinkRenderer
	Outer LayoutWrapper
	Inner LayoutWrapper
}

// NewSiteFooter returns a footer with plain anchors and the default containers.
// A nil now falls back to time.Now.
func NewSiteFooter(now func() time.Time) *SiteFooter {
	if now == nil {
		now = time.Now
	}
	return &SiteFooter{
		Now:   now,
		Link:  AnchorLink,
		Outer: ContainerOuter,
		Inner: ContainerInner,
	}
}

// Render writes the footer markup to w.
func (f *SiteFooter) Render(w io.Writer) error {
	return f.build(f.now()).Render(w)
}

// Copyright returns the copyright line for the year of now, in now's location.
func Copyright(now time.Time) string {
	return "© " + now.Format("2006") + " " + CopyrightHolder + ". All rights reserved."
}

func (f *SiteFooter) build(now time.Time) g.Node {
	outer, inner := f.Outer, f.Inner
	if outer == nil {
		outer = ContainerOuter
	}
	if inner == nil {
		inner = ContainerInner
	}

	return Footer(Class("mt-24 flex-none"),
		outer(
			Div(Class("border-t border-zinc-100 pb-16 pt-10 dark:border-zinc-700/40"),
				inner(
					Div(Class("flex flex-col items-center justify-between gap-6 sm:flex-row"),
						Div(Class("flex flex-wrap justify-center gap-x-6 gap-y-1 text-sm font-medium text-zinc-800 dark:text-zinc-200"),
							g.Map(domain.FooterLinks(), func(e domain.NavEntry) g.Node {
								return NavLink(f.Link, e.Href, g.Text(e.Label))
							}),
						),
						P(Class("text-sm text-zinc-400 dark:text-zinc-500"),
							g.Text(Copyright(now)),
						),
					),
				),
			),
		),
	)
}

func (f *SiteFooter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}
