package view

import (
	"time"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/mgwunna/portfolio/internal/domain"
)

// Renderer builds full HTML documents for site pages.
// It holds no per-request state and is safe for concurrent use.
type Renderer struct {
	footer     *SiteFooter
	stylesheet string
}

// NewRenderer creates a renderer whose footer reads the given clock.
// An empty stylesheet omits the <link rel="stylesheet"> element.
func NewRenderer(now func() time.Time, stylesheet string) *Renderer {
	return &Renderer{
		footer:     NewSiteFooter(now),
		stylesheet: stylesheet,
	}
}

// Footer returns the footer node on its own, for partial responses.
func (r *Renderer) Footer() g.Node {
	return r.footer
}

// Page renders the document for p.
func (r *Renderer) Page(site domain.Site, p *domain.Page) g.Node {
	description := p.Intro
	if description == "" {
		description = site.Description
	}

	heading := p.Heading
	if heading == "" {
		heading = p.Title
	}

	return r.document(site, documentTitle(p.Title, site.Title), description,
		H1(Class("text-4xl font-bold tracking-tight text-zinc-800 sm:text-5xl dark:text-zinc-100"),
			g.Text(heading),
		),
		g.If(p.Intro != "",
			P(Class("mt-6 text-base text-zinc-600 dark:text-zinc-400"), g.Text(p.Intro)),
		),
		g.Map(p.Sections, section),
	)
}

// NotFound renders the document served for unknown paths.
func (r *Renderer) NotFound(site domain.Site, path string) g.Node {
	return r.document(site, documentTitle("Page not found", site.Title), site.Description,
		H1(Class("text-4xl font-bold tracking-tight text-zinc-800 sm:text-5xl dark:text-zinc-100"),
			g.Text("Page not found"),
		),
		P(Class("mt-6 text-base text-zinc-600 dark:text-zinc-400"),
			g.Textf("Nothing lives at %s.", path),
		),
	)
}

func (r *Renderer) document(site domain.Site, title, description string, content ...g.Node) g.Node {
	language := site.Language
	if language == "" {
		language = "en"
	}

	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: description,
		Language:    language,
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			g.If(r.stylesheet != "", Link(Rel("stylesheet"), Href(r.stylesheet))),
		},
		Body: []g.Node{
			Div(Class("flex h-full bg-zinc-50 dark:bg-black"),
				Div(Class("relative flex w-full flex-col"),
					siteHeader(site),
					Main(Class("flex-auto"),
						Container(
							Div(append([]g.Node{Class("mt-16 sm:mt-32")}, content...)...),
						),
					),
					r.footer,
				),
			),
		},
	})
}

func siteHeader(site domain.Site) g.Node {
	name := site.Owner
	if name == "" {
		name = site.Title
	}

	return Header(Class("relative z-50 flex flex-none flex-col"),
		Container(
			Div(Class("pt-6"),
				A(Href("/"), Class("text-sm font-semibold text-zinc-800 dark:text-zinc-100"),
					g.Text(name),
				),
			),
		),
	)
}

func section(s domain.Section) g.Node {
	return Section(Class("mt-16"),
		g.If(s.Heading != "",
			H2(Class("text-sm font-semibold text-zinc-800 dark:text-zinc-100"), g.Text(s.Heading)),
		),
		g.If(s.Body != "",
			P(Class("mt-2 text-base text-zinc-600 dark:text-zinc-400"), g.Text(s.Body)),
		),
		g.If(len(s.Links) > 0,
			Ul(Class("mt-4 space-y-2 text-sm font-medium text-zinc-800 dark:text-zinc-200"),
				g.Map(s.Links, func(e domain.NavEntry) g.Node {
					return Li(NavLink(AnchorLink, e.Href, g.Text(e.Label)))
				}),
			),
		),
	)
}

func documentTitle(title, siteTitle string) string {
	switch {
	case title == "":
		return siteTitle
	case siteTitle == "":
		return title
	default:
		return title + " · " + siteTitle
	}
}
