package domain

// NavEntry is a (path, label) pair describing one navigation link.
type NavEntry struct {
	Href  string `yaml:"href" json:"href"`
	Label string `yaml:"label" json:"label"`
}

// FooterLinks returns the footer navigation entries in display order.
// A new slice is built on every call so callers may not mutate the set.
func FooterLinks() []NavEntry {
	return []NavEntry{
		{Href: "/", Label: "Home"},
		{Href: "/about", Label: "About"},
		{Href: "/skills", Label: "Skills"},
		{Href: "/articles", Label: "Articles"},
		{Href: "/projects", Label: "Projects"},
	}
}
