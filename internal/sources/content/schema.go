package content

// SiteConfig represents the top-level structure of site.yaml
type SiteConfig struct {
	Site  SiteProps   `yaml:"site"`
	Pages []PageProps `yaml:"pages"`
}

// SiteProps contains the metadata shared by every page
type SiteProps struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Owner       string `yaml:"owner,omitempty"`
	Language    string `yaml:"language,omitempty"`
}

// PageProps contains the properties of one page
type PageProps struct {
	Slug     string         `yaml:"slug,omitempty"`
	Path     string         `yaml:"path"`
	Title    string         `yaml:"title"`
	Heading  string         `yaml:"heading,omitempty"`
	Intro    string         `yaml:"intro,omitempty"`
	Sections []SectionProps `yaml:"sections,omitempty"`
}

// SectionProps contains one block of page content
type SectionProps struct {
	Heading string      `yaml:"heading,omitempty"`
	Body    string      `yaml:"body,omitempty"`
	Links   []LinkProps `yaml:"links,omitempty"`
}

// LinkProps is a labelled link inside a section
type LinkProps struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}
