package content

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed default_site.yaml
var defaultSite []byte

var templateVariable = regexp.MustCompile(`\{\{[^}]+\}\}`)

// Loader handles loading and parsing of site.yaml
type Loader struct {
	filePath string
}

// NewLoader creates a new content loader.
// An empty filePath loads the content embedded in the binary.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Source describes where the loader reads from, for logs.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return "embedded"
	}
	return l.filePath
}

// Load reads and parses the content file
func (l *Loader) Load() (*SiteConfig, error) {
	data := defaultSite
	if l.filePath != "" {
		var err error
		data, err = os.ReadFile(l.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read content file: %w", err)
		}
	}

	return Parse(data)
}

// Parse decodes site.yaml content.
// Template variables ({{SITE_VAR_...}}) are replaced by empty strings.
func Parse(data []byte) (*SiteConfig, error) {
	data = stripTemplateVariables(data)

	var config SiteConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse content yaml: %w", err)
	}

	return &config, nil
}

// stripTemplateVariables removes template variables from YAML
// Example: {{SITE_VAR_GITHUB_URL}} -> ""
func stripTemplateVariables(data []byte) []byte {
	return templateVariable.ReplaceAll(data, []byte(`""`))
}
