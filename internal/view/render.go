package view

import (
	"bytes"
	"fmt"

	g "maragu.dev/gomponents"
)

// Render renders n into memory so callers can pick a status code
// only once rendering has succeeded.
func Render(n g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render node: %w", err)
	}
	return buf.Bytes(), nil
}
