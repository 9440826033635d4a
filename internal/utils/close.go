package utils

import "io"

// CloseInto closes c and reports its error through errp,
// unless errp already holds an earlier error.
// Use in defer for writers, where a failed Close means lost data.
func CloseInto(c io.Closer, errp *error) {
	if err := c.Close(); err != nil && *errp == nil {
		*errp = err
	}
}
