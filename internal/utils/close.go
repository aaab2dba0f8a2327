package utils

import "io"

// Close closes c and ignores any error.
// Use for best-effort cleanup in defer where the error changes nothing.
func Close(c io.Closer) {
	_ = c.Close()
}
