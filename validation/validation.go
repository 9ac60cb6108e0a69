// Package validation holds the pre-flight checks the client runs before any
// request leaves the process. Every validator is a pure function returning
// nil for a valid payload or an error describing the first violation; the
// services translate that error into a 400 envelope without touching the
// network.
package validation

import "strings"

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
