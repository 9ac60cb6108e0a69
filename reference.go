package blnk

import "github.com/google/uuid"

// NewReference generates a unique transaction reference with the given
// prefix. References are the caller's idempotency handle and must be unique
// within a bulk batch.
func NewReference(prefix string) string {
	if prefix == "" {
		prefix = "ref"
	}
	return prefix + "_" + uuid.NewString()
}
