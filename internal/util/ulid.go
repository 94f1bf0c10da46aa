package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. ulid.Make draws from a process-wide
// monotonic entropy source that is safe for concurrent use.
func NewULID() string {
	return ulid.Make().String()
}
