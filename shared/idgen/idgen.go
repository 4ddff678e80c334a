// Package idgen produces the unique suffixes used in "<kind>-<suffix>" identifiers.
// Repositories receive a Generator at construction; nothing reaches for a global one.
package idgen

import (
	"strings"

	"github.com/google/uuid"
)

type Generator func() string

// UUID returns 16 hex characters of a random v4 uuid.
func UUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// Fixed always returns suffix. Useful for deterministic tests.
func Fixed(suffix string) Generator {
	return func() string { return suffix }
}

func Prefixed(kind string, gen Generator) string {
	return kind + "-" + gen()
}
