// Package assets manages per-request temporary files: the uploaded logo
// and the generated output document.
package assets

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NameGenerator produces a unique file name for the given extension. It
// is an injected dependency so tests can supply deterministic names; the
// real generator must be collision-free under concurrent requests.
type NameGenerator func(ext string) string

// UniqueNames returns the production generator: millisecond timestamp
// plus a random uuid suffix, so concurrent renders never alias each
// other's files.
func UniqueNames() NameGenerator {
	return func(ext string) string {
		return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	}
}
