package invoice

import (
	"errors"
	"fmt"
)

// Pre-layout failures with distinct user-facing messages.
var (
	// ErrLogoMissing is returned when no logo handle reaches the service.
	ErrLogoMissing = errors.New("a logo image is required")

	// ErrUnknownFormat is returned for an output format no surface backs.
	ErrUnknownFormat = errors.New("unknown output format")
)

// RenderError wraps an unexpected failure inside layout or the drawing
// surface. The API boundary converts it to a generic message; the wrapped
// detail is only logged.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed during %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
