// Package surface turns a drawing plan into document bytes. The Surface
// interface is the only thing the layout engine's output touches, so the
// layout algorithm stays testable without a real rendering backend.
package surface

import (
	"fmt"

	"github.com/billforge/invoice-engine/internal/layout"
)

// Surface is an abstract one-page drawing target. Implementations must
// tolerate draw calls past the page bottom: the fixed layout deliberately
// lets oversized terms text run off the page.
type Surface interface {
	NewDocument(width, height, margin float64) error
	DrawText(content string, x, y float64, opts layout.TextOptions) error
	DrawLine(x1, y1, x2, y2 float64, opts layout.LineOptions) error
	DrawImage(path string, x, y, width, height float64) error
	Finalize() ([]byte, error)
}

// Play replays a plan's ops, in order, against a surface and returns the
// finalized document bytes. The plan is consumed read-only, so the same
// plan may be replayed on a second surface (e.g. the raster preview).
func Play(p *layout.Plan, s Surface) ([]byte, error) {
	if err := s.NewDocument(p.PageWidth, p.PageHeight, p.Margin); err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}

	for i, op := range p.Ops {
		var err error
		switch op := op.(type) {
		case layout.TextOp:
			err = s.DrawText(op.Content, op.X, op.Y, op.TextOptions)
		case layout.LineOp:
			err = s.DrawLine(op.X1, op.Y1, op.X2, op.Y2, op.LineOptions)
		case layout.ImageOp:
			err = s.DrawImage(p.Logo.Path, op.X, op.Y, op.Width, imageHeight(p.Logo, op.Width))
		default:
			err = fmt.Errorf("unsupported op type %T", op)
		}
		if err != nil {
			return nil, fmt.Errorf("draw op %d failed: %w", i, err)
		}
	}

	return s.Finalize()
}

// imageHeight scales the logo's probed pixel size to the drawn width.
func imageHeight(logo layout.ImageRef, width float64) float64 {
	if logo.PxWidth <= 0 || logo.PxHeight <= 0 {
		return width
	}
	return width * float64(logo.PxHeight) / float64(logo.PxWidth)
}

// lineHeight is the vertical advance for multi-line text ops.
func lineHeight(size float64) float64 {
	return size * 1.2
}
