// Package layout converts a validated invoice into an absolute-coordinate
// drawing plan for a fixed A4 page.
package layout

// Align selects horizontal text alignment inside a bounded cell.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextOptions style a single text op. Width 0 means unbounded; alignment
// only applies when a width is set.
type TextOptions struct {
	Width float64
	Align Align
	Size  float64
	Color string
}

// LineOptions style a single line op.
type LineOptions struct {
	Color string
	Width float64
}

// TextOp draws content at (X, Y). Content may contain newlines; surfaces
// advance one line height per line.
type TextOp struct {
	Content string
	X, Y    float64
	TextOptions
}

// LineOp draws a straight line between two points.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	LineOptions
}

// ImageOp draws the plan's logo at (X, Y) scaled to Width; height follows
// the logo's aspect ratio.
type ImageOp struct {
	X, Y, Width float64
}

// Op is one draw instruction in a plan.
type Op interface {
	op()
}

func (TextOp) op()  {}
func (LineOp) op()  {}
func (ImageOp) op() {}

// ImageRef points at the stored logo file with its probed pixel size.
type ImageRef struct {
	Path     string
	PxWidth  int
	PxHeight int
}

// Plan is the ordered sequence of draw instructions for one invoice.
// Produced fresh per request; treat as read-only once composed.
type Plan struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Logo       ImageRef
	Ops        []Op
}

func (p *Plan) text(content string, x, y float64, opts TextOptions) {
	p.Ops = append(p.Ops, TextOp{Content: content, X: x, Y: y, TextOptions: opts})
}

func (p *Plan) line(x1, y1, x2, y2 float64, opts LineOptions) {
	p.Ops = append(p.Ops, LineOp{X1: x1, Y1: y1, X2: x2, Y2: y2, LineOptions: opts})
}

func (p *Plan) image(x, y, width float64) {
	p.Ops = append(p.Ops, ImageOp{X: x, Y: y, Width: width})
}
