package surface

import "github.com/billforge/invoice-engine/internal/layout"

// Call captures one surface invocation for assertions.
type Call struct {
	Method  string // "document", "text", "line", "image"
	Content string
	X, Y    float64
	X2, Y2  float64
	Width   float64
	Height  float64
	Margin  float64
	Text    layout.TextOptions
	Line    layout.LineOptions
	Image   string
}

// Recorder is a Surface that records calls instead of drawing. Output is
// whatever Bytes is set to, so error paths can be exercised too.
type Recorder struct {
	Calls       []Call
	Bytes       []byte
	FinalizeErr error
}

func (r *Recorder) NewDocument(width, height, margin float64) error {
	r.Calls = append(r.Calls, Call{Method: "document", Width: width, Height: height, Margin: margin})
	return nil
}

func (r *Recorder) DrawText(content string, x, y float64, opts layout.TextOptions) error {
	r.Calls = append(r.Calls, Call{Method: "text", Content: content, X: x, Y: y, Text: opts})
	return nil
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, opts layout.LineOptions) error {
	r.Calls = append(r.Calls, Call{Method: "line", X: x1, Y: y1, X2: x2, Y2: y2, Line: opts})
	return nil
}

func (r *Recorder) DrawImage(path string, x, y, width, height float64) error {
	r.Calls = append(r.Calls, Call{Method: "image", Image: path, X: x, Y: y, Width: width, Height: height})
	return nil
}

func (r *Recorder) Finalize() ([]byte, error) {
	if r.FinalizeErr != nil {
		return nil, r.FinalizeErr
	}
	if r.Bytes == nil {
		return []byte("recorded"), nil
	}
	return r.Bytes, nil
}
