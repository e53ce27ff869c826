package surface

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/billforge/invoice-engine/internal/layout"
)

// rasterScale maps page points to pixels (2x ≈ 144 DPI).
const rasterScale = 2.0

// Raster renders a plan to a PNG preview of the page.
type Raster struct {
	ctx      *gg.Context
	fontPath string
	font     string
	scale    float64
}

// NewRaster creates a raster surface. fontPath may be empty, in which
// case the system font list is searched when the document opens.
func NewRaster(fontPath string) *Raster {
	return &Raster{fontPath: fontPath, scale: rasterScale}
}

func (r *Raster) NewDocument(width, height, margin float64) error {
	font, err := resolveFont(r.fontPath)
	if err != nil {
		return err
	}
	r.font = font

	ctx := gg.NewContext(int(width*r.scale), int(height*r.scale))
	ctx.SetColor(color.White)
	ctx.Clear()

	r.ctx = ctx
	return nil
}

func (r *Raster) DrawText(content string, x, y float64, opts layout.TextOptions) error {
	if err := r.ctx.LoadFontFace(r.font, opts.Size*r.scale); err != nil {
		return fmt.Errorf("failed to load font %s: %w", r.font, err)
	}
	r.ctx.SetHexColor(opts.Color)

	advance := lineHeight(opts.Size)
	for i, line := range strings.Split(content, "\n") {
		if line == "" {
			continue
		}

		lineX := x
		if opts.Width > 0 && opts.Align != layout.AlignLeft {
			tw, _ := r.ctx.MeasureString(line)
			switch opts.Align {
			case layout.AlignCenter:
				lineX = x + (opts.Width-tw/r.scale)/2
			case layout.AlignRight:
				lineX = x + opts.Width - tw/r.scale
			}
		}

		// y is the top of the text box; DrawString wants the baseline
		baseline := y + float64(i)*advance + opts.Size
		r.ctx.DrawString(line, lineX*r.scale, baseline*r.scale)
	}

	return nil
}

func (r *Raster) DrawLine(x1, y1, x2, y2 float64, opts layout.LineOptions) error {
	r.ctx.SetHexColor(opts.Color)
	r.ctx.SetLineWidth(opts.Width * r.scale)
	r.ctx.DrawLine(x1*r.scale, y1*r.scale, x2*r.scale, y2*r.scale)
	r.ctx.Stroke()
	return nil
}

func (r *Raster) DrawImage(path string, x, y, width, height float64) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image %s: %w", path, err)
	}

	resized := imaging.Resize(img, int(width*r.scale), int(height*r.scale), imaging.Lanczos)
	r.ctx.DrawImage(resized, int(x*r.scale), int(y*r.scale))
	return nil
}

func (r *Raster) Finalize() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.ctx.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}
	return buf.Bytes(), nil
}

// HasUsableFont reports whether a font can be resolved without opening a
// document. Tests use it to skip backend rendering on bare systems.
func HasUsableFont(configured string) bool {
	if _, err := resolveFont(configured); err != nil {
		return false
	}
	return true
}
