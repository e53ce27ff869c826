package surface

import (
	"fmt"
	"strings"

	"github.com/signintech/gopdf"

	"github.com/billforge/invoice-engine/internal/layout"
)

const pdfFontFamily = "sans"

// PDF renders a plan onto a single PDF page via gopdf.
type PDF struct {
	doc      *gopdf.GoPdf
	fontPath string
}

// NewPDF creates a PDF surface. fontPath may be empty, in which case the
// system font list is searched when the document opens.
func NewPDF(fontPath string) *PDF {
	return &PDF{fontPath: fontPath}
}

func (p *PDF) NewDocument(width, height, margin float64) error {
	font, err := resolveFont(p.fontPath)
	if err != nil {
		return err
	}

	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{PageSize: gopdf.Rect{W: width, H: height}})
	doc.AddPage()

	if err := doc.AddTTFFont(pdfFontFamily, font); err != nil {
		return fmt.Errorf("failed to load font %s: %w", font, err)
	}

	p.doc = doc
	return nil
}

func (p *PDF) DrawText(content string, x, y float64, opts layout.TextOptions) error {
	if err := p.doc.SetFont(pdfFontFamily, "", opts.Size); err != nil {
		return fmt.Errorf("failed to set font size %g: %w", opts.Size, err)
	}

	r, g, b := parseHexColor(opts.Color)
	p.doc.SetTextColor(r, g, b)

	advance := lineHeight(opts.Size)
	for i, line := range strings.Split(content, "\n") {
		if line == "" {
			continue
		}
		p.doc.SetXY(x, y+float64(i)*advance)

		if opts.Width > 0 && opts.Align != layout.AlignLeft {
			cell := &gopdf.Rect{W: opts.Width, H: advance}
			align := gopdf.Center | gopdf.Top
			if opts.Align == layout.AlignRight {
				align = gopdf.Right | gopdf.Top
			}
			if err := p.doc.CellWithOption(cell, line, gopdf.CellOption{Align: align}); err != nil {
				return err
			}
			continue
		}

		if err := p.doc.Cell(nil, line); err != nil {
			return err
		}
	}

	return nil
}

func (p *PDF) DrawLine(x1, y1, x2, y2 float64, opts layout.LineOptions) error {
	r, g, b := parseHexColor(opts.Color)
	p.doc.SetStrokeColor(r, g, b)
	p.doc.SetLineWidth(opts.Width)
	p.doc.Line(x1, y1, x2, y2)
	return nil
}

func (p *PDF) DrawImage(path string, x, y, width, height float64) error {
	if err := p.doc.Image(path, x, y, &gopdf.Rect{W: width, H: height}); err != nil {
		return fmt.Errorf("failed to place image %s: %w", path, err)
	}
	return nil
}

func (p *PDF) Finalize() ([]byte, error) {
	return p.doc.GetBytesPdf(), nil
}
