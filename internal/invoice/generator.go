// Package invoice orchestrates one render: validated data in, finished
// document bytes out, temp files cleaned on every path.
package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/billforge/invoice-engine/internal/assets"
	"github.com/billforge/invoice-engine/internal/layout"
	"github.com/billforge/invoice-engine/internal/surface"
	"github.com/billforge/invoice-engine/pkg/invoiceformat"
)

// SurfaceFactory builds a fresh drawing surface per render; surfaces are
// single-use.
type SurfaceFactory func() surface.Surface

// Format describes one output format the generator can produce.
type Format struct {
	Surface     SurfaceFactory
	ContentType string
	Ext         string
}

// Generator renders validated invoices onto registered surfaces. Renders
// are independent synchronous computations; the generator itself holds no
// per-request state, so it is safe for concurrent use.
type Generator struct {
	OutputDir string
	Formats   map[string]Format
	Names     assets.NameGenerator
	Clock     func() time.Time
	Log       *zap.SugaredLogger
}

// NewGenerator wires the standard pdf and png formats.
func NewGenerator(outputDir, fontPath string, names assets.NameGenerator, log *zap.SugaredLogger) *Generator {
	return &Generator{
		OutputDir: outputDir,
		Formats: map[string]Format{
			"pdf": {
				Surface:     func() surface.Surface { return surface.NewPDF(fontPath) },
				ContentType: "application/pdf",
				Ext:         ".pdf",
			},
			"png": {
				Surface:     func() surface.Surface { return surface.NewRaster(fontPath) },
				ContentType: "image/png",
				Ext:         ".png",
			},
		},
		Names: names,
		Clock: time.Now,
		Log:   log,
	}
}

// Result is one finished render. Path points at the persisted copy under
// the output directory; the caller removes it once the response is sent.
type Result struct {
	Bytes       []byte
	Path        string
	ContentType string
	Filename    string
}

// Generate lays out and renders a validated invoice against the logo
// asset. format selects the output surface ("pdf" by default).
func (g *Generator) Generate(inv *invoiceformat.Invoice, logo *assets.Logo, format string) (*Result, error) {
	if logo == nil {
		return nil, ErrLogoMissing
	}

	if format == "" {
		format = "pdf"
	}
	f, ok := g.Formats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	ref := layout.ImageRef{Path: logo.Path, PxWidth: logo.Width, PxHeight: logo.Height}
	plan := layout.Compose(inv, ref, g.Clock())

	data, err := surface.Play(plan, f.Surface())
	if err != nil {
		return nil, &RenderError{Stage: "drawing", Err: err}
	}

	name := "Invoice_" + g.Names(f.Ext)
	path := filepath.Join(g.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		// drop any partial write before reporting
		os.Remove(path)
		return nil, &RenderError{Stage: "output", Err: err}
	}

	g.Log.Infow("invoice rendered",
		"invoice", inv.InvoiceDetails.InvoiceNumber,
		"format", format,
		"products", len(inv.Products),
		"bytes", len(data),
	)

	return &Result{
		Bytes:       data,
		Path:        path,
		ContentType: f.ContentType,
		Filename:    "invoice" + f.Ext,
	}, nil
}
