package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Upload constraint violations, surfaced to the caller before any layout
// work happens.
var (
	ErrTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedType = errors.New("invalid file type, only JPG and PNG allowed")
)

// Logo is a stored upload with its probed pixel dimensions. It lives for
// one render and is removed afterwards.
type Logo struct {
	Path   string
	MIME   string
	Width  int
	Height int
	Size   int64
}

// Store writes uploaded logos into a directory under generated names.
type Store struct {
	Dir   string
	Names NameGenerator
	Log   *zap.SugaredLogger
}

// NewStore creates a logo store rooted at dir.
func NewStore(dir string, names NameGenerator, log *zap.SugaredLogger) *Store {
	return &Store{Dir: dir, Names: names, Log: log}
}

// Save reads an upload, enforces the type and size constraints, probes
// the image dimensions and writes it under a collision-free name. The
// MIME type is sniffed from content, never trusted from the request.
func (s *Store) Save(r io.Reader, maxBytes int64) (*Logo, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge
	}

	mime := http.DetectContentType(data)
	var ext string
	switch mime {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	default:
		return nil, ErrUnsupportedType
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	path := filepath.Join(s.Dir, s.Names(ext))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	return &Logo{
		Path:   path,
		MIME:   mime,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   int64(len(data)),
	}, nil
}

// Remove deletes a per-request temp file. Failures are logged and never
// escalated: cleanup must not mask the primary response.
func (s *Store) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.Log.Warnw("failed to clean up temp file", "path", path, "error", err)
	}
}

// EnsureDirs creates the upload and output directories at startup.
func EnsureDirs(paths ...string) error {
	for _, p := range paths {
		if err := os.MkdirAll(p, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", p, err)
		}
	}
	return nil
}
