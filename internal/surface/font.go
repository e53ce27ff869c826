package surface

import (
	"fmt"
	"os"
)

// systemFonts are tried in order when no font path is configured.
var systemFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// resolveFont returns the configured font path if it exists, otherwise
// the first usable system font.
func resolveFont(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured, nil
		}
		return "", fmt.Errorf("configured font not found: %s", configured)
	}

	for _, path := range systemFonts {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no usable TTF font found")
}
