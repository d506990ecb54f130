package model

import (
	"path/filepath"
	"strings"
)

// UnitsPerPixel converts source pixels to HWPML length units at the
// assumed 96 DPI baseline.
const UnitsPerPixel = 75

// ImageSizer probes an image file for its natural pixel dimensions.
// It reports ok=false when the dimensions cannot be determined; the
// model then falls back to caller-supplied dimensions. The capability
// is injected so the model carries no imaging dependency of its own.
type ImageSizer func(path string) (width, height int, ok bool)

// Image references an external image file embedded in a section. The
// source file itself is not owned; the writer copies its bytes into the
// archive under the BinaryID at save time.
type Image struct {
	ID       string
	Path     string // source file path
	BinaryID string // BinData cross-reference, e.g. "image1"

	// Dimensions in HWPML length units.
	Width      int
	Height     int
	OrigWidth  int
	OrigHeight int

	MediaType string // e.g. "image/png"
}

// mediaTypes maps known image extensions to their media types.
var mediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
}

// MediaTypeForPath resolves the media type from a file extension.
// Unknown extensions default to PNG, matching consumer behavior.
func MediaTypeForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := mediaTypes[ext]; ok {
		return mt
	}
	return "image/png"
}
