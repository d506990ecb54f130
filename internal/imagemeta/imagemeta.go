// Package imagemeta probes image files for their pixel dimensions.
// It registers decoders for the formats HWPX documents embed: PNG,
// JPEG, GIF and BMP.
package imagemeta

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Probe returns the pixel dimensions of the image at path.
func Probe(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("imagemeta: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("imagemeta: decode %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Sizer adapts Probe to the document model's sizing hook.
func Sizer(path string) (width, height int, ok bool) {
	w, h, err := Probe(path)
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}
