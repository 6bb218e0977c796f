// Package imaging fits images into bounding boxes while preserving aspect
// ratio, and decodes image dimensions for the supported formats.
package imaging

import (
	"bytes"
	"fmt"
	"image"

	// Registered image formats. The stdlib covers PNG, JPEG, and GIF;
	// golang.org/x/image adds BMP, TIFF, and WebP.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Info describes a decoded image: its pixel dimensions and the detected
// format name ("png", "jpeg", ...).
type Info struct {
	Width  int
	Height int
	Format string
}

// Decode reads the dimensions and format of an image without decoding the
// full pixel data. An error means the data is corrupt or the format is
// unsupported.
func Decode(data []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("decoding image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Info{}, fmt.Errorf("image has degenerate dimensions %dx%d", cfg.Width, cfg.Height)
	}
	return Info{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Fit scales an image of the given dimensions into a bounding box,
// preserving the aspect ratio. The result never exceeds either bound, and
// at least one dimension equals its bound exactly.
//
// With r = width/height and boxR = maxWidth/maxHeight: when r > boxR the
// image is relatively wider than the box, so width binds; otherwise height
// binds.
func Fit(width, height, maxWidth, maxHeight float64) (float64, float64) {
	r := width / height
	boxR := maxWidth / maxHeight
	if r > boxR {
		return maxWidth, maxWidth / r
	}
	return maxHeight * r, maxHeight
}
