// Package imaging decodes and normalizes captured photos.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register GIF format
	"image/jpeg"
	_ "image/png" // Register PNG format
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/Veraticus/tonematch/internal/model"
)

// maxPixels caps the decoded size of an image. A small file can declare
// dimensions whose pixel buffer would not fit in memory.
const maxPixels = 40_000_000

// ErrTooLarge is returned for images with more than maxPixels pixels.
var ErrTooLarge = errors.New("image dimensions too large")

// SupportedExtensions returns the file extensions that can be decoded.
func SupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

// HasSupportedExtension reports whether path looks like a supported image.
func HasSupportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedExtensions(), ext)
}

// Decode validates encoded image bytes and wraps them in an image handle.
// The bytes are kept as-is; only the header is decoded.
func Decode(data []byte, name string, source model.ImageSource) (model.Image, error) {
	if len(data) == 0 {
		return model.Image{}, fmt.Errorf("image data is empty")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return model.Image{}, fmt.Errorf("unsupported or invalid image format: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return model.Image{}, fmt.Errorf("image has invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return model.Image{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, cfg.Width, cfg.Height, maxPixels)
	}

	// DecodeConfig accepts truncated files, so make sure the pixels decode too.
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return model.Image{}, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return model.Image{
		Name:   name,
		Format: format,
		Source: source,
		Data:   data,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// ToJPEG re-encodes an image as JPEG, scaling it down so neither side
// exceeds maxSize. A non-positive maxSize disables scaling.
func ToJPEG(img model.Image, maxSize int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var out image.Image = src
	if maxSize > 0 && (width > maxSize || height > maxSize) {
		var newWidth, newHeight int
		if width > height {
			newWidth = maxSize
			newHeight = max(1, int(float64(height)*float64(maxSize)/float64(width)))
		} else {
			newHeight = maxSize
			newWidth = max(1, int(float64(width)*float64(maxSize)/float64(height)))
		}

		resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(resized, resized.Bounds(), src, bounds, draw.Over, nil)
		out = resized
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
