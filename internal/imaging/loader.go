package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DefaultMaxPixels bounds width*height of an accepted image. The header is
// inspected before any pixel buffer is allocated.
const DefaultMaxPixels = 100_000_000

var (
	// ErrEmptyPayload is returned when the image text carries no data.
	ErrEmptyPayload = errors.New("empty image payload")

	// ErrImageTooLarge is returned when the decoded dimensions exceed the
	// configured pixel budget.
	ErrImageTooLarge = errors.New("image exceeds pixel limit")

	// ErrEmptyImage is returned for images with zero width or height.
	ErrEmptyImage = errors.New("image has no pixels")
)

// DecodeOptions controls how raw image bytes are turned into pixels.
type DecodeOptions struct {
	// AutoOrient applies the EXIF orientation tag of JPEG images before
	// sampling. Off by default so coordinates address the stored pixel grid.
	AutoOrient bool

	// MaxPixels is the largest width*height accepted. Zero means
	// DefaultMaxPixels.
	MaxPixels int
}

// DecodedImage is an image normalized to 8-bit non-premultiplied RGBA with
// its origin at (0,0). It lives only for the duration of one request.
type DecodedImage struct {
	// Format is the name reported by the registered decoder: "png", "jpeg",
	// "gif", "bmp", "tiff" or "webp".
	Format string

	pix *image.NRGBA
}

// Width returns the image width in pixels.
func (d *DecodedImage) Width() int { return d.pix.Rect.Dx() }

// Height returns the image height in pixels.
func (d *DecodedImage) Height() int { return d.pix.Rect.Dy() }

// ExtractPayload returns the base64 portion of an image string.
//
// If the string contains a comma, as in "data:image/png;base64,iVBOR...",
// only the text after the first comma is returned. Strings without a comma
// are returned unchanged.
func ExtractPayload(s string) string {
	if _, after, found := strings.Cut(s, ","); found {
		return after
	}
	return s
}

// DecodeBase64 decodes standard-alphabet base64 text into bytes.
//
// Embedded whitespace (line wrapping from some encoders) is ignored and the
// trailing '=' padding is optional.
func DecodeBase64(payload string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			return -1
		}
		return r
	}, payload)
	cleaned = strings.TrimRight(cleaned, "=")
	if cleaned == "" {
		return nil, ErrEmptyPayload
	}

	data, err := base64.RawStdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return data, nil
}

// Decode interprets data as an encoded image and normalizes it to RGB.
//
// # Errors
//
//   - ErrEmptyPayload if data is empty
//   - ErrImageTooLarge if width*height exceeds opts.MaxPixels
//   - ErrEmptyImage if either dimension is zero
//   - a wrapped decoder error for unrecognized or corrupt data
func Decode(data []byte, opts DecodeOptions) (*DecodedImage, error) {
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	maxPixels := opts.MaxPixels
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrEmptyImage
	}
	if cfg.Width > maxPixels/cfg.Height {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(opts.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(img, format)
}

// FromImage wraps an already decoded image, copying its pixels into an
// NRGBA buffer anchored at (0,0).
func FromImage(img image.Image, format string) (*DecodedImage, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return &DecodedImage{
		Format: format,
		pix:    imaging.Clone(img),
	}, nil
}
