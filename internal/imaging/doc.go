// Package imaging decodes base64-transported images and samples pixel colors.
//
// Images arrive as text, either bare base64 or prefixed with a data-URI style
// header ("data:image/png;base64,"). The package strips the header, decodes the
// bytes, and normalizes whatever the source color model was (paletted, gray,
// RGBA with alpha, CMYK, YCbCr) into a single 8-bit RGB view.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Callers never see an out-of-bounds error for a sampled point. Requested
// coordinates are truncated toward zero and clamped into [0, width-1] and
// [0, height-1] independently, so a request for (99, 99) on a 2x2 image
// samples (1, 1).
//
// # Supported Formats
//
// PNG, JPEG and GIF come from the standard library. BMP, TIFF and WebP are
// registered from golang.org/x/image. Decoding goes through
// github.com/disintegration/imaging, which also handles optional EXIF
// auto-orientation.
//
// # Color Representation
//
// Sampled colors are plain 8-bit RGB. Alpha is dropped without compositing
// against a background, matching the usual "convert to RGB" semantics. For
// richer output, Describe adds:
//   - Hex: 6-character format "#RRGGBB"
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - Name: nearest CSS color keyword by CIE Lab distance
//
// # Thread Safety
//
// Nothing in this package holds mutable state. A DecodedImage is read-only
// after Decode returns and may be sampled from multiple goroutines.
package imaging
