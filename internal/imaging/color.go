package imaging

import (
	"errors"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidCoordinate is returned for NaN or infinite coordinates, which
// have no integer truncation.
var ErrInvalidCoordinate = errors.New("coordinate is not a finite number")

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorDetails holds the alternate representations returned by Describe.
type ColorDetails struct {
	Hex  string   `json:"hex"`  // Hex format "#RRGGBB"
	HSL  HSLColor `json:"hsl"`  // HSL representation
	Name string   `json:"name"` // Nearest CSS color keyword
}

// At returns the RGB color of the pixel at (x, y).
//
// The coordinates must already be inside the image; use ClampPoint to map
// arbitrary input onto a valid pixel. Alpha is discarded as stored, without
// blending against a background.
func (d *DecodedImage) At(x, y int) RGBColor {
	i := d.pix.PixOffset(x, y)
	p := d.pix.Pix[i : i+3 : i+3]
	return RGBColor{R: p[0], G: p[1], B: p[2]}
}

// ClampPoint truncates x and y toward zero and clamps each independently
// into the pixel grid of a width x height image:
//
//	x' = max(0, min(width-1, trunc(x)))
//	y' = max(0, min(height-1, trunc(y)))
//
// Values far outside the image are not an error. Only non-finite input is
// rejected with ErrInvalidCoordinate.
func ClampPoint(x, y float64, width, height int) (int, int, error) {
	cx, err := clampAxis(x, width)
	if err != nil {
		return 0, 0, err
	}
	cy, err := clampAxis(y, height)
	if err != nil {
		return 0, 0, err
	}
	return cx, cy, nil
}

// clampAxis works in float64 so that huge inputs never overflow int.
func clampAxis(v float64, size int) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidCoordinate
	}
	t := math.Trunc(v)
	if t < 0 {
		return 0, nil
	}
	if last := float64(size - 1); t > last {
		return size - 1, nil
	}
	return int(t), nil
}

// Sample clamps (x, y) into the image and returns the color there along with
// the pixel that was actually read.
func (d *DecodedImage) Sample(x, y float64) (RGBColor, Point, error) {
	cx, cy, err := ClampPoint(x, y, d.Width(), d.Height())
	if err != nil {
		return RGBColor{}, Point{}, err
	}
	return d.At(cx, cy), Point{X: cx, Y: cy}, nil
}

// Point is a pixel position inside an image.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Describe converts an RGB color into hex, HSL and its nearest named color.
func Describe(c RGBColor) ColorDetails {
	cf := c.colorful()
	h, s, l := cf.Hsl()
	return ColorDetails{
		Hex:  strings.ToUpper(cf.Hex()),
		HSL:  HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Name: NearestName(c),
	}
}

func (c RGBColor) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
