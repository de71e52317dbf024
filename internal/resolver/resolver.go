package resolver

import (
	"fmt"

	"github.com/ironsheep/color-detect/internal/imaging"
)

// ColorResponse is the body returned for a successful lookup.
type ColorResponse struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ErrorResponse is the body returned for any failed lookup.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ColorDescription is a ColorResponse with alternate representations of the
// same color and the pixel that was actually sampled.
type ColorDescription struct {
	ColorResponse
	imaging.ColorDetails
	Pixel imaging.Point `json:"pixel"`
}

// Resolver runs the decode-clamp-sample pipeline. It holds only immutable
// decode settings and is safe for concurrent use.
type Resolver struct {
	opts imaging.DecodeOptions
}

// New returns a Resolver that decodes images with opts.
func New(opts imaging.DecodeOptions) *Resolver {
	return &Resolver{opts: opts}
}

// Resolve returns the color of the requested pixel.
//
// The only error type returned is *ProcessingFailure.
func (r *Resolver) Resolve(req *ColorRequest) (*ColorResponse, error) {
	c, _, err := r.sample(req)
	if err != nil {
		return nil, err
	}
	return &ColorResponse{R: c.R, G: c.G, B: c.B}, nil
}

// Describe is Resolve plus hex, HSL and nearest color name.
func (r *Resolver) Describe(req *ColorRequest) (*ColorDescription, error) {
	c, pt, err := r.sample(req)
	if err != nil {
		return nil, err
	}
	return &ColorDescription{
		ColorResponse: ColorResponse{R: c.R, G: c.G, B: c.B},
		ColorDetails:  imaging.Describe(c),
		Pixel:         pt,
	}, nil
}

func (r *Resolver) sample(req *ColorRequest) (c imaging.RGBColor, pt imaging.Point, err error) {
	// A decoder panic on malformed input is reported like any decode error.
	defer func() {
		if p := recover(); p != nil {
			err = fail(StageDecode, fmt.Errorf("panic: %v", p))
		}
	}()

	data, derr := imaging.DecodeBase64(imaging.ExtractPayload(req.Image))
	if derr != nil {
		return c, pt, fail(StageDecode, derr)
	}

	img, derr := imaging.Decode(data, r.opts)
	if derr != nil {
		return c, pt, fail(StageDecode, derr)
	}

	c, pt, serr := img.Sample(req.X, req.Y)
	if serr != nil {
		return c, pt, fail(StageSample, serr)
	}
	return c, pt, nil
}
