// Package resolver implements the pixel color lookup pipeline behind the
// /detect-color endpoint.
//
// A request moves through four stages:
//
//  1. Validation: "image", "x" and "y" must all be present as keys.
//  2. Decoding: the image text is stripped of any data-URI header, base64
//     decoded, and decoded into an RGB pixel grid.
//  3. Coordinate resolution: x and y are parsed as floats, truncated toward
//     zero, and clamped into the image.
//  4. Extraction: the R, G, B values at the clamped point are returned.
//
// # Errors
//
// Validation failures are reported as ErrMissingParameter. Every other
// failure, whatever its source, is reported as a *ProcessingFailure naming
// the stage that failed and wrapping the cause. Callers at the HTTP boundary
// map these two kinds onto fixed public messages (MessageMissingParameters,
// MessageProcessingFailed) and keep the wrapped cause for their logs.
package resolver
