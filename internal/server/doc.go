// Package server exposes the pixel color resolver over HTTP.
//
// # Endpoints
//
//   - POST /detect-color: color of one pixel of a base64 image
//   - POST /describe-color: same, plus hex, HSL and nearest color name
//   - GET /health: liveness check
//   - GET /: endpoint listing
//
// Request bodies for both color endpoints are JSON:
//
//	{"image": "data:image/png;base64,iVBOR...", "x": 10, "y": "20.5"}
//
// The "image" value may also be bare base64. Coordinates may be numbers or
// numeric strings; they are truncated toward zero and clamped into the image,
// so out-of-range points are never an error.
//
// # Error Handling
//
// Exactly two error bodies exist:
//   - 400 {"error": "Missing required parameters"} when image, x or y is absent
//   - 500 {"error": "Failed to process image"} for anything else, including
//     malformed JSON, bad base64, unknown image formats and oversized bodies
//
// The underlying cause of a 500 is logged with the request id and pipeline
// stage, and is never included in the response.
//
// # Middleware
//
// Every request passes through request id assignment (X-Request-ID is
// honoured or generated), panic recovery, structured request logging via zap,
// and CORS. By default any origin is allowed; OPTIONS preflights get 204.
//
// # Usage
//
//	srv := server.New(cfg, logger, version)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
