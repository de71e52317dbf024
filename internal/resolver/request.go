package resolver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Payload is a request body decoded only far enough to see which keys are
// present. A key with a JSON null value counts as present.
type Payload map[string]json.RawMessage

// ColorRequest is a validated request: the image text and the requested
// coordinates as parsed floats, before truncation and clamping.
type ColorRequest struct {
	Image string
	X     float64
	Y     float64
}

var requiredFields = []string{"image", "x", "y"}

var errNull = errors.New("value is null")

// ParseRequest validates p and converts its fields.
//
// A missing key yields ErrMissingParameter. A key whose value has the wrong
// type (null, a boolean, a non-numeric string) yields a *ProcessingFailure.
func ParseRequest(p Payload) (*ColorRequest, error) {
	for _, k := range requiredFields {
		if _, ok := p[k]; !ok {
			return nil, ErrMissingParameter
		}
	}

	var req ColorRequest
	var err error

	if req.Image, err = parseImage(p["image"]); err != nil {
		return nil, fail(StageParse, fmt.Errorf("image: %w", err))
	}
	if req.X, err = parseCoordinate(p["x"]); err != nil {
		return nil, fail(StageParse, fmt.Errorf("x: %w", err))
	}
	if req.Y, err = parseCoordinate(p["y"]); err != nil {
		return nil, fail(StageParse, fmt.Errorf("y: %w", err))
	}

	return &req, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func parseImage(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", errNull
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

// parseCoordinate accepts a JSON number or a string holding a number, e.g.
// 3, 3.7, "3.7" or " 12 ".
func parseCoordinate(raw json.RawMessage) (float64, error) {
	if isNull(raw) {
		return 0, errNull
	}

	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %w", err)
		}
		return v, nil
	}

	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return 0, err
	}
	return v, nil
}
