package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironsheep/color-detect/internal/resolver"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// handleDetectColor serves POST /detect-color.
//
//	request:  {"image": "<base64 or data URI>", "x": 12, "y": "3.7"}
//	200:      {"r": 255, "g": 0, "b": 0}
//	400:      {"error": "Missing required parameters"}
//	500:      {"error": "Failed to process image"}
func (s *Server) handleDetectColor(c *gin.Context) {
	req, ok := s.bindColorRequest(c)
	if !ok {
		return
	}

	resp, err := s.resolver.Resolve(req)
	if err != nil {
		s.processingFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleDescribeColor serves POST /describe-color. Errors are identical to
// /detect-color.
func (s *Server) handleDescribeColor(c *gin.Context) {
	req, ok := s.bindColorRequest(c)
	if !ok {
		return
	}

	resp, err := s.resolver.Describe(req)
	if err != nil {
		s.processingFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: s.version})
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": Routes()})
}

// bindColorRequest reads and validates the body. On failure it has already
// written the error response and returns false.
func (s *Server) bindColorRequest(c *gin.Context) (*resolver.ColorRequest, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)

	var payload resolver.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		s.processingFailed(c, &resolver.ProcessingFailure{Stage: resolver.StageParse, Err: err})
		return nil, false
	}

	req, err := resolver.ParseRequest(payload)
	if errors.Is(err, resolver.ErrMissingParameter) {
		c.JSON(http.StatusBadRequest, resolver.ErrorResponse{Error: resolver.MessageMissingParameters})
		return nil, false
	}
	if err != nil {
		s.processingFailed(c, err)
		return nil, false
	}
	return req, true
}

// processingFailed logs the cause and writes the generic 500 response. The
// cause never reaches the client.
func (s *Server) processingFailed(c *gin.Context, err error) {
	fields := append(requestContextFields(c), "error", err)
	var pf *resolver.ProcessingFailure
	if errors.As(err, &pf) {
		fields = append(fields, "stage", string(pf.Stage))
	}
	s.logger.Errorw("failed to process image", fields...)

	c.JSON(http.StatusInternalServerError, resolver.ErrorResponse{Error: resolver.MessageProcessingFailed})
}
