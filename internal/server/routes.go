package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route describes one endpoint. The table is served at GET / so clients can
// discover what the service offers.
type Route struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`

	handler func(*Server) gin.HandlerFunc
}

// Routes returns every endpoint the server registers.
func Routes() []Route {
	return []Route{
		{
			Method:      http.MethodPost,
			Path:        "/detect-color",
			Description: `Return {"r","g","b"} for the pixel at (x, y) of a base64 image. Out-of-range coordinates are clamped to the nearest edge pixel.`,
			handler:     func(s *Server) gin.HandlerFunc { return s.handleDetectColor },
		},
		{
			Method:      http.MethodPost,
			Path:        "/describe-color",
			Description: "Same request as /detect-color; the response adds hex, HSL, the nearest color name and the pixel actually sampled.",
			handler:     func(s *Server) gin.HandlerFunc { return s.handleDescribeColor },
		},
		{
			Method:      http.MethodGet,
			Path:        "/health",
			Description: "Liveness check.",
			handler:     func(s *Server) gin.HandlerFunc { return s.handleHealth },
		},
		{
			Method:      http.MethodGet,
			Path:        "/",
			Description: "List available endpoints.",
			handler:     func(s *Server) gin.HandlerFunc { return s.handleIndex },
		},
	}
}

func (s *Server) registerRoutes(r gin.IRouter) {
	for _, rt := range Routes() {
		r.Handle(rt.Method, rt.Path, rt.handler(s))
	}
}
