package http

// registerV1Routes sets up the v1 API structure.
// Groups: /api/v1/indicators, /api/v1/view, /api/v1/frames, /api/v1/export
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	// Indicator catalog - global set or one hemisphere's set
	v1.GET("/indicators", s.handleV1Indicators)

	// Indicator chart - plot frame, annotations and correlation summary
	v1.GET("/view", s.handleV1View)

	// Animated chart - cumulative per-year frames
	v1.GET("/frames", s.handleV1Frames)

	// Filtered raw-row CSV download
	v1.GET("/export", s.handleV1Export)
}
