package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"climatedash/dataset"
)

// handleV1Export streams the raw global rows of the filtered window as a
// CSV download
// GET /api/v1/export?from=1993&to=2020
func (s *Server) handleV1Export(c *gin.Context) {
	from, to, ok := s.parseYearRange(c)
	if !ok {
		return
	}

	// Render to a buffer first so a failure never leaves the client with a
	// partial file.
	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, s.catalog.Global, from, to); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+dataset.ExportFilename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
