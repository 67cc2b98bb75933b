package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"climatedash/climate"
)

// handleV1Frames returns the animated-chart frame sequence for one
// hemisphere's indicator selection
// GET /api/v1/frames?hemisphere=north&indicators=norm_north_co2,norm_msl_north
func (s *Server) handleV1Frames(c *gin.Context) {
	hemi, err := climate.ParseHemisphere(c.DefaultQuery("hemisphere", "north"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	catalog := climate.HemisphereIndicators(hemi)
	var selected []string
	raw, exists := c.GetQuery("indicators")
	switch {
	case !exists:
		// The dashboard pre-selects the whole hemisphere set.
		for _, ind := range catalog {
			selected = append(selected, ind.Key)
		}
	case raw != "":
		var ok bool
		selected, ok = s.parseIndicators(c, catalog)
		if !ok {
			return
		}
	}

	frames, err := s.catalog.Frames(selected)
	if err != nil {
		if errors.Is(err, climate.ErrNoIndicators) {
			// Nothing selected is not an error: the client shows a
			// placeholder instead of an empty chart.
			c.JSON(http.StatusOK, gin.H{
				"data": gin.H{"frames": []climate.Frame{}},
				"meta": gin.H{
					"hemisphere":  string(hemi),
					"placeholder": "Please select at least one indicator to display.",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"frames": frames},
		"meta": gin.H{
			"hemisphere": string(hemi),
			"count":      len(frames),
		},
	})
}
