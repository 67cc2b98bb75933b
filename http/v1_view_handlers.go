package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"climatedash/climate"
)

// handleV1Indicators returns the selectable indicator catalog
// GET /api/v1/indicators?hemisphere=north
func (s *Server) handleV1Indicators(c *gin.Context) {
	if hemiStr := c.Query("hemisphere"); hemiStr != "" {
		hemi, err := climate.ParseHemisphere(hemiStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		indicators := climate.HemisphereIndicators(hemi)
		c.JSON(http.StatusOK, gin.H{
			"data": indicators,
			"meta": gin.H{
				"hemisphere": string(hemi),
				"count":      len(indicators),
			},
		})
		return
	}

	indicators := climate.GlobalIndicators()
	c.JSON(http.StatusOK, gin.H{
		"data": indicators,
		"meta": gin.H{
			"count": len(indicators),
		},
	})
}

// handleV1View returns the indicator chart payload: plot frame points,
// event annotations and the pairwise correlation summary
// GET /api/v1/view?mode=monthly&from=1993&to=2020&indicators=norm_co2,norm_land_ocean_temp
func (s *Server) handleV1View(c *gin.Context) {
	mode := climate.Monthly
	if modeStr := c.Query("mode"); modeStr != "" {
		parsed, err := climate.ParseMode(modeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mode = parsed
	}

	from, to, ok := s.parseYearRange(c)
	if !ok {
		return
	}

	selected, ok := s.parseIndicators(c, climate.GlobalIndicators())
	if !ok {
		return
	}

	frame, annotations, correlations := s.catalog.View(climate.ViewRequest{
		Mode:       mode,
		FromYear:   from,
		ToYear:     to,
		Indicators: selected,
	})

	summary := make([]string, 0, len(correlations))
	for _, r := range correlations {
		summary = append(summary, r.String())
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"points":       frame.Points,
			"columns":      frame.Columns,
			"annotations":  annotations,
			"correlations": correlations,
			"summary":      summary,
		},
		"meta": gin.H{
			"mode":  mode.String(),
			"from":  from,
			"to":    to,
			"count": len(frame.Points),
		},
	})
}

// parseYearRange reads from/to, defaulting to the full span of the loaded
// data. An inverted range is passed through; the core answers it with an
// empty frame.
func (s *Server) parseYearRange(c *gin.Context) (int, int, bool) {
	from := s.catalog.Global.MinYear()
	to := s.catalog.Global.MaxYear()

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := strconv.Atoi(fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from year"})
			return 0, 0, false
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := strconv.Atoi(toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to year"})
			return 0, 0, false
		}
		to = parsed
	}
	return from, to, true
}

// parseIndicators reads the comma-separated indicators parameter and
// validates each key against the given catalog. An absent parameter
// defaults to the first two catalog entries, matching the dashboard's
// initial selection.
func (s *Server) parseIndicators(c *gin.Context, catalog []climate.Indicator) ([]string, bool) {
	raw := c.Query("indicators")
	if raw == "" {
		defaults := make([]string, 0, 2)
		for _, ind := range catalog[:min(2, len(catalog))] {
			defaults = append(defaults, ind.Key)
		}
		return defaults, true
	}

	valid := make(map[string]bool, len(catalog))
	for _, ind := range catalog {
		valid[ind.Key] = true
	}

	selected := make([]string, 0)
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !valid[key] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown indicator: " + key})
			return nil, false
		}
		selected = append(selected, key)
	}
	return selected, true
}
