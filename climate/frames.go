package climate

import "errors"

// ErrNoIndicators reports an empty indicator selection for the animated
// chart; the caller substitutes a placeholder display instead of rendering
// degenerate frames.
var ErrNoIndicators = errors.New("no indicators selected")

// IndicatorSeries is the cumulative (year, value) trace of one indicator
// within a frame. Years and Values are index-aligned.
type IndicatorSeries struct {
	Indicator string    `json:"indicator"`
	Years     []int     `json:"years"`
	Values    []float64 `json:"values"`
}

// Frame is one animation snapshot, named by its year. Series follows the
// selection order; each series holds every point up to and including the
// frame's year. Frames are immutable once built.
type Frame struct {
	Year   int               `json:"year"`
	Series []IndicatorSeries `json:"series"`
}

// BuildFrames produces one frame per year of the per-year table, ascending.
// The frame for year Y contains, per selected indicator, all (year, value)
// pairs with year <= Y; years where an indicator has no value contribute no
// pair. Built as a single prefix scan: each frame copies the cursor state
// so no frame aliases another's slices.
func BuildFrames(t YearTable, indicators []string) ([]Frame, error) {
	if len(indicators) == 0 {
		return nil, ErrNoIndicators
	}

	years := make([][]int, len(indicators))
	values := make([][]float64, len(indicators))

	frames := make([]Frame, 0, len(t.Rows))
	for _, row := range t.Rows {
		for i, ind := range indicators {
			if v, ok := row.Values[ind]; ok {
				years[i] = append(years[i], row.Year)
				values[i] = append(values[i], v)
			}
		}

		series := make([]IndicatorSeries, len(indicators))
		for i, ind := range indicators {
			ys := make([]int, len(years[i]))
			copy(ys, years[i])
			vs := make([]float64, len(values[i]))
			copy(vs, values[i])
			series[i] = IndicatorSeries{Indicator: ind, Years: ys, Values: vs}
		}
		frames = append(frames, Frame{Year: row.Year, Series: series})
	}
	return frames, nil
}
