package climate

import (
	"fmt"
	"math"
)

// CorrelationResult is the Pearson correlation of one indicator pair over
// the standardized plot frame. Available is false when the statistic is
// undefined (zero variance, fewer than two rows); R is meaningless then.
type CorrelationResult struct {
	A         string  `json:"a"`
	B         string  `json:"b"`
	R         float64 `json:"r"`
	Strength  string  `json:"strength,omitempty"`
	Direction string  `json:"direction,omitempty"`
	Available bool    `json:"available"`
}

// String renders the result as the summary-panel text line.
func (c CorrelationResult) String() string {
	if !c.Available {
		return fmt.Sprintf("%s & %s: correlation unavailable", c.A, c.B)
	}
	return fmt.Sprintf("%s & %s: r = %.2f (%s, %s correlation)", c.A, c.B, c.R, c.Strength, c.Direction)
}

// Strength thresholds on |r|. Fixed constants, not percentiles.
const (
	strongThreshold   = 0.7
	moderateThreshold = 0.4
)

// Summarize computes the pairwise Pearson coefficient for every unordered
// pair of selected indicators, enumerated i<j over the selection order.
// Columns are standardized (mean 0, sample standard deviation 1) over
// exactly the frame's rows first. An undefined statistic yields an
// unavailable result for that pair only.
func Summarize(frame PlotFrame, selected []string) []CorrelationResult {
	standardized := make(map[string][]float64, len(selected))
	for _, key := range selected {
		standardized[key] = standardize(columnValues(frame, key))
	}

	results := make([]CorrelationResult, 0, len(selected)*(len(selected)-1)/2)
	for i := 0; i < len(selected); i++ {
		for j := i + 1; j < len(selected); j++ {
			a, b := selected[i], selected[j]
			r, ok := pearson(standardized[a], standardized[b])
			if !ok {
				results = append(results, CorrelationResult{A: a, B: b})
				continue
			}
			results = append(results, CorrelationResult{
				A:         a,
				B:         b,
				R:         r,
				Strength:  strengthLabel(r),
				Direction: directionLabel(r),
				Available: true,
			})
		}
	}
	return results
}

func columnValues(frame PlotFrame, col string) []float64 {
	out := make([]float64, 0, len(frame.Points))
	for _, p := range frame.Points {
		if v, ok := p.Values[col]; ok {
			out = append(out, v)
		}
	}
	return out
}

// standardize z-scores a column with the sample standard deviation (n-1).
// A column with zero variance or fewer than two values comes back nil,
// which pearson reports as undefined.
func standardize(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	std := math.Sqrt(sumSq / float64(len(values)-1))
	if std == 0 {
		return nil
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - mean) / std
	}
	return out
}

func pearson(a, b []float64) (float64, bool) {
	if a == nil || b == nil || len(a) != len(b) || len(a) < 2 {
		return 0, false
	}
	var meanA, meanB float64
	for i := range a {
		meanA += a[i]
		meanB += b[i]
	}
	n := float64(len(a))
	meanA /= n
	meanB /= n

	var cov, varA, varB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0, false
	}
	r := cov / math.Sqrt(varA*varB)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

func strengthLabel(r float64) string {
	switch {
	case math.Abs(r) > strongThreshold:
		return "strong"
	case math.Abs(r) > moderateThreshold:
		return "moderate"
	default:
		return "weak"
	}
}

func directionLabel(r float64) string {
	if r > 0 {
		return "positive"
	}
	return "negative"
}
