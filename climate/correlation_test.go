package climate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameFromColumns(columns map[string][]float64, order []string) PlotFrame {
	n := 0
	for _, vs := range columns {
		n = len(vs)
		break
	}
	frame := PlotFrame{Columns: order}
	for i := 0; i < n; i++ {
		values := make(map[string]float64, len(columns))
		for col, vs := range columns {
			values[col] = vs[i]
		}
		frame.Points = append(frame.Points, PlotPoint{Year: 2000 + i, Values: values})
	}
	return frame
}

func TestSummarizePerfectCorrelation(t *testing.T) {
	frame := frameFromColumns(map[string][]float64{
		"a": {1, 2, 3, 4},
		"b": {10, 20, 30, 40},
	}, []string{"a", "b"})

	results := Summarize(frame, []string{"a", "b"})
	require.Len(t, results, 1)
	require.True(t, results[0].Available)
	assert.InDelta(t, 1.0, results[0].R, 1e-9)
	assert.Equal(t, "strong", results[0].Strength)
	assert.Equal(t, "positive", results[0].Direction)
}

func TestSummarizeNegativeCorrelation(t *testing.T) {
	frame := frameFromColumns(map[string][]float64{
		"a": {1, 2, 3, 4},
		"b": {8, 6, 4, 2},
	}, []string{"a", "b"})

	results := Summarize(frame, []string{"a", "b"})
	require.Len(t, results, 1)
	require.True(t, results[0].Available)
	assert.InDelta(t, -1.0, results[0].R, 1e-9)
	assert.Equal(t, "strong", results[0].Strength)
	assert.Equal(t, "negative", results[0].Direction)
}

func TestSummarizeBounds(t *testing.T) {
	frame := frameFromColumns(map[string][]float64{
		"a": {1, 5, 2, 8, 3},
		"b": {4, 1, 7, 2, 9},
		"c": {2, 2, 3, 5, 1},
	}, []string{"a", "b", "c"})

	results := Summarize(frame, []string{"a", "b", "c"})
	require.Len(t, results, 3)
	for _, r := range results {
		require.True(t, r.Available)
		assert.LessOrEqual(t, math.Abs(r.R), 1.0+1e-12, "%s & %s", r.A, r.B)
	}
}

func TestSummarizePairOrdering(t *testing.T) {
	frame := frameFromColumns(map[string][]float64{
		"x": {1, 2, 3},
		"y": {2, 4, 6},
		"z": {3, 1, 2},
	}, []string{"x", "y", "z"})

	results := Summarize(frame, []string{"x", "y", "z"})
	require.Len(t, results, 3)
	assert.Equal(t, "x", results[0].A)
	assert.Equal(t, "y", results[0].B)
	assert.Equal(t, "x", results[1].A)
	assert.Equal(t, "z", results[1].B)
	assert.Equal(t, "y", results[2].A)
	assert.Equal(t, "z", results[2].B)
}

func TestSummarizeZeroVarianceUnavailable(t *testing.T) {
	frame := frameFromColumns(map[string][]float64{
		"flat": {5, 5, 5, 5},
		"b":    {1, 2, 3, 4},
	}, []string{"flat", "b"})

	results := Summarize(frame, []string{"flat", "b"})
	require.Len(t, results, 1)
	assert.False(t, results[0].Available)
	assert.Equal(t, "flat & b: correlation unavailable", results[0].String())
}

func TestSummarizeTooFewRowsUnavailable(t *testing.T) {
	frame := frameFromColumns(map[string][]float64{
		"a": {1},
		"b": {2},
	}, []string{"a", "b"})

	results := Summarize(frame, []string{"a", "b"})
	require.Len(t, results, 1)
	assert.False(t, results[0].Available)
}

func TestSummarizeSingleIndicator(t *testing.T) {
	frame := frameFromColumns(map[string][]float64{"a": {1, 2, 3}}, []string{"a"})

	assert.Empty(t, Summarize(frame, []string{"a"}))
}

func TestCorrelationResultText(t *testing.T) {
	r := CorrelationResult{
		A: "norm_co2", B: "norm_sea_level",
		R: 0.853, Strength: "strong", Direction: "positive", Available: true,
	}
	assert.Equal(t, "norm_co2 & norm_sea_level: r = 0.85 (strong, positive correlation)", r.String())
}
