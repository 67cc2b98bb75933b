package climate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlyFixture() Table {
	t := Table{Columns: []string{"norm_co2", "co2_anomaly"}}
	for _, year := range []int{1994, 1993} { // deliberately out of order
		for month := 1; month <= 12; month++ {
			t.Rows = append(t.Rows, Row{
				Year:  year,
				Month: month,
				Values: map[string]float64{
					"norm_co2":    float64(month) / 12,
					"co2_anomaly": float64(month),
				},
			})
		}
	}
	return t
}

func TestBuildSeasonalAggregateOrdering(t *testing.T) {
	agg := BuildSeasonalAggregate(monthlyFixture())

	require.Len(t, agg.Rows, 8)
	want := []struct {
		year   int
		season Season
	}{
		{1993, DJF}, {1993, MAM}, {1993, JJA}, {1993, SON},
		{1994, DJF}, {1994, MAM}, {1994, JJA}, {1994, SON},
	}
	for i, w := range want {
		assert.Equal(t, w.year, agg.Rows[i].Year, "row %d", i)
		assert.Equal(t, w.season, agg.Rows[i].Season, "row %d", i)
	}
}

func TestBuildSeasonalAggregateMeans(t *testing.T) {
	agg := BuildSeasonalAggregate(monthlyFixture())

	// DJF of one year groups months 12, 1, 2 of that same year.
	djf := agg.Rows[0]
	require.Equal(t, DJF, djf.Season)
	assert.InDelta(t, (12.0+1+2)/3, djf.Values["co2_anomaly"], 1e-9)

	mam := agg.Rows[1]
	require.Equal(t, MAM, mam.Season)
	assert.InDelta(t, (3.0+4+5)/3, mam.Values["co2_anomaly"], 1e-9)
}

func TestBuildSeasonalAggregateSkipsMissing(t *testing.T) {
	table := Table{
		Columns: []string{"norm_co2"},
		Rows: []Row{
			{Year: 2000, Month: 3, Values: map[string]float64{"norm_co2": 0.2}},
			{Year: 2000, Month: 4, Values: map[string]float64{}}, // missing cell
			{Year: 2000, Month: 5, Values: map[string]float64{"norm_co2": 0.4}},
		},
	}
	agg := BuildSeasonalAggregate(table)

	require.Len(t, agg.Rows, 1)
	assert.InDelta(t, 0.3, agg.Rows[0].Values["norm_co2"], 1e-9)
}

func TestBuildSeasonalAggregateAllMissing(t *testing.T) {
	table := Table{
		Columns: []string{"norm_co2"},
		Rows: []Row{
			{Year: 2000, Month: 6, Values: map[string]float64{}},
		},
	}
	agg := BuildSeasonalAggregate(table)

	require.Len(t, agg.Rows, 1)
	_, ok := agg.Rows[0].Values["norm_co2"]
	assert.False(t, ok, "column with no observed months stays missing")
}

func TestGroupByYear(t *testing.T) {
	table := Table{
		Columns: []string{"norm_north_co2"},
		Rows: []Row{
			{Year: 1995, Month: 1, Values: map[string]float64{"norm_north_co2": 0.5}},
			{Year: 1994, Month: 1, Values: map[string]float64{"norm_north_co2": 0.1}},
			{Year: 1994, Month: 2, Values: map[string]float64{"norm_north_co2": 0.3}},
		},
	}
	yearly := table.GroupByYear()

	require.Len(t, yearly.Rows, 2)
	assert.Equal(t, 1994, yearly.Rows[0].Year)
	assert.InDelta(t, 0.2, yearly.Rows[0].Values["norm_north_co2"], 1e-9)
	assert.Equal(t, 1995, yearly.Rows[1].Year)
	assert.InDelta(t, 0.5, yearly.Rows[1].Values["norm_north_co2"], 1e-9)
}
