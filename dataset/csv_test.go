package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climatedash/climate"
)

const sampleCSV = `year,month,co2_anomaly,norm_co2
1993,1,1.25,0.1
1993,2,NA,0.2
1994,1,2.5,
2020,12,3.75,0.9
`

func TestLoadCSVFromReader(t *testing.T) {
	table, err := LoadCSVFromReader(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"co2_anomaly", "norm_co2"}, table.Columns)
	require.Len(t, table.Rows, 4)

	assert.Equal(t, 1993, table.Rows[0].Year)
	assert.Equal(t, 1, table.Rows[0].Month)
	assert.Equal(t, 1.25, table.Rows[0].Values["co2_anomaly"])

	_, ok := table.Rows[1].Values["co2_anomaly"]
	assert.False(t, ok, "NA is a missing value")
	_, ok = table.Rows[2].Values["norm_co2"]
	assert.False(t, ok, "empty cell is a missing value")
}

func TestLoadCSVFromReaderMalformed(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{"no year column", "month,norm_co2\n1,0.5\n"},
		{"bad year", "year,month,norm_co2\nabc,1,0.5\n"},
		{"bad month", "year,month,norm_co2\n1993,13,0.5\n"},
		{"bad value", "year,month,norm_co2\n1993,1,bogus\n"},
		{"no rows", "year,month,norm_co2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCSVFromReader(strings.NewReader(tc.csv))
			assert.Error(t, err)
		})
	}
}

func TestExportRoundTrip(t *testing.T) {
	source := climate.Table{Columns: []string{"co2_anomaly", "norm_co2"}}
	for year := 1990; year <= 2022; year++ {
		source.Rows = append(source.Rows, climate.Row{
			Year:  year,
			Month: 6,
			Values: map[string]float64{
				"co2_anomaly": float64(year) + 0.123456789,
				"norm_co2":    float64(year-1990) / 32,
			},
		})
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, source, 1993, 2020))

	reloaded, err := LoadCSVFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, source.Columns, reloaded.Columns)
	require.Len(t, reloaded.Rows, 2020-1993+1)
	for i, r := range reloaded.Rows {
		year := 1993 + i
		assert.Equal(t, year, r.Year)
		assert.Equal(t, 6, r.Month)
		assert.Equal(t, float64(year)+0.123456789, r.Values["co2_anomaly"], "raw values survive unchanged")
	}
}

func TestExportMissingCells(t *testing.T) {
	source := climate.Table{
		Columns: []string{"co2_anomaly"},
		Rows: []climate.Row{
			{Year: 2000, Month: 1, Values: map[string]float64{"co2_anomaly": 1.5}},
			{Year: 2000, Month: 2, Values: map[string]float64{}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, source, 2000, 2000))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "year,month,co2_anomaly", lines[0])
	assert.Equal(t, "2000,1,1.5", lines[1])
	assert.Equal(t, "2000,2,", lines[2])
}

func TestExportInvertedRange(t *testing.T) {
	source := climate.Table{
		Columns: []string{"norm_co2"},
		Rows: []climate.Row{
			{Year: 2000, Month: 1, Values: map[string]float64{"norm_co2": 0.5}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, source, 2001, 1999))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1, "header only")
}
