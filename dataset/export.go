package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"climatedash/climate"
)

// ExportFilename is the download name of the filtered export.
const ExportFilename = "filtered_climate_data.csv"

// WriteCSV emits the raw rows of the table with from <= year <= to as
// delimited text: a header of year, month and the source value columns,
// then one row per observation in source order. Missing cells are written
// empty; values keep their full precision so a reload reproduces the
// source exactly.
func WriteCSV(w io.Writer, t climate.Table, from, to int) error {
	writer := csv.NewWriter(w)

	header := append([]string{"year", "month"}, t.Columns...)
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, r := range t.Rows {
		if r.Year < from || r.Year > to {
			continue
		}
		record[0] = strconv.Itoa(r.Year)
		record[1] = strconv.Itoa(r.Month)
		for i, col := range t.Columns {
			if v, ok := r.Values[col]; ok {
				record[i+2] = strconv.FormatFloat(v, 'f', -1, 64)
			} else {
				record[i+2] = ""
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
