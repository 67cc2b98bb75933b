// Package dataset loads the monthly climate tables and serves the filtered
// CSV export. Tables are loaded once at startup and never mutated.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"climatedash/climate"
)

// LoadCSV reads one monthly table from a CSV file. The header must name a
// year and a month column; every other column is a numeric value column.
func LoadCSV(path string) (climate.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return climate.Table{}, err
	}
	defer file.Close()

	table, err := LoadCSVFromReader(file)
	if err != nil {
		return climate.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// LoadCSVFromReader reads one monthly table from an io.Reader. Empty, NA,
// NaN and null cells are missing values; anything else that fails to parse
// is a malformed row and aborts the load.
func LoadCSVFromReader(r io.Reader) (climate.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return climate.Table{}, fmt.Errorf("read header: %w", err)
	}

	yearIdx, monthIdx := -1, -1
	columns := make([]string, 0, len(header))
	colIdx := make([]int, 0, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		switch strings.ToLower(h) {
		case "year":
			yearIdx = i
		case "month":
			monthIdx = i
		default:
			columns = append(columns, h)
			colIdx = append(colIdx, i)
		}
	}
	if yearIdx == -1 || monthIdx == -1 {
		return climate.Table{}, errors.New("header must contain year and month columns")
	}

	table := climate.Table{Columns: columns}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return climate.Table{}, err
		}
		line++

		year, err := strconv.Atoi(cell(record, yearIdx))
		if err != nil {
			return climate.Table{}, fmt.Errorf("line %d: invalid year %q", line, cell(record, yearIdx))
		}
		month, err := strconv.Atoi(cell(record, monthIdx))
		if err != nil {
			return climate.Table{}, fmt.Errorf("line %d: invalid month %q", line, cell(record, monthIdx))
		}
		if month < 1 || month > 12 {
			return climate.Table{}, fmt.Errorf("line %d: month %d out of range", line, month)
		}

		values := make(map[string]float64, len(columns))
		for j, col := range columns {
			raw := cell(record, colIdx[j])
			if isMissing(raw) {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return climate.Table{}, fmt.Errorf("line %d: invalid value %q in column %s", line, raw, col)
			}
			values[col] = v
		}
		table.Rows = append(table.Rows, climate.Row{Year: year, Month: month, Values: values})
	}

	if len(table.Rows) == 0 {
		return climate.Table{}, errors.New("no data rows")
	}
	return table, nil
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(strings.Trim(record[idx], "\""))
}

func isMissing(s string) bool {
	switch s {
	case "", "NA", "NaN", "nan", "null":
		return true
	default:
		return false
	}
}
