package climate

import "sort"

// Row is one monthly observation. Values holds the numeric columns by name;
// a column absent from the map is missing for that month.
type Row struct {
	Year   int
	Month  int
	Values map[string]float64
}

// Value returns the named column value and whether it is present.
func (r Row) Value(col string) (float64, bool) {
	v, ok := r.Values[col]
	return v, ok
}

// Table is an in-memory monthly series. Columns preserves the source column
// order so that derived tables and exports are deterministic.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table carries the named value column.
func (t Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// FilterYears returns the rows with from <= year <= to, preserving order.
// An inverted range yields an empty table, not an error.
func (t Table) FilterYears(from, to int) Table {
	out := Table{Columns: t.Columns, Rows: make([]Row, 0, len(t.Rows))}
	for _, r := range t.Rows {
		if r.Year >= from && r.Year <= to {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// YearRow is one per-year aggregate row.
type YearRow struct {
	Year   int
	Values map[string]float64
}

// YearTable is a per-year aggregate, years ascending.
type YearTable struct {
	Columns []string
	Rows    []YearRow
}

// GroupByYear averages every value column per year, skipping missing cells,
// and returns the rows in ascending year order.
func (t Table) GroupByYear() YearTable {
	type acc struct {
		sum   map[string]float64
		count map[string]int
	}
	groups := make(map[int]*acc)
	years := make([]int, 0)

	for _, r := range t.Rows {
		g, ok := groups[r.Year]
		if !ok {
			g = &acc{sum: make(map[string]float64), count: make(map[string]int)}
			groups[r.Year] = g
			years = append(years, r.Year)
		}
		for _, col := range t.Columns {
			if v, ok := r.Values[col]; ok {
				g.sum[col] += v
				g.count[col]++
			}
		}
	}
	sort.Ints(years)

	out := YearTable{Columns: t.Columns, Rows: make([]YearRow, 0, len(years))}
	for _, y := range years {
		g := groups[y]
		values := make(map[string]float64, len(t.Columns))
		for _, col := range t.Columns {
			if n := g.count[col]; n > 0 {
				values[col] = g.sum[col] / float64(n)
			}
		}
		out.Rows = append(out.Rows, YearRow{Year: y, Values: values})
	}
	return out
}

// MinYear returns the smallest year in the table, or 0 for an empty table.
func (t Table) MinYear() int {
	if len(t.Rows) == 0 {
		return 0
	}
	min := t.Rows[0].Year
	for _, r := range t.Rows[1:] {
		if r.Year < min {
			min = r.Year
		}
	}
	return min
}

// MaxYear returns the largest year in the table, or 0 for an empty table.
func (t Table) MaxYear() int {
	if len(t.Rows) == 0 {
		return 0
	}
	max := t.Rows[0].Year
	for _, r := range t.Rows[1:] {
		if r.Year > max {
			max = r.Year
		}
	}
	return max
}
