package climate

import "sort"

// SeasonalRow is the mean of every value column over the months of one
// (year, season) group.
type SeasonalRow struct {
	Year   int
	Season Season
	Values map[string]float64
}

// SeasonalTable is the seasonal aggregate, ordered by year ascending and
// season in fixed chart order within each year.
type SeasonalTable struct {
	Columns []string
	Rows    []SeasonalRow
}

// BuildSeasonalAggregate groups a monthly table by (year, season) and takes
// the arithmetic mean of every value column within each group, skipping
// missing cells. Months with an out-of-range month value are skipped; the
// loaders reject such rows before this point.
//
// December groups under its own calendar year (1997-12 lands in DJF 1997,
// not DJF 1998). The ordering is by year then fixed season order, never by
// first appearance.
func BuildSeasonalAggregate(t Table) SeasonalTable {
	type key struct {
		year   int
		season Season
	}
	type acc struct {
		sum   map[string]float64
		count map[string]int
	}
	groups := make(map[key]*acc)
	keys := make([]key, 0)

	for _, r := range t.Rows {
		season, err := SeasonOf(r.Month)
		if err != nil {
			continue
		}
		k := key{year: r.Year, season: season}
		g, ok := groups[k]
		if !ok {
			g = &acc{sum: make(map[string]float64), count: make(map[string]int)}
			groups[k] = g
			keys = append(keys, k)
		}
		for _, col := range t.Columns {
			if v, ok := r.Values[col]; ok {
				g.sum[col] += v
				g.count[col]++
			}
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].season < keys[j].season
	})

	out := SeasonalTable{Columns: t.Columns, Rows: make([]SeasonalRow, 0, len(keys))}
	for _, k := range keys {
		g := groups[k]
		values := make(map[string]float64, len(t.Columns))
		for _, col := range t.Columns {
			if n := g.count[col]; n > 0 {
				values[col] = g.sum[col] / float64(n)
			}
		}
		out.Rows = append(out.Rows, SeasonalRow{Year: k.year, Season: k.season, Values: values})
	}
	return out
}
