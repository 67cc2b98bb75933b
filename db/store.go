package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"climatedash/climate"
)

// Store wraps database access for the Postgres-backed dataset source.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

var globalColumns = []string{
	"co2_anomaly", "land_ocean_anomaly", "land_anomaly", "msl_mm",
	"norm_co2", "norm_land_ocean_temp", "norm_land_temp", "norm_sea_level",
}

const globalMonthlySQL = `
    SELECT year, month,
           co2_anomaly, land_ocean_anomaly, land_anomaly, msl_mm,
           norm_co2, norm_land_ocean_temp, norm_land_temp, norm_sea_level
    FROM climate.global_monthly
    ORDER BY year, month
`

// LoadGlobal reads the global monthly table, ordered by (year, month).
func (s *Store) LoadGlobal(ctx context.Context) (climate.Table, error) {
	return s.loadMonthly(ctx, globalMonthlySQL, globalColumns)
}

var hemisphericColumns = []string{
	"norm_north_co2", "norm_north_land", "norm_north_land_ocean", "norm_msl_north",
	"norm_south_co2", "norm_south_land", "norm_south_land_ocean", "norm_msl_south",
}

const hemisphericMonthlySQL = `
    SELECT year, month,
           norm_north_co2, norm_north_land, norm_north_land_ocean, norm_msl_north,
           norm_south_co2, norm_south_land, norm_south_land_ocean, norm_msl_south
    FROM climate.hemispheric_monthly
    ORDER BY year, month
`

// LoadHemispheric reads the hemispheric monthly table, ordered by
// (year, month).
func (s *Store) LoadHemispheric(ctx context.Context) (climate.Table, error) {
	return s.loadMonthly(ctx, hemisphericMonthlySQL, hemisphericColumns)
}

// loadMonthly scans (year, month, values...) rows into a Table. NULL cells
// become missing values, matching the CSV loader.
func (s *Store) loadMonthly(ctx context.Context, sql string, columns []string) (climate.Table, error) {
	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return climate.Table{}, err
	}
	defer rows.Close()

	table := climate.Table{Columns: columns}
	for rows.Next() {
		var year, month int
		cells := make([]*float64, len(columns))
		dest := make([]any, 0, len(columns)+2)
		dest = append(dest, &year, &month)
		for i := range cells {
			dest = append(dest, &cells[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return climate.Table{}, err
		}

		values := make(map[string]float64, len(columns))
		for i, col := range columns {
			if cells[i] != nil {
				values[col] = *cells[i]
			}
		}
		table.Rows = append(table.Rows, climate.Row{Year: year, Month: month, Values: values})
	}
	if err := rows.Err(); err != nil {
		return climate.Table{}, err
	}
	if len(table.Rows) == 0 {
		return climate.Table{}, errors.New("no data rows")
	}
	return table, nil
}
