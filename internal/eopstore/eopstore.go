// Package eopstore caches parsed IERS Earth orientation rows in a local
// SQLite database, so services can restart without refetching and reparsing
// the finals CSV.
package eopstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/signalsfoundry/astrotime/earth"
	"github.com/signalsfoundry/astrotime/internal/logging"
)

// Store is a SQLite-backed cache of finals2000A rows.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the cache database and initializes the schema.
func Open(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open eop cache: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate eop cache: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS eop_rows (
		mjd     REAL PRIMARY KEY,
		ut1_tai REAL,
		x_pole  REAL,
		y_pole  REAL,
		dx      REAL,
		dy      REAL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Replace atomically swaps the cached table for the given rows.
func (s *Store) Replace(rows []earth.EOPRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM eop_rows`); err != nil {
		return fmt.Errorf("clear eop cache: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO eop_rows (mjd, ut1_tai, x_pole, y_pole, dx, dy) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.Exec(row.MJD,
			nullable(row.UT1TAI), nullable(row.XPole), nullable(row.YPole),
			nullable(row.DX), nullable(row.DY))
		if err != nil {
			return fmt.Errorf("insert MJD %g: %w", row.MJD, err)
		}
	}
	return tx.Commit()
}

// Rows returns the cached table ordered by date.
func (s *Store) Rows() ([]earth.EOPRow, error) {
	rows, err := s.db.Query(
		`SELECT mjd, ut1_tai, x_pole, y_pole, dx, dy FROM eop_rows ORDER BY mjd`)
	if err != nil {
		return nil, fmt.Errorf("query eop cache: %w", err)
	}
	defer rows.Close()

	var out []earth.EOPRow
	for rows.Next() {
		var (
			row                          earth.EOPRow
			ut1TAI, xPole, yPole, dx, dy sql.NullFloat64
		)
		if err := rows.Scan(&row.MJD, &ut1TAI, &xPole, &yPole, &dx, &dy); err != nil {
			return nil, fmt.Errorf("scan eop row: %w", err)
		}
		row.UT1TAI = fromNullable(ut1TAI)
		row.XPole = fromNullable(xPole)
		row.YPole = fromNullable(yPole)
		row.DX = fromNullable(dx)
		row.DY = fromNullable(dy)
		out = append(out, row)
	}
	return out, rows.Err()
}

// Count returns the number of cached rows.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM eop_rows`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count eop rows: %w", err)
	}
	return n, nil
}

// Provider builds an EOP provider from the cached rows.
func (s *Store) Provider() (*earth.EOPProvider, error) {
	rows, err := s.Rows()
	if err != nil {
		return nil, err
	}
	return earth.NewEOPProvider(rows)
}

// RefreshFromCSV parses the finals CSV at path and replaces the cached
// table, returning the number of rows stored.
func (s *Store) RefreshFromCSV(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening finals CSV: %w", err)
	}
	defer f.Close()

	rows, err := earth.ParseFinalsRows(f)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := s.Replace(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// LoadOrRefresh serves the provider from the cache when it has rows and
// falls back to parsing (and caching) the finals CSV otherwise. The returned
// flag reports whether the cache was refreshed.
func LoadOrRefresh(ctx context.Context, s *Store, csvPath string, log logging.Logger) (*earth.EOPProvider, bool, error) {
	if log == nil {
		log = logging.Noop()
	}
	n, err := s.Count()
	if err != nil {
		return nil, false, err
	}
	if n > 0 {
		p, err := s.Provider()
		if err != nil {
			return nil, false, err
		}
		log.Info(ctx, "loaded Earth orientation data from cache", logging.Int("rows", n))
		return p, false, nil
	}

	n, err = s.RefreshFromCSV(csvPath)
	if err != nil {
		return nil, false, err
	}
	p, err := s.Provider()
	if err != nil {
		return nil, false, err
	}
	log.Info(ctx, "cached Earth orientation data",
		logging.String("path", csvPath), logging.Int("rows", n))
	return p, true, nil
}

func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func fromNullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
