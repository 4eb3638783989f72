package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

// ErrNotFound is returned when a catalog lookup matches no planet.
var ErrNotFound = errors.New("planet not found in catalog")

// schema is executed on every open; IF NOT EXISTS keeps it idempotent.
// Column names mirror the NASA Exoplanet Archive export.
const schema = `
CREATE TABLE IF NOT EXISTS planets (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    pl_name         TEXT NOT NULL UNIQUE,
    hostname        TEXT,
    sy_dist         REAL,
    pl_orbper       REAL,
    pl_rade         REAL,
    pl_bmasse       REAL,
    pl_eqt          REAL,
    pl_orbsmax      REAL,
    pl_orbeccen     REAL,
    st_spectype     TEXT,
    st_teff         REAL,
    st_rad          REAL,
    st_mass         REAL,
    disc_year       INTEGER,
    discoverymethod TEXT,
    created_at      TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_pl_name ON planets(pl_name);
CREATE INDEX IF NOT EXISTS idx_disc_year ON planets(disc_year);
CREATE INDEX IF NOT EXISTS idx_pl_rade ON planets(pl_rade);
CREATE INDEX IF NOT EXISTS idx_pl_eqt ON planets(pl_eqt);
`

// Store is a local SQLite planet catalog.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a catalog database and ensures the schema exists.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("dataset: open catalog: %w", err)
	}

	// One connection sidesteps SQLITE_BUSY between pooled connections;
	// the catalog has a single writer anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("dataset: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("dataset: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ImportResult summarizes a batch import.
type ImportResult struct {
	Inserted int
	Skipped  int
}

// Import inserts records into the catalog, skipping duplicates by planet
// name. Runs in a single transaction.
func (s *Store) Import(ctx context.Context, records []planet.Record) (ImportResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportResult{}, fmt.Errorf("dataset: begin import: %w", err)
	}
	defer tx.Rollback()

	const q = `
		INSERT OR IGNORE INTO planets (
			pl_name, hostname, sy_dist, pl_orbper, pl_rade, pl_bmasse,
			pl_eqt, pl_orbsmax, pl_orbeccen, st_spectype, st_teff,
			st_rad, st_mass, disc_year, discoverymethod
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return ImportResult{}, fmt.Errorf("dataset: prepare insert: %w", err)
	}
	defer stmt.Close()

	var result ImportResult
	for _, rec := range records {
		if rec.Name == "" {
			result.Skipped++
			continue
		}
		res, err := stmt.ExecContext(ctx,
			rec.Name, rec.HostName, rec.Distance, rec.OrbitalPeriod,
			rec.Radius, rec.Mass, rec.EqTemperature, rec.SemiMajorAxis,
			rec.Eccentricity, rec.SpectralType, rec.StellarTeff,
			rec.StellarRadius, rec.StellarMass, rec.DiscoveryYear,
			rec.DiscoveryMethod)
		if err != nil {
			return ImportResult{}, fmt.Errorf("dataset: insert %q: %w", rec.Name, err)
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			result.Skipped++
		} else {
			result.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("dataset: commit import: %w", err)
	}
	return result, nil
}

// GetByName fetches a single planet by its exact catalog name.
func (s *Store) GetByName(ctx context.Context, name string) (planet.Record, error) {
	const q = selectColumns + ` WHERE pl_name = ?`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, q, name))
	if errors.Is(err, sql.ErrNoRows) {
		return planet.Record{}, fmt.Errorf("dataset: %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return planet.Record{}, fmt.Errorf("dataset: get %q: %w", name, err)
	}
	return rec, nil
}

// Filter narrows a catalog listing. Zero values mean "no constraint".
type Filter struct {
	NamePrefix string
	MinRadius  float64
	MaxRadius  float64
	MinTemp    float64
	MaxTemp    float64
	DiscYear   int
	Limit      int
}

// List returns catalog records matching the filter, ordered by name.
func (s *Store) List(ctx context.Context, f Filter) ([]planet.Record, error) {
	var conds []string
	var args []any

	if f.NamePrefix != "" {
		conds = append(conds, "pl_name LIKE ?")
		args = append(args, f.NamePrefix+"%")
	}
	if f.MinRadius > 0 {
		conds = append(conds, "pl_rade >= ?")
		args = append(args, f.MinRadius)
	}
	if f.MaxRadius > 0 {
		conds = append(conds, "pl_rade <= ?")
		args = append(args, f.MaxRadius)
	}
	if f.MinTemp > 0 {
		conds = append(conds, "pl_eqt >= ?")
		args = append(args, f.MinTemp)
	}
	if f.MaxTemp > 0 {
		conds = append(conds, "pl_eqt <= ?")
		args = append(args, f.MaxTemp)
	}
	if f.DiscYear > 0 {
		conds = append(conds, "disc_year = ?")
		args = append(args, f.DiscYear)
	}

	q := selectColumns
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY pl_name"
	if f.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("dataset: list: %w", err)
	}
	defer rows.Close()

	var records []planet.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("dataset: scan row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the number of planets in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM planets").Scan(&n); err != nil {
		return 0, fmt.Errorf("dataset: count: %w", err)
	}
	return n, nil
}

const selectColumns = `
	SELECT pl_name, hostname, sy_dist, pl_orbper, pl_rade, pl_bmasse,
	       pl_eqt, pl_orbsmax, pl_orbeccen, st_spectype, st_teff,
	       st_rad, st_mass, disc_year, discoverymethod
	FROM planets`

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (planet.Record, error) {
	var rec planet.Record
	var (
		hostname, spectype, method      sql.NullString
		dist, orbper, rade, bmasse, eqt sql.NullFloat64
		orbsmax, orbeccen, teff         sql.NullFloat64
		stRad, stMass                   sql.NullFloat64
		discYear                        sql.NullInt64
	)

	err := row.Scan(&rec.Name, &hostname, &dist, &orbper, &rade, &bmasse,
		&eqt, &orbsmax, &orbeccen, &spectype, &teff, &stRad, &stMass,
		&discYear, &method)
	if err != nil {
		return planet.Record{}, err
	}

	rec.HostName = hostname.String
	rec.SpectralType = spectype.String
	rec.DiscoveryMethod = method.String
	rec.DiscoveryYear = int(discYear.Int64)
	rec.Distance = nullable(dist)
	rec.OrbitalPeriod = nullable(orbper)
	rec.Radius = nullable(rade)
	rec.Mass = nullable(bmasse)
	rec.EqTemperature = nullable(eqt)
	rec.SemiMajorAxis = nullable(orbsmax)
	rec.Eccentricity = nullable(orbeccen)
	rec.StellarTeff = nullable(teff)
	rec.StellarRadius = nullable(stRad)
	rec.StellarMass = nullable(stMass)
	return rec, nil
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
