// Package dataset supplies planet records to the simulation core: CSV
// ingestion of exoplanet archive exports, a local SQLite catalog, and batch
// scoring statistics. The core engines never touch I/O themselves; this
// package is the boundary.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

// LoadCSV reads planet records from a NASA Exoplanet Archive CSV export.
// Archive exports carry '#'-prefixed header comments, which are skipped.
// Empty cells unmarshal to nil pointers, preserving the unknown-vs-zero
// distinction the scoring defaults depend on.
func LoadCSV(path string) ([]planet.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog CSV: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV reads planet records from an open CSV stream. The reader is
// configured per call rather than through gocsv's package globals, so
// concurrent reads never race and the archive quirks stay local.
func ReadCSV(r io.Reader) ([]planet.Record, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.LazyQuotes = true

	var records []planet.Record
	if err := gocsv.UnmarshalCSV(cr, &records); err != nil {
		return nil, fmt.Errorf("parsing catalog CSV: %w", err)
	}
	return records, nil
}

// Parameters converts a batch of raw records into parameter snapshots,
// dropping rows without a planet name.
func Parameters(records []planet.Record) []planet.Parameters {
	out := make([]planet.Parameters, 0, len(records))
	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		out = append(out, planet.FromRecord(rec))
	}
	return out
}
