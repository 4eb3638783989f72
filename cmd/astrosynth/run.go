package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TheBoringRats/AstroSynth-sub001/internal/server"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/biome"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/dataset"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/evolution"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/habitability"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/terraform"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/validation"
)

// loadTarget resolves a planet either from a catalog database (target is a
// planet name) or from a YAML definition on disk (target is a file or a
// project directory). Out-of-range measurements are clamped into the report.
func loadTarget(ctx context.Context, target, dbPath string) (planet.Parameters, *validation.Report, error) {
	var p *planet.Parameters

	if dbPath != "" {
		store, err := dataset.Open(ctx, dbPath)
		if err != nil {
			return planet.Parameters{}, nil, fmt.Errorf("opening catalog: %w", err)
		}
		defer store.Close()

		rec, err := store.GetByName(ctx, target)
		if err != nil {
			return planet.Parameters{}, nil, err
		}
		fromCatalog := planet.FromRecord(rec)
		p = &fromCatalog
	} else {
		info, err := os.Stat(target)
		if err != nil {
			return planet.Parameters{}, nil, fmt.Errorf("loading planet: %w", err)
		}
		if info.IsDir() {
			p, err = planet.LoadProject(target)
		} else {
			p, err = planet.Load(target)
		}
		if err != nil {
			return planet.Parameters{}, nil, fmt.Errorf("loading planet: %w", err)
		}
	}

	report := planet.ValidateSchema(p)
	sanitized := planet.Sanitize(*p, report)
	return sanitized, report, nil
}

func runScore(target, dbPath, modelPath string, asJSON bool) error {
	ctx := context.Background()
	p, report, err := loadTarget(ctx, target, dbPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("planet definition has validation errors")
	}

	model := habitability.Default()
	if modelPath != "" {
		if model, err = habitability.LoadModel(modelPath); err != nil {
			return err
		}
	}

	result := model.Score(p, nil)
	b := biome.ClassifyParameters(p)

	if asJSON {
		return writeIndented(map[string]any{
			"planet":       p,
			"biome":        b,
			"habitability": result,
			"validation":   report,
		})
	}

	printScore(p, b, result)
	if len(report.Info) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

// terraformEdits carries the flag values of the terraform command. Only
// fields whose flags were set on the command line are applied, so an
// untouched session reproduces the baseline score exactly.
type terraformEdits struct {
	nitrogen, oxygen, co2, waterVapor, argon float64
	water, orbit, mass, radius               float64
	moon                                     bool
	normalize                                bool

	changed map[string]bool
}

func (e *terraformEdits) mark(cmd *cobra.Command) {
	e.changed = make(map[string]bool)
	for _, name := range []string{
		"nitrogen", "oxygen", "co2", "water-vapor", "argon",
		"water", "orbit", "mass", "radius", "moon",
	} {
		e.changed[name] = cmd.Flags().Changed(name)
	}
}

func (e *terraformEdits) apply(tp *terraform.Parameters) {
	if e.changed["nitrogen"] {
		tp.Atmosphere.Nitrogen = e.nitrogen
	}
	if e.changed["oxygen"] {
		tp.Atmosphere.Oxygen = e.oxygen
	}
	if e.changed["co2"] {
		tp.Atmosphere.CarbonDioxide = e.co2
	}
	if e.changed["water-vapor"] {
		tp.Atmosphere.WaterVapor = e.waterVapor
	}
	if e.changed["argon"] {
		tp.Atmosphere.Argon = e.argon
	}
	if e.changed["water"] {
		tp.WaterCoverage = e.water
	}
	if e.changed["orbit"] {
		tp.OrbitalDistance = e.orbit
	}
	if e.changed["mass"] {
		tp.PlanetMass = e.mass
	}
	if e.changed["radius"] {
		tp.PlanetRadius = e.radius
	}
	if e.changed["moon"] {
		tp.HasMoon = e.moon
	}
	if e.normalize {
		tp.NormalizeAtmosphere()
	}
}

func runTerraform(target, dbPath string, edits terraformEdits, asJSON bool) error {
	ctx := context.Background()
	p, report, err := loadTarget(ctx, target, dbPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("planet definition has validation errors")
	}

	tp := terraform.NewParameters(p)
	original, err := terraform.Score(p, tp)
	if err != nil {
		return err
	}

	edits.apply(tp)
	current, err := terraform.Score(p, tp)
	if err != nil {
		return err
	}

	comparison := terraform.Compare(original, current)
	breathability := terraform.GetBreathability(tp)
	temperature := terraform.SurfaceTemperature(p, tp)

	if asJSON {
		return writeIndented(map[string]any{
			"planet":              p.Name,
			"parameters":          tp,
			"surface_temperature": temperature,
			"breathability":       breathability,
			"result":              current,
			"comparison":          comparison,
		})
	}

	printTerraform(p, tp, temperature, breathability, comparison)
	return nil
}

func runEvolve(target, dbPath string, samples int, asJSON bool) error {
	ctx := context.Background()
	p, report, err := loadTarget(ctx, target, dbPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("planet definition has validation errors")
	}

	timeline, err := evolution.GenerateTimeline(p, samples)
	if err != nil {
		return err
	}

	if asJSON {
		return writeIndented(map[string]any{
			"planet":   p.Name,
			"timeline": timeline,
		})
	}

	printTimeline(p, timeline)
	return nil
}

func runValidate(target string) error {
	ctx := context.Background()
	_, report, err := loadTarget(ctx, target, "")
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runImport(ctx context.Context, csvPath, dbPath string) error {
	records, err := dataset.LoadCSV(csvPath)
	if err != nil {
		return fmt.Errorf("reading catalog export: %w", err)
	}

	store, err := dataset.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer store.Close()

	result, err := store.Import(ctx, records)
	if err != nil {
		return fmt.Errorf("importing catalog: %w", err)
	}

	fmt.Printf("Imported %d planets (%d duplicates skipped) into %s\n",
		result.Inserted, result.Skipped, dbPath)
	return nil
}

func runStats(ctx context.Context, dbPath string, top int, asJSON bool) error {
	store, err := dataset.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer store.Close()

	records, err := store.List(ctx, dataset.Filter{})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("catalog %s is empty; run import first", dbPath)
	}

	scored := dataset.ScoreAll(dataset.Parameters(records))
	summary := dataset.Summarize(scored)
	ranked := dataset.TopRanked(scored, top)

	if asJSON {
		return writeIndented(map[string]any{
			"summary": summary,
			"top":     ranked,
		})
	}

	printStats(summary, ranked)
	return nil
}

func runServe(ctx context.Context, dbPath string, port int) error {
	store, err := dataset.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer store.Close()

	srv := server.New(store, port)
	return srv.Start()
}

func writeIndented(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
