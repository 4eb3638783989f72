package main

import (
	"fmt"
	"strings"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/biome"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/dataset"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/evolution"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/habitability"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/terraform"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.FieldPath != "" {
				fmt.Printf("    -> %s = %v\n", e.FieldPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.FieldPath != "" {
				fmt.Printf("    -> %s = %v\n", w.FieldPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printScore(p planet.Parameters, b biome.Biome, r habitability.Result) {
	fmt.Printf("Planet: %s\n", p.Name)
	if p.HostStar != "" {
		fmt.Printf("Host:   %s (%s)\n", p.HostStar, planet.SpectralClass(p.StellarSpectralType))
	}
	fmt.Printf("Biome:  %s\n", b.Type)
	fmt.Println()

	fmt.Println("Habitability")
	fmt.Println("------------")
	fmt.Printf("  Temperature fitness:  %s\n", formatMeasure(r.TemperatureFitness, p.EquilibriumTemperature != nil))
	fmt.Printf("  Size fitness:         %s\n", formatMeasure(r.SizeFitness, p.Radius != nil || p.Mass != nil))
	fmt.Printf("  Stellar fitness:      %.1f\n", r.StellarFitness)
	if r.AtmosphereFitness != nil {
		fmt.Printf("  Atmosphere fitness:   %.1f\n", *r.AtmosphereFitness)
	}
	fmt.Println()
	fmt.Printf("  Overall: %.1f / 100 (%s)\n", r.OverallScore, r.Category)
}

// formatMeasure marks a sub-score as defaulted when its measurement was
// missing from the input.
func formatMeasure(score float64, measured bool) string {
	if !measured {
		return fmt.Sprintf("%.1f (defaulted, no measurement)", score)
	}
	return fmt.Sprintf("%.1f", score)
}

func printTerraform(p planet.Parameters, tp *terraform.Parameters, temperature float64, b terraform.Breathability, c terraform.Comparison) {
	fmt.Printf("Terraforming %s\n", p.Name)
	fmt.Println(strings.Repeat("=", len("Terraforming ")+len(p.Name)))
	fmt.Println()

	fmt.Println("Session parameters")
	fmt.Println("------------------")
	fmt.Printf("  Nitrogen:        %6.2f %%\n", tp.Atmosphere.Nitrogen)
	fmt.Printf("  Oxygen:          %6.2f %%\n", tp.Atmosphere.Oxygen)
	fmt.Printf("  Carbon dioxide:  %6.2f %%\n", tp.Atmosphere.CarbonDioxide)
	fmt.Printf("  Water vapor:     %6.2f %%\n", tp.Atmosphere.WaterVapor)
	fmt.Printf("  Argon:           %6.2f %%\n", tp.Atmosphere.Argon)
	fmt.Printf("  Water coverage:  %6.2f %%\n", tp.WaterCoverage)
	fmt.Printf("  Orbit:           %6.3f AU\n", tp.OrbitalDistance)
	fmt.Printf("  Mass:            %6.2f Me\n", tp.PlanetMass)
	fmt.Printf("  Radius:          %6.2f Re\n", tp.PlanetRadius)
	fmt.Printf("  Large moon:      %v\n", tp.HasMoon)
	fmt.Println()

	fmt.Println("Outcome")
	fmt.Println("-------")
	fmt.Printf("  Surface temperature:  %.1f K\n", temperature)
	fmt.Printf("  Surface pressure:     %.2f atm\n", terraform.PressureProxy(tp))
	fmt.Printf("  Breathability:        %s\n", b)
	fmt.Printf("  Score:                %.1f -> %.1f (%+.1f)\n",
		c.OriginalScore, c.CurrentScore, c.ScoreDifference)
	if c.CategoryChanged {
		fmt.Printf("  Category:             %s -> %s\n", c.OriginalCategory, c.CurrentCategory)
	} else {
		fmt.Printf("  Category:             %s\n", c.CurrentCategory)
	}
}

func printTimeline(p planet.Parameters, timeline []evolution.Snapshot) {
	fmt.Printf("Evolutionary timeline for %s (%d snapshots)\n", p.Name, len(timeline))
	fmt.Println()

	fmt.Printf("%-10s %-12s %8s %9s %-16s %7s %-24s\n",
		"Age", "Stage", "Temp", "Pressure", "Biome", "Score", "Life")
	fmt.Printf("%-10s %-12s %8s %9s %-16s %7s %-24s\n",
		"----------", "------------", "--------", "---------", "----------------", "-------", "------------------------")

	for _, snap := range timeline {
		life := "-"
		if snap.HasLife && snap.LifeForm != nil {
			life = fmt.Sprintf("%s (%s)", snap.LifeForm.Name, snap.LifeForm.StageName)
		} else if snap.HasOceans {
			life = "oceans, no life"
		}
		fmt.Printf("%-10s %-12s %7.0fK %8.2f %-16s %7.1f %-24s\n",
			formatAge(snap.AgeYears), snap.Stage.Name, snap.Temperature,
			snap.Pressure, snap.Biome.Type, snap.Habitability.OverallScore, life)
	}
}

func printStats(s dataset.Summary, ranked []dataset.ScoredPlanet) {
	fmt.Printf("Catalog summary (%d planets scored)\n", s.Count)
	fmt.Println("-----------------------------------")
	fmt.Printf("  Mean:     %6.1f  (stddev %.1f)\n", s.Mean, s.StdDev)
	fmt.Printf("  Median:   %6.1f  (Q1 %.1f, Q3 %.1f)\n", s.Median, s.Quartile1, s.Quartile3)
	fmt.Printf("  Range:    %6.1f - %.1f\n", s.Min, s.Max)
	fmt.Println()

	fmt.Println("By category")
	for _, cat := range []habitability.Category{
		habitability.CategoryHigh,
		habitability.CategoryMedium,
		habitability.CategoryLow,
		habitability.CategoryUnknown,
	} {
		if n, ok := s.Categories[cat]; ok {
			fmt.Printf("  %-8s %d\n", cat, n)
		}
	}
	fmt.Println()

	fmt.Printf("Top %d\n", len(ranked))
	fmt.Printf("%-28s %7s %-8s\n", "Planet", "Score", "Category")
	for _, sp := range ranked {
		fmt.Printf("%-28s %7.1f %-8s\n", sp.Planet.Name, sp.Result.OverallScore, sp.Result.Category)
	}
}

func formatAge(years float64) string {
	if years >= 1_000_000_000 {
		return fmt.Sprintf("%.2f Gyr", years/1_000_000_000)
	}
	if years >= 1_000_000 {
		return fmt.Sprintf("%.0f Myr", years/1_000_000)
	}
	if years >= 1_000 {
		return fmt.Sprintf("%.0f Kyr", years/1_000)
	}
	return fmt.Sprintf("%.0f yr", years)
}
