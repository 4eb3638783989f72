// Package habitability scores planets on a 0-100 composite of temperature,
// size, stellar and atmosphere fitness. All scoring is pure and total:
// identical inputs always produce identical results, and missing measurements
// substitute neutral defaults instead of failing.
package habitability

import (
	"math"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

// Category is the banded interpretation of an overall score.
type Category string

const (
	CategoryHigh    Category = "High"
	CategoryMedium  Category = "Medium"
	CategoryLow     Category = "Low"
	CategoryUnknown Category = "Unknown"
)

// Result is the output of one scoring pass.
type Result struct {
	OverallScore float64  `json:"overall_score"`
	Category     Category `json:"category"`
	Color        string   `json:"color"` // presentation hint for the category

	TemperatureFitness float64  `json:"temperature_fitness"`
	SizeFitness        float64  `json:"size_fitness"`
	StellarFitness     float64  `json:"stellar_fitness"`
	AtmosphereFitness  *float64 `json:"atmosphere_fitness,omitempty"` // nil when the mix is unknown
}

// Calculate scores a planet from its measured parameters alone. The
// atmosphere sub-score is omitted; survey catalogs do not measure
// composition.
func Calculate(p planet.Parameters) Result {
	return CalculateWithAtmosphere(p, nil)
}

// CalculateWithAtmosphere scores a planet including a known atmosphere mix,
// as produced by a terraforming session.
func CalculateWithAtmosphere(p planet.Parameters, mix *AtmosphereMix) Result {
	return Default().Score(p, mix)
}

// temperatureFitness peaks across the ideal band and falls off super-linearly
// toward the lethal bounds. Unmeasured temperature scores neutral.
func temperatureFitness(temp *float64) float64 {
	if temp == nil {
		return neutralScore
	}
	t := *temp

	switch {
	case t >= IdealTempLow && t <= IdealTempHigh:
		return 100
	case t <= LethalCold || t >= LethalHot:
		return 0
	case t < IdealTempLow:
		frac := (t - LethalCold) / (IdealTempLow - LethalCold)
		return 100 * math.Pow(frac, 1.5)
	default:
		frac := (LethalHot - t) / (LethalHot - IdealTempHigh)
		return 100 * math.Pow(frac, 1.5)
	}
}

// sizeFitness peaks across the Earth-like radius band. When radius is
// unmeasured but mass is known, radius is estimated from the empirical
// mass-radius relation for sub-Neptune planets; with neither, neutral.
func sizeFitness(radius, mass *float64) float64 {
	r := 0.0
	switch {
	case radius != nil:
		r = *radius
	case mass != nil:
		r = estimateRadius(*mass)
	default:
		return neutralScore
	}

	switch {
	case r >= IdealRadiusLow && r <= IdealRadiusHigh:
		return 100
	case r <= MinViableRadius || r >= GasGiantRadius:
		return 0
	case r < IdealRadiusLow:
		return 100 * (r - MinViableRadius) / (IdealRadiusLow - MinViableRadius)
	case r <= HabitableRadius:
		// Gentler slope across the super-Earth range.
		return 100 - 75*(r-IdealRadiusHigh)/(HabitableRadius-IdealRadiusHigh)
	default:
		return 25 * (GasGiantRadius - r) / (GasGiantRadius - HabitableRadius)
	}
}

// estimateRadius applies the approximate empirical mass-radius power law
// R = M^0.28 (Earth units), reasonable below the gas-accretion threshold.
func estimateRadius(mass float64) float64 {
	if mass <= 0 {
		return 0
	}
	if mass > 120 {
		// Past runaway accretion the relation flattens near Jupiter size.
		return 11.0
	}
	return math.Pow(mass, 0.28)
}

func stellarFitnessFor(spectralType string) float64 {
	class := planet.SpectralClass(spectralType)
	if class == "" {
		return neutralScore
	}
	if score, ok := stellarFitness[class]; ok {
		return score
	}
	return neutralScore
}

// CategoryColor returns the presentation hint for a category band.
func CategoryColor(c Category) string {
	switch c {
	case CategoryHigh:
		return "#4CAF50"
	case CategoryMedium:
		return "#FFC107"
	case CategoryLow:
		return "#F44336"
	}
	return "#9E9E9E"
}
