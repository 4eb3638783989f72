package terraform

import (
	"math"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/habitability"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

// Physical constants for the equilibrium-temperature approximation.
const (
	solarRadiusAU  = 0.00465047 // one solar radius in AU
	sunTemperature = 5772.0     // K

	baseAlbedo     = 0.20 // dry rock
	albedoPerWater = 0.002 // cloud/ice albedo contribution per percent coverage

	greenhouseCO2Gain   = 0.15
	greenhouseWaterGain = 0.05
	greenhouseCap       = 1.8

	moonStabilityBonus = 3.0 // large moons damp axial wander
)

// stellarDefault supplies effective temperature (K) and radius (solar radii)
// for a spectral class when the baseline lacks stellar measurements.
var stellarDefaults = map[string]struct {
	temperature float64
	radius      float64
}{
	"O": {30000, 8.0},
	"B": {15000, 4.0},
	"A": {8500, 1.8},
	"F": {6500, 1.3},
	"G": {sunTemperature, 1.0},
	"K": {4500, 0.7},
	"M": {3200, 0.35},
}

// Score overlays the session parameters onto the baseline planet and
// re-scores habitability. The equilibrium temperature is re-derived from the
// session's orbital distance, the baseline's stellar properties and the
// session atmosphere, never copied: moving a planet or thickening its
// atmosphere changes its computed temperature before scoring.
func Score(baseline planet.Parameters, tp *Parameters) (habitability.Result, error) {
	if err := tp.Validate(); err != nil {
		return habitability.Result{}, err
	}

	effective := EffectiveParameters(baseline, tp)
	result := habitability.CalculateWithAtmosphere(effective, &tp.Atmosphere)

	if tp.HasMoon {
		result.OverallScore = math.Min(100, result.OverallScore+moonStabilityBonus)
		result = habitability.Default().Reband(result)
	}
	return result, nil
}

// EffectiveParameters builds the parameter view the session describes:
// radius, mass and orbit from the session, a re-derived surface temperature,
// and everything else from the baseline.
func EffectiveParameters(baseline planet.Parameters, tp *Parameters) planet.Parameters {
	effective := baseline
	effective.Radius = planet.Float(tp.PlanetRadius)
	effective.Mass = planet.Float(tp.PlanetMass)
	effective.SemiMajorAxis = planet.Float(tp.OrbitalDistance)
	effective.EquilibriumTemperature = planet.Float(SurfaceTemperature(baseline, tp))
	return effective
}

// SurfaceTemperature approximates the session planet's surface temperature:
// radiative equilibrium with the host star, a water-coverage albedo term, and
// a greenhouse multiplier driven by CO2 and water vapor scaled by surface
// gravity (heavier planets hold their greenhouse gases closer).
func SurfaceTemperature(baseline planet.Parameters, tp *Parameters) float64 {
	starTemp, starRadius := stellarProperties(baseline)

	albedo := baseAlbedo + albedoPerWater*tp.WaterCoverage
	equilibrium := starTemp *
		math.Sqrt(starRadius*solarRadiusAU/(2*tp.OrbitalDistance)) *
		math.Pow(1-albedo, 0.25)

	return equilibrium * greenhouseFactor(tp)
}

// greenhouseFactor is a logarithmic warming multiplier. Gas concentrations
// saturate, so doubling CO2 does not double the warming.
func greenhouseFactor(tp *Parameters) float64 {
	gravity := surfaceGravity(tp)
	warming := math.Sqrt(gravity) * (greenhouseCO2Gain*math.Log10(1+10*tp.Atmosphere.CarbonDioxide) +
		greenhouseWaterGain*math.Log10(1+10*tp.Atmosphere.WaterVapor))
	return math.Min(1+warming, greenhouseCap)
}

// surfaceGravity in Earth gravities: g = M / R^2 in Earth units.
func surfaceGravity(tp *Parameters) float64 {
	return tp.PlanetMass / (tp.PlanetRadius * tp.PlanetRadius)
}

// PressureProxy estimates surface pressure in Earth atmospheres from the gas
// inventory and surface gravity. A full gas sum under Earth gravity is one
// atmosphere.
func PressureProxy(tp *Parameters) float64 {
	return tp.Atmosphere.Total() / 100 * surfaceGravity(tp)
}

// stellarProperties returns the host star's effective temperature and radius,
// falling back to spectral-class defaults and finally to solar values.
func stellarProperties(baseline planet.Parameters) (temperature, radius float64) {
	class := planet.SpectralClass(baseline.StellarSpectralType)
	def, ok := stellarDefaults[class]
	if !ok {
		def = stellarDefaults["G"]
	}
	return planet.Value(baseline.StellarTemperature, def.temperature),
		planet.Value(baseline.StellarRadius, def.radius)
}

// Comparison reports how a session's current score relates to its baseline.
type Comparison struct {
	OriginalScore    float64               `json:"original_score"`
	CurrentScore     float64               `json:"current_score"`
	ScoreDifference  float64               `json:"score_difference"`
	IsImproved       bool                  `json:"is_improved"`
	OriginalCategory habitability.Category `json:"original_category"`
	CurrentCategory  habitability.Category `json:"current_category"`
	CategoryChanged  bool                  `json:"category_changed"`
}

// Compare diffs two habitability results. Pure; no side effects.
func Compare(original, current habitability.Result) Comparison {
	diff := current.OverallScore - original.OverallScore
	return Comparison{
		OriginalScore:    original.OverallScore,
		CurrentScore:     current.OverallScore,
		ScoreDifference:  diff,
		IsImproved:       diff > 0,
		OriginalCategory: original.Category,
		CurrentCategory:  current.Category,
		CategoryChanged:  original.Category != current.Category,
	}
}
