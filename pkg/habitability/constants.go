package habitability

// Sub-score weights for the overall habitability composite. Weights sum to 1
// with all four sub-scores present; when the atmosphere mix is unknown the
// remaining weights are renormalized.
const (
	WeightTemperature = 0.35
	WeightSize        = 0.30
	WeightStellar     = 0.20
	WeightAtmosphere  = 0.15
)

// Temperature fitness bands, in Kelvin. The ideal band brackets Earth's
// equilibrium temperature (255 K airless, 288 K with greenhouse); fitness
// falls off smoothly to zero at the lethal bounds.
const (
	IdealTempLow  = 255.0
	IdealTempHigh = 288.0
	LethalCold    = 150.0
	LethalHot     = 400.0
)

// Size fitness bands, in Earth radii.
const (
	IdealRadiusLow   = 0.5
	IdealRadiusHigh  = 1.5
	HabitableRadius  = 2.5 // outer edge of plausibly rocky radii
	GasGiantRadius   = 4.0 // at or beyond this, size fitness is zero
	MinViableRadius  = 0.1 // below this, too small for any atmosphere
)

// Category bands over the overall score.
const (
	HighThreshold   = 70.0
	MediumThreshold = 40.0
)

// neutralScore substitutes for a sub-score whose inputs are unmeasured, so
// partial records lean unknown instead of failing.
const neutralScore = 50.0

// stellarFitness maps spectral class codes to fitness. G-class stars are the
// reference; F and K bracket the classical habitable-zone sweet spot, M dwarfs
// are long-lived but flare-prone, and hot O/B/A stars burn out too fast for
// biospheres. Unknown types take the neutral default.
var stellarFitness = map[string]float64{
	"G": 100,
	"K": 90,
	"F": 80,
	"M": 65,
	"A": 40,
	"B": 15,
	"O": 10,
}
