package habitability

// AtmosphereMix holds an atmosphere composition in volume percent. The five
// tracked gases cover the dominant constituents of terrestrial atmospheres;
// trace gases are ignored by the model.
type AtmosphereMix struct {
	Nitrogen      float64 `json:"nitrogen" yaml:"nitrogen"`
	Oxygen        float64 `json:"oxygen" yaml:"oxygen"`
	CarbonDioxide float64 `json:"carbon_dioxide" yaml:"carbon_dioxide"`
	WaterVapor    float64 `json:"water_vapor" yaml:"water_vapor"`
	Argon         float64 `json:"argon" yaml:"argon"`
}

// Total returns the sum of the tracked gas percentages.
func (m AtmosphereMix) Total() float64 {
	return m.Nitrogen + m.Oxygen + m.CarbonDioxide + m.WaterVapor + m.Argon
}

// Atmosphere fitness component weights (sum to 1).
const (
	atmoWeightOxygen   = 0.40
	atmoWeightNitrogen = 0.25
	atmoWeightCO2      = 0.25
	atmoWeightWater    = 0.10
)

// Breathable-band constants shared with the terraforming breathability table.
const (
	OxygenIdealLow  = 16.0 // volume percent
	OxygenIdealHigh = 25.0
	CO2ToxicLimit   = 2.0
	CO2LethalLimit  = 10.0
)

// atmosphereFitness rewards nitrogen-dominant, oxygen-bearing, low-CO2 mixes
// within breathable bounds and punishes toxic compositions.
func atmosphereFitness(m AtmosphereMix) float64 {
	score := atmoWeightOxygen*oxygenComponent(m.Oxygen) +
		atmoWeightNitrogen*nitrogenComponent(m.Nitrogen) +
		atmoWeightCO2*co2Component(m.CarbonDioxide) +
		atmoWeightWater*waterComponent(m.WaterVapor)
	return clampScore(score)
}

// oxygenComponent peaks across the breathable band. Too little suffocates;
// too much is a fire and toxicity hazard.
func oxygenComponent(o2 float64) float64 {
	switch {
	case o2 >= OxygenIdealLow && o2 <= OxygenIdealHigh:
		return 100
	case o2 <= 0:
		return 0
	case o2 < OxygenIdealLow:
		return 100 * o2 / OxygenIdealLow
	case o2 < 50:
		return 100 * (50 - o2) / (50 - OxygenIdealHigh)
	default:
		return 0
	}
}

// nitrogenComponent favors a dominant inert buffer gas around Earth's 78%.
func nitrogenComponent(n2 float64) float64 {
	switch {
	case n2 >= 60 && n2 <= 85:
		return 100
	case n2 <= 0:
		return 0
	case n2 < 60:
		return 100 * n2 / 60
	default:
		return 100 * (100 - n2) / 15
	}
}

// co2Component is full below the toxicity threshold and zero past the lethal
// concentration.
func co2Component(co2 float64) float64 {
	switch {
	case co2 <= CO2ToxicLimit:
		return 100
	case co2 >= CO2LethalLimit:
		return 0
	default:
		return 100 * (CO2LethalLimit - co2) / (CO2LethalLimit - CO2ToxicLimit)
	}
}

// waterComponent tolerates humidity up to a few percent; a steam atmosphere
// scores zero.
func waterComponent(h2o float64) float64 {
	switch {
	case h2o >= 0 && h2o <= 4:
		return 100
	case h2o >= 20:
		return 0
	case h2o < 0:
		return 0
	default:
		return 100 * (20 - h2o) / 16
	}
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
