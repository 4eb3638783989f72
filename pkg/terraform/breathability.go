package terraform

import "github.com/TheBoringRats/AstroSynth-sub001/pkg/habitability"

// Breathability categorizes an atmosphere's survivability for unprotected
// humans.
type Breathability string

const (
	Breathable           Breathability = "Breathable"
	MarginallyBreathable Breathability = "Marginally Breathable"
	Toxic                Breathability = "Toxic"
	Lethal               Breathability = "Lethal"
)

// Breathability bands beyond the shared habitability constants.
const (
	oxygenLethalLow  = 5.0  // volume percent, hypoxia kills below this
	oxygenLethalHigh = 40.0 // oxygen toxicity and fire
	oxygenToxicLow   = 10.0
	oxygenToxicHigh  = 32.0
	co2SevereLimit   = 5.0 // volume percent, incapacitating

	pressureLethalLow = 0.15 // atm, near-vacuum
	pressureToxicHigh = 6.0  // atm, narcosis range
	pressureMarginLow = 0.3
	pressureMarginHigh = 3.0
)

// GetBreathability evaluates the session atmosphere against a fixed decision
// table over oxygen, carbon dioxide and the surface pressure proxy. Rules are
// checked worst-first, so the most severe matching band wins. Total and
// deterministic.
func GetBreathability(tp *Parameters) Breathability {
	o2 := tp.Atmosphere.Oxygen
	co2 := tp.Atmosphere.CarbonDioxide
	pressure := PressureProxy(tp)

	switch {
	case pressure < pressureLethalLow,
		o2 < oxygenLethalLow,
		o2 > oxygenLethalHigh,
		co2 >= habitability.CO2LethalLimit:
		return Lethal

	case pressure > pressureToxicHigh,
		o2 < oxygenToxicLow,
		o2 > oxygenToxicHigh,
		co2 > co2SevereLimit:
		return Toxic

	case pressure < pressureMarginLow,
		pressure > pressureMarginHigh,
		o2 < habitability.OxygenIdealLow,
		o2 > habitability.OxygenIdealHigh,
		co2 > habitability.CO2ToxicLimit:
		return MarginallyBreathable
	}
	return Breathable
}
