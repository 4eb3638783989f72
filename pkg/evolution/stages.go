// Package evolution models a planet's trajectory across geological time: a
// fixed table of named epochs, interpolation between them, and a simulator
// that samples the table into habitability-scored snapshots.
package evolution

import (
	"fmt"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/biome"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

// Stage is an immutable named geological epoch with the modifiers the
// simulator applies to a planet's baseline state.
type Stage struct {
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	AgeYears            float64    `json:"age_years"`
	TemperatureModifier float64    `json:"temperature_modifier"` // multiplier on baseline equilibrium temperature
	AtmosphereModifier  float64    `json:"atmosphere_modifier"`  // multiplier on baseline surface pressure
	BiomeType           biome.Type `json:"biome_type"`           // dominant surface tendency during the epoch
	Characteristics     []string   `json:"characteristics"`
	StellarPhase        string     `json:"stellar_phase"`
	StellarLuminosity   float64    `json:"stellar_luminosity"` // relative to the star's stable output
}

// MaxAge is the span of the canonical sequence: the timeline runs from
// formation to the host star's end state at ten billion years.
const MaxAge = 1e10

// canonicalStages is the fixed backbone the simulator samples against. Ages
// are strictly increasing.
var canonicalStages = []Stage{
	{
		Name:                "Formation",
		Description:         "Accretion and bombardment; a molten world under a dim young star",
		AgeYears:            1e8,
		TemperatureModifier: 2.5,
		AtmosphereModifier:  0.3,
		BiomeType:           biome.Volcanic,
		Characteristics:     []string{"Continuous impact bombardment", "Global magma oceans", "Primordial outgassing"},
		StellarPhase:        "T Tauri",
		StellarLuminosity:   0.7,
	},
	{
		Name:                "Early",
		Description:         "Crust solidifies, oceans condense, volcanism dominates the young surface",
		AgeYears:            1e9,
		TemperatureModifier: 1.3,
		AtmosphereModifier:  1.5,
		BiomeType:           biome.OceanWorld,
		Characteristics:     []string{"Heavy volcanism", "First standing oceans", "Dense reducing atmosphere"},
		StellarPhase:        "Main Sequence",
		StellarLuminosity:   0.8,
	},
	{
		Name:                "Stable",
		Description:         "The long quiet middle age: tectonics, climate cycles and room for life",
		AgeYears:            4.5e9,
		TemperatureModifier: 1.0,
		AtmosphereModifier:  1.0,
		BiomeType:           biome.Temperate,
		Characteristics:     []string{"Active plate tectonics", "Stable climate cycling", "Mature secondary atmosphere"},
		StellarPhase:        "Main Sequence",
		StellarLuminosity:   1.0,
	},
	{
		Name:                "Aging",
		Description:         "The brightening star drives oceans into the sky and deserts across the land",
		AgeYears:            8e9,
		TemperatureModifier: 1.5,
		AtmosphereModifier:  0.7,
		BiomeType:           biome.DesertWorld,
		Characteristics:     []string{"Evaporating oceans", "Runaway greenhouse onset", "Weakening magnetic field"},
		StellarPhase:        "Subgiant",
		StellarLuminosity:   1.8,
	},
	{
		Name:                "End Stage",
		Description:         "The swollen star sterilizes and strips what remains of the surface",
		AgeYears:            MaxAge,
		TemperatureModifier: 3.0,
		AtmosphereModifier:  0.1,
		BiomeType:           biome.LavaWorld,
		Characteristics:     []string{"Atmosphere stripped away", "Surface sterilized", "Star leaving the main sequence"},
		StellarPhase:        "Red Giant",
		StellarLuminosity:   40,
	},
}

// Stages returns the canonical epoch sequence in age order.
func Stages() []Stage {
	out := make([]Stage, len(canonicalStages))
	copy(out, canonicalStages)
	return out
}

// StageByAge returns the epoch enclosing the given age: the first stage whose
// age threshold is not yet passed. Ages beyond the last threshold clamp to
// the final stage, so the lookup is total over all real ages.
func StageByAge(age float64) Stage {
	for _, s := range canonicalStages {
		if age <= s.AgeYears {
			return s
		}
	}
	return canonicalStages[len(canonicalStages)-1]
}

// Interpolate blends two stages at factor t in [0, 1]. Numeric fields are
// linearly interpolated; categorical fields come from the earlier stage below
// t=0.5 and the later stage at or above it. The blended name joins both stage
// names to mark the transitional state. At t=0 and t=1 the numeric fields
// reproduce the endpoints exactly.
func Interpolate(a, b Stage, t float64) (Stage, error) {
	if t < 0 || t > 1 {
		return Stage{}, fmt.Errorf("interpolation factor %.4g must be within [0, 1]: %w", t, planet.ErrInvalidArgument)
	}

	categorical := a
	if t >= 0.5 {
		categorical = b
	}

	name := a.Name
	if a.Name != b.Name {
		name = a.Name + "/" + b.Name
	}

	return Stage{
		Name:                name,
		Description:         categorical.Description,
		AgeYears:            lerp(a.AgeYears, b.AgeYears, t),
		TemperatureModifier: lerp(a.TemperatureModifier, b.TemperatureModifier, t),
		AtmosphereModifier:  lerp(a.AtmosphereModifier, b.AtmosphereModifier, t),
		BiomeType:           categorical.BiomeType,
		Characteristics:     categorical.Characteristics,
		StellarPhase:        categorical.StellarPhase,
		StellarLuminosity:   lerp(a.StellarLuminosity, b.StellarLuminosity, t),
	}, nil
}

// stageAt resolves the (possibly interpolated) stage for an arbitrary age.
// Ages at or below the first threshold take the first stage unblended; ages
// past the last take the final stage.
func stageAt(age float64) Stage {
	first := canonicalStages[0]
	if age <= first.AgeYears {
		return first
	}
	last := canonicalStages[len(canonicalStages)-1]
	if age >= last.AgeYears {
		return last
	}

	for i := 0; i < len(canonicalStages)-1; i++ {
		a, b := canonicalStages[i], canonicalStages[i+1]
		if age > a.AgeYears && age <= b.AgeYears {
			t := (age - a.AgeYears) / (b.AgeYears - a.AgeYears)
			blended, _ := Interpolate(a, b, t) // t is in range by construction
			blended.AgeYears = age
			return blended
		}
	}
	return last
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
