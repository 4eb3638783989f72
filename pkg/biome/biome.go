// Package biome maps planet physical parameters onto a closed set of surface
// and atmosphere archetypes.
package biome

import "github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"

// Type is one of the closed set of biome archetypes. The constant order below
// is the classification priority order.
type Type string

const (
	GasGiant    Type = "Gas Giant"
	IceGiant    Type = "Ice Giant"
	LavaWorld   Type = "Lava World"
	IceWorld    Type = "Ice World"
	MiniNeptune Type = "Mini Neptune"
	SuperEarth  Type = "Super Earth"
	BarrenWorld Type = "Barren World"
	OceanWorld  Type = "Ocean World"
	Temperate   Type = "Temperate"
	Tropical    Type = "Tropical"
	Tundra      Type = "Tundra"
	DesertWorld Type = "Desert World"
	Volcanic    Type = "Volcanic"
	RockyPlanet Type = "Rocky Planet"
)

// AllTypes lists every biome in classification priority order.
var AllTypes = []Type{
	GasGiant, IceGiant, LavaWorld, IceWorld, MiniNeptune, SuperEarth,
	BarrenWorld, OceanWorld, Temperate, Tropical, Tundra, DesertWorld,
	Volcanic, RockyPlanet,
}

// Biome is the classification result: an archetype plus derived labels.
// Produced fresh on every classification; carries no identity.
type Biome struct {
	Type                  Type   `json:"type"`
	Description           string `json:"description"`
	AtmosphereComposition string `json:"atmosphere_composition"`
	Color                 string `json:"color"`
}

// Earth-like defaults substituted for missing measurements so that
// classification is total.
const (
	defaultTemperature = 285.0
	defaultRadius      = 1.0
	defaultMass        = 1.0
)

// Threshold table for the priority rules. Tunable, not physical law.
const (
	hotThreshold    = 1000.0 // K, above this only lava or gas survives
	frozenThreshold = 150.0  // K, below this volatiles are solid
	giantRadius     = 6.0    // Earth radii, gas/ice giant scale
	giantMass       = 50.0   // Earth masses
	neptuneRadius   = 3.5    // Earth radii, mini-Neptune scale
	superEarthRadius = 1.8   // Earth radii
	superEarthMass   = 5.0   // Earth masses
	barrenRadius     = 0.4   // Earth radii, too small to hold atmosphere
	barrenMass       = 0.08  // Earth masses
	oceanDensity     = 0.5   // Earth-relative bulk density, volatile-rich below
)

// Classify maps temperature, radius and mass onto exactly one biome.
// Missing inputs default to Earth-like baselines; the function is total and
// deterministic. Rules are priority ordered: temperature extremes first, then
// bulk size classes, then moderate-temperature surface refinement.
func Classify(temperature, radius, mass *float64) Biome {
	t := planet.Value(temperature, defaultTemperature)
	r := planet.Value(radius, defaultRadius)
	m := planet.Value(mass, defaultMass)

	return describe(classifyType(t, r, m))
}

// ClassifyParameters classifies a full parameter snapshot.
func ClassifyParameters(p planet.Parameters) Biome {
	return Classify(p.EquilibriumTemperature, p.Radius, p.Mass)
}

func classifyType(t, r, m float64) Type {
	isGiant := r >= giantRadius || m >= giantMass

	// Temperature extremes dominate.
	if t >= hotThreshold {
		if isGiant {
			return GasGiant
		}
		return LavaWorld
	}
	if t <= frozenThreshold {
		if isGiant {
			return IceGiant
		}
		return IceWorld
	}

	// Bulk size classes.
	if isGiant {
		if t < 250 {
			return IceGiant
		}
		return GasGiant
	}
	if r >= neptuneRadius {
		return MiniNeptune
	}
	if r >= superEarthRadius || m >= superEarthMass {
		return SuperEarth
	}
	if r <= barrenRadius || m <= barrenMass {
		return BarrenWorld
	}

	// Moderate-temperature rocky refinement.
	switch {
	case t < 240:
		return Tundra
	case t < 310:
		if density(m, r) < oceanDensity {
			return OceanWorld
		}
		return Temperate
	case t < 360:
		return Tropical
	case t < 500:
		return DesertWorld
	case t < hotThreshold:
		return Volcanic
	}
	return RockyPlanet
}

// density is bulk density relative to Earth (mass and radius in Earth units).
func density(m, r float64) float64 {
	if r <= 0 {
		return 1.0
	}
	return m / (r * r * r)
}

// SupportsLife reports whether a biome can host life in the evolution model.
func SupportsLife(t Type) bool {
	switch t {
	case GasGiant, IceGiant, LavaWorld, BarrenWorld, Volcanic:
		return false
	}
	return true
}

// describe attaches the human-readable labels for a biome type. The switches
// are exhaustive over the closed set.
func describe(t Type) Biome {
	return Biome{
		Type:                  t,
		Description:           description(t),
		AtmosphereComposition: atmosphere(t),
		Color:                 color(t),
	}
}

func description(t Type) string {
	switch t {
	case GasGiant:
		return "A massive world of swirling hydrogen and helium with no solid surface"
	case IceGiant:
		return "A cold giant of water, ammonia and methane ices beneath a thick atmosphere"
	case LavaWorld:
		return "A scorched world of molten rock seas and silicate vapor skies"
	case IceWorld:
		return "A frozen world locked under global ice sheets"
	case MiniNeptune:
		return "A small gaseous world with a deep hydrogen envelope over a hidden core"
	case SuperEarth:
		return "A massive rocky world with crushing gravity and a dense atmosphere"
	case BarrenWorld:
		return "An airless cratered world too small to hold an atmosphere"
	case OceanWorld:
		return "A water-covered world with global oceans hundreds of kilometers deep"
	case Temperate:
		return "A mild world of continents, seas and stable weather systems"
	case Tropical:
		return "A warm humid world wrapped in dense vegetation-friendly conditions"
	case Tundra:
		return "A cold dry world of permafrost plains and seasonal thaws"
	case DesertWorld:
		return "An arid world of endless dunes and rare aquifers"
	case Volcanic:
		return "A geologically violent world of eruptions and ash-darkened skies"
	case RockyPlanet:
		return "A solid rocky world of undetermined surface character"
	}
	return "An unexplored world"
}

func atmosphere(t Type) string {
	switch t {
	case GasGiant:
		return "Hydrogen, helium"
	case IceGiant:
		return "Hydrogen, helium, methane"
	case LavaWorld:
		return "Vaporized rock, sodium"
	case IceWorld:
		return "Thin nitrogen, methane"
	case MiniNeptune:
		return "Hydrogen, water vapor"
	case SuperEarth:
		return "Dense nitrogen, carbon dioxide"
	case BarrenWorld:
		return "None"
	case OceanWorld:
		return "Nitrogen, water vapor"
	case Temperate:
		return "Nitrogen, oxygen"
	case Tropical:
		return "Nitrogen, oxygen, water vapor"
	case Tundra:
		return "Nitrogen, thin carbon dioxide"
	case DesertWorld:
		return "Thin carbon dioxide"
	case Volcanic:
		return "Sulfur dioxide, carbon dioxide"
	case RockyPlanet:
		return "Carbon dioxide, nitrogen"
	}
	return "Unknown"
}

// color is a presentation hint for consumers rendering biome badges.
func color(t Type) string {
	switch t {
	case GasGiant:
		return "#D9A066"
	case IceGiant:
		return "#7EC8E3"
	case LavaWorld:
		return "#E25822"
	case IceWorld:
		return "#D6ECF3"
	case MiniNeptune:
		return "#6A8ED1"
	case SuperEarth:
		return "#8A7F66"
	case BarrenWorld:
		return "#9E9E9E"
	case OceanWorld:
		return "#1E6FB8"
	case Temperate:
		return "#4CAF50"
	case Tropical:
		return "#2E8B57"
	case Tundra:
		return "#B0C4B1"
	case DesertWorld:
		return "#E0C068"
	case Volcanic:
		return "#8B3A3A"
	case RockyPlanet:
		return "#A0785A"
	}
	return "#888888"
}
