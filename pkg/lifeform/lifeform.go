// Package lifeform deterministically generates descriptive life forms from a
// biome, an evolutionary stage and a habitability score. Every function is a
// pure lookup-and-assemble over fixed tables: the same inputs always produce
// the same life form, which keeps generated timelines restartable.
package lifeform

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/biome"
)

// Stage is an evolutionary sophistication level. Stages are strictly ordered;
// a timeline never regresses to an earlier stage.
type Stage int

const (
	SingleCell Stage = iota
	MultiCell
	Aquatic
	Land
	Intelligence
)

// String returns the display name for a stage.
func (s Stage) String() string {
	switch s {
	case SingleCell:
		return "Single-Celled"
	case MultiCell:
		return "Multicellular"
	case Aquatic:
		return "Aquatic"
	case Land:
		return "Land-Dwelling"
	case Intelligence:
		return "Intelligent"
	}
	return "Unknown"
}

// MaxTraits caps the trait list on a generated life form.
const MaxTraits = 5

// LifeForm is a generated organism description. Immutable after creation.
type LifeForm struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Stage       Stage      `json:"stage"`
	StageName   string     `json:"stage_name"`
	Description string     `json:"description"`
	Traits      []string   `json:"traits"`
	Complexity  float64    `json:"complexity"` // 0-100
	BiomeType   biome.Type `json:"biome_type"`
	YearEvolved float64    `json:"year_evolved"`
}

// Generate builds the life form for one timeline snapshot.
func Generate(planetName string, biomeType biome.Type, stage Stage, habitabilityScore, yearEvolved float64) LifeForm {
	name := GenerateName(planetName, biomeType, stage)
	traits := GenerateTraits(biomeType, stage, habitabilityScore)

	return LifeForm{
		ID:          deterministicID(name, yearEvolved),
		Name:        name,
		Stage:       stage,
		StageName:   stage.String(),
		Description: GenerateDescription(biomeType, stage, habitabilityScore, traits),
		Traits:      traits,
		Complexity:  complexity(stage, habitabilityScore),
		BiomeType:   biomeType,
		YearEvolved: yearEvolved,
	}
}

// deterministicID derives a stable v5 UUID so regenerating a timeline yields
// identical IDs.
func deterministicID(name string, yearEvolved float64) string {
	seed := fmt.Sprintf("%s@%.0f", name, yearEvolved)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
}

// stageBaseTraits are the stage-appropriate foundation traits.
var stageBaseTraits = map[Stage][]string{
	SingleCell:   {"Chemosynthetic metabolism", "Rapid cell division"},
	MultiCell:    {"Cellular specialization", "Colonial cooperation"},
	Aquatic:      {"Streamlined body plan", "Gill-analog respiration"},
	Land:         {"Load-bearing skeleton", "Desiccation-resistant skin"},
	Intelligence: {"Complex social structures", "Tool use", "Symbolic communication"},
}

// biomeAdaptations are biome-specific traits layered over the stage base.
// Exhaustive over the closed biome set.
var biomeAdaptations = map[biome.Type][]string{
	biome.OceanWorld:  {"Pressure-tolerant physiology", "Bioluminescent signaling"},
	biome.Temperate:   {"Seasonal dormancy cycles", "Generalist diet"},
	biome.Tropical:    {"Vivid warning coloration", "Canopy climbing limbs"},
	biome.Tundra:      {"Insulating outer layers", "Antifreeze body chemistry"},
	biome.IceWorld:    {"Sub-ice habitat dwelling", "Extreme cold tolerance"},
	biome.DesertWorld: {"Water-hoarding tissues", "Nocturnal activity pattern"},
	biome.SuperEarth:  {"Dense muscular build", "Low-slung skeletal frame"},
	biome.RockyPlanet: {"Mineral-crusted hide", "Burrowing behavior"},
	biome.MiniNeptune: {"Buoyant gas bladders", "Atmospheric drifting"},
}

// GenerateTraits combines stage base traits with biome adaptations into a
// deduplicated, order-preserving list of at most MaxTraits entries. High
// habitability adds one abundance-driven trait.
func GenerateTraits(biomeType biome.Type, stage Stage, habitabilityScore float64) []string {
	var combined []string
	combined = append(combined, stageBaseTraits[stage]...)
	combined = append(combined, biomeAdaptations[biomeType]...)
	if habitabilityScore >= 80 {
		combined = append(combined, "Accelerated growth in abundant conditions")
	}

	seen := make(map[string]bool, len(combined))
	traits := make([]string, 0, MaxTraits)
	for _, t := range combined {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		traits = append(traits, t)
		if len(traits) == MaxTraits {
			break
		}
	}
	return traits
}

// biomePrefixes key the generated name on the biome archetype.
var biomePrefixes = map[biome.Type]string{
	biome.OceanWorld:  "Aqua",
	biome.Temperate:   "Terra",
	biome.Tropical:    "Viri",
	biome.Tundra:      "Boreo",
	biome.IceWorld:    "Cryo",
	biome.IceGiant:    "Cryo",
	biome.DesertWorld: "Xero",
	biome.LavaWorld:   "Pyro",
	biome.Volcanic:    "Pyro",
	biome.GasGiant:    "Aero",
	biome.MiniNeptune: "Nebulo",
	biome.SuperEarth:  "Gravi",
	biome.BarrenWorld: "Litho",
	biome.RockyPlanet: "Petra",
}

// stageSuffixes give the name its taxonomic-sounding noun.
var stageSuffixes = map[Stage]string{
	SingleCell:   "cytes",
	MultiCell:    "zoans",
	Aquatic:      "nectons",
	Land:         "striders",
	Intelligence: "sapients",
}

// GenerateName derives a deterministic species name from the sanitized planet
// name, a biome-keyed prefix and a stage-keyed suffix.
func GenerateName(planetName string, biomeType biome.Type, stage Stage) string {
	prefix, ok := biomePrefixes[biomeType]
	if !ok {
		prefix = "Exo"
	}
	suffix, ok := stageSuffixes[stage]
	if !ok {
		suffix = "forms"
	}
	return fmt.Sprintf("%s%s of %s", prefix, suffix, sanitizeName(planetName))
}

// sanitizeName strips characters that don't belong in a species name and
// collapses whitespace. An empty result falls back to a placeholder.
func sanitizeName(name string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastSpace = false
		case r == ' ' && !lastSpace:
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	s := strings.TrimSpace(b.String())
	if s == "" {
		return "an Unnamed World"
	}
	return s
}

// stageTemplates open the description for each evolutionary stage.
var stageTemplates = map[Stage]string{
	SingleCell:   "Microscopic organisms drifting through %s, metabolizing whatever chemistry the environment offers.",
	MultiCell:    "Simple multicellular colonies anchored across %s, the first cooperation between specialized cells.",
	Aquatic:      "Free-swimming creatures patrolling the waters of %s, hunting and grazing in open currents.",
	Land:         "Hardy organisms that have crawled onto the exposed terrain of %s, trading buoyancy for gravity.",
	Intelligence: "Self-aware beings reshaping %s to their needs, with culture, memory and invention.",
}

// GenerateDescription assembles the stage template with a trailing clause
// listing the leading traits.
func GenerateDescription(biomeType biome.Type, stage Stage, habitabilityScore float64, traits []string) string {
	template, ok := stageTemplates[stage]
	if !ok {
		template = "Unclassified organisms inhabiting %s."
	}
	desc := fmt.Sprintf(template, habitatPhrase(biomeType))

	if habitabilityScore >= 80 {
		desc += " Conditions here are generous, and life fills every available niche."
	} else if habitabilityScore < 45 {
		desc += " Survival is marginal; every adaptation is hard-won."
	}

	if len(traits) > 0 {
		shown := traits
		if len(shown) > 3 {
			shown = shown[:3]
		}
		desc += fmt.Sprintf(" Notable traits: %s.", strings.Join(shown, ", "))
	}
	return desc
}

// habitatPhrase renders the biome as a habitat noun phrase for descriptions.
func habitatPhrase(t biome.Type) string {
	switch t {
	case biome.OceanWorld:
		return "a world-spanning ocean"
	case biome.Temperate:
		return "temperate continents and seas"
	case biome.Tropical:
		return "dense humid lowlands"
	case biome.Tundra:
		return "frozen plains and seasonal melt pools"
	case biome.IceWorld:
		return "the dark water beneath global ice"
	case biome.DesertWorld:
		return "scattered oases in an arid expanse"
	case biome.SuperEarth:
		return "a heavy high-gravity landscape"
	case biome.RockyPlanet:
		return "bare rock and sheltered crevices"
	case biome.MiniNeptune:
		return "the calm layers of a deep atmosphere"
	case biome.GasGiant:
		return "endless banded cloudscapes"
	default:
		return "a hostile frontier"
	}
}

// complexity maps stage and habitability onto a 0-100 sophistication measure.
func complexity(stage Stage, habitabilityScore float64) float64 {
	base := 10.0 + 20.0*float64(stage)
	c := base + habitabilityScore*0.1
	if c > 100 {
		c = 100
	}
	return c
}
