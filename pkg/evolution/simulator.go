package evolution

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/biome"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/habitability"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/lifeform"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

// Snapshot is one sampled instant of a planet's evolutionary timeline.
type Snapshot struct {
	AgeYears     float64              `json:"age_years"`
	Stage        Stage                `json:"stage"`
	Temperature  float64              `json:"temperature"`          // K, baseline modified by the stage
	Pressure     float64              `json:"pressure"`             // atm, baseline modified by the stage
	Biome        biome.Biome          `json:"biome"`
	Habitability habitability.Result  `json:"habitability"`
	HasOceans    bool                 `json:"has_oceans"`
	HasLife      bool                 `json:"has_life"`
	LifeForm     *lifeform.LifeForm   `json:"life_form,omitempty"`
}

// Life emergence and ocean persistence thresholds.
const (
	lifeScoreThreshold = 30.0  // minimum habitability for life to appear
	oceanFreezePoint   = 260.0 // K, brines stay liquid slightly below 273
	minOceanPressure   = 0.06  // atm, below the water triple point oceans boil off
)

// lifeStageThresholds maps a habitability score to the most sophisticated
// life stage it can sustain. Checked in descending order.
var lifeStageThresholds = []struct {
	minScore float64
	stage    lifeform.Stage
}{
	{75, lifeform.Intelligence},
	{65, lifeform.Land},
	{55, lifeform.Aquatic},
	{45, lifeform.MultiCell},
	{lifeScoreThreshold, lifeform.SingleCell},
}

// lifeAgeCaps gate sophistication by time since life first emerged: even a
// perfect world needs billions of years to evolve complexity.
var lifeAgeCaps = []struct {
	maxElapsed float64
	cap        lifeform.Stage
}{
	{3e8, lifeform.SingleCell},
	{1e9, lifeform.MultiCell},
	{1.8e9, lifeform.Aquatic},
	{2.6e9, lifeform.Land},
}

// GenerateTimeline produces the planet's trajectory from formation to the
// host star's end state as exactly sampleCount snapshots at evenly spaced
// ages. The function is pure: identical inputs always yield the identical
// timeline. sampleCount below 2 violates the contract and fails immediately.
func GenerateTimeline(p planet.Parameters, sampleCount int) ([]Snapshot, error) {
	if sampleCount < 2 {
		return nil, fmt.Errorf("sample count %d must be at least 2: %w", sampleCount, planet.ErrInvalidArgument)
	}

	baseTemp := planet.Value(p.EquilibriumTemperature, 285.0)
	basePressure := baselinePressure(p)

	ages := floats.Span(make([]float64, sampleCount), 0, MaxAge)
	snapshots := make([]Snapshot, 0, sampleCount)

	// Evolution does not reverse: the highest stage reached so far is never
	// demoted later in the sequence.
	reached := lifeform.SingleCell
	lifeSeen := false
	emergenceAge := 0.0
	stageReachedAt := 0.0

	for _, age := range ages {
		stage := stageAt(age)

		temp := baseTemp * stage.TemperatureModifier
		pressure := basePressure * stage.AtmosphereModifier

		b := biome.Classify(&temp, p.Radius, p.Mass)

		modified := p
		modified.EquilibriumTemperature = &temp
		score := habitability.Calculate(modified)

		hasOceans := oceansPersist(temp, pressure)
		// Emergence needs liquid water; established life can outlast the
		// oceans as long as the biome and score still allow it.
		hasLife := score.OverallScore > lifeScoreThreshold &&
			biome.SupportsLife(b.Type) &&
			(hasOceans || lifeSeen)

		snap := Snapshot{
			AgeYears:     age,
			Stage:        stage,
			Temperature:  temp,
			Pressure:     pressure,
			Biome:        b,
			Habitability: score,
			HasOceans:    hasOceans,
			HasLife:      hasLife,
		}

		if hasLife {
			if !lifeSeen {
				lifeSeen = true
				emergenceAge = age
				stageReachedAt = age
			}
			if potential := sustainableStage(score.OverallScore, age-emergenceAge); potential > reached {
				reached = potential
				stageReachedAt = age
			}
			lf := lifeform.Generate(p.Name, b.Type, reached, score.OverallScore, stageReachedAt)
			snap.LifeForm = &lf
		}

		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}

// sustainableStage resolves the life stage a snapshot can sustain from its
// habitability score, capped by the time elapsed since life first emerged.
func sustainableStage(score, elapsed float64) lifeform.Stage {
	stage := lifeform.SingleCell
	for _, th := range lifeStageThresholds {
		if score >= th.minScore {
			stage = th.stage
			break
		}
	}
	for _, c := range lifeAgeCaps {
		if elapsed < c.maxElapsed {
			if stage > c.cap {
				stage = c.cap
			}
			break
		}
	}
	return stage
}

// oceansPersist reports whether liquid surface water survives at the modeled
// temperature and pressure. The boiling point rises with pressure; below the
// triple-point region there is no liquid phase at all.
func oceansPersist(temp, pressure float64) bool {
	if pressure < minOceanPressure {
		return false
	}
	boilingPoint := 373.0 * math.Pow(pressure, 0.2)
	return temp > oceanFreezePoint && temp < boilingPoint
}

// baselinePressure estimates the planet's stable-epoch surface pressure from
// surface gravity; small worlds hold thinner atmospheres.
func baselinePressure(p planet.Parameters) float64 {
	r := planet.Value(p.Radius, 1.0)
	m := planet.Value(p.Mass, 1.0)
	if r <= 0 {
		return 1.0
	}
	return m / (r * r)
}
