// Package terraform simulates what-if alterations of a planet's atmosphere,
// water, orbit and bulk properties, and re-scores habitability against the
// altered state.
package terraform

import (
	"fmt"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/biome"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/habitability"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

// Gas-sum acceptance band for NormalizeAtmosphere. Sums inside the band are
// left untouched so small rounding slack from slider edits does not trigger
// constant rescaling; outside it the mix is rescaled proportionally.
const (
	normalizeLow  = 95.0
	normalizeHigh = 105.0
)

// Parameters is the mutable state of one terraforming session. It is seeded
// from a planet snapshot, edited in place by the caller, and owned by a
// single writer; concurrent sessions must clone it.
type Parameters struct {
	Atmosphere      habitability.AtmosphereMix `json:"atmosphere" yaml:"atmosphere"`
	WaterCoverage   float64                    `json:"water_coverage" yaml:"water_coverage"`     // percent of surface
	OrbitalDistance float64                    `json:"orbital_distance" yaml:"orbital_distance"` // AU
	PlanetMass      float64                    `json:"planet_mass" yaml:"planet_mass"`           // Earth masses
	PlanetRadius    float64                    `json:"planet_radius" yaml:"planet_radius"`       // Earth radii
	HasMoon         bool                       `json:"has_moon" yaml:"has_moon"`

	original snapshot
}

// snapshot captures the construction-time values Reset restores.
type snapshot struct {
	atmosphere      habitability.AtmosphereMix
	waterCoverage   float64
	orbitalDistance float64
	planetMass      float64
	planetRadius    float64
	hasMoon         bool
}

// NewParameters seeds a terraforming session from a planet snapshot.
// Missing measurements take Earth-like defaults; the seeded atmosphere and
// water coverage follow the planet's classified biome.
func NewParameters(p planet.Parameters) *Parameters {
	b := biome.ClassifyParameters(p)

	tp := &Parameters{
		Atmosphere:      seedAtmosphere(b.Type),
		WaterCoverage:   seedWaterCoverage(b.Type),
		OrbitalDistance: planet.Value(p.SemiMajorAxis, 1.0),
		PlanetMass:      planet.Value(p.Mass, 1.0),
		PlanetRadius:    planet.Value(p.Radius, 1.0),
		HasMoon:         false,
	}
	if tp.OrbitalDistance <= 0 {
		tp.OrbitalDistance = 1.0
	}
	if tp.PlanetMass <= 0 {
		tp.PlanetMass = 1.0
	}
	if tp.PlanetRadius <= 0 {
		tp.PlanetRadius = 1.0
	}

	tp.original = snapshot{
		atmosphere:      tp.Atmosphere,
		waterCoverage:   tp.WaterCoverage,
		orbitalDistance: tp.OrbitalDistance,
		planetMass:      tp.PlanetMass,
		planetRadius:    tp.PlanetRadius,
		hasMoon:         tp.HasMoon,
	}
	return tp
}

// Reset restores every field to its construction-time value, undoing the
// whole session.
func (tp *Parameters) Reset() {
	tp.Atmosphere = tp.original.atmosphere
	tp.WaterCoverage = tp.original.waterCoverage
	tp.OrbitalDistance = tp.original.orbitalDistance
	tp.PlanetMass = tp.original.planetMass
	tp.PlanetRadius = tp.original.planetRadius
	tp.HasMoon = tp.original.hasMoon
}

// NormalizeAtmosphere rescales the five gas percentages proportionally
// (each multiplied by 100/sum) whenever the raw sum drifts outside the
// 95-105 acceptance band. Relative ratios are preserved, and the operation
// is idempotent: after one rescale the sum is exactly 100, inside the band,
// so a second call is a no-op.
func (tp *Parameters) NormalizeAtmosphere() {
	sum := tp.Atmosphere.Total()
	if sum <= 0 || (sum >= normalizeLow && sum <= normalizeHigh) {
		return
	}
	scale := 100.0 / sum
	tp.Atmosphere.Nitrogen *= scale
	tp.Atmosphere.Oxygen *= scale
	tp.Atmosphere.CarbonDioxide *= scale
	tp.Atmosphere.WaterVapor *= scale
	tp.Atmosphere.Argon *= scale
}

// Validate checks caller-controlled edits against the session contract.
// Unlike survey measurements, these values are asserted preconditions and
// are rejected, not clamped.
func (tp *Parameters) Validate() error {
	if tp.PlanetRadius <= 0 {
		return fmt.Errorf("planet radius %.4g must be positive: %w", tp.PlanetRadius, planet.ErrInvalidArgument)
	}
	if tp.PlanetMass <= 0 {
		return fmt.Errorf("planet mass %.4g must be positive: %w", tp.PlanetMass, planet.ErrInvalidArgument)
	}
	if tp.OrbitalDistance <= 0 {
		return fmt.Errorf("orbital distance %.4g must be positive: %w", tp.OrbitalDistance, planet.ErrInvalidArgument)
	}
	if tp.WaterCoverage < 0 || tp.WaterCoverage > 100 {
		return fmt.Errorf("water coverage %.4g must be within 0-100: %w", tp.WaterCoverage, planet.ErrInvalidArgument)
	}
	return nil
}

// Clone returns an independent copy for a second session, sharing no state.
func (tp *Parameters) Clone() *Parameters {
	clone := *tp
	return &clone
}

// seedAtmosphere returns the starting gas mix for a biome archetype.
// Exhaustive over the closed biome set.
func seedAtmosphere(t biome.Type) habitability.AtmosphereMix {
	switch t {
	case biome.Temperate, biome.Tropical, biome.OceanWorld:
		return habitability.AtmosphereMix{Nitrogen: 78, Oxygen: 21, CarbonDioxide: 0.04, WaterVapor: 0.4, Argon: 0.9}
	case biome.Tundra, biome.IceWorld:
		return habitability.AtmosphereMix{Nitrogen: 85, Oxygen: 2, CarbonDioxide: 10, WaterVapor: 0.1, Argon: 2.9}
	case biome.DesertWorld:
		return habitability.AtmosphereMix{Nitrogen: 3, Oxygen: 0.1, CarbonDioxide: 95, WaterVapor: 0.1, Argon: 1.8}
	case biome.Volcanic, biome.LavaWorld:
		return habitability.AtmosphereMix{Nitrogen: 5, Oxygen: 0, CarbonDioxide: 90, WaterVapor: 4, Argon: 1}
	case biome.GasGiant, biome.IceGiant, biome.MiniNeptune:
		// Tracked gases are trace constituents of a hydrogen envelope.
		return habitability.AtmosphereMix{Nitrogen: 1, Oxygen: 0, CarbonDioxide: 0.5, WaterVapor: 3, Argon: 0.5}
	case biome.BarrenWorld:
		return habitability.AtmosphereMix{}
	case biome.SuperEarth, biome.RockyPlanet:
		return habitability.AtmosphereMix{Nitrogen: 60, Oxygen: 1, CarbonDioxide: 35, WaterVapor: 0.5, Argon: 3.5}
	}
	return habitability.AtmosphereMix{Nitrogen: 60, Oxygen: 1, CarbonDioxide: 35, WaterVapor: 0.5, Argon: 3.5}
}

// seedWaterCoverage returns the starting surface water percentage per biome.
func seedWaterCoverage(t biome.Type) float64 {
	switch t {
	case biome.OceanWorld:
		return 95
	case biome.Tropical:
		return 75
	case biome.Temperate:
		return 60
	case biome.Tundra:
		return 30
	case biome.IceWorld, biome.IceGiant:
		return 80 // frozen, but present
	case biome.DesertWorld:
		return 5
	case biome.RockyPlanet, biome.SuperEarth:
		return 15
	}
	return 0
}
