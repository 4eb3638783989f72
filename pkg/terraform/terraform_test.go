package terraform

import (
	"errors"
	"math"
	"testing"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/habitability"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

func temperateBaseline() planet.Parameters {
	return planet.Parameters{
		Name:                   "temperate-baseline",
		Radius:                 planet.Float(1.0),
		Mass:                   planet.Float(1.0),
		EquilibriumTemperature: planet.Float(288),
		SemiMajorAxis:          planet.Float(1.0),
		StellarSpectralType:    "G",
	}
}

func marsLike() planet.Parameters {
	return planet.Parameters{
		Name:                   "mars-like",
		Radius:                 planet.Float(0.53),
		Mass:                   planet.Float(0.107),
		EquilibriumTemperature: planet.Float(210),
		SemiMajorAxis:          planet.Float(1.52),
		StellarSpectralType:    "G",
	}
}

func TestNewParametersSeedsFromBiome(t *testing.T) {
	tp := NewParameters(temperateBaseline())

	// Temperate worlds seed an Earth-like mix.
	if tp.Atmosphere.Nitrogen != 78 || tp.Atmosphere.Oxygen != 21 {
		t.Errorf("seeded mix = %+v, want Earth-like", tp.Atmosphere)
	}
	if tp.WaterCoverage != 60 {
		t.Errorf("water coverage = %v, want 60", tp.WaterCoverage)
	}
	if tp.OrbitalDistance != 1.0 || tp.PlanetMass != 1.0 || tp.PlanetRadius != 1.0 {
		t.Errorf("bulk parameters = %v/%v/%v, want 1/1/1",
			tp.OrbitalDistance, tp.PlanetMass, tp.PlanetRadius)
	}
	if tp.HasMoon {
		t.Error("sessions start without a moon")
	}
}

func TestNewParametersMissingMeasurements(t *testing.T) {
	tp := NewParameters(planet.Parameters{Name: "sparse"})
	if tp.OrbitalDistance != 1.0 || tp.PlanetMass != 1.0 || tp.PlanetRadius != 1.0 {
		t.Errorf("defaults = %v/%v/%v, want Earth-like 1/1/1",
			tp.OrbitalDistance, tp.PlanetMass, tp.PlanetRadius)
	}
}

func TestReset(t *testing.T) {
	tp := NewParameters(temperateBaseline())
	seeded := *tp

	tp.Atmosphere.Oxygen = 35
	tp.WaterCoverage = 10
	tp.OrbitalDistance = 2.5
	tp.HasMoon = true
	tp.Reset()

	if tp.Atmosphere != seeded.Atmosphere {
		t.Errorf("atmosphere after reset = %+v, want %+v", tp.Atmosphere, seeded.Atmosphere)
	}
	if tp.WaterCoverage != seeded.WaterCoverage || tp.OrbitalDistance != seeded.OrbitalDistance {
		t.Error("bulk fields not restored by reset")
	}
	if tp.HasMoon {
		t.Error("moon flag not restored by reset")
	}
}

func TestNormalizeAtmosphere(t *testing.T) {
	tp := NewParameters(temperateBaseline())
	tp.Atmosphere = habitability.AtmosphereMix{Nitrogen: 140, Oxygen: 40, CarbonDioxide: 20}

	tp.NormalizeAtmosphere()
	if math.Abs(tp.Atmosphere.Total()-100) > 1e-9 {
		t.Fatalf("normalized sum = %v, want 100", tp.Atmosphere.Total())
	}
	if math.Abs(tp.Atmosphere.Nitrogen-70) > 1e-9 {
		t.Errorf("nitrogen = %v, want ratio-preserving 70", tp.Atmosphere.Nitrogen)
	}

	// Second call is a no-op.
	before := tp.Atmosphere
	tp.NormalizeAtmosphere()
	if tp.Atmosphere != before {
		t.Error("normalization is not idempotent")
	}
}

func TestNormalizeAtmosphereInsideBand(t *testing.T) {
	tp := NewParameters(temperateBaseline())
	tp.Atmosphere = habitability.AtmosphereMix{Nitrogen: 76, Oxygen: 22}
	before := tp.Atmosphere

	tp.NormalizeAtmosphere()
	if tp.Atmosphere != before {
		t.Error("sum 98 is inside the acceptance band and must not be rescaled")
	}
}

func TestNormalizeAtmosphereZeroSum(t *testing.T) {
	tp := NewParameters(temperateBaseline())
	tp.Atmosphere = habitability.AtmosphereMix{}
	tp.NormalizeAtmosphere()
	if tp.Atmosphere.Total() != 0 {
		t.Error("empty mix must stay empty")
	}
}

func TestValidateRejectsBadEdits(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Parameters)
	}{
		{"zero radius", func(tp *Parameters) { tp.PlanetRadius = 0 }},
		{"negative mass", func(tp *Parameters) { tp.PlanetMass = -1 }},
		{"zero orbit", func(tp *Parameters) { tp.OrbitalDistance = 0 }},
		{"water over 100", func(tp *Parameters) { tp.WaterCoverage = 120 }},
		{"negative water", func(tp *Parameters) { tp.WaterCoverage = -5 }},
	}
	for _, c := range cases {
		tp := NewParameters(temperateBaseline())
		c.edit(tp)
		err := tp.Validate()
		if err == nil {
			t.Errorf("%s: Validate() = nil, want error", c.name)
			continue
		}
		if !errors.Is(err, planet.ErrInvalidArgument) {
			t.Errorf("%s: error %v does not wrap ErrInvalidArgument", c.name, err)
		}
	}
}

func TestScoreRejectsInvalidSession(t *testing.T) {
	tp := NewParameters(temperateBaseline())
	tp.OrbitalDistance = -1

	_, err := Score(temperateBaseline(), tp)
	if !errors.Is(err, planet.ErrInvalidArgument) {
		t.Errorf("Score error = %v, want wrapped ErrInvalidArgument", err)
	}
}

func TestSurfaceTemperatureEarth(t *testing.T) {
	tp := NewParameters(temperateBaseline())
	got := SurfaceTemperature(temperateBaseline(), tp)

	// Earth-like session around a G star: equilibrium near 255 K plus a mild
	// greenhouse lift lands in the liquid-water range.
	if got < 250 || got > 310 {
		t.Errorf("surface temperature = %v K, want 250-310", got)
	}
}

func TestSurfaceTemperatureOrbitResponse(t *testing.T) {
	base := temperateBaseline()
	tp := NewParameters(base)
	near := SurfaceTemperature(base, tp)

	tp.OrbitalDistance = 4.0
	far := SurfaceTemperature(base, tp)
	if far >= near {
		t.Errorf("moving outward warmed the planet: %v -> %v", near, far)
	}

	// Inverse square root of distance: 4x the orbit halves the temperature.
	if math.Abs(far-near/2) > 1e-6 {
		t.Errorf("T(4 AU) = %v, want exactly half of T(1 AU) = %v", far, near)
	}
}

func TestGreenhouseWarming(t *testing.T) {
	base := temperateBaseline()
	tp := NewParameters(base)
	tp.Atmosphere.CarbonDioxide = 0
	tp.Atmosphere.WaterVapor = 0
	dry := SurfaceTemperature(base, tp)

	tp.Atmosphere.CarbonDioxide = 50
	warm := SurfaceTemperature(base, tp)
	if warm <= dry {
		t.Errorf("adding CO2 did not warm: %v -> %v", dry, warm)
	}

	// The multiplier saturates at the cap.
	tp.Atmosphere.CarbonDioxide = 100
	tp.Atmosphere.WaterVapor = 100
	capped := SurfaceTemperature(base, tp)
	if capped > dry*greenhouseCap+1e-9 {
		t.Errorf("greenhouse exceeded cap: %v > %v", capped, dry*greenhouseCap)
	}
}

func TestScoreUntouchedSessionMatchesBaseline(t *testing.T) {
	base := temperateBaseline()
	a, err := Score(base, NewParameters(base))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	b, err := Score(base, NewParameters(base))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if a.OverallScore != b.OverallScore {
		t.Errorf("identical sessions scored %v and %v", a.OverallScore, b.OverallScore)
	}
}

func TestMoonBonus(t *testing.T) {
	base := temperateBaseline()
	tp := NewParameters(base)
	// Thin out the oxygen so the session scores below the 100 ceiling and
	// the bonus has room to show.
	tp.Atmosphere.Oxygen = 10
	without, err := Score(base, tp)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	tp.HasMoon = true
	with, err := Score(base, tp)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	gain := with.OverallScore - without.OverallScore
	if gain <= 0 || gain > moonStabilityBonus+1e-9 {
		t.Errorf("moon bonus = %v, want within (0, %v]", gain, moonStabilityBonus)
	}
	if with.OverallScore > 100 {
		t.Errorf("score %v exceeds 100", with.OverallScore)
	}
}

func TestMoonBonusRebandsCategory(t *testing.T) {
	base := temperateBaseline()
	tp := NewParameters(base)
	// A bloated, oxygen-starved session lands just under the High band:
	// temperature 100, size 16.67 at 3 Earth radii, stellar 100,
	// atmosphere 65 with oxygen at 2% of the breathable 16% floor.
	tp.PlanetRadius = 3
	tp.PlanetMass = 9
	tp.Atmosphere.Oxygen = 2

	without, err := Score(base, tp)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if math.Abs(without.OverallScore-69.75) > 1e-9 {
		t.Fatalf("score without moon = %v, want 69.75", without.OverallScore)
	}
	if without.Category != habitability.CategoryMedium {
		t.Fatalf("category without moon = %s, want %s", without.Category, habitability.CategoryMedium)
	}

	tp.HasMoon = true
	with, err := Score(base, tp)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	// The bonus pushes the score across the High boundary; the category and
	// color must follow the adjusted score.
	if math.Abs(with.OverallScore-72.75) > 1e-9 {
		t.Errorf("score with moon = %v, want 72.75", with.OverallScore)
	}
	if with.Category != habitability.CategoryHigh {
		t.Errorf("category with moon = %s, want %s", with.Category, habitability.CategoryHigh)
	}
	if with.Color != habitability.CategoryColor(habitability.CategoryHigh) {
		t.Errorf("color = %q, want the %s band color", with.Color, habitability.CategoryHigh)
	}
}

func TestClone(t *testing.T) {
	tp := NewParameters(temperateBaseline())
	clone := tp.Clone()

	clone.Atmosphere.Oxygen = 5
	clone.WaterCoverage = 0
	if tp.Atmosphere.Oxygen == 5 || tp.WaterCoverage == 0 {
		t.Error("clone shares state with the original session")
	}
}

func TestCompare(t *testing.T) {
	orig := habitability.Result{OverallScore: 45, Category: habitability.CategoryMedium}
	curr := habitability.Result{OverallScore: 72, Category: habitability.CategoryHigh}

	c := Compare(orig, curr)
	if !c.IsImproved {
		t.Error("score rose but IsImproved is false")
	}
	if c.ScoreDifference != 27 {
		t.Errorf("difference = %v, want 27", c.ScoreDifference)
	}
	if !c.CategoryChanged {
		t.Error("category changed but CategoryChanged is false")
	}

	// Symmetric drop.
	back := Compare(curr, orig)
	if back.IsImproved {
		t.Error("score fell but IsImproved is true")
	}
	if back.ScoreDifference != -27 {
		t.Errorf("difference = %v, want -27", back.ScoreDifference)
	}
}

func TestCompareNoChange(t *testing.T) {
	r := habitability.Result{OverallScore: 50, Category: habitability.CategoryMedium}
	c := Compare(r, r)
	if c.IsImproved || c.CategoryChanged || c.ScoreDifference != 0 {
		t.Errorf("identical results compared as %+v", c)
	}
}

func TestBreathabilityBands(t *testing.T) {
	session := func(o2, co2, n2 float64) *Parameters {
		tp := NewParameters(temperateBaseline())
		tp.Atmosphere = habitability.AtmosphereMix{Nitrogen: n2, Oxygen: o2, CarbonDioxide: co2}
		return tp
	}

	cases := []struct {
		name string
		tp   *Parameters
		want Breathability
	}{
		{"earth-like", session(21, 0.04, 79), Breathable},
		{"low oxygen", session(12, 0.04, 88), MarginallyBreathable},
		{"hypoxic", session(7, 0.04, 93), Toxic},
		{"no oxygen", session(0, 0.04, 100), Lethal},
		{"co2 heavy", session(21, 7, 72), Toxic},
		{"co2 lethal", session(21, 15, 64), Lethal},
		{"oxygen fire hazard", session(45, 0.04, 55), Lethal},
		{"near vacuum", func() *Parameters {
			tp := session(21, 0.04, 79)
			tp.Atmosphere = habitability.AtmosphereMix{Oxygen: 2, Nitrogen: 8}
			return tp
		}(), Lethal},
	}
	for _, c := range cases {
		if got := GetBreathability(c.tp); got != c.want {
			t.Errorf("%s: breathability = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestMarsTerraformingScenario(t *testing.T) {
	base := marsLike()
	tp := NewParameters(base)

	// A cold thin-aired world starts out deadly.
	if got := GetBreathability(tp); got != Lethal && got != Toxic {
		t.Errorf("untouched Mars-like breathability = %s, want Lethal or Toxic", got)
	}

	original, err := Score(base, tp)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	// Thicken and oxygenate the atmosphere, melt water onto the surface.
	tp.Atmosphere = habitability.AtmosphereMix{Nitrogen: 77, Oxygen: 21, CarbonDioxide: 1, WaterVapor: 0.5, Argon: 0.5}
	tp.WaterCoverage = 40
	tp.PlanetMass = 1.0
	tp.PlanetRadius = 1.0
	tp.OrbitalDistance = 1.1

	if got := GetBreathability(tp); got != Breathable {
		t.Errorf("terraformed breathability = %s, want %s", got, Breathable)
	}

	current, err := Score(base, tp)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	c := Compare(original, current)
	if !c.IsImproved {
		t.Errorf("terraforming did not improve the score: %v -> %v",
			c.OriginalScore, c.CurrentScore)
	}
}

func TestPressureProxy(t *testing.T) {
	tp := NewParameters(temperateBaseline())
	tp.Atmosphere = habitability.AtmosphereMix{Nitrogen: 78, Oxygen: 21, Argon: 1}

	// Full inventory under Earth gravity is one atmosphere.
	if got := PressureProxy(tp); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("pressure = %v atm, want 1.0", got)
	}

	// Heavier planet, same inventory: higher pressure.
	tp.PlanetMass = 4
	if got := PressureProxy(tp); math.Abs(got-4.0) > 1e-9 {
		t.Errorf("pressure at 4 Me = %v atm, want 4.0", got)
	}
}
