package biome

import (
	"testing"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

func TestClassifyPriorityRules(t *testing.T) {
	cases := []struct {
		name             string
		temp, radius, mass float64
		want             Type
	}{
		{"hot giant", 1500, 10, 300, GasGiant},
		{"hot rocky", 1200, 1.2, 1.5, LavaWorld},
		{"frozen giant", 100, 8, 120, IceGiant},
		{"frozen rocky", 120, 1.0, 1.0, IceWorld},
		{"cool giant", 200, 7, 150, IceGiant},
		{"warm giant", 400, 9, 400, GasGiant},
		{"giant by mass alone", 300, 2.0, 80, GasGiant},
		{"mini neptune", 280, 4.0, 12, MiniNeptune},
		{"super earth by radius", 280, 2.0, 4, SuperEarth},
		{"super earth by mass", 280, 1.5, 7, SuperEarth},
		{"barren", 280, 0.3, 0.05, BarrenWorld},
		{"tundra", 200, 1.0, 1.0, Tundra},
		{"temperate", 288, 1.0, 1.0, Temperate},
		{"ocean low density", 290, 1.4, 1.0, OceanWorld},
		{"tropical", 330, 1.0, 1.0, Tropical},
		{"desert", 420, 1.0, 1.0, DesertWorld},
		{"volcanic", 700, 1.0, 1.0, Volcanic},
	}
	for _, c := range cases {
		got := Classify(planet.Float(c.temp), planet.Float(c.radius), planet.Float(c.mass))
		if got.Type != c.want {
			t.Errorf("%s: Classify(%v, %v, %v) = %s, want %s",
				c.name, c.temp, c.radius, c.mass, got.Type, c.want)
		}
	}
}

func TestClassifyAllNilDefaults(t *testing.T) {
	got := Classify(nil, nil, nil)
	if got.Type != Temperate {
		t.Errorf("all-nil classification = %s, want %s (Earth-like defaults)", got.Type, Temperate)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	a := Classify(planet.Float(500), planet.Float(1.3), nil)
	b := Classify(planet.Float(500), planet.Float(1.3), nil)
	if a != b {
		t.Errorf("repeat classification differs: %+v vs %+v", a, b)
	}
}

func TestDescribeCoversAllTypes(t *testing.T) {
	for _, typ := range AllTypes {
		b := describe(typ)
		if b.Description == "" || b.Description == "An unexplored world" {
			t.Errorf("%s: missing description", typ)
		}
		if b.AtmosphereComposition == "" || b.AtmosphereComposition == "Unknown" {
			t.Errorf("%s: missing atmosphere composition", typ)
		}
		if b.Color == "" || b.Color == "#888888" {
			t.Errorf("%s: missing color", typ)
		}
	}
}

func TestSupportsLife(t *testing.T) {
	hostile := []Type{GasGiant, IceGiant, LavaWorld, BarrenWorld, Volcanic}
	for _, typ := range hostile {
		if SupportsLife(typ) {
			t.Errorf("%s must not support life", typ)
		}
	}
	for _, typ := range []Type{Temperate, OceanWorld, Tropical, Tundra, IceWorld, SuperEarth} {
		if !SupportsLife(typ) {
			t.Errorf("%s must support life", typ)
		}
	}
}

func TestDensity(t *testing.T) {
	if d := density(1, 1); d != 1.0 {
		t.Errorf("Earth density = %v, want 1.0", d)
	}
	if d := density(1, 2); d != 0.125 {
		t.Errorf("density(1, 2) = %v, want 0.125", d)
	}
	if d := density(5, 0); d != 1.0 {
		t.Errorf("zero-radius density = %v, want fallback 1.0", d)
	}
}
