// Package planet defines the normalized planet parameter model shared by the
// classification, habitability and simulation engines.
package planet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/validation"
)

// Physical bounds for measurement clamping. Values outside these ranges come
// from survey noise or unit mistakes; they are clamped rather than rejected
// so a bad column never sinks a whole catalog.
const (
	MinRadius = 0.1    // Earth radii, below smallest confirmed planets
	MaxRadius = 30.0   // Earth radii, above the most inflated hot Jupiters
	MinMass   = 0.01   // Earth masses
	MaxMass   = 10000.0 // Earth masses, ~31 Jupiter masses
	MinTemp   = 3.0    // Kelvin, cosmic background floor
	MaxTemp   = 5000.0 // Kelvin, hottest measured equilibrium temperatures
)

// Load reads a planet definition from a YAML file.
func Load(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading planet file: %w", err)
	}

	var p Parameters
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing planet YAML: %w", err)
	}

	return &p, nil
}

// LoadProject loads a planet definition from a project directory.
// It looks for planet.yaml in the given directory.
func LoadProject(projectDir string) (*Parameters, error) {
	return Load(filepath.Join(projectDir, "planet.yaml"))
}

// FromRecord converts a raw archive record into a parameter snapshot.
func FromRecord(rec Record) Parameters {
	return Parameters{
		Name:                   rec.Name,
		HostStar:               rec.HostName,
		Radius:                 rec.Radius,
		Mass:                   rec.Mass,
		EquilibriumTemperature: rec.EqTemperature,
		OrbitalPeriod:          rec.OrbitalPeriod,
		SemiMajorAxis:          rec.SemiMajorAxis,
		Eccentricity:           rec.Eccentricity,
		StellarSpectralType:    SpectralClass(rec.SpectralType),
		StellarTemperature:     rec.StellarTeff,
		StellarRadius:          rec.StellarRadius,
		StellarMass:            rec.StellarMass,
		Distance:               rec.Distance,
		DiscoveryYear:          rec.DiscoveryYear,
		DiscoveryMethod:        rec.DiscoveryMethod,
	}
}

// SpectralClass reduces a full spectral type string ("G2 V", "K1III") to its
// single-letter class code. Returns "" for empty or unrecognized input.
func SpectralClass(spectype string) string {
	s := strings.TrimSpace(strings.ToUpper(spectype))
	if s == "" {
		return ""
	}
	switch s[0] {
	case 'O', 'B', 'A', 'F', 'G', 'K', 'M':
		return string(s[0])
	}
	return ""
}

// Sanitize returns a copy of p with measurement fields clamped to physical
// bounds. Each clamp is recorded as an informational result; sanitization
// never fails.
func Sanitize(p Parameters, report *validation.Report) Parameters {
	out := p
	out.Radius = clampField(p.Radius, MinRadius, MaxRadius, "radius", report)
	out.Mass = clampField(p.Mass, MinMass, MaxMass, "mass", report)
	out.EquilibriumTemperature = clampField(p.EquilibriumTemperature, MinTemp, MaxTemp, "equilibrium_temperature", report)
	out.Eccentricity = clampField(p.Eccentricity, 0, 0.99, "eccentricity", report)
	return out
}

// ValidateSchema performs structural checks on a parameter snapshot before
// any computation. Missing measurements are allowed; contradictory or
// nonsensical identity fields are not.
func ValidateSchema(p *Parameters) *validation.Report {
	r := validation.NewReport()

	if strings.TrimSpace(p.Name) == "" {
		r.AddError(validation.Result{
			Level:     validation.LevelSchema,
			Message:   "planet name must not be empty",
			FieldPath: "name",
			Expected:  "non-empty string",
		})
	}

	if p.Eccentricity != nil && (*p.Eccentricity < 0 || *p.Eccentricity >= 1) {
		r.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("eccentricity %.3f is outside [0, 1); value will be clamped", *p.Eccentricity),
			FieldPath:   "eccentricity",
			ActualValue: *p.Eccentricity,
			Expected:    "0 <= e < 1",
		})
	}

	if p.SemiMajorAxis != nil && *p.SemiMajorAxis <= 0 {
		r.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("semi_major_axis %.4f AU is non-positive", *p.SemiMajorAxis),
			FieldPath:   "semi_major_axis",
			ActualValue: *p.SemiMajorAxis,
			Expected:    "> 0",
		})
	}

	if st := p.StellarSpectralType; st != "" && SpectralClass(st) == "" {
		r.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("unrecognized stellar spectral type %q", st),
			FieldPath:   "stellar_spectral_type",
			ActualValue: st,
			Expected:    "one of O B A F G K M",
			Suggestions: []string{"stellar fitness will use the unknown-type default"},
		})
	}

	return r
}

func clampField(v *float64, lo, hi float64, field string, report *validation.Report) *float64 {
	if v == nil {
		return nil
	}
	clamped := *v
	if clamped < lo {
		clamped = lo
	}
	if clamped > hi {
		clamped = hi
	}
	if clamped == *v {
		return v
	}
	if report != nil {
		report.AddInfo(validation.Result{
			Level:       validation.LevelPhysical,
			Message:     fmt.Sprintf("%s %.4g clamped to physical bound %.4g", field, *v, clamped),
			FieldPath:   field,
			ActualValue: *v,
			Expected:    fmt.Sprintf("%.4g-%.4g", lo, hi),
		})
	}
	return &clamped
}
