package planet

// Parameters is an immutable snapshot of one planet's physical, orbital and
// stellar attributes. Survey records are incomplete, so every measured field
// is a pointer: nil means "not measured", which downstream calculations must
// treat differently from a measured zero.
type Parameters struct {
	Name                   string   `yaml:"name" json:"name"`
	HostStar               string   `yaml:"host_star" json:"host_star"`
	Radius                 *float64 `yaml:"radius" json:"radius"`                               // Earth radii
	Mass                   *float64 `yaml:"mass" json:"mass"`                                   // Earth masses
	EquilibriumTemperature *float64 `yaml:"equilibrium_temperature" json:"equilibrium_temperature"` // Kelvin
	OrbitalPeriod          *float64 `yaml:"orbital_period" json:"orbital_period"`               // days
	SemiMajorAxis          *float64 `yaml:"semi_major_axis" json:"semi_major_axis"`             // AU
	Eccentricity           *float64 `yaml:"eccentricity" json:"eccentricity"`                   // 0-1
	StellarSpectralType    string   `yaml:"stellar_spectral_type" json:"stellar_spectral_type"` // single-letter class
	StellarTemperature     *float64 `yaml:"stellar_temperature" json:"stellar_temperature"`     // Kelvin
	StellarRadius          *float64 `yaml:"stellar_radius" json:"stellar_radius"`               // solar radii
	StellarMass            *float64 `yaml:"stellar_mass" json:"stellar_mass"`                   // solar masses
	Distance               *float64 `yaml:"distance" json:"distance"`                           // parsecs
	DiscoveryYear          int      `yaml:"discovery_year" json:"discovery_year"`
	DiscoveryMethod        string   `yaml:"discovery_method" json:"discovery_method"`
}

// Record is a raw planet row as published by the NASA Exoplanet Archive.
// Column names follow the archive's CSV export so catalogs can be ingested
// without renaming.
type Record struct {
	Name            string   `csv:"pl_name"`
	HostName        string   `csv:"hostname"`
	Distance        *float64 `csv:"sy_dist,omitempty"`
	OrbitalPeriod   *float64 `csv:"pl_orbper,omitempty"`
	Radius          *float64 `csv:"pl_rade,omitempty"`
	Mass            *float64 `csv:"pl_bmasse,omitempty"`
	EqTemperature   *float64 `csv:"pl_eqt,omitempty"`
	SemiMajorAxis   *float64 `csv:"pl_orbsmax,omitempty"`
	Eccentricity    *float64 `csv:"pl_orbeccen,omitempty"`
	SpectralType    string   `csv:"st_spectype"`
	StellarTeff     *float64 `csv:"st_teff,omitempty"`
	StellarRadius   *float64 `csv:"st_rad,omitempty"`
	StellarMass     *float64 `csv:"st_mass,omitempty"`
	DiscoveryYear   int      `csv:"disc_year"`
	DiscoveryMethod string   `csv:"discoverymethod"`
}

// Float returns a pointer to v. Convenience for building Parameters literals.
func Float(v float64) *float64 {
	return &v
}

// Value returns the measurement pointed to by p, or def when unmeasured.
func Value(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
