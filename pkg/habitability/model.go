package habitability

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

// Model carries the tunable parts of the scoring composite: the sub-score
// weights and the category bands. The fitness curves themselves are fixed.
type Model struct {
	Weights ModelWeights `yaml:"weights"`
	Bands   ModelBands   `yaml:"bands"`
}

type ModelWeights struct {
	Temperature float64 `yaml:"temperature"`
	Size        float64 `yaml:"size"`
	Stellar     float64 `yaml:"stellar"`
	Atmosphere  float64 `yaml:"atmosphere"`
}

type ModelBands struct {
	High   float64 `yaml:"high"`
	Medium float64 `yaml:"medium"`
}

// Default returns the compiled scoring model.
func Default() Model {
	return Model{
		Weights: ModelWeights{
			Temperature: WeightTemperature,
			Size:        WeightSize,
			Stellar:     WeightStellar,
			Atmosphere:  WeightAtmosphere,
		},
		Bands: ModelBands{
			High:   HighThreshold,
			Medium: MediumThreshold,
		},
	}
}

// LoadModel overlays tunables from a YAML file on the compiled defaults.
// Fields absent from the file keep their default values.
func LoadModel(path string) (Model, error) {
	m := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Model{}, fmt.Errorf("reading scoring model: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Model{}, fmt.Errorf("parsing scoring model %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return Model{}, fmt.Errorf("scoring model %s: %w", path, err)
	}
	return m, nil
}

func (m Model) validate() error {
	w := m.Weights
	if w.Temperature <= 0 || w.Size <= 0 || w.Stellar <= 0 || w.Atmosphere <= 0 {
		return fmt.Errorf("%w: weights must be positive", planet.ErrInvalidArgument)
	}
	if m.Bands.High <= m.Bands.Medium {
		return fmt.Errorf("%w: high band %.1f must exceed medium band %.1f",
			planet.ErrInvalidArgument, m.Bands.High, m.Bands.Medium)
	}
	return nil
}

// Score runs the composite under this model's weights and bands. Weights are
// renormalized over the available sub-scores, so they need not sum to 1.
func (m Model) Score(p planet.Parameters, mix *AtmosphereMix) Result {
	tempScore := temperatureFitness(p.EquilibriumTemperature)
	sizeScore := sizeFitness(p.Radius, p.Mass)
	stellarScore := stellarFitnessFor(p.StellarSpectralType)

	weighted := tempScore*m.Weights.Temperature + sizeScore*m.Weights.Size + stellarScore*m.Weights.Stellar
	totalWeight := m.Weights.Temperature + m.Weights.Size + m.Weights.Stellar

	var atmoScore *float64
	if mix != nil {
		s := atmosphereFitness(*mix)
		atmoScore = &s
		weighted += s * m.Weights.Atmosphere
		totalWeight += m.Weights.Atmosphere
	}

	overall := weighted / totalWeight

	category := m.categorize(overall)
	// Unknown only when both core inputs are absent; one measured core value
	// is enough to band the result.
	if p.EquilibriumTemperature == nil && p.Radius == nil {
		category = CategoryUnknown
	}

	return Result{
		OverallScore:       overall,
		Category:           category,
		Color:              CategoryColor(category),
		TemperatureFitness: tempScore,
		SizeFitness:        sizeScore,
		StellarFitness:     stellarScore,
		AtmosphereFitness:  atmoScore,
	}
}

// Reband recomputes the category and color from the overall score, for
// callers that adjust the score after the composite pass. Unknown results
// stay Unknown; that category reflects missing inputs, not the score.
func (m Model) Reband(r Result) Result {
	if r.Category == CategoryUnknown {
		return r
	}
	r.Category = m.categorize(r.OverallScore)
	r.Color = CategoryColor(r.Category)
	return r
}

func (m Model) categorize(score float64) Category {
	switch {
	case score >= m.Bands.High:
		return CategoryHigh
	case score >= m.Bands.Medium:
		return CategoryMedium
	default:
		return CategoryLow
	}
}
