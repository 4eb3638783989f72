package dataset

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/habitability"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

// ScoredPlanet pairs a planet with its habitability result.
type ScoredPlanet struct {
	Planet planet.Parameters   `json:"planet"`
	Result habitability.Result `json:"result"`
}

// Summary aggregates habitability scores across a scored catalog.
type Summary struct {
	Count      int     `json:"count"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Median     float64 `json:"median"`
	Quartile1  float64 `json:"quartile_1"`
	Quartile3  float64 `json:"quartile_3"`
	Categories map[habitability.Category]int `json:"categories"`
}

// ScoreAll scores every planet in the batch. Each scoring call is pure, so
// the output order matches the input order and repeat runs are identical.
func ScoreAll(planets []planet.Parameters) []ScoredPlanet {
	scored := make([]ScoredPlanet, len(planets))
	for i, p := range planets {
		scored[i] = ScoredPlanet{Planet: p, Result: habitability.Calculate(p)}
	}
	return scored
}

// Summarize computes distribution statistics over a scored batch.
func Summarize(scored []ScoredPlanet) Summary {
	s := Summary{
		Count:      len(scored),
		Categories: make(map[habitability.Category]int),
	}
	if len(scored) == 0 {
		return s
	}

	scores := make([]float64, len(scored))
	for i, sp := range scored {
		scores[i] = sp.Result.OverallScore
		s.Categories[sp.Result.Category]++
	}

	s.Mean = stat.Mean(scores, nil)
	s.StdDev = stat.StdDev(scores, nil)
	s.Min = floats.Min(scores)
	s.Max = floats.Max(scores)

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)
	s.Quartile1 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.Quartile3 = stat.Quantile(0.75, stat.Empirical, sorted, nil)

	return s
}

// TopRanked returns the n highest-scoring planets, ties broken by name so
// the ranking is stable across runs.
func TopRanked(scored []ScoredPlanet, n int) []ScoredPlanet {
	ranked := make([]ScoredPlanet, len(scored))
	copy(ranked, scored)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Result.OverallScore != ranked[j].Result.OverallScore {
			return ranked[i].Result.OverallScore > ranked[j].Result.OverallScore
		}
		return ranked[i].Planet.Name < ranked[j].Planet.Name
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
