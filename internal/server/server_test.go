package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/dataset"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	store, err := dataset.Open(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	_, err = store.Import(ctx, []planet.Record{
		{
			Name:          "Kepler-452b",
			HostName:      "Kepler-452",
			Radius:        planet.Float(1.63),
			EqTemperature: planet.Float(265),
			SemiMajorAxis: planet.Float(1.046),
			SpectralType:  "G2 V",
			DiscoveryYear: 2015,
		},
		{
			Name:          "HD 209458 b",
			Radius:        planet.Float(15.0),
			EqTemperature: planet.Float(1450),
			DiscoveryYear: 1999,
		},
	})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	ts := httptest.NewServer(New(store, 0).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, into any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if into != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
			t.Fatalf("decoding %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestListPlanets(t *testing.T) {
	ts := testServer(t)

	var records []planet.Record
	if status := getJSON(t, ts.URL+"/api/planets", &records); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	var filtered []planet.Record
	getJSON(t, ts.URL+"/api/planets?prefix=Kepler", &filtered)
	if len(filtered) != 1 || filtered[0].Name != "Kepler-452b" {
		t.Errorf("prefix filter returned %v", filtered)
	}
}

func TestListPlanetsQueryFilters(t *testing.T) {
	ts := testServer(t)

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"max radius", "?max_radius=2", []string{"Kepler-452b"}},
		{"min radius", "?min_radius=10", []string{"HD 209458 b"}},
		{"temperature band", "?min_temp=200&max_temp=300", []string{"Kepler-452b"}},
		{"discovery year", "?year=1999", []string{"HD 209458 b"}},
		{"no match", "?year=2030", nil},
		{"bad value ignored", "?max_radius=huge", []string{"HD 209458 b", "Kepler-452b"}},
	}

	for _, c := range cases {
		var records []planet.Record
		if status := getJSON(t, ts.URL+"/api/planets"+c.query, &records); status != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", c.name, status)
		}
		if len(records) != len(c.want) {
			t.Errorf("%s: records = %d, want %d", c.name, len(records), len(c.want))
			continue
		}
		for i, name := range c.want {
			if records[i].Name != name {
				t.Errorf("%s: records[%d] = %q, want %q", c.name, i, records[i].Name, name)
			}
		}
	}
}

func TestGetPlanet(t *testing.T) {
	ts := testServer(t)

	var body struct {
		Planet planet.Parameters `json:"planet"`
		Biome  struct {
			Type string `json:"type"`
		} `json:"biome"`
		Habitability struct {
			OverallScore float64 `json:"overall_score"`
			Category     string  `json:"category"`
		} `json:"habitability"`
	}
	if status := getJSON(t, ts.URL+"/api/planets/Kepler-452b", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body.Planet.Name != "Kepler-452b" {
		t.Errorf("name = %q", body.Planet.Name)
	}
	if body.Biome.Type == "" {
		t.Error("biome missing from response")
	}
	if body.Habitability.Category != "High" {
		t.Errorf("category = %q, want High", body.Habitability.Category)
	}
}

func TestGetPlanetNotFound(t *testing.T) {
	ts := testServer(t)
	if status := getJSON(t, ts.URL+"/api/planets/Nibiru", nil); status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestHabitability(t *testing.T) {
	ts := testServer(t)

	var result struct {
		OverallScore float64 `json:"overall_score"`
		Category     string  `json:"category"`
	}
	if status := getJSON(t, ts.URL+"/api/habitability/HD%20209458%20b", &result); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if result.Category != "Low" {
		t.Errorf("hot Jupiter category = %q, want Low", result.Category)
	}
	if result.OverallScore >= 20 {
		t.Errorf("hot Jupiter score = %v, want < 20", result.OverallScore)
	}
}

func TestTerraform(t *testing.T) {
	ts := testServer(t)

	reqBody := []byte(`{
		"atmosphere": {"nitrogen": 77, "oxygen": 21, "carbon_dioxide": 1, "water_vapor": 0.5, "argon": 0.5},
		"water_coverage": 50,
		"has_moon": true
	}`)
	resp, err := http.Post(ts.URL+"/api/terraform/Kepler-452b", "application/json", bytes.NewReader(reqBody))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Comparison struct {
			CurrentScore float64 `json:"current_score"`
		} `json:"comparison"`
		Breathability string `json:"breathability"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Breathability == "" {
		t.Error("breathability missing from response")
	}
	if body.Comparison.CurrentScore <= 0 {
		t.Errorf("current score = %v, want positive", body.Comparison.CurrentScore)
	}
}

func TestTerraformRejectsBadEdit(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/api/terraform/Kepler-452b", "application/json",
		bytes.NewReader([]byte(`{"planet_radius": -1}`)))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestTimeline(t *testing.T) {
	ts := testServer(t)

	var timeline []struct {
		AgeYears float64 `json:"age_years"`
		HasLife  bool    `json:"has_life"`
	}
	if status := getJSON(t, ts.URL+"/api/timeline/Kepler-452b?samples=20", &timeline); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(timeline) != 20 {
		t.Errorf("snapshots = %d, want 20", len(timeline))
	}
}

func TestTimelineBadSampleCount(t *testing.T) {
	ts := testServer(t)
	if status := getJSON(t, ts.URL+"/api/timeline/Kepler-452b?samples=1", nil); status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestStats(t *testing.T) {
	ts := testServer(t)

	var summary struct {
		Count int     `json:"count"`
		Mean  float64 `json:"mean"`
	}
	if status := getJSON(t, ts.URL+"/api/stats", &summary); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if summary.Count != 2 {
		t.Errorf("count = %d, want 2", summary.Count)
	}
	if summary.Mean <= 0 {
		t.Errorf("mean = %v, want positive", summary.Mean)
	}
}
