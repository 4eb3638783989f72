// Package server exposes the catalog and simulation engines over a local
// JSON API. It is a thin surface: all computation happens in the pure pkg
// engines.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/TheBoringRats/AstroSynth-sub001/pkg/biome"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/dataset"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/evolution"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/habitability"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/planet"
	"github.com/TheBoringRats/AstroSynth-sub001/pkg/terraform"
)

// Server serves the planet catalog and simulation endpoints.
type Server struct {
	store *dataset.Store
	port  int
}

// New creates a server over an open catalog store.
func New(store *dataset.Store, port int) *Server {
	return &Server{store: store, port: port}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/planets", s.handleList)
	mux.HandleFunc("GET /api/planets/{name}", s.handlePlanet)
	mux.HandleFunc("GET /api/habitability/{name}", s.handleHabitability)
	mux.HandleFunc("POST /api/terraform/{name}", s.handleTerraform)
	mux.HandleFunc("GET /api/timeline/{name}", s.handleTimeline)
	mux.HandleFunc("GET /api/stats", s.handleStats)

	return mux
}

// Start launches the HTTP server and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("astrosynth server starting on http://localhost%s", addr)

	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	filter := dataset.Filter{
		NamePrefix: r.URL.Query().Get("prefix"),
		MinRadius:  queryFloat(r, "min_radius"),
		MaxRadius:  queryFloat(r, "max_radius"),
		MinTemp:    queryFloat(r, "min_temp"),
		MaxTemp:    queryFloat(r, "max_temp"),
		DiscYear:   queryInt(r, "year", 0),
		Limit:      queryInt(r, "limit", 100),
	}

	records, err := s.store.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, records)
}

func (s *Server) handlePlanet(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}

	writeJSON(w, map[string]any{
		"planet":       p,
		"biome":        biome.ClassifyParameters(p),
		"habitability": habitability.Calculate(p),
	})
}

func (s *Server) handleHabitability(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, habitability.Calculate(p))
}

// terraformRequest carries session edits applied on top of the seeded
// parameters before scoring. Absent fields keep their seeded values.
type terraformRequest struct {
	Atmosphere      *habitability.AtmosphereMix `json:"atmosphere,omitempty"`
	WaterCoverage   *float64                    `json:"water_coverage,omitempty"`
	OrbitalDistance *float64                    `json:"orbital_distance,omitempty"`
	PlanetMass      *float64                    `json:"planet_mass,omitempty"`
	PlanetRadius    *float64                    `json:"planet_radius,omitempty"`
	HasMoon         *bool                       `json:"has_moon,omitempty"`
}

func (s *Server) handleTerraform(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req terraformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding terraform request: %w", err))
		return
	}

	tp := terraform.NewParameters(p)
	applyEdits(tp, req)
	tp.NormalizeAtmosphere()

	baseline := habitability.Calculate(p)
	current, err := terraform.Score(p, tp)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, map[string]any{
		"parameters":    tp,
		"result":        current,
		"comparison":    terraform.Compare(baseline, current),
		"breathability": terraform.GetBreathability(tp),
	})
}

func applyEdits(tp *terraform.Parameters, req terraformRequest) {
	if req.Atmosphere != nil {
		tp.Atmosphere = *req.Atmosphere
	}
	if req.WaterCoverage != nil {
		tp.WaterCoverage = *req.WaterCoverage
	}
	if req.OrbitalDistance != nil {
		tp.OrbitalDistance = *req.OrbitalDistance
	}
	if req.PlanetMass != nil {
		tp.PlanetMass = *req.PlanetMass
	}
	if req.PlanetRadius != nil {
		tp.PlanetRadius = *req.PlanetRadius
	}
	if req.HasMoon != nil {
		tp.HasMoon = *req.HasMoon
	}
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}

	timeline, err := evolution.GenerateTimeline(p, queryInt(r, "samples", 50))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, timeline)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context(), dataset.Filter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	scored := dataset.ScoreAll(dataset.Parameters(records))
	writeJSON(w, dataset.Summarize(scored))
}

// lookup fetches and sanitizes the planet named in the request path.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (planet.Parameters, bool) {
	rec, err := s.store.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dataset.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return planet.Parameters{}, false
	}

	return planet.Sanitize(planet.FromRecord(rec), nil), true
}

func statusFor(err error) int {
	if errors.Is(err, planet.ErrInvalidArgument) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func queryFloat(r *http.Request, key string) float64 {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
