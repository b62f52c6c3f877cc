package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SearchParams holds every tunable of the planner. The same record is
// loaded from the params file at startup and accepted inline on /plan
// requests, so the JSON and YAML schemas match.
type SearchParams struct {
	// Vehicle-local marker filter
	FieldOfView float64 `json:"field_of_view" yaml:"field_of_view"` // radians, (0, 2*pi]
	Distance    float64 `json:"distance" yaml:"distance"`           // meters

	// Triangulation
	TriangulationRadius          float64 `json:"triangulation_radius" yaml:"triangulation_radius"`
	TriangulationMinConeDist     float64 `json:"triangulation_min_cone_dist" yaml:"triangulation_min_cone_dist"`
	TriangulationMinWaypointDist float64 `json:"triangulation_min_waypoint_dist" yaml:"triangulation_min_waypoint_dist"`

	// Beam search
	PathQueueLimit      int `json:"path_queue_limit" yaml:"path_queue_limit"`
	MaxSearchIterations int `json:"max_search_iterations" yaml:"max_search_iterations"`
	MaxWaypointsPerPath int `json:"max_waypoints_per_path" yaml:"max_waypoints_per_path"`

	// Per-step expansion filter
	WaypointFieldOfView float64 `json:"waypoint_field_of_view" yaml:"waypoint_field_of_view"`
	WaypointDistance    float64 `json:"waypoint_distance" yaml:"waypoint_distance"`
}

// DefaultSearchParams returns the tuning used on a typical cone track
func DefaultSearchParams() SearchParams {
	return SearchParams{
		FieldOfView:                  math.Pi,
		Distance:                     12.0,
		TriangulationRadius:          1.5,
		TriangulationMinConeDist:     1.0,
		TriangulationMinWaypointDist: 0.5,
		PathQueueLimit:               64,
		MaxSearchIterations:          10,
		MaxWaypointsPerPath:          10,
		WaypointFieldOfView:          math.Pi / 2,
		WaypointDistance:             4.0,
	}
}

// Validate rejects a configuration that cannot drive a search. It runs
// before any planning so a bad params file fails at startup, not in the
// middle of a cycle.
func (p SearchParams) Validate() error {
	// The negated comparisons also trap NaN, which a YAML file can
	// express as .nan and which sails through plain <= checks.
	if !(p.FieldOfView > 0) || p.FieldOfView > 2*math.Pi {
		return fmt.Errorf("field_of_view must be in (0, 2*pi], got %v", p.FieldOfView)
	}
	if !(p.Distance > 0) {
		return fmt.Errorf("distance must be positive, got %v", p.Distance)
	}
	if !(p.TriangulationRadius > 0) {
		return fmt.Errorf("triangulation_radius must be positive, got %v", p.TriangulationRadius)
	}
	if !(p.TriangulationMinConeDist > 0) {
		return fmt.Errorf("triangulation_min_cone_dist must be positive, got %v", p.TriangulationMinConeDist)
	}
	if !(p.TriangulationMinWaypointDist > 0) {
		return fmt.Errorf("triangulation_min_waypoint_dist must be positive, got %v", p.TriangulationMinWaypointDist)
	}
	if p.PathQueueLimit <= 0 {
		return fmt.Errorf("path_queue_limit must be positive, got %d", p.PathQueueLimit)
	}
	if p.MaxSearchIterations <= 0 {
		return fmt.Errorf("max_search_iterations must be positive, got %d", p.MaxSearchIterations)
	}
	if p.MaxWaypointsPerPath <= 0 {
		return fmt.Errorf("max_waypoints_per_path must be positive, got %d", p.MaxWaypointsPerPath)
	}
	if !(p.WaypointFieldOfView > 0) || p.WaypointFieldOfView > 2*math.Pi {
		return fmt.Errorf("waypoint_field_of_view must be in (0, 2*pi], got %v", p.WaypointFieldOfView)
	}
	if !(p.WaypointDistance > 0) {
		return fmt.Errorf("waypoint_distance must be positive, got %v", p.WaypointDistance)
	}
	return nil
}

// LoadSearchParams reads and validates a YAML params file
func LoadSearchParams(path string) (SearchParams, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return SearchParams{}, fmt.Errorf("params file must have a .yaml or .yml extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return SearchParams{}, fmt.Errorf("failed to read params file: %w", err)
	}

	// Fields omitted from the file keep their defaults, so partial
	// files are safe.
	params := DefaultSearchParams()
	if err := yaml.Unmarshal(data, &params); err != nil {
		return SearchParams{}, fmt.Errorf("failed to parse params YAML: %w", err)
	}

	if err := params.Validate(); err != nil {
		return SearchParams{}, fmt.Errorf("invalid params: %w", err)
	}

	return params, nil
}
