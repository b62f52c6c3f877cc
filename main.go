package main

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// paramsFile is the optional startup tuning file; defaults apply when
// it is absent
const paramsFile = "params.yaml"

type PlanRequest struct {
	Markers []Marker      `json:"markers"`
	Params  *SearchParams `json:"params,omitempty"` // Optional: overrides the server tuning for this request
}

type PlanResponse struct {
	Path           []Waypoint `json:"path"`
	Success        bool       `json:"success"`
	Message        string     `json:"message,omitempty"`
	Cost           *float64   `json:"cost,omitempty"`
	DistanceMeters float64    `json:"distanceMeters,omitempty"`
}

type TriangulateResponse struct {
	Markers   []Marker `json:"markers"` // vehicle-local subset
	Waypoints []Point  `json:"waypoints"`
	Success   bool     `json:"success"`
	Message   string   `json:"message,omitempty"`
}

var (
	globalParams SearchParams
	paramsMutex  sync.RWMutex
)

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// requestParams resolves the tuning for one request: inline overrides
// win, otherwise the server-wide params apply
func requestParams(override *SearchParams) SearchParams {
	if override != nil {
		return *override
	}
	paramsMutex.RLock()
	defer paramsMutex.RUnlock()
	return globalParams
}

// pathLengthMeters measures the polyline length of a planned path
func pathLengthMeters(path *Path) float64 {
	if path.Len() < 2 {
		return 0
	}
	line := make(orb.LineString, 0, path.Len())
	for _, w := range path.Waypoints {
		line = append(line, orb.Point{w.X, w.Y})
	}
	return planar.Length(line)
}

func planHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Plan request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	log.Printf("   Markers: %d\n", len(req.Markers))

	search, err := NewTreeSearch(req.Markers, requestParams(req.Params), nil)
	if err != nil {
		log.Printf("❌ Invalid params: %v\n", err)
		response := PlanResponse{
			Success: false,
			Message: err.Error(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(response)
		log.Println("========================================")
		return
	}

	log.Printf("   Local markers: %d, waypoints: %d\n",
		len(search.Markers()), len(search.Waypoints()))
	log.Println("🔍 Running beam search...")

	best := search.GetPath()
	distanceMeters := pathLengthMeters(best)

	response := PlanResponse{
		Path:           best.Waypoints,
		Success:        true,
		DistanceMeters: distanceMeters,
	}
	if cost := DefaultPathCost(best); !math.IsInf(cost, 0) {
		response.Cost = &cost
	}

	log.Printf("✅ Path found with %d waypoints\n", best.Len())
	log.Printf("   Length: %.2f meters\n", distanceMeters)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
	log.Println("========================================")
}

// POST /triangulate - Filter and triangulate a marker snapshot for visualization
func triangulateHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📊 Triangulate request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	search, err := NewTreeSearch(req.Markers, requestParams(req.Params), nil)
	if err != nil {
		log.Printf("❌ Invalid params: %v\n", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(TriangulateResponse{Success: false, Message: err.Error()})
		log.Println("========================================")
		return
	}

	log.Printf("   Returning %d local markers, %d waypoints\n",
		len(search.Markers()), len(search.Waypoints()))
	log.Println("========================================")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TriangulateResponse{
		Markers:   search.Markers(),
		Waypoints: search.Waypoints(),
		Success:   true,
	})
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	paramsMutex.RLock()
	params := globalParams
	paramsMutex.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ready",
		"params": params,
	})
}

func main() {
	log.Println("========================================")
	log.Println("🚀 Cone Planner Server (beam search)")
	log.Println("========================================")
	log.Printf("Checking for %s...\n", paramsFile)

	params, err := LoadSearchParams(paramsFile)
	if err != nil {
		log.Printf("ℹ️  Using default params (%v)\n", err)
		params = DefaultSearchParams()
	} else {
		log.Println("✅ Loaded params from file")
	}

	paramsMutex.Lock()
	globalParams = params
	paramsMutex.Unlock()

	http.HandleFunc("/plan", corsMiddleware(planHandler))
	http.HandleFunc("/triangulate", corsMiddleware(triangulateHandler))
	http.HandleFunc("/health", corsMiddleware(healthHandler))

	log.Println("Server starting on :8080")
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /plan         - Compute best path for a marker snapshot")
	log.Println("  POST /triangulate  - Filter and triangulate markers (visualization)")
	log.Println("  GET  /health       - Check server status")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")
	log.Println("")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatal(err)
	}
}
