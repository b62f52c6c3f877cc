package main

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	paramsMutex.Lock()
	globalParams = DefaultSearchParams()
	paramsMutex.Unlock()
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestPlanHandler(t *testing.T) {
	rec := postJSON(t, planHandler, PlanRequest{Markers: corridorMarkers()})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlanResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Greater(t, len(resp.Path), 1)
	assert.Greater(t, resp.DistanceMeters, 0.0)
	require.NotNil(t, resp.Cost)
}

func TestPlanHandlerNoMarkers(t *testing.T) {
	rec := postJSON(t, planHandler, PlanRequest{})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlanResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Path, 1, "degenerate seed path")
	assert.Nil(t, resp.Cost)
}

func TestPlanHandlerInvalidParams(t *testing.T) {
	bad := DefaultSearchParams()
	bad.PathQueueLimit = 0

	rec := postJSON(t, planHandler, PlanRequest{Markers: corridorMarkers(), Params: &bad})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanHandlerRejectsGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/plan", nil)
	rec := httptest.NewRecorder()
	planHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestTriangulateHandler(t *testing.T) {
	params := DefaultSearchParams()
	params.FieldOfView = 2 * math.Pi
	params.Distance = 100
	params.TriangulationRadius = 1.0
	params.TriangulationMinConeDist = 0.1
	params.TriangulationMinWaypointDist = 0.1

	rec := postJSON(t, triangulateHandler, PlanRequest{
		Markers: []Marker{{X: 0, Y: 0}},
		Params:  &params,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TriangulateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Markers, 1)
	assert.Len(t, resp.Waypoints, 8, "full ring around a lone marker")
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	healthHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ready", resp["status"])
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/plan", nil)
	rec := httptest.NewRecorder()
	corsMiddleware(planHandler)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
