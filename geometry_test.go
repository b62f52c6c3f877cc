package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterLocalDistanceLimit(t *testing.T) {
	points := []Point{
		{X: 1, Y: 0},
		{X: 3, Y: 4}, // distance exactly 5
		{X: 6, Y: 0},
	}

	filtered := FilterLocal(points, 2*math.Pi, 5, Pose{})

	require.Len(t, filtered, 2)
	assert.Equal(t, points[0], filtered[0])
	assert.Equal(t, points[1], filtered[1], "boundary distance is inclusive")
}

func TestFilterLocalFieldOfView(t *testing.T) {
	points := []Point{
		{X: 5, Y: 0},  // dead ahead
		{X: 0, Y: 5},  // exactly +fov/2
		{X: 0, Y: -5}, // exactly -fov/2
		{X: -5, Y: 0}, // behind
	}

	filtered := FilterLocal(points, math.Pi, 10, Pose{})

	require.Len(t, filtered, 3)
	assert.NotContains(t, filtered, Point{X: -5, Y: 0})
}

func TestFilterLocalHeadingRotatesWindow(t *testing.T) {
	points := []Point{
		{X: 5, Y: 0},
		{X: 0, Y: 5},
	}

	// Facing +y, only the +y point is visible in a narrow window.
	filtered := FilterLocal(points, math.Pi/4, 10, Pose{Heading: math.Pi / 2})

	require.Len(t, filtered, 1)
	assert.Equal(t, Point{X: 0, Y: 5}, filtered[0])
}

func TestFilterLocalAngleWrapsAroundPi(t *testing.T) {
	// Origin faces just short of pi; a point just past pi on the other
	// side of the discontinuity must still read as a small deviation.
	origin := Pose{Heading: math.Pi - 0.05}
	points := []Point{{X: math.Cos(-math.Pi + 0.05) * 3, Y: math.Sin(-math.Pi+0.05) * 3}}

	filtered := FilterLocal(points, 0.5, 10, origin)

	assert.Len(t, filtered, 1)
}

func TestFilterLocalCoincidentPoint(t *testing.T) {
	points := []Point{{X: 1, Y: 2}}

	// Zero-distance bearing is defined as 0, never NaN, so a coincident
	// point reads as dead ahead: visible when the origin faces forward,
	// outside the window once the heading turns away.
	filtered := FilterLocal(points, 0.1, 1, Pose{X: 1, Y: 2, Heading: 0})
	assert.Len(t, filtered, 1)

	filtered = FilterLocal(points, 0.1, 1, Pose{X: 1, Y: 2, Heading: 2.5})
	assert.Empty(t, filtered)

	deviation := normalizeAngle(bearing(1, 2, 1, 2) - 2.5)
	assert.False(t, math.IsNaN(deviation))
	assert.InDelta(t, -2.5, deviation, 1e-12)
}

func TestFilterLocalPreservesOrder(t *testing.T) {
	markers := []Marker{
		{X: 1, Y: 0},
		{X: 9, Y: 9}, // out of range
		{X: 2, Y: 0},
		{X: 3, Y: 0},
	}

	filtered := FilterLocal(markers, math.Pi, 5, Pose{})

	require.Len(t, filtered, 3)
	assert.Equal(t, []Marker{{X: 1}, {X: 2}, {X: 3}}, filtered)
}

func TestFilterLocalWorksOverMarkersAndWaypoints(t *testing.T) {
	markers := FilterLocal([]Marker{{X: 1, Y: 0}}, math.Pi, 5, Pose{})
	waypoints := FilterLocal([]Waypoint{{X: 1, Y: 0}}, math.Pi, 5, Pose{})

	assert.Len(t, markers, 1)
	assert.Len(t, waypoints, 1)
}

func TestBearingCoincident(t *testing.T) {
	assert.Equal(t, 0.0, bearing(3, 4, 3, 4))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, normalizeAngle(math.Pi/2), 1e-12)
	assert.InDelta(t, -math.Pi/2, normalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, normalizeAngle(-3*math.Pi/2), 1e-12)
}
