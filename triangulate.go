package main

import "math"

// candidatesPerMarker is the number of points synthesized on the
// triangulation circle around each marker, one every 45 degrees
const candidatesPerMarker = 8

// Triangulate synthesizes the candidate waypoint set for a marker field.
// Every marker contributes candidates on a circle of the given radius; a
// candidate is kept only when it clears every marker by more than
// minConeDist and every previously accepted waypoint by more than
// minWaypointDist. Acceptance runs in marker order, then angular order,
// which decides which of two near-duplicates survives.
func Triangulate(markers []Marker, radius, minConeDist, minWaypointDist float64) []Point {
	index := NewMarkerIndex(markers)
	waypoints := make([]Point, 0, len(markers)*candidatesPerMarker)

	for _, marker := range markers {
		for i := 0; i < candidatesPerMarker; i++ {
			angle := float64(i) * math.Pi / 4
			candidate := Point{
				X: marker.X + radius*math.Cos(angle),
				Y: marker.Y + radius*math.Sin(angle),
			}

			if index.NearestDistance(candidate.X, candidate.Y) <= minConeDist {
				continue
			}

			closestWaypoint := math.Inf(1)
			for _, accepted := range waypoints {
				if dist := candidate.Distance(accepted); dist < closestWaypoint {
					closestWaypoint = dist
				}
			}
			if closestWaypoint <= minWaypointDist {
				continue
			}

			waypoints = append(waypoints, candidate)
		}
	}

	return waypoints
}
