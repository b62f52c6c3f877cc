package main

import "math"

// TreeSearch grows candidate paths through the triangulated waypoint set
// with a cost-bounded beam expansion. One instance covers one sensing
// cycle: build it from the cycle's markers, call GetPath once, discard.
type TreeSearch struct {
	params    SearchParams
	markers   []Marker
	waypoints []Point
	costFn    CostFunc
}

// NewTreeSearch validates the parameters, restricts the markers to the
// vehicle-local region and triangulates them into the shared waypoint
// set. A nil costFn selects DefaultPathCost.
func NewTreeSearch(markers []Marker, params SearchParams, costFn CostFunc) (*TreeSearch, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if costFn == nil {
		costFn = DefaultPathCost
	}

	local := FilterLocal(markers, params.FieldOfView, params.Distance, Pose{})

	return &TreeSearch{
		params:  params,
		markers: local,
		waypoints: Triangulate(local, params.TriangulationRadius,
			params.TriangulationMinConeDist, params.TriangulationMinWaypointDist),
		costFn: costFn,
	}, nil
}

// Markers returns the vehicle-local subset of the input markers
func (ts *TreeSearch) Markers() []Marker {
	return ts.markers
}

// Waypoints returns the triangulated candidate waypoint set
func (ts *TreeSearch) Waypoints() []Point {
	return ts.waypoints
}

// GetPath runs the beam search and returns a deep copy of the cheapest
// path found within the round budget. With no local markers there is
// nothing to expand into and the seed path comes back unchanged.
func (ts *TreeSearch) GetPath() *Path {
	queue := NewPathQueue(ts.params.PathQueueLimit)
	queue.AddNewPath(NewPath(), math.Inf(1))

	for i := 0; i < ts.params.MaxSearchIterations; i++ {
		noNewPaths := true

		// Snapshot the round size: paths admitted during this round
		// wait until the next one.
		size := queue.Len()
		for j := 0; j < size; j++ {
			currPath, currCost := queue.PopFront()

			if currPath.Len() > ts.params.MaxWaypointsPerPath {
				// Terminal candidate: keep it alive, stop growing it.
				queue.AddNewPath(currPath, currCost)
				continue
			}

			last := currPath.Waypoints[currPath.Len()-1]
			candidates := FilterLocal(ts.waypoints,
				ts.params.WaypointFieldOfView, ts.params.WaypointDistance,
				Pose{X: last.X, Y: last.Y, Heading: last.Heading})

			addedPoint := false
			for _, candidate := range candidates {
				if currPath.ContainsWaypoint(candidate.X, candidate.Y) {
					continue
				}
				newPath := currPath.Clone()
				newPath.AppendWaypoint(candidate.X, candidate.Y)
				if queue.AddNewPath(newPath, ts.costFn(newPath)) {
					noNewPaths = false
					addedPoint = true
				}
			}
			if !addedPoint {
				queue.AddNewPath(currPath, currCost)
			}
		}

		if noNewPaths {
			break
		}
	}

	return queue.PathAt(queue.BestPathIndex()).Clone()
}
