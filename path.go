package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CostFunc scores a path: deterministic, lower is better
type CostFunc func(*Path) float64

// Default cost weights (tuned on recorded cone tracks)
const (
	turnPenalty   = 2.0 // per radian of accumulated heading change
	spreadPenalty = 1.5 // per meter of segment-length standard deviation
)

// Path is an ordered waypoint sequence through the marker field
type Path struct {
	Waypoints []Waypoint `json:"waypoints"`
}

// NewPath returns the degenerate seed path: a single waypoint at the
// vehicle origin, facing along the local x axis
func NewPath() *Path {
	return &Path{Waypoints: []Waypoint{{X: 0, Y: 0, Heading: 0}}}
}

// Clone returns an independent deep copy of the path
func (p *Path) Clone() *Path {
	waypoints := make([]Waypoint, len(p.Waypoints))
	copy(waypoints, p.Waypoints)
	return &Path{Waypoints: waypoints}
}

// ContainsWaypoint reports whether the path already visits the given
// position. Candidates are copies of shared waypoint-set values, so the
// position match is exact.
func (p *Path) ContainsWaypoint(x, y float64) bool {
	for _, w := range p.Waypoints {
		if w.X == x && w.Y == y {
			return true
		}
	}
	return false
}

// AppendWaypoint extends the path to (x, y). The new waypoint's heading
// is the traversal direction from the previous last waypoint; the very
// first waypoint of a path keeps heading 0.
func (p *Path) AppendWaypoint(x, y float64) {
	heading := 0.0
	if n := len(p.Waypoints); n > 0 {
		last := p.Waypoints[n-1]
		heading = bearing(last.X, last.Y, x, y)
	}
	p.Waypoints = append(p.Waypoints, Waypoint{X: x, Y: y, Heading: heading})
}

// Len returns the number of waypoints in the path
func (p *Path) Len() int {
	return len(p.Waypoints)
}

// DefaultPathCost rewards track progress and penalizes sharp heading
// changes and uneven waypoint spacing. Paths too short to have a segment
// score +Inf so any real continuation beats them.
func DefaultPathCost(p *Path) float64 {
	if len(p.Waypoints) < 2 {
		return math.Inf(1)
	}

	segments := make([]float64, 0, len(p.Waypoints)-1)
	for i := 1; i < len(p.Waypoints); i++ {
		prev := p.Waypoints[i-1]
		curr := p.Waypoints[i]
		dx := curr.X - prev.X
		dy := curr.Y - prev.Y
		segments = append(segments, math.Sqrt(dx*dx+dy*dy))
	}
	progress := floats.Sum(segments)

	turning := 0.0
	for i := 2; i < len(p.Waypoints); i++ {
		turning += math.Abs(normalizeAngle(p.Waypoints[i].Heading - p.Waypoints[i-1].Heading))
	}

	spread := 0.0
	if len(segments) >= 2 {
		spread = stat.StdDev(segments, nil)
	}

	return turnPenalty*turning + spreadPenalty*spread - progress
}
