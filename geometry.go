package main

import "math"

// Point is a bare 2D coordinate in the vehicle-local frame (meters)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Marker is a sensed cone position delimiting the drivable corridor
type Marker struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Waypoint is a candidate drivable point plus the heading a path
// would have when arriving at it
type Waypoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

// Pose is an observation origin: position plus heading
type Pose struct {
	X       float64
	Y       float64
	Heading float64
}

// Positioned is implemented by anything with a 2D position, so the
// visibility filter works over markers and points alike
type Positioned interface {
	Position() (float64, float64)
}

func (p Point) Position() (float64, float64)    { return p.X, p.Y }
func (m Marker) Position() (float64, float64)   { return m.X, m.Y }
func (w Waypoint) Position() (float64, float64) { return w.X, w.Y }

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// normalizeAngle wraps an angle into [-pi, pi]
func normalizeAngle(angle float64) float64 {
	if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// bearing returns the angle of the vector from (x0, y0) to (x1, y1).
// Coincident points have a defined bearing of 0, never NaN.
func bearing(x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx)
}

// FilterLocal returns the subsequence of points visible from the origin
// pose: within maxDistance of it and within fieldOfView centered on its
// heading. Both limits are inclusive. Input order is preserved.
func FilterLocal[T Positioned](points []T, fieldOfView, maxDistance float64, origin Pose) []T {
	filtered := make([]T, 0, len(points))

	for _, point := range points {
		px, py := point.Position()
		dx := px - origin.X
		dy := py - origin.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		angle := normalizeAngle(bearing(origin.X, origin.Y, px, py) - origin.Heading)

		if math.Abs(angle) <= fieldOfView/2 && dist <= maxDistance {
			filtered = append(filtered, point)
		}
	}
	return filtered
}
