package main

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// markerTolerance is the half-width of the degenerate rectangle used to
// store point markers in the R-tree
const markerTolerance = 1e-9

// MarkerEntry wraps a marker for R-tree storage
type MarkerEntry struct {
	Marker Marker
	BBox   rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (m *MarkerEntry) Bounds() rtreego.Rect {
	return m.BBox
}

// MarkerIndex manages nearest-marker spatial queries
type MarkerIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewMarkerIndex builds a spatial index over the given markers
func NewMarkerIndex(markers []Marker) *MarkerIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for _, marker := range markers {
		entry := &MarkerEntry{
			Marker: marker,
			BBox:   rtreego.Point{marker.X, marker.Y}.ToRect(markerTolerance),
		}
		tree.Insert(entry)
	}

	return &MarkerIndex{tree: tree, size: len(markers)}
}

// NearestDistance returns the exact Euclidean distance from (x, y) to the
// closest indexed marker, or +Inf when the index is empty
func (mi *MarkerIndex) NearestDistance(x, y float64) float64 {
	if mi.size == 0 {
		return math.Inf(1)
	}

	nearest := mi.tree.NearestNeighbor(rtreego.Point{x, y})
	if nearest == nil {
		return math.Inf(1)
	}

	entry := nearest.(*MarkerEntry)
	dx := entry.Marker.X - x
	dy := entry.Marker.Y - y
	return math.Sqrt(dx*dx + dy*dy)
}

// Len returns the number of indexed markers
func (mi *MarkerIndex) Len() int {
	return mi.size
}
