package main

// PathQueue is a fixed-capacity pool of candidate paths keyed by cost.
// At capacity it evicts the worst entry, and only for a strictly better
// candidate, so it never overruns its limit and never loses the best
// path seen so far. Operations are linear scans; capacities here are
// small (tens to low hundreds), so a heap buys nothing. A larger beam
// should swap in a heap behind these same three operations.
//
// The queue owns every inserted path: callers hand over freshly built
// clones and must not retain or mutate them afterwards.
type PathQueue struct {
	capacity int
	paths    []*Path
	costs    []float64
}

// NewPathQueue creates an empty queue holding at most capacity paths
func NewPathQueue(capacity int) *PathQueue {
	return &PathQueue{
		capacity: capacity,
		paths:    make([]*Path, 0, capacity),
		costs:    make([]float64, 0, capacity),
	}
}

// AddNewPath offers a path to the queue. Below capacity it is always
// accepted. At capacity it replaces the current worst entry only when
// that entry's cost is strictly greater than newCost. Reports whether
// the path was stored.
func (q *PathQueue) AddNewPath(path *Path, newCost float64) bool {
	if len(q.paths) >= q.capacity {
		worst := q.WorstPathIndex()
		if q.costs[worst] > newCost {
			q.paths[worst] = path
			q.costs[worst] = newCost
			return true
		}
		return false
	}
	q.paths = append(q.paths, path)
	q.costs = append(q.costs, newCost)
	return true
}

// WorstPathIndex returns the index of the highest-cost entry; ties
// resolve to the lowest index
func (q *PathQueue) WorstPathIndex() int {
	worst := 0
	for i := range q.costs {
		if q.costs[i] > q.costs[worst] {
			worst = i
		}
	}
	return worst
}

// BestPathIndex returns the index of the lowest-cost entry; ties
// resolve to the lowest index
func (q *PathQueue) BestPathIndex() int {
	best := 0
	for i := range q.costs {
		if q.costs[i] < q.costs[best] {
			best = i
		}
	}
	return best
}

// PopFront removes and returns the oldest entry
func (q *PathQueue) PopFront() (*Path, float64) {
	path := q.paths[0]
	cost := q.costs[0]
	q.paths = q.paths[1:]
	q.costs = q.costs[1:]
	return path, cost
}

// PathAt returns the stored path at index i
func (q *PathQueue) PathAt(i int) *Path {
	return q.paths[i]
}

// CostAt returns the stored cost at index i
func (q *PathQueue) CostAt(i int) float64 {
	return q.costs[i]
}

// Len returns the number of stored paths
func (q *PathQueue) Len() int {
	return len(q.paths)
}
