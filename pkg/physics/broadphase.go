package physics

import (
	"math"
	"sort"
)

// Pair holds the indices of two candidate bodies, I < J.
type Pair struct {
	I, J int
}

// BroadPhase finds body pairs whose boxes might overlap. Implementations must
// return every pair overlapping at call time, sorted by (I, J), each pair once.
// Pairs only brought into contact by corrections later in the same pass are
// not guaranteed; BruteForce lists every pair and always finds them.
type BroadPhase interface {
	Pairs(bodies []*Body) []Pair
}

// BruteForce tests every unordered pair. O(n²), fine for UI element counts.
type BruteForce struct{}

// Pairs implements BroadPhase.
func (BruteForce) Pairs(bodies []*Body) []Pair {
	n := len(bodies)
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}
	return pairs
}

// SpatialHash buckets bodies into a uniform grid and pairs bodies sharing a cell.
type SpatialHash struct {
	// CellSize is the grid pitch. Zero or less picks the largest body dimension.
	// A pitch below the largest body size can miss contacts created by
	// corrections during the same pass.
	CellSize float64
}

type cellKey struct {
	X, Y int
}

// Pairs implements BroadPhase.
func (h SpatialHash) Pairs(bodies []*Body) []Pair {
	cellSize := h.CellSize
	if cellSize <= 0 {
		for _, b := range bodies {
			cellSize = math.Max(cellSize, math.Max(b.Width, b.Height))
		}
	}
	if cellSize <= 0 {
		return nil
	}

	cells := make(map[cellKey][]int)
	for i, b := range bodies {
		minX := int(math.Floor(b.AABB.MinX / cellSize))
		maxX := int(math.Floor(b.AABB.MaxX / cellSize))
		minY := int(math.Floor(b.AABB.MinY / cellSize))
		maxY := int(math.Floor(b.AABB.MaxY / cellSize))
		for x := minX; x <= maxX; x++ {
			for y := minY; y <= maxY; y++ {
				key := cellKey{X: x, Y: y}
				cells[key] = append(cells[key], i)
			}
		}
	}

	seen := make(map[Pair]struct{})
	for _, members := range cells {
		for a := 0; a < len(members); a++ {
			for b := a + 1; b < len(members); b++ {
				seen[Pair{I: members[a], J: members[b]}] = struct{}{}
			}
		}
	}
	return sortedPairs(seen)
}

func sortedPairs(set map[Pair]struct{}) []Pair {
	pairs := make([]Pair, 0, len(set))
	for p := range set {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].I != pairs[b].I {
			return pairs[a].I < pairs[b].I
		}
		return pairs[a].J < pairs[b].J
	})
	return pairs
}
