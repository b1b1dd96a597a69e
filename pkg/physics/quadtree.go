package physics

import "math"

const quadTreeMaxDepth = 8

// QuadTree for spatial partitioning of body centers
type QuadTree struct {
	Boundary  Rect
	Capacity  int
	Points    []Vector2D
	Objects   []int
	Divided   bool
	NorthWest *QuadTree
	NorthEast *QuadTree
	SouthWest *QuadTree
	SouthEast *QuadTree

	depth int
}

// Rect represents a rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X < r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y < r.Center.Y+r.Height/2
}

// NewQuadTree creates a new quad tree with the given boundary and capacity
func NewQuadTree(boundary Rect, capacity int) *QuadTree {
	return newQuadTree(boundary, capacity, 0)
}

func newQuadTree(boundary Rect, capacity, depth int) *QuadTree {
	if capacity < 1 {
		capacity = 1
	}
	return &QuadTree{
		Boundary: boundary,
		Capacity: capacity,
		Points:   make([]Vector2D, 0, capacity),
		Objects:  make([]int, 0, capacity),
		depth:    depth,
	}
}

// Insert stores object at point. It returns false if point is outside the tree.
func (qt *QuadTree) Insert(point Vector2D, object int) bool {
	if !qt.Boundary.Contains(point) {
		return false
	}

	// Leaves at maximum depth grow past capacity so coincident points terminate.
	if (len(qt.Points) < qt.Capacity || qt.depth >= quadTreeMaxDepth) && !qt.Divided {
		qt.Points = append(qt.Points, point)
		qt.Objects = append(qt.Objects, object)
		return true
	}

	if !qt.Divided {
		qt.Subdivide()
	}

	return qt.NorthWest.Insert(point, object) ||
		qt.NorthEast.Insert(point, object) ||
		qt.SouthWest.Insert(point, object) ||
		qt.SouthEast.Insert(point, object)
}

// Subdivide splits the quadtree into four quadrants and pushes existing
// points down into them.
func (qt *QuadTree) Subdivide() {
	x := qt.Boundary.Center.X
	y := qt.Boundary.Center.Y
	w := qt.Boundary.Width / 2
	h := qt.Boundary.Height / 2

	nw := Rect{Center: Vector2D{X: x - w/2, Y: y - h/2}, Width: w, Height: h}
	ne := Rect{Center: Vector2D{X: x + w/2, Y: y - h/2}, Width: w, Height: h}
	sw := Rect{Center: Vector2D{X: x - w/2, Y: y + h/2}, Width: w, Height: h}
	se := Rect{Center: Vector2D{X: x + w/2, Y: y + h/2}, Width: w, Height: h}

	qt.NorthWest = newQuadTree(nw, qt.Capacity, qt.depth+1)
	qt.NorthEast = newQuadTree(ne, qt.Capacity, qt.depth+1)
	qt.SouthWest = newQuadTree(sw, qt.Capacity, qt.depth+1)
	qt.SouthEast = newQuadTree(se, qt.Capacity, qt.depth+1)
	qt.Divided = true

	points, objects := qt.Points, qt.Objects
	qt.Points = qt.Points[:0:0]
	qt.Objects = qt.Objects[:0:0]
	for i, p := range points {
		if !(qt.NorthWest.Insert(p, objects[i]) ||
			qt.NorthEast.Insert(p, objects[i]) ||
			qt.SouthWest.Insert(p, objects[i]) ||
			qt.SouthEast.Insert(p, objects[i])) {
			qt.Points = append(qt.Points, p)
			qt.Objects = append(qt.Objects, objects[i])
		}
	}
}

// Query returns all objects whose point lies inside area
func (qt *QuadTree) Query(area Rect) []int {
	return qt.query(area, nil)
}

func (qt *QuadTree) query(area Rect, found []int) []int {
	if !qt.intersects(area) {
		return found
	}

	for i, point := range qt.Points {
		if area.Contains(point) {
			found = append(found, qt.Objects[i])
		}
	}

	if !qt.Divided {
		return found
	}

	found = qt.NorthWest.query(area, found)
	found = qt.NorthEast.query(area, found)
	found = qt.SouthWest.query(area, found)
	found = qt.SouthEast.query(area, found)
	return found
}

func (qt *QuadTree) intersects(area Rect) bool {
	return !(area.Center.X-area.Width/2 > qt.Boundary.Center.X+qt.Boundary.Width/2 ||
		area.Center.X+area.Width/2 < qt.Boundary.Center.X-qt.Boundary.Width/2 ||
		area.Center.Y-area.Height/2 > qt.Boundary.Center.Y+qt.Boundary.Height/2 ||
		area.Center.Y+area.Height/2 < qt.Boundary.Center.Y-qt.Boundary.Height/2)
}

// QuadTreeBroadPhase indexes body centers in a QuadTree rebuilt every tick.
// A body is queried with its own box grown by the largest body size, which
// covers the center of every body it can overlap.
type QuadTreeBroadPhase struct {
	Capacity int
}

// Pairs implements BroadPhase.
func (q QuadTreeBroadPhase) Pairs(bodies []*Body) []Pair {
	if len(bodies) < 2 {
		return nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	var maxW, maxH float64
	for _, b := range bodies {
		c := b.Center()
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
		maxW, maxH = math.Max(maxW, b.Width), math.Max(maxH, b.Height)
	}

	// Pad so the maximum center falls inside the half-open boundary.
	boundary := Rect{
		Center: Vector2D{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		Width:  maxX - minX + 2,
		Height: maxY - minY + 2,
	}
	capacity := q.Capacity
	if capacity <= 0 {
		capacity = 4
	}
	tree := NewQuadTree(boundary, capacity)
	for i, b := range bodies {
		tree.Insert(b.Center(), i)
	}

	seen := make(map[Pair]struct{})
	for i, b := range bodies {
		area := Rect{Center: b.Center(), Width: b.Width + maxW, Height: b.Height + maxH}
		for _, j := range tree.Query(area) {
			if j > i {
				seen[Pair{I: i, J: j}] = struct{}{}
			}
		}
	}
	return sortedPairs(seen)
}
