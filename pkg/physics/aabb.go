package physics

// AABB is an axis-aligned bounding box anchored at its top-left corner.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
	Width      float64
	Height     float64
}

// NewAABB creates a box of the given size with its minimum corner at (x, y).
func NewAABB(x, y, width, height float64) AABB {
	box := AABB{Width: width, Height: height}
	box.Update(x, y)
	return box
}

// Update moves the box so its minimum corner sits at (x, y).
func (a *AABB) Update(x, y float64) {
	a.MinX = x
	a.MinY = y
	a.MaxX = x + a.Width
	a.MaxY = y + a.Height
}

// Intersects reports strict overlap. Boxes that only share an edge do not intersect.
func (a AABB) Intersects(other AABB) bool {
	return a.MinX < other.MaxX &&
		a.MaxX > other.MinX &&
		a.MinY < other.MaxY &&
		a.MaxY > other.MinY
}

// Contains reports whether point lies inside the box (min edges inclusive).
func (a AABB) Contains(point Vector2D) bool {
	return point.X >= a.MinX && point.X < a.MaxX &&
		point.Y >= a.MinY && point.Y < a.MaxY
}

// Center returns the midpoint of the box.
func (a AABB) Center() Vector2D {
	return Vector2D{X: a.MinX + a.Width/2, Y: a.MinY + a.Height/2}
}
