// pkg/physics/collision.go
package physics

import "math"

// Manifold contains the contact between two overlapping bodies for one tick.
// Normal is a unit vector pointing from A to B.
type Manifold struct {
	A           *Body
	B           *Body
	Normal      Vector2D
	Penetration float64
}

// CheckAABB performs narrow-phase detection between two bodies. It reports
// false when the boxes do not overlap or the overlap is degenerate.
func CheckAABB(a, b *Body) (Manifold, bool) {
	if !a.AABB.Intersects(b.AABB) {
		return Manifold{}, false
	}

	diff := b.Center().Sub(a.Center())
	halfA := a.HalfExtents()
	halfB := b.HalfExtents()

	overlapX := halfA.X + halfB.X - math.Abs(diff.X)
	overlapY := halfA.Y + halfB.Y - math.Abs(diff.Y)
	if !(overlapX > 0) || !(overlapY > 0) || !isFinite(overlapX) || !isFinite(overlapY) {
		return Manifold{}, false
	}

	m := Manifold{A: a, B: b}
	if overlapX <= overlapY {
		m.Normal = Vector2D{X: axisSign(diff.X)}
		m.Penetration = overlapX
	} else {
		m.Normal = Vector2D{Y: axisSign(diff.Y)}
		m.Penetration = overlapY
	}
	return m, true
}

// axisSign returns -1 for negative values and +1 otherwise, so coincident
// centers still get a usable normal.
func axisSign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
