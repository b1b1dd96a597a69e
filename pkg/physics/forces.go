package physics

// repulsionEpsilon is the distance below which the pointer is treated as
// sitting on the body's center and no direction can be derived.
const repulsionEpsilon = 1e-6

// ApplyGravity pushes b along g scaled by its mass. g is the effective
// gravity for this tick, coefficient already applied.
func ApplyGravity(b *Body, g Vector2D) {
	if b.Immovable() {
		return
	}
	b.ApplyForce(g.Scale(b.Mass))
}

// ApplyRepulsion pushes b away from the pointer with a linear falloff that
// reaches zero at radius. The force is scaled by mass here and divided by mass
// again in ApplyForce.
func ApplyRepulsion(b *Body, pointer Vector2D, radius, maxForce, strength float64) {
	if b.Immovable() || radius <= 0 {
		return
	}
	offset := b.Center().Sub(pointer)
	d := offset.Length()
	if d <= repulsionEpsilon || d >= radius {
		return
	}
	magnitude := (1 - d/radius) * maxForce * strength * b.Mass
	b.ApplyForce(offset.Scale(magnitude / d))
}

// ApplyScroll converts the shared scroll velocity into a force on b.
func ApplyScroll(b *Body, scrollVelocity Vector2D, scale float64) {
	if b.Immovable() || scrollVelocity.IsZero() {
		return
	}
	b.ApplyForce(scrollVelocity.Scale(b.Mass * scale))
}

// ApplySpring pulls b's center toward restLength from anchor (Hooke's law),
// damping the velocity component along the spring axis.
func ApplySpring(b *Body, anchor Vector2D, restLength, stiffness, damping float64) {
	if b.Immovable() {
		return
	}
	offset := b.Center().Sub(anchor)
	d := offset.Length()
	if d <= repulsionEpsilon {
		return
	}
	dir := offset.Scale(1 / d)
	stretch := d - restLength
	force := dir.Scale(-stiffness*stretch - damping*b.Velocity.Dot(dir))
	b.ApplyForce(force)
}
