package physics

import "math"

// Resolver turns manifolds into positional corrections and velocity impulses.
type Resolver struct {
	// Slop is the penetration left uncorrected to avoid jitter.
	Slop float64
	// CorrectionPercent is the share of the remaining penetration removed per tick.
	CorrectionPercent float64
}

// DefaultResolver returns the resolver tuning used by the engine.
func DefaultResolver() Resolver {
	return Resolver{Slop: 0.01, CorrectionPercent: 0.8}
}

// Resolution reports what Resolve did to a pair.
type Resolution struct {
	Correction float64
	Impulse    float64
	Separating bool
}

// Resolve separates the bodies of m and exchanges momentum along its normal.
func (r Resolver) Resolve(m Manifold) Resolution {
	var res Resolution
	a, b := m.A, m.B
	invA := a.InvMass()
	invB := b.InvMass()
	invSum := invA + invB
	if invSum == 0 {
		return res
	}

	res.Correction = math.Max(m.Penetration-r.Slop, 0) / invSum * r.CorrectionPercent
	if res.Correction > 0 {
		correction := m.Normal.Scale(res.Correction)
		if invA > 0 {
			a.SetPosition(a.Position.X-correction.X*invA, a.Position.Y-correction.Y*invA)
		}
		if invB > 0 {
			b.SetPosition(b.Position.X+correction.X*invB, b.Position.Y+correction.Y*invB)
		}
	}

	velAlongNormal := b.Velocity.Sub(a.Velocity).Dot(m.Normal)
	if velAlongNormal > 0 {
		res.Separating = true
		return res
	}

	e := math.Min(a.Bounce, b.Bounce)
	res.Impulse = -(1 + e) * velAlongNormal / invSum
	impulse := m.Normal.Scale(res.Impulse)
	a.ApplyImpulse(impulse.Scale(-1))
	b.ApplyImpulse(impulse)
	return res
}
