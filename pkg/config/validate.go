package config

import (
	"fmt"
	"math"
)

// ValidationError names the configuration field that failed validation
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Message)
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	p := c.Physics

	checks := []struct {
		ok      bool
		field   string
		value   interface{}
		message string
	}{
		{positive(c.World.Width), "World.Width", c.World.Width, "must be finite and > 0"},
		{positive(c.World.Height), "World.Height", c.World.Height, "must be finite and > 0"},
		{p.Gravity.IsFinite(), "Physics.Gravity", p.Gravity, "must be finite"},
		{nonNegative(p.GravityCoefficient), "Physics.GravityCoefficient", p.GravityCoefficient, "must be finite and >= 0"},
		{nonNegative(p.FrictionCoefficient), "Physics.FrictionCoefficient", p.FrictionCoefficient, "must be finite and >= 0"},
		{p.Damping >= 0 && p.Damping <= 1, "Physics.Damping", p.Damping, "must be within [0, 1]"},
		{positive(p.MaxSpeed), "Physics.MaxSpeed", p.MaxSpeed, "must be finite and > 0"},
		{p.DefaultBounce >= 0 && p.DefaultBounce <= 1, "Physics.DefaultBounce", p.DefaultBounce, "must be within [0, 1]"},
		{p.WallBounce >= 0 && p.WallBounce <= 1, "Physics.WallBounce", p.WallBounce, "must be within [0, 1]"},
		{nonNegative(p.RepulsionRadius), "Physics.RepulsionRadius", p.RepulsionRadius, "must be finite and >= 0"},
		{nonNegative(p.RepulsionForce), "Physics.RepulsionForce", p.RepulsionForce, "must be finite and >= 0"},
		{nonNegative(p.ScrollScale), "Physics.ScrollScale", p.ScrollScale, "must be finite and >= 0"},
		{p.ScrollDecay >= 0 && p.ScrollDecay < 1, "Physics.ScrollDecay", p.ScrollDecay, "must be within [0, 1)"},
		{nonNegative(p.ScrollSnap), "Physics.ScrollSnap", p.ScrollSnap, "must be finite and >= 0"},
		{nonNegative(p.Slop), "Physics.Slop", p.Slop, "must be finite and >= 0"},
		{p.CorrectionPercent > 0 && p.CorrectionPercent <= 1, "Physics.CorrectionPercent", p.CorrectionPercent, "must be within (0, 1]"},
		{validBroadPhase(c.BroadPhase.Kind), "BroadPhase.Kind", c.BroadPhase.Kind, "must be bruteforce, quadtree or spatialhash"},
		{nonNegative(c.BroadPhase.CellSize), "BroadPhase.CellSize", c.BroadPhase.CellSize, "must be finite and >= 0"},
		{c.BroadPhase.QuadCapacity >= 0, "BroadPhase.QuadCapacity", c.BroadPhase.QuadCapacity, "must be >= 0"},
		{nonNegative(c.Input.PointerStrength), "Input.PointerStrength", c.Input.PointerStrength, "must be finite and >= 0"},
		{isFinite(c.Input.ScrollSensitivity), "Input.ScrollSensitivity", c.Input.ScrollSensitivity, "must be finite"},
		{nonNegative(c.Input.ThrowScale), "Input.ThrowScale", c.Input.ThrowScale, "must be finite and >= 0"},
		{c.Limits.MaxBodies >= 0, "Limits.MaxBodies", c.Limits.MaxBodies, "must be >= 0 (0 disables the cap)"},
		{c.Limits.MaxBodies == 0 || len(c.Elements) <= c.Limits.MaxBodies, "Elements", len(c.Elements), "more elements than Limits.MaxBodies"},
	}
	for _, check := range checks {
		if !check.ok {
			return &ValidationError{Field: check.field, Value: check.value, Message: check.message}
		}
	}

	for i, el := range c.Elements {
		field := fmt.Sprintf("Elements[%d]", i)
		if !positive(el.Width) || !positive(el.Height) {
			return &ValidationError{Field: field + ".Size", Value: fmt.Sprintf("%gx%g", el.Width, el.Height), Message: "must be finite and > 0"}
		}
		if !isFinite(el.X) || !isFinite(el.Y) {
			return &ValidationError{Field: field + ".Position", Value: fmt.Sprintf("(%g, %g)", el.X, el.Y), Message: "must be finite"}
		}
		if !el.Static && !positive(el.Mass) {
			return &ValidationError{Field: field + ".Mass", Value: el.Mass, Message: "dynamic elements need a finite mass > 0"}
		}
		if el.Bounce != nil && (*el.Bounce < 0 || *el.Bounce > 1) {
			return &ValidationError{Field: field + ".Bounce", Value: *el.Bounce, Message: "must be within [0, 1]"}
		}
	}
	return nil
}

func validBroadPhase(kind string) bool {
	switch kind {
	case BroadPhaseBruteForce, BroadPhaseQuadTree, BroadPhaseSpatialHash:
		return true
	}
	return false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}

func nonNegative(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0)
}
