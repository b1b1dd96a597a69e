package physics

import "testing"

func TestAABB_Update(t *testing.T) {
	box := NewAABB(0, 0, 50, 20)
	box.Update(12.5, -3)

	if box.MinX != 12.5 || box.MinY != -3 {
		t.Errorf("min = (%v, %v), expected (12.5, -3)", box.MinX, box.MinY)
	}
	if box.MaxX != box.MinX+box.Width || box.MaxY != box.MinY+box.Height {
		t.Errorf("max out of sync: %+v", box)
	}
	if box.Width != 50 || box.Height != 20 {
		t.Errorf("size changed: %vx%v", box.Width, box.Height)
	}
}

func TestAABB_Intersects(t *testing.T) {
	base := NewAABB(0, 0, 10, 10)

	tests := []struct {
		name     string
		other    AABB
		expected bool
	}{
		{"overlapping", NewAABB(5, 5, 10, 10), true},
		{"contained", NewAABB(2, 2, 2, 2), true},
		{"touching_right_edge", NewAABB(10, 0, 10, 10), false},
		{"touching_bottom_edge", NewAABB(0, 10, 10, 10), false},
		{"touching_corner", NewAABB(10, 10, 5, 5), false},
		{"separate", NewAABB(30, 30, 5, 5), false},
		{"overlap_x_only", NewAABB(5, 20, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tt.expected)
			}
			if got := tt.other.Intersects(base); got != tt.expected {
				t.Errorf("symmetric Intersects() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestAABB_ContainsAndCenter(t *testing.T) {
	box := NewAABB(10, 20, 30, 40)

	if !box.Contains(Vector2D{X: 10, Y: 20}) {
		t.Error("min corner should be contained")
	}
	if box.Contains(Vector2D{X: 40, Y: 30}) {
		t.Error("max edge should not be contained")
	}
	if c := box.Center(); c != (Vector2D{X: 25, Y: 40}) {
		t.Errorf("Center() = %v, expected (25, 40)", c)
	}
}
