package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestPlayFieldBounds(t *testing.T) {
	tests := []struct {
		name     string
		p        Position
		expected bool
	}{
		{"origin", Position{0, 0}, true},
		{"last cell", Position{580, 580}, true},
		{"right edge", Position{600, 300}, false},
		{"bottom edge", Position{300, 600}, false},
		{"negative x", Position{-20, 300}, false},
		{"negative y", Position{300, -20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PlayField.Contains(tc.p.X, tc.p.Y); got != tc.expected {
				t.Errorf("PlayField.Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Position
	}{
		{DirUp, Position{0, -CellSize}},
		{DirDown, Position{0, CellSize}},
		{DirLeft, Position{-CellSize, 0}},
		{DirRight, Position{CellSize, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Vector(CellSize); got != tc.expected {
				t.Errorf("Vector() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		opp := d.Opposite()
		if opp == d {
			t.Errorf("%v.Opposite() returned itself", d)
		}
		if opp.Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, opp.Opposite())
		}
		if sum := d.Vector(1).Add(opp.Vector(1)); sum != (Position{}) {
			t.Errorf("%v and its opposite do not cancel: %v", d, sum)
		}
	}
}

func TestPositionAligned(t *testing.T) {
	if !StartPosition.Aligned(CellSize) {
		t.Errorf("StartPosition %v should be grid aligned", StartPosition)
	}
	if (Position{X: 310, Y: 300}).Aligned(CellSize) {
		t.Error("(310, 300) should not be grid aligned")
	}
}
