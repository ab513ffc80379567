package breaklab

import "testing"

func TestCircleIntersectsBox(t *testing.T) {
	box := Box{X: 100, Y: 100, W: 60, H: 20}

	tests := []struct {
		name string
		c    Circle
		want bool
	}{
		{"center inside", Circle{130, 110, 5}, true},
		{"far away", Circle{10, 10, 5}, false},
		{"tangent left edge", Circle{90, 110, 10}, true},
		{"just off left edge", Circle{89.999, 110, 10}, false},
		{"tangent top edge", Circle{130, 90, 10}, true},
		{"corner tangent 3-4-5", Circle{97, 96, 5}, true},
		{"corner just outside", Circle{97, 96, 4.999}, false},
		{"overlapping bottom", Circle{130, 125, 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleIntersectsBox(tt.c, box); got != tt.want {
				t.Errorf("CircleIntersectsBox(%+v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestReflectAway(t *testing.T) {
	tests := []struct {
		v, away, want float64
	}{
		{-3, 1, 3},
		{3, 1, 3},
		{3, -1, -3},
		{-3, -1, -3},
	}
	for _, tt := range tests {
		if got := ReflectAway(tt.v, tt.away); got != tt.want {
			t.Errorf("ReflectAway(%g, %g) = %g, want %g", tt.v, tt.away, got, tt.want)
		}
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 30, Y: 40, W: 60, H: 20}
	if b.Right() != 90 || b.Bottom() != 60 {
		t.Errorf("edges = (%g, %g), want (90, 60)", b.Right(), b.Bottom())
	}
	cx, cy := b.Center()
	if cx != 60 || cy != 50 {
		t.Errorf("center = (%g, %g), want (60, 50)", cx, cy)
	}
}
