package renderer

import (
	"testing"

	"github.com/spaghettifunk/prism/engine/math"
)

func TestQuadConstruction(t *testing.T) {
	tests := []struct {
		name     string
		quad     Quad
		min, max math.Vec2
	}{
		{"centre half extents", NewQuadCentreHalfExtents(math.NewVec2(400, 75), math.NewVec2(100, 50)), math.NewVec2(300, 25), math.NewVec2(500, 125)},
		{"min max", NewQuadMinMax(math.NewVec2(300, 25), math.NewVec2(500, 125)), math.NewVec2(300, 25), math.NewVec2(500, 125)},
		{"degenerate", NewQuadCentreHalfExtents(math.NewVec2(1, 1), math.NewVec2(0, 0)), math.NewVec2(1, 1), math.NewVec2(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.quad.Min() != tt.min || tt.quad.Max() != tt.max {
				t.Errorf("corners = %+v, %+v", tt.quad.Min(), tt.quad.Max())
			}
			ext := tt.quad.Extents()
			if ext.Min != tt.min || ext.Max != tt.max {
				t.Errorf("extents = %+v", ext)
			}
		})
	}

	a := NewQuadCentreHalfExtents(math.NewVec2(400, 75), math.NewVec2(100, 50))
	b := NewQuadMinMax(math.NewVec2(300, 25), math.NewVec2(500, 125))
	if a != b {
		t.Errorf("both representations should build the same quad: %+v != %+v", a, b)
	}
}
