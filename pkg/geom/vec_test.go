package geom

import (
	"math"
	"testing"
)

func TestNormalized_UnitLength(t *testing.T) {
	v := Vec2{3, 4}.Normalized()
	if math.Abs(v.Len()-1.0) > 1e-9 {
		t.Fatalf("normalized length = %.6f, want 1", v.Len())
	}
}

func TestNormalized_ZeroVector(t *testing.T) {
	v := Vec2{}.Normalized()
	if v.X != 0 || v.Y != 0 {
		t.Fatalf("normalizing the zero vector changed it: %v", v)
	}
}

func TestPointOnCircle(t *testing.T) {
	c := Vec2{10, 20}
	p := PointOnCircle(c, 5, 0)
	if math.Abs(p.X-15) > 1e-9 || math.Abs(p.Y-20) > 1e-9 {
		t.Fatalf("point at angle 0 = %v, want (15, 20)", p)
	}
	if d := Dist(PointOnCircle(c, 5, 2.1), c); math.Abs(d-5) > 1e-9 {
		t.Fatalf("point not on circle: distance %.6f", d)
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi); math.Abs(got-math.Pi) > 1e-9 {
		t.Fatalf("NormalizeAngle(3π) = %.6f, want π", got)
	}
	if got := NormalizeAngle(-3 * math.Pi); math.Abs(got+math.Pi) > 1e-9 {
		t.Fatalf("NormalizeAngle(-3π) = %.6f, want -π", got)
	}
}
