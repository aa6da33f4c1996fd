package physics

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 7, -3}) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %+v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: got %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := Vec3{Z: 1}

	if got := x.Cross(y); got != z {
		t.Errorf("x×y: got %+v", got)
	}
	if got := z.Cross(x); got != y {
		t.Errorf("z×x: got %+v", got)
	}
	if got := x.Cross(x); got != (Vec3{}) {
		t.Errorf("x×x: got %+v", got)
	}
}

func TestVec3Magnitude(t *testing.T) {
	v := Vec3{3, 4, 0}
	if v.Magnitude() != 5 {
		t.Errorf("magnitude: got %v", v.Magnitude())
	}

	n := v.Normalize()
	if math.Abs(n.Magnitude()-1) > 1e-12 {
		t.Errorf("normalized magnitude: got %v", n.Magnitude())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestVec3IsValid(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (Vec3{math.NaN(), 0, 0}).IsValid() {
		t.Error("NaN vector reported valid")
	}
	if (Vec3{0, math.Inf(1), 0}).IsValid() {
		t.Error("Inf vector reported valid")
	}
}
