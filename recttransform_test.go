package rowan

import (
	"math"
	"testing"
)

func TestLayoutSettersNoOpWithoutRect(t *testing.T) {
	obj := New("plain")

	if SetAnchor(obj, Vec2{}, Vec2{1, 1}) {
		t.Error("SetAnchor on rect-less object returned true")
	}
	if SetOffset(obj, Vec2{}, Vec2{10, 10}) {
		t.Error("SetOffset on rect-less object returned true")
	}
	if SetSizeDelta(obj, Vec2{100, 100}) {
		t.Error("SetSizeDelta on rect-less object returned true")
	}
	if SetSizeWithCurrentAnchors(obj, AxisHorizontal, 50) {
		t.Error("SetSizeWithCurrentAnchors on rect-less object returned true")
	}
	if obj.Rect() != nil {
		t.Error("failed setters must not attach a rect")
	}
}

func TestSetAnchorAndOffset(t *testing.T) {
	obj := NewRect("panel")

	if !SetAnchor(obj, Vec2{0.5, 0.5}, Vec2{0.5, 0.5}) {
		t.Fatal("SetAnchor returned false on rect object")
	}
	if !SetOffset(obj, Vec2{-40, -20}, Vec2{40, 20}) {
		t.Fatal("SetOffset returned false on rect object")
	}

	r := obj.Rect()
	if r.AnchorMin != (Vec2{0.5, 0.5}) || r.AnchorMax != (Vec2{0.5, 0.5}) {
		t.Error("anchors not applied")
	}
	if got := r.SizeDelta(); got != (Vec2{80, 40}) {
		t.Errorf("SizeDelta = %+v, want {80 40}", got)
	}
}

func TestSetSizeDeltaCentersOnPivot(t *testing.T) {
	obj := NewRect("panel")
	SetAnchor(obj, Vec2{0.5, 0.5}, Vec2{0.5, 0.5})
	SetSizeDelta(obj, Vec2{100, 50})

	r := obj.Rect()
	if r.OffsetMin != (Vec2{-50, -25}) || r.OffsetMax != (Vec2{50, 25}) {
		t.Errorf("offsets = %+v / %+v, want {-50 -25} / {50 25}", r.OffsetMin, r.OffsetMax)
	}
	if got := r.SizeDelta(); got != (Vec2{100, 50}) {
		t.Errorf("SizeDelta = %+v, want {100 50}", got)
	}
}

func TestSetSizeWithCurrentAnchors(t *testing.T) {
	obj := NewRect("bar")
	SetAnchor(obj, Vec2{0, 0}, Vec2{0, 0})
	SetSizeDelta(obj, Vec2{100, 20})

	SetSizeWithCurrentAnchors(obj, AxisHorizontal, 150)
	r := obj.Rect()
	if got := r.SizeDelta().X; math.Abs(got-150) > 1e-9 {
		t.Errorf("width = %f, want 150", got)
	}
	if got := r.SizeDelta().Y; math.Abs(got-20) > 1e-9 {
		t.Errorf("height changed to %f", got)
	}

	SetSizeWithCurrentAnchors(obj, AxisVertical, 30)
	if got := r.SizeDelta().Y; math.Abs(got-30) > 1e-9 {
		t.Errorf("height = %f, want 30", got)
	}
}

func TestResolveStretchedRect(t *testing.T) {
	obj := NewRect("full") // anchors 0..1, zero offsets
	parent := Rect{X: 0, Y: 0, Width: 640, Height: 480}

	got := obj.Rect().Resolve(parent)
	if got != parent {
		t.Errorf("Resolve = %+v, want %+v", got, parent)
	}

	// Inset by offsets.
	SetOffset(obj, Vec2{10, 10}, Vec2{-10, -10})
	got = obj.Rect().Resolve(parent)
	want := Rect{X: 10, Y: 10, Width: 620, Height: 460}
	if got != want {
		t.Errorf("Resolve = %+v, want %+v", got, want)
	}
}

func TestResolveAnchoredCorner(t *testing.T) {
	obj := NewRect("minimap")
	// Bottom-right corner, fixed 100x80.
	SetAnchor(obj, Vec2{1, 1}, Vec2{1, 1})
	SetOffset(obj, Vec2{-100, -80}, Vec2{0, 0})

	got := obj.Rect().Resolve(Rect{Width: 640, Height: 480})
	want := Rect{X: 540, Y: 400, Width: 100, Height: 80}
	if got != want {
		t.Errorf("Resolve = %+v, want %+v", got, want)
	}
}

func TestSetPositionAndRotation(t *testing.T) {
	obj := New("any")
	SetPositionAndRotation(obj, Vec2{3, 4}, math.Pi)
	if obj.X != 3 || obj.Y != 4 || obj.Rotation != math.Pi {
		t.Errorf("got (%f, %f, %f)", obj.X, obj.Y, obj.Rotation)
	}
}

func TestResetLocal(t *testing.T) {
	obj := New("any")
	obj.X, obj.Y = 9, 9
	obj.Rotation = 1
	obj.ScaleX, obj.ScaleY = 3, 3
	obj.Alpha = 0.2

	ResetLocal(obj)
	if obj.X != 0 || obj.Y != 0 || obj.Rotation != 0 {
		t.Error("position/rotation not reset")
	}
	if obj.ScaleX != 1 || obj.ScaleY != 1 || obj.Alpha != 1 {
		t.Error("scale/alpha not reset")
	}
}
