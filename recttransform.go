package rowan

// RectTransform is the anchored-rectangle capability for UI layout.
// Anchors are fractions of the parent rectangle in [0, 1]; offsets are pixel
// distances from the anchor points. When AnchorMin == AnchorMax on an axis
// the rect is fixed-size on that axis and OffsetMax-OffsetMin is its size
// (the "size delta").
type RectTransform struct {
	AnchorMin Vec2
	AnchorMax Vec2
	OffsetMin Vec2
	OffsetMax Vec2
	Pivot     Vec2
}

// newRectTransform returns a rect stretched to its parent: anchors spanning
// 0..1 with zero offsets and a centered pivot.
func newRectTransform() *RectTransform {
	return &RectTransform{
		AnchorMax: Vec2{1, 1},
		Pivot:     Vec2{0.5, 0.5},
	}
}

// SizeDelta returns OffsetMax - OffsetMin. For a rect with coincident
// anchors this is the rect's size.
func (r *RectTransform) SizeDelta() Vec2 {
	return Vec2{r.OffsetMax.X - r.OffsetMin.X, r.OffsetMax.Y - r.OffsetMin.Y}
}

// Resolve computes the rectangle in the parent's coordinate space from the
// anchors and offsets.
func (r *RectTransform) Resolve(parent Rect) Rect {
	minX := parent.X + parent.Width*r.AnchorMin.X + r.OffsetMin.X
	minY := parent.Y + parent.Height*r.AnchorMin.Y + r.OffsetMin.Y
	maxX := parent.X + parent.Width*r.AnchorMax.X + r.OffsetMax.X
	maxY := parent.Y + parent.Height*r.AnchorMax.Y + r.OffsetMax.Y
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// --- Guarded layout setters ---
//
// Each setter forwards to the object's RectTransform and reports whether it
// did anything. An object without a rect is not a layout rectangle; the
// setter leaves it untouched and returns false rather than failing loudly.

// SetAnchor sets the anchor fractions. Returns false if obj has no rect.
func SetAnchor(obj *Object, min, max Vec2) bool {
	r := obj.Rect()
	if r == nil {
		return false
	}
	r.AnchorMin = min
	r.AnchorMax = max
	return true
}

// SetOffset sets the pixel offsets from the anchor points.
// Returns false if obj has no rect.
func SetOffset(obj *Object, min, max Vec2) bool {
	r := obj.Rect()
	if r == nil {
		return false
	}
	r.OffsetMin = min
	r.OffsetMax = max
	return true
}

// SetSizeDelta sets the rect's size relative to the anchor span, keeping the
// rect centered on its pivot. Returns false if obj has no rect.
func SetSizeDelta(obj *Object, size Vec2) bool {
	r := obj.Rect()
	if r == nil {
		return false
	}
	r.OffsetMin = Vec2{-size.X * r.Pivot.X, -size.Y * r.Pivot.Y}
	r.OffsetMax = Vec2{size.X * (1 - r.Pivot.X), size.Y * (1 - r.Pivot.Y)}
	return true
}

// SetSizeWithCurrentAnchors sets the rect's size along one axis without
// moving the anchors, distributing the change around the pivot.
// Returns false if obj has no rect.
func SetSizeWithCurrentAnchors(obj *Object, axis Axis, size float64) bool {
	r := obj.Rect()
	if r == nil {
		return false
	}
	switch axis {
	case AxisHorizontal:
		delta := size - r.SizeDelta().X
		r.OffsetMin.X -= delta * r.Pivot.X
		r.OffsetMax.X += delta * (1 - r.Pivot.X)
	case AxisVertical:
		delta := size - r.SizeDelta().Y
		r.OffsetMin.Y -= delta * r.Pivot.Y
		r.OffsetMax.Y += delta * (1 - r.Pivot.Y)
	}
	return true
}

// SetPositionAndRotation sets the object's local position and rotation in
// one call. Works on any object, rect or not.
func SetPositionAndRotation(obj *Object, pos Vec2, rot float64) {
	obj.X = pos.X
	obj.Y = pos.Y
	obj.Rotation = rot
}

// ResetLocal resets the object's local transform to identity: zero position
// and rotation, unit scale, full alpha.
func ResetLocal(obj *Object) {
	obj.X = 0
	obj.Y = 0
	obj.Rotation = 0
	obj.ScaleX = 1
	obj.ScaleY = 1
	obj.Alpha = 1
}
