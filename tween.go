package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on an Object simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenAlpha, TweenRotation) and call Update(dt) each frame, or hand it to a
// Scheduler. If the target object is destroyed, the group stops immediately
// without further writes.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Object
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target object has been destroyed, Done is set to true and
// no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDestroyed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Tick adapts the group to the Scheduler's Task interface.
func (g *TweenGroup) Tick(dt float64) bool {
	g.Update(float32(dt))
	return g.Done
}

// TweenPosition creates a TweenGroup that animates obj.X and obj.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(obj *Object, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: obj}
	g.tweens[0] = gween.New(float32(obj.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(obj.Y), float32(toY), duration, fn)
	g.fields[0] = &obj.X
	g.fields[1] = &obj.Y
	return g
}

// TweenScale creates a TweenGroup that animates obj.ScaleX and obj.ScaleY to
// the given target values over the specified duration using the easing function.
func TweenScale(obj *Object, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: obj}
	g.tweens[0] = gween.New(float32(obj.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(obj.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &obj.ScaleX
	g.fields[1] = &obj.ScaleY
	return g
}

// TweenAlpha creates a TweenGroup that animates obj.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(obj *Object, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: obj}
	g.tweens[0] = gween.New(float32(obj.Alpha), float32(to), duration, fn)
	g.fields[0] = &obj.Alpha
	return g
}

// TweenRotation creates a TweenGroup that animates obj.Rotation to the target
// value over the specified duration using the easing function.
func TweenRotation(obj *Object, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: obj}
	g.tweens[0] = gween.New(float32(obj.Rotation), float32(to), duration, fn)
	g.fields[0] = &obj.Rotation
	return g
}
