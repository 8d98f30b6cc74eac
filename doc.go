// Package rowan is a convenience layer for scene code built on [Ebitengine].
//
// Rowan wraps the routine chores of scene-object work behind small,
// fail-soft helpers: spawn an object and keep its name, add a component
// exactly once, anchor a UI rectangle, poke a shader property that may not
// exist, wait for an animation to finish.
//
// # Objects and components
//
// Every helper operates on [Object], a flat scene element with a transform,
// an active flag, and optional attachments. Components embed
// [BaseComponent] and are added at most once per type via [Ensure]:
//
//	hp := rowan.Ensure[Health](player)   // creates on first call
//	hp2 := rowan.Ensure[Health](player)  // returns the same pointer
//
// [Instantiate] clones an object tree and guarantees the clone keeps the
// source's name (the raw [Object.Clone] primitive suffixes it).
//
// # Layout
//
// Objects may carry a [RectTransform] holding anchors, offsets, and a pivot.
// The package-level setters ([SetAnchor], [SetOffset], [SetSizeDelta],
// [SetSizeWithCurrentAnchors]) are guarded: on an object without a rect
// they do nothing and return false.
//
// # Materials
//
// [Material] pairs a Kage shader with declared float/color/texture
// properties. The Try accessors follow the package-wide failure policy:
// unknown property names yield false and a zero value, never an error.
//
// # Waiting on animations
//
// [Animator] is a layered clip state machine; [StateWait] polls one layer
// per frame boundary until the playing clip completes a loop or is replaced
// by a different clip. Pump waits (and tweens, via [TweenGroup]) with a
// [Scheduler] driven from your ebiten.Game Update:
//
//	sched.Await(animator, 0, func(r rowan.WaitResult) {
//	    door.SetActive(false)
//	})
//
// [Ebitengine]: https://ebitengine.org
package rowan
