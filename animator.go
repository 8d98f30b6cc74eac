package rowan

import "hash/fnv"

// StateInfo describes the playback state of one animation layer: the
// identity hash of the playing clip, the normalized playback position
// (1.0 = one full loop elapsed; keeps counting across loops), and the clip
// length in seconds. A zero Hash means no clip is playing.
type StateInfo struct {
	Hash           uint32
	NormalizedTime float64
	Length         float64
	Loop           bool
}

// IsName reports whether this state plays the clip with the given name.
func (s StateInfo) IsName(name string) bool {
	return s.Hash == StateHash(name)
}

// StateHash returns the identity hash for a clip name (FNV-1a).
// The empty name hashes to 0, the "no clip" sentinel.
func StateHash(name string) uint32 {
	if name == "" {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()
}

type clip struct {
	name   string
	length float64
	loop   bool
}

type animatorLayer struct {
	current     uint32  // playing clip hash, 0 = none
	currentTime float64 // seconds since the current clip started
	next        uint32  // queued clip hash during a crossfade, 0 = none
	transition  float64 // remaining crossfade seconds
}

// Animator is a layered clip state machine. Each layer plays one clip at a
// time; CrossFade queues the next clip behind a transition window. Drive it
// with Update once per frame.
type Animator struct {
	clips  map[uint32]clip
	layers []animatorLayer

	// Speed scales playback for all layers. 1 is normal speed.
	Speed float64
}

// NewAnimator creates an animator with the given number of layers
// (minimum 1) and no clips.
func NewAnimator(layerCount int) *Animator {
	if layerCount < 1 {
		layerCount = 1
	}
	return &Animator{
		clips:  make(map[uint32]clip),
		layers: make([]animatorLayer, layerCount),
		Speed:  1,
	}
}

// AddClip registers a clip. Length is in seconds; zero-length clips are
// allowed and represent empty states. Re-adding a name overwrites the clip.
func (a *Animator) AddClip(name string, length float64, loop bool) {
	a.clips[StateHash(name)] = clip{name: name, length: length, loop: loop}
}

// NumLayers returns the number of animation layers.
func (a *Animator) NumLayers() int {
	return len(a.layers)
}

// Play switches the layer to the named clip immediately, restarting its
// playback position and dropping any pending transition. Returns false if
// the clip or layer is unknown.
func (a *Animator) Play(name string, layer int) bool {
	if layer < 0 || layer >= len(a.layers) {
		return false
	}
	hash := StateHash(name)
	if _, ok := a.clips[hash]; !ok {
		return false
	}
	l := &a.layers[layer]
	l.current = hash
	l.currentTime = 0
	l.next = 0
	l.transition = 0
	return true
}

// CrossFade queues the named clip behind a transition of the given duration
// (seconds). The current clip keeps playing until the transition elapses.
// A non-positive duration behaves like Play. Returns false if the clip or
// layer is unknown.
func (a *Animator) CrossFade(name string, duration float64, layer int) bool {
	if duration <= 0 {
		return a.Play(name, layer)
	}
	if layer < 0 || layer >= len(a.layers) {
		return false
	}
	hash := StateHash(name)
	if _, ok := a.clips[hash]; !ok {
		return false
	}
	l := &a.layers[layer]
	l.next = hash
	l.transition = duration
	return true
}

// Update advances all layers by dt seconds (scaled by Speed) and completes
// transitions whose window has elapsed.
func (a *Animator) Update(dt float64) {
	step := dt * a.Speed
	for i := range a.layers {
		l := &a.layers[i]
		if l.current != 0 {
			l.currentTime += step
		}
		if l.next != 0 {
			l.transition -= step
			if l.transition <= 0 {
				l.current = l.next
				l.currentTime = 0
				l.next = 0
				l.transition = 0
			}
		}
	}
}

// InTransition reports whether the layer has a queued clip pending.
func (a *Animator) InTransition(layer int) bool {
	if layer < 0 || layer >= len(a.layers) {
		return false
	}
	return a.layers[layer].next != 0
}

// CurrentStateInfo returns the playing state of the layer, ignoring any
// pending transition. Zero StateInfo for an unknown layer or empty layer.
func (a *Animator) CurrentStateInfo(layer int) StateInfo {
	if layer < 0 || layer >= len(a.layers) {
		return StateInfo{}
	}
	l := &a.layers[layer]
	return a.stateInfo(l.current, l.currentTime)
}

// NextStateInfo returns the queued state of the layer during a transition,
// or a zero StateInfo when no transition is pending.
func (a *Animator) NextStateInfo(layer int) StateInfo {
	if layer < 0 || layer >= len(a.layers) {
		return StateInfo{}
	}
	return a.stateInfo(a.layers[layer].next, 0)
}

// StateInfo returns the state the layer is headed for: the queued state
// when a transition is pending (non-zero hash), otherwise the current
// state.
func (a *Animator) StateInfo(layer int) StateInfo {
	if next := a.NextStateInfo(layer); next.Hash != 0 {
		return next
	}
	return a.CurrentStateInfo(layer)
}

func (a *Animator) stateInfo(hash uint32, elapsed float64) StateInfo {
	if hash == 0 {
		return StateInfo{}
	}
	c, ok := a.clips[hash]
	if !ok {
		return StateInfo{}
	}
	info := StateInfo{Hash: hash, Length: c.length, Loop: c.loop}
	if c.length > 0 {
		info.NormalizedTime = elapsed / c.length
	}
	return info
}
