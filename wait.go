package rowan

// StateSource provides per-frame animation layer samples. *Animator
// implements it; tests and adapters can substitute scripted sources.
type StateSource interface {
	StateInfo(layer int) StateInfo
}

// WaitResult says how a StateWait ended.
type WaitResult uint8

const (
	WaitPending     WaitResult = iota // still polling
	WaitEmpty                         // no real clip on the layer (zero length)
	WaitInterrupted                   // a different clip replaced the one being watched
	WaitCompleted                     // the watched clip reached normalized time 1
)

// StateWait resumes its owner once an animation layer finishes playing its
// current clip or that clip is replaced. It is a cooperative poller in the
// same shape as TweenGroup: construct it, call Update once per rendered
// frame, and observe Done.
//
// The first Update is the first sample, taken at the frame boundary after
// construction. A zero-length clip can never reach normalized time 1, so it
// completes the wait immediately. From the second sample on, an identity
// change beats reaching full normalized time when both land in one sample.
//
// There is no timeout: a clip whose normalized time never advances and whose
// identity never changes keeps the wait pending forever. That is the
// caller's responsibility, not guarded here.
type StateWait struct {
	source StateSource
	layer  int

	started bool
	hash    uint32

	Done   bool
	result WaitResult

	// OnDone, if set, fires once when the wait finishes.
	OnDone func(WaitResult)
}

// WaitForState creates a wait on the given animation layer.
func WaitForState(source StateSource, layer int) *StateWait {
	return &StateWait{source: source, layer: layer}
}

// WaitForCurrent creates a wait on the base layer (layer 0).
func WaitForCurrent(source StateSource) *StateWait {
	return WaitForState(source, 0)
}

// Result returns how the wait ended, or WaitPending while it is still
// polling.
func (w *StateWait) Result() WaitResult {
	return w.result
}

// Update samples the layer once. Call at each frame boundary until Done.
func (w *StateWait) Update() {
	if w.Done {
		return
	}
	info := w.source.StateInfo(w.layer)
	if !w.started {
		w.started = true
		if info.Length == 0 {
			w.finish(WaitEmpty)
			return
		}
		w.hash = info.Hash
		return
	}
	if info.Hash != w.hash {
		w.finish(WaitInterrupted)
		return
	}
	if info.NormalizedTime >= 1 {
		w.finish(WaitCompleted)
	}
}

// Tick adapts the wait to the Scheduler's Task interface. The frame time is
// ignored; the wait cares about frame boundaries, not durations.
func (w *StateWait) Tick(_ float64) bool {
	w.Update()
	return w.Done
}

func (w *StateWait) finish(r WaitResult) {
	w.Done = true
	w.result = r
	if w.OnDone != nil {
		w.OnDone(r)
	}
}
