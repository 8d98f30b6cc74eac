package rowan

// Task is anything the Scheduler pumps once per rendered frame.
// Tick returns true when the task is finished and should be dropped.
type Task interface {
	Tick(dt float64) bool
}

// Scheduler is a cooperative, single-threaded frame pump. The host game
// loop calls Advance once per rendered frame; everything queued on the
// scheduler is resumed at that frame boundary. There is no cancellation
// token: dropping the scheduler (or never calling Advance again) simply
// stops all polling.
type Scheduler struct {
	tasks []Task
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add queues a task. Tasks added during Advance start on the next frame.
func (s *Scheduler) Add(t Task) {
	s.tasks = append(s.tasks, t)
}

// Len returns the number of queued tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// onceTask runs a callback at one frame boundary and finishes.
type onceTask struct {
	fn func()
}

func (t *onceTask) Tick(dt float64) bool {
	t.fn()
	return true
}

// NextFrame runs fn once at the next frame boundary.
func (s *Scheduler) NextFrame(fn func()) {
	s.Add(&onceTask{fn: fn})
}

// pollTask re-arms a predicate every frame until it reports done.
type pollTask struct {
	fn func() bool
}

func (t *pollTask) Tick(dt float64) bool {
	return t.fn()
}

// Run re-arms fn every frame boundary until it returns true.
func (s *Scheduler) Run(fn func() bool) {
	s.Add(&pollTask{fn: fn})
}

// Await queues a StateWait on the given animation layer and returns it.
// onDone may be nil.
func (s *Scheduler) Await(source StateSource, layer int, onDone func(WaitResult)) *StateWait {
	w := WaitForState(source, layer)
	w.OnDone = onDone
	s.Add(w)
	return w
}

// Advance pumps every queued task once with the elapsed frame time in
// seconds. Finished tasks are dropped; tasks queued by callbacks during
// this call are held until the next frame.
func (s *Scheduler) Advance(dt float64) {
	n := len(s.tasks)
	w := 0
	for i := 0; i < n; i++ {
		t := s.tasks[i]
		if !t.Tick(dt) {
			s.tasks[w] = t
			w++
		}
	}
	// Carry over tasks appended by callbacks during this frame.
	total := w + copy(s.tasks[w:], s.tasks[n:len(s.tasks)])
	// Clear dropped slots so the backing array doesn't retain them.
	for i := total; i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = s.tasks[:total]
}
