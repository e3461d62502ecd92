// internal/system/scheduler.go
package system

// ActionHandle identifies a scheduled action for cancellation.
type ActionHandle uint64

type deferredAction struct {
	handle    ActionHandle
	remaining float64
	fn        func()
}

// Scheduler runs deferred actions on the simulation tick. Nothing here
// blocks or spawns goroutines: actions fire inside Update, at tick
// boundaries, and can be cancelled before they fire. A new-game reset
// cancels everything so stale callbacks never touch a reset round.
type Scheduler struct {
	actions    []*deferredAction
	nextHandle ActionHandle
}

func NewScheduler() *Scheduler {
	return &Scheduler{nextHandle: 1}
}

// After schedules fn to run once the given simulation time has elapsed.
func (s *Scheduler) After(delay float64, fn func()) ActionHandle {
	h := s.nextHandle
	s.nextHandle++
	s.actions = append(s.actions, &deferredAction{
		handle:    h,
		remaining: delay,
		fn:        fn,
	})
	return h
}

// Cancel drops a pending action. Cancelling an already-fired or unknown
// handle is a no-op.
func (s *Scheduler) Cancel(handle ActionHandle) {
	for i, a := range s.actions {
		if a.handle == handle {
			s.actions = append(s.actions[:i], s.actions[i+1:]...)
			return
		}
	}
}

// CancelAll drops every pending action.
func (s *Scheduler) CancelAll() {
	s.actions = s.actions[:0]
}

// Update advances timers and fires due actions. Actions scheduled from
// inside a firing callback wait for the next tick.
func (s *Scheduler) Update(deltaTime float64) {
	due := make([]*deferredAction, 0)
	kept := s.actions[:0]
	for _, a := range s.actions {
		a.remaining -= deltaTime
		if a.remaining <= 0 {
			due = append(due, a)
		} else {
			kept = append(kept, a)
		}
	}
	s.actions = kept
	for _, a := range due {
		a.fn()
	}
}
