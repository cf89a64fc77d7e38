// Package frame provides the frame-callback scheduler that gates
// state-store syncs to the display's own clock instead of input frequency.
package frame

import "sync"

// Callback is work deferred to the next frame tick.
type Callback func()

// Handle identifies one scheduled callback and allows canceling it before
// the frame it would run in.
type Handle struct {
	s  *Scheduler
	id uint64
}

// Scheduler collects callbacks during event handling and runs them once at
// the next RunFrame. Each Schedule call produces one pending callback;
// callers that must not stack work keep their Handle and check Pending or
// Cancel before scheduling again.
//
// All methods are mutex-guarded; the expected access pattern is the single
// main goroutine, but nothing breaks if a producer schedules from elsewhere.
type Scheduler struct {
	mu       sync.Mutex
	pending  map[uint64]Callback
	order    []uint64
	nextID   uint64
	released bool
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[uint64]Callback)}
}

// Schedule queues cb for the next RunFrame and returns its handle.
// After Release all schedules are refused and a nil handle is returned.
func (s *Scheduler) Schedule(cb Callback) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released || cb == nil {
		return nil
	}
	s.nextID++
	id := s.nextID
	s.pending[id] = cb
	s.order = append(s.order, id)
	return &Handle{s: s, id: id}
}

// RunFrame executes every pending callback in scheduling order and clears
// the queue. Callbacks scheduled while running land in the next frame.
func (s *Scheduler) RunFrame() {
	s.mu.Lock()
	order := s.order
	pending := s.pending
	s.order = nil
	s.pending = make(map[uint64]Callback)
	s.mu.Unlock()

	for _, id := range order {
		if cb, ok := pending[id]; ok {
			cb()
		}
	}
}

// PendingCount returns the number of callbacks waiting for the next frame.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Release drops all pending work and refuses further scheduling. A callback
// firing after the surface it touches is gone is a teardown defect; Release
// is the guard against it.
func (s *Scheduler) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = true
	s.pending = make(map[uint64]Callback)
	s.order = nil
}

// Cancel removes the callback before it runs. Canceling an already-run or
// already-canceled handle is a no-op.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	delete(h.s.pending, h.id)
}

// Pending reports whether the callback has not yet run or been canceled.
func (h *Handle) Pending() bool {
	if h == nil {
		return false
	}
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	_, ok := h.s.pending[h.id]
	return ok
}
