package test

import (
	"sort"
	"sync"
	"time"

	"github.com/polkiloo/cleanup/internal/worker"
)

// ManualScheduler fires callbacks only when the test moves its clock.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*manualTask
	seq   int
}

type manualTask struct {
	due       time.Duration
	seq       int
	fn        func()
	done      bool
	cancelled bool
}

func (t *manualTask) Cancel() bool {
	if t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// ScheduleOnce queues fn to run once the clock passes delay.
func (s *ManualScheduler) ScheduleOnce(delay time.Duration, fn func()) worker.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	task := &manualTask{due: s.now + delay, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, task)
	return &manualHandle{scheduler: s, task: task}
}

type manualHandle struct {
	scheduler *ManualScheduler
	task      *manualTask
}

func (h *manualHandle) Cancel() bool {
	h.scheduler.mu.Lock()
	defer h.scheduler.mu.Unlock()
	return h.task.Cancel()
}

// Delays returns the delays of all queued callbacks in scheduling order.
func (s *ManualScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.due)
	}
	return out
}

// Pending counts callbacks that neither fired nor were cancelled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.done && !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward and runs due callbacks in due order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	due := s.dueLocked()
	s.mu.Unlock()

	for _, fn := range due {
		fn()
	}
}

// RunAll fires every pending callback regardless of its delay.
func (s *ManualScheduler) RunAll() {
	s.mu.Lock()
	for _, t := range s.tasks {
		if t.due > s.now {
			s.now = t.due
		}
	}
	due := s.dueLocked()
	s.mu.Unlock()

	for _, fn := range due {
		fn()
	}
}

// Fire runs the i-th scheduled callback immediately, out of order if needed.
func (s *ManualScheduler) Fire(i int) bool {
	s.mu.Lock()
	if i < 0 || i >= len(s.tasks) {
		s.mu.Unlock()
		return false
	}
	t := s.tasks[i]
	if t.done || t.cancelled {
		s.mu.Unlock()
		return false
	}
	t.done = true
	s.mu.Unlock()

	t.fn()
	return true
}

func (s *ManualScheduler) dueLocked() []func() {
	var ready []*manualTask
	for _, t := range s.tasks {
		if !t.done && !t.cancelled && t.due <= s.now {
			ready = append(ready, t)
		}
	}
	sort.Slice(ready, func(i, j int) bool {
		if ready[i].due == ready[j].due {
			return ready[i].seq < ready[j].seq
		}
		return ready[i].due < ready[j].due
	})
	fns := make([]func(), 0, len(ready))
	for _, t := range ready {
		t.done = true
		fns = append(fns, t.fn)
	}
	return fns
}

var _ worker.Scheduler = (*ManualScheduler)(nil)
