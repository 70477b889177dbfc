package worker

import (
	"log/slog"
	"sync"
	"time"
)

// Handle controls a scheduled callback.
type Handle interface {
	// Cancel prevents the callback from running. It reports false when the
	// callback already fired or was cancelled before.
	Cancel() bool
}

// Scheduler runs delayed one-shot callbacks.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) Handle
}

// TimerScheduler runs each callback on its own timer goroutine.
type TimerScheduler struct {
	logger *slog.Logger

	mu      sync.Mutex
	timers  map[uint64]*time.Timer
	nextID  uint64
	stopped bool
	running sync.WaitGroup
}

// NewTimerScheduler constructs a ready to use scheduler.
func NewTimerScheduler(logger *slog.Logger) *TimerScheduler {
	return &TimerScheduler{
		logger: logger,
		timers: make(map[uint64]*time.Timer),
	}
}

// ScheduleOnce arranges fn to run after delay. After Stop it returns a handle
// that never fires.
func (s *TimerScheduler) ScheduleOnce(delay time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return noopHandle{}
	}

	id := s.nextID
	s.nextID++
	s.timers[id] = time.AfterFunc(delay, func() { s.fire(id, fn) })
	return &timerHandle{scheduler: s, id: id}
}

func (s *TimerScheduler) fire(id uint64, fn func()) {
	s.mu.Lock()
	if _, ok := s.timers[id]; !ok || s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	s.running.Add(1)
	s.mu.Unlock()

	defer s.running.Done()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled callback panicked", slog.Any("panic", r))
		}
	}()
	fn()
}

func (s *TimerScheduler) cancel(id uint64) bool {
	s.mu.Lock()
	t, ok := s.timers[id]
	delete(s.timers, id)
	s.mu.Unlock()

	if !ok {
		return false
	}
	return t.Stop()
}

// Pending returns the number of callbacks waiting to fire.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels every pending callback and waits for running ones to return.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.running.Wait()
}

type timerHandle struct {
	scheduler *TimerScheduler
	id        uint64
}

func (h *timerHandle) Cancel() bool { return h.scheduler.cancel(h.id) }

type noopHandle struct{}

func (noopHandle) Cancel() bool { return false }
