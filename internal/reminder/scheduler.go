package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scheduler owns the process-scoped daily reminder timers. Each schedule
// gets an opaque identifier; cancelling an identifier that is no longer
// live is a no-op.
type Scheduler struct {
	mu   sync.Mutex
	jobs map[string]context.CancelFunc

	now   func() time.Time
	timer func(d time.Duration) <-chan time.Time
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		jobs:  make(map[string]context.CancelFunc),
		now:   time.Now,
		timer: func(d time.Duration) <-chan time.Time { return time.After(d) },
	}
}

func newSchedulerWithClock(now func() time.Time, timer func(d time.Duration) <-chan time.Time) *Scheduler {
	return &Scheduler{
		jobs:  make(map[string]context.CancelFunc),
		now:   now,
		timer: timer,
	}
}

// ScheduleDaily fires fn every day at hour:minute and returns the schedule
// identifier. The first firing is the next occurrence of hour:minute; a
// schedule created at exactly that wall time fires tomorrow.
func (s *Scheduler) ScheduleDaily(hour, minute int, fn func()) string {
	id := uuid.New().String()
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.jobs[id] = cancel
	s.mu.Unlock()

	go s.run(ctx, id, hour, minute, fn)
	return id
}

func (s *Scheduler) run(ctx context.Context, id string, hour, minute int, fn func()) {
	for {
		wait := untilNext(s.now(), hour, minute)
		select {
		case <-ctx.Done():
			return
		case <-s.timer(wait):
			fn()
		}
	}
}

// untilNext returns the duration from now to the next occurrence of
// hour:minute, always strictly positive.
func untilNext(now time.Time, hour, minute int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// Cancel stops the schedule with the given identifier. It reports whether
// the identifier was live.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	cancel, ok := s.jobs[id]
	if ok {
		delete(s.jobs, id)
	}
	s.mu.Unlock()

	if ok {
		cancel()
	}
	return ok
}

// CancelAll stops every live schedule. Used at shutdown.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	jobs := s.jobs
	s.jobs = make(map[string]context.CancelFunc)
	s.mu.Unlock()

	for _, cancel := range jobs {
		cancel()
	}
}

// Live reports how many schedules are currently registered.
func (s *Scheduler) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}
