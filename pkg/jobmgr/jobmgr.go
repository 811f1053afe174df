// Package jobmgr runs named, cancellable background jobs: fixed-interval
// tickers and daily wall-clock schedules. Jobs run in their own goroutines;
// stopping the manager cancels all of them.
//
//	jm := jobmgr.New()
//	jm.StartEvery("inactivity-sweep", 24*time.Hour, sweep)
//	jm.StartDailyAt("arena-reminder", 23, 55, remind)
//	defer jm.StopAll()
package jobmgr

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Manager tracks running jobs by name. Safe for concurrent use.
type Manager struct {
	mu   sync.Mutex
	jobs map[string]context.CancelFunc
}

func New() *Manager {
	return &Manager{jobs: make(map[string]context.CancelFunc)}
}

// StartEvery runs fn every interval until the job is stopped. The first run
// happens after one interval, not immediately. A second job with the same
// name is rejected.
func (m *Manager) StartEvery(name string, interval time.Duration, fn func(ctx context.Context)) error {
	return m.start(name, func(ctx context.Context) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn(ctx)
			}
		}
	})
}

// StartDailyAt runs fn once a day at the given UTC wall-clock time.
func (m *Manager) StartDailyAt(name string, hour, minute int, fn func(ctx context.Context)) error {
	return m.start(name, func(ctx context.Context) {
		for {
			timer := time.NewTimer(untilNext(time.Now().UTC(), hour, minute))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				fn(ctx)
			}
		}
	})
}

// StartOnceAfter runs fn a single time after delay, then forgets the job.
// Stopping it (or StopAll) before the delay elapses prevents the run.
func (m *Manager) StartOnceAfter(name string, delay time.Duration, fn func(ctx context.Context)) error {
	return m.start(name, func(ctx context.Context) {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
			fn(ctx)
		}
		m.forget(name)
	})
}

// Stop cancels a running job by name.
func (m *Manager) Stop(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cancel, ok := m.jobs[name]
	if !ok {
		return fmt.Errorf("job %q not running", name)
	}
	cancel()
	delete(m.jobs, name)
	return nil
}

// StopAll cancels every running job.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, cancel := range m.jobs {
		cancel()
		delete(m.jobs, name)
	}
}

// List returns the names of active jobs.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.jobs))
	for name := range m.jobs {
		out = append(out, name)
	}
	return out
}

func (m *Manager) start(name string, loop func(ctx context.Context)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.jobs[name]; exists {
		return fmt.Errorf("job %q already running", name)
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.jobs[name] = cancel
	go loop(ctx)
	return nil
}

// forget drops a finished one-shot job so its name can be reused.
func (m *Manager) forget(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cancel, ok := m.jobs[name]; ok {
		cancel()
		delete(m.jobs, name)
	}
}

// untilNext returns the duration from now until the next occurrence of the
// given wall-clock time.
func untilNext(now time.Time, hour, minute int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
