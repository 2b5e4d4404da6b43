// Package scheduletest provides a deterministic Scheduler for tests.
package scheduletest

import (
	"sort"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/terrafusion/internal/schedule"
)

// Manual is a Scheduler whose clock only moves when Advance is called.
// Callbacks run synchronously on the goroutine calling Advance.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers map[uint64]*manualTimer
}

type manualTimer struct {
	id       uint64
	due      time.Duration
	interval time.Duration
	fn       func()
}

// NewManual creates a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{timers: make(map[uint64]*manualTimer)}
}

// AfterFunc implements schedule.Scheduler.
func (m *Manual) AfterFunc(d time.Duration, f func()) schedule.Task {
	if d < 0 {
		d = 0
	}
	return m.add(d, 0, f)
}

// Every implements schedule.Scheduler.
func (m *Manual) Every(d time.Duration, f func()) schedule.Task {
	if d <= 0 {
		return schedule.Stopped()
	}
	return m.add(d, d, f)
}

func (m *Manual) add(d, interval time.Duration, f func()) schedule.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{id: m.seq, due: m.now + d, interval: interval, fn: f}
	m.timers[t.id] = t
	return &manualTask{owner: m, id: t.id}
}

// Pending reports the number of scheduled callbacks that have not run or
// been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Now returns the elapsed manual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d, running every callback that falls
// due in deadline order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			delete(m.timers, next.id)
		}
		fn := next.fn
		m.mu.Unlock()

		fn()
	}
}

func (m *Manual) nextDue(target time.Duration) *manualTimer {
	due := make([]*manualTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if t.due <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].id < due[j].id
		}
		return due[i].due < due[j].due
	})
	return due[0]
}

type manualTask struct {
	owner *Manual
	id    uint64
}

func (t *manualTask) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if _, ok := t.owner.timers[t.id]; !ok {
		return false
	}
	delete(t.owner.timers, t.id)
	return true
}

var _ schedule.Scheduler = (*Manual)(nil)
