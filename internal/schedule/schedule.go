// Package schedule provides cancelable timers and tickers behind a small
// interface so registries can be driven by a real clock in production and by
// a manual clock in tests.
package schedule

import (
	"sync"
	"time"
)

// Task is a handle to a scheduled callback.
type Task interface {
	// Stop cancels the task. It reports whether the call prevented at least
	// one pending run.
	Stop() bool
}

// Scheduler creates one-shot and repeating tasks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
	Every(d time.Duration, f func()) Task
}

// System returns a Scheduler backed by the runtime timers.
func System() Scheduler {
	return systemScheduler{}
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, f func()) Task {
	if d < 0 {
		d = 0
	}
	return &timerTask{timer: time.AfterFunc(d, f)}
}

func (systemScheduler) Every(d time.Duration, f func()) Task {
	if d <= 0 {
		return stoppedTask{}
	}
	t := &tickerTask{ticker: time.NewTicker(d), done: make(chan struct{})}
	go t.run(f)
	return t
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Stop() bool {
	return t.timer.Stop()
}

type tickerTask struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTask) run(f func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			f()
		}
	}
}

func (t *tickerTask) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		stopped = true
	})
	return stopped
}

type stoppedTask struct{}

func (stoppedTask) Stop() bool { return false }

// Stopped returns a Task that is already canceled.
func Stopped() Task {
	return stoppedTask{}
}
