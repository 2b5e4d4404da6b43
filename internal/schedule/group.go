package schedule

import (
	"sync"
	"time"
)

// Group scopes a set of tasks to an owner. Closing the group stops every task
// it still tracks; tasks requested after Close are returned already stopped
// and their callbacks never run.
type Group struct {
	base Scheduler

	mu     sync.Mutex
	nextID uint64
	tasks  map[uint64]Task
	closed bool
}

// NewGroup wraps base. A nil base uses System().
func NewGroup(base Scheduler) *Group {
	if base == nil {
		base = System()
	}
	return &Group{base: base, tasks: make(map[uint64]Task)}
}

// AfterFunc schedules f once. The task is forgotten by the group after it
// runs or is stopped.
func (g *Group) AfterFunc(d time.Duration, f func()) Task {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return Stopped()
	}

	id := g.nextID
	g.nextID++
	inner := g.base.AfterFunc(d, func() {
		if !g.release(id) {
			return
		}
		f()
	})
	g.tasks[id] = inner
	return &groupTask{group: g, id: id}
}

// Every schedules f repeatedly until stopped or until the group closes.
func (g *Group) Every(d time.Duration, f func()) Task {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return Stopped()
	}

	id := g.nextID
	g.nextID++
	inner := g.base.Every(d, func() {
		if !g.active(id) {
			return
		}
		f()
	})
	g.tasks[id] = inner
	return &groupTask{group: g, id: id}
}

// Len reports how many tasks are still pending.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.tasks)
}

// Close stops all outstanding tasks. It is safe to call more than once.
func (g *Group) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	tasks := g.tasks
	g.tasks = make(map[uint64]Task)
	g.mu.Unlock()

	for _, t := range tasks {
		t.Stop()
	}
}

// release removes a one-shot task that is about to run. It returns false
// when the task was stopped in the meantime.
func (g *Group) release(id uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	if _, ok := g.tasks[id]; !ok {
		return false
	}
	delete(g.tasks, id)
	return true
}

func (g *Group) active(id uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	_, ok := g.tasks[id]
	return ok
}

func (g *Group) stop(id uint64) bool {
	g.mu.Lock()
	inner, ok := g.tasks[id]
	delete(g.tasks, id)
	g.mu.Unlock()
	if !ok {
		return false
	}
	inner.Stop()
	return true
}

type groupTask struct {
	group *Group
	id    uint64
}

func (t *groupTask) Stop() bool {
	return t.group.stop(t.id)
}

var _ Scheduler = (*Group)(nil)
