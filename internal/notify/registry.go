package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/terrafusion/internal/logger"
	"github.com/alexisbeaulieu97/terrafusion/internal/schedule"
	"github.com/alexisbeaulieu97/terrafusion/internal/signal"
)

// Registry holds the active notifications in insertion order. It is safe
// for concurrent use; expiry callbacks run on scheduler goroutines.
type Registry struct {
	mu       sync.Mutex
	items    []Notification
	timers   map[string]schedule.Task
	group    *schedule.Group
	closed   bool
	fallback time.Duration
	now      func() time.Time
	newID    func() string
	log      *logger.Logger
	changes  *signal.Signal
}

// Option customises a Registry.
type Option func(*Registry)

// WithDefaultLifetime sets the lifetime used by Input values that leave it
// unset. Non-positive values are ignored.
func WithDefaultLifetime(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.fallback = d
		}
	}
}

// WithScheduler replaces the runtime timers, mainly for tests.
func WithScheduler(s schedule.Scheduler) Option {
	return func(r *Registry) {
		if s != nil {
			r.group = schedule.NewGroup(s)
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *logger.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithClock overrides the source of CreatedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDGenerator overrides notification id generation.
func WithIDGenerator(gen func() string) Option {
	return func(r *Registry) {
		if gen != nil {
			r.newID = gen
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		timers:   make(map[string]schedule.Task),
		fallback: DefaultLifetime,
		now:      time.Now,
		newID:    uuid.NewString,
		log:      logger.Nop(),
		changes:  signal.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.group == nil {
		r.group = schedule.NewGroup(schedule.System())
	}
	return r
}

// Add appends a notification and schedules its expiry. It returns the new
// id, or an empty string when the registry is closed. Unknown kinds fall
// back to info.
func (r *Registry) Add(in Input) string {
	kind := in.Kind
	if !kind.Valid() {
		r.log.With("kind", string(in.Kind)).Warn("unknown notification kind, using info")
		kind = KindInfo
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ""
	}

	n := Notification{
		ID:        r.newID(),
		Kind:      kind,
		Title:     in.Title,
		Message:   in.Message,
		Lifetime:  in.Lifetime,
		CreatedAt: r.now(),
	}
	r.items = append(r.items, n)

	if d, expires := in.Lifetime.Duration(r.fallback); expires {
		id := n.ID
		r.timers[id] = r.group.AfterFunc(d, func() { r.expire(id) })
	}
	r.mu.Unlock()

	r.log.WithFields(map[string]any{"id": n.ID, "kind": string(kind), "lifetime": in.Lifetime.String()}).Debug("notification added")
	r.changes.Notify()
	return n.ID
}

// Remove drops the notification with id and cancels its expiry. Unknown
// ids are ignored.
func (r *Registry) Remove(id string) {
	if r.remove(id) {
		r.log.With("id", id).Debug("notification removed")
		r.changes.Notify()
	}
}

func (r *Registry) expire(id string) {
	if r.remove(id) {
		r.log.With("id", id).Debug("notification expired")
		r.changes.Notify()
	}
}

func (r *Registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}

	idx := -1
	for i, n := range r.items {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	r.items = append(r.items[:idx:idx], r.items[idx+1:]...)
	if task, ok := r.timers[id]; ok {
		task.Stop()
		delete(r.timers, id)
	}
	return true
}

// List returns a snapshot of the notifications, oldest first.
func (r *Registry) List() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Len reports the number of active notifications.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Subscribe returns a channel that receives a value after one or more
// changes. Signals coalesce: a slow reader sees at most one pending value.
// The channel is closed by Close.
func (r *Registry) Subscribe() <-chan struct{} {
	return r.changes.Subscribe()
}

// Close cancels every pending expiry and turns later calls into no-ops.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.timers = make(map[string]schedule.Task)
	r.mu.Unlock()

	r.group.Close()
	r.changes.Close()
}
