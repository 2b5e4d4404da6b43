package overlay

import (
	"sync"

	"github.com/alexisbeaulieu97/terrafusion/internal/logger"
	"github.com/alexisbeaulieu97/terrafusion/internal/signal"
)

// Registry holds at most one active modal. Opening a modal replaces the
// current one without invoking its close callback.
type Registry struct {
	mu      sync.Mutex
	active  *Descriptor
	gen     uint64
	closed  bool
	log     *logger.Logger
	changes *signal.Signal
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{log: log, changes: signal.New()}
}

// Open makes d the active modal and returns it with Close filled in.
func (r *Registry) Open(d Descriptor) Descriptor {
	return r.openWith(func(uint64) Descriptor { return d })
}

// openWith builds the descriptor for the next generation and installs it.
func (r *Registry) openWith(build func(gen uint64) Descriptor) Descriptor {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		d := build(0)
		d.Close = func() {}
		return d
	}
	r.gen++
	gen := r.gen
	d := build(gen)
	d.Close = func() { r.closeGeneration(gen) }
	r.active = &d
	r.mu.Unlock()

	r.log.WithFields(map[string]any{"title": d.Title, "size": d.Size.String()}).Debug("modal opened")
	r.changes.Notify()
	return d
}

// Close clears the active modal. It is a no-op when nothing is open.
func (r *Registry) Close() {
	r.mu.Lock()
	wasOpen := r.active != nil
	r.active = nil
	r.mu.Unlock()

	if wasOpen {
		r.log.Debug("modal closed")
		r.changes.Notify()
	}
}

// closeGeneration closes the modal opened as generation gen, reporting
// whether it was still active.
func (r *Registry) closeGeneration(gen uint64) bool {
	r.mu.Lock()
	if r.active == nil || r.gen != gen {
		r.mu.Unlock()
		return false
	}
	r.active = nil
	r.mu.Unlock()

	r.log.Debug("modal closed")
	r.changes.Notify()
	return true
}

// Active returns the open modal, if any.
func (r *Registry) Active() (Descriptor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return Descriptor{}, false
	}
	return *r.active, true
}

// IsOpen reports whether a modal is active.
func (r *Registry) IsOpen() bool {
	_, ok := r.Active()
	return ok
}

// Subscribe returns a coalescing change channel, closed by Shutdown.
func (r *Registry) Subscribe() <-chan struct{} {
	return r.changes.Subscribe()
}

// Shutdown clears the slot and closes subscriber channels. Later calls to
// Open are ignored.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.active = nil
	r.mu.Unlock()

	r.changes.Close()
}
