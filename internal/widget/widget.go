// Package widget models auto-refreshing dashboard readings. A Widget owns its
// current and previous value, runs a refresh function on demand or on a
// schedule, and publishes change signals for the interface to redraw.
package widget

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/terrafusion/internal/logger"
	"github.com/alexisbeaulieu97/terrafusion/internal/schedule"
	"github.com/alexisbeaulieu97/terrafusion/internal/signal"
	tferrors "github.com/alexisbeaulieu97/terrafusion/pkg/errors"
)

// RefreshFunc produces a new reading.
type RefreshFunc func(ctx context.Context) (Value, error)

// Config describes a widget.
type Config struct {
	Title    string
	Unit     string
	Icon     string
	Initial  Value
	Previous Value
	// Interval enables automatic refresh when positive.
	Interval time.Duration
	Refresh  RefreshFunc
}

// Trend is the direction of the latest change.
type Trend int

const (
	TrendNeutral Trend = iota
	TrendUp
	TrendDown
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	default:
		return "neutral"
	}
}

// State is a point-in-time copy of a widget.
type State struct {
	Title       string
	Unit        string
	Icon        string
	Value       Value
	Previous    Value
	Refreshing  bool
	LastUpdated time.Time
	// Err is the last refresh failure, cleared by the next success.
	Err error
}

// PercentChange returns the change from Previous to Value in percent. It is
// only defined when both are numeric and Previous is not zero.
func (s State) PercentChange() (float64, bool) {
	cur, ok := s.Value.Float()
	if !ok {
		return 0, false
	}
	prev, ok := s.Previous.Float()
	if !ok || prev == 0 {
		return 0, false
	}
	pct := (cur - prev) / prev * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}
	return pct, true
}

// Trend classifies PercentChange.
func (s State) Trend() Trend {
	pct, ok := s.PercentChange()
	switch {
	case !ok || pct == 0:
		return TrendNeutral
	case pct > 0:
		return TrendUp
	default:
		return TrendDown
	}
}

// Option customises a Widget.
type Option func(*Widget)

// WithLogger attaches a logger.
func WithLogger(l *logger.Logger) Option {
	return func(w *Widget) {
		if l != nil {
			w.log = l
		}
	}
}

// WithClock overrides the timestamp source used for LastUpdated.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) {
		if now != nil {
			w.now = now
		}
	}
}

// Widget is safe for concurrent use.
type Widget struct {
	cfg Config
	log *logger.Logger
	now func() time.Time

	mu          sync.Mutex
	current     Value
	previous    Value
	refreshing  bool
	lastUpdated time.Time
	err         error
	task        schedule.Task
	cancel      context.CancelFunc

	changes *signal.Signal
}

// New creates a widget showing cfg.Initial.
func New(cfg Config, opts ...Option) *Widget {
	w := &Widget{
		cfg:      cfg,
		log:      logger.Nop(),
		now:      time.Now,
		current:  cfg.Initial,
		previous: cfg.Previous,
		changes:  signal.New(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With("widget", cfg.Title)
	return w
}

// Title returns the configured title.
func (w *Widget) Title() string {
	return w.cfg.Title
}

// State returns a snapshot of the widget.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		Title:       w.cfg.Title,
		Unit:        w.cfg.Unit,
		Icon:        w.cfg.Icon,
		Value:       w.current,
		Previous:    w.previous,
		Refreshing:  w.refreshing,
		LastUpdated: w.lastUpdated,
		Err:         w.err,
	}
}

// Refresh runs the refresh function once. It does nothing when no function
// is configured or a refresh is already running. On failure the current
// value is kept and the error is returned as a RefreshError.
func (w *Widget) Refresh(ctx context.Context) error {
	if w.cfg.Refresh == nil {
		return nil
	}

	w.mu.Lock()
	if w.refreshing {
		w.mu.Unlock()
		return nil
	}
	w.refreshing = true
	w.mu.Unlock()
	w.changes.Notify()

	value, err := w.cfg.Refresh(ctx)

	w.mu.Lock()
	w.refreshing = false
	if err != nil {
		err = tferrors.NewRefreshError(w.cfg.Title, err)
		w.err = err
	} else {
		w.previous = w.current
		w.current = value
		w.err = nil
		w.lastUpdated = w.now()
	}
	w.mu.Unlock()
	w.changes.Notify()

	if err != nil {
		w.log.Error(err, "widget refresh failed")
		return err
	}
	w.log.With("value", value.String()).Debug("widget refreshed")
	return nil
}

// Start schedules automatic refresh every Interval on s. Calling Start again
// restarts the schedule. It is a no-op without an interval or refresh
// function.
func (w *Widget) Start(ctx context.Context, s schedule.Scheduler) {
	if w.cfg.Interval <= 0 || w.cfg.Refresh == nil {
		return
	}
	w.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	task := s.Every(w.cfg.Interval, func() {
		_ = w.Refresh(runCtx)
	})

	w.mu.Lock()
	w.task = task
	w.cancel = cancel
	w.mu.Unlock()
}

// Stop cancels automatic refresh and any refresh in flight.
func (w *Widget) Stop() {
	w.mu.Lock()
	task, cancel := w.task, w.cancel
	w.task, w.cancel = nil, nil
	w.mu.Unlock()

	if task != nil {
		task.Stop()
	}
	if cancel != nil {
		cancel()
	}
}

// Subscribe returns a coalescing change channel.
func (w *Widget) Subscribe() <-chan struct{} {
	return w.changes.Subscribe()
}
