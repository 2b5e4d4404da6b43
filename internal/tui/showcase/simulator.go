package showcase

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/terrafusion/internal/config"
	"github.com/alexisbeaulieu97/terrafusion/internal/logger"
	"github.com/alexisbeaulieu97/terrafusion/internal/widget"
)

// ErrSimulatedOutage is returned by every refresh while the outage is on.
var ErrSimulatedOutage = errors.New("simulated outage: metrics source unreachable")

// Simulator produces the readings of the demo widgets. It is safe for
// concurrent use.
type Simulator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	failing bool
	latency time.Duration
	users   float64
}

// NewSimulator creates a simulator. A zero seed picks a random one. Each
// refresh waits latency before answering.
func NewSimulator(seed int64, latency time.Duration) *Simulator {
	s := uint64(seed)
	if seed == 0 {
		s = rand.Uint64()
	}
	return &Simulator{
		rng:     rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
		latency: latency,
		users:   1250,
	}
}

// SetFailing turns the simulated outage on or off.
func (s *Simulator) SetFailing(failing bool) {
	s.mu.Lock()
	s.failing = failing
	s.mu.Unlock()
}

// ToggleFailing flips the outage and returns the new state.
func (s *Simulator) ToggleFailing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = !s.failing
	return s.failing
}

// Failing reports whether refreshes currently fail.
func (s *Simulator) Failing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failing
}

func (s *Simulator) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// between returns an integer in [lo, hi].
func (s *Simulator) between(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *Simulator) reading(next func() float64) widget.RefreshFunc {
	return func(ctx context.Context) (widget.Value, error) {
		if err := s.wait(ctx); err != nil {
			return widget.Value{}, err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.failing {
			return widget.Value{}, ErrSimulatedOutage
		}
		return widget.Number(next()), nil
	}
}

// Widgets builds the three dashboard widgets with intervals from cfg.
func (s *Simulator) Widgets(cfg config.WidgetConfig, log *logger.Logger, now func() time.Time) []*widget.Widget {
	opts := []widget.Option{widget.WithLogger(log), widget.WithClock(now)}
	return []*widget.Widget{
		widget.New(widget.Config{
			Title:    "Server Uptime",
			Unit:     "%",
			Icon:     "◷",
			Initial:  widget.Number(98),
			Previous: widget.Number(96),
			Interval: cfg.UptimeInterval(),
			Refresh: s.reading(func() float64 {
				return float64(s.between(90, 99))
			}),
		}, opts...),
		widget.New(widget.Config{
			Title:    "Active Users",
			Icon:     "◉",
			Initial:  widget.Number(1250),
			Previous: widget.Number(1180),
			Interval: cfg.UsersInterval(),
			Refresh: s.reading(func() float64 {
				s.users += float64(s.between(-20, 79))
				return s.users
			}),
		}, opts...),
		widget.New(widget.Config{
			Title:    "CPU Usage",
			Unit:     "%",
			Icon:     "▣",
			Initial:  widget.Number(42),
			Previous: widget.Number(38),
			Interval: cfg.CPUInterval(),
			Refresh: s.reading(func() float64 {
				return float64(s.between(20, 79))
			}),
		}, opts...),
	}
}
