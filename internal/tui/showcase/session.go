package showcase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/terrafusion/internal/config"
	"github.com/alexisbeaulieu97/terrafusion/internal/logger"
	"github.com/alexisbeaulieu97/terrafusion/internal/notify"
	"github.com/alexisbeaulieu97/terrafusion/internal/overlay"
	"github.com/alexisbeaulieu97/terrafusion/internal/schedule"
	"github.com/alexisbeaulieu97/terrafusion/internal/ui/components"
	"github.com/alexisbeaulieu97/terrafusion/internal/widget"
)

// Options configures a Session.
type Options struct {
	Config    *config.Config
	Scheduler schedule.Scheduler
	Logger    *logger.Logger
	Clock     func() time.Time
	// RefreshLatency delays every simulated widget refresh.
	RefreshLatency time.Duration
}

// Session owns the registries and widgets behind one showcase run. Close
// tears everything down and cancels every outstanding timer.
type Session struct {
	cfg    *config.Config
	log    *logger.Logger
	now    func() time.Time
	ctx    context.Context
	cancel context.CancelFunc
	group  *schedule.Group

	notifications *notify.Registry
	overlays      *overlay.Registry
	widgets       []*widget.Widget
	simulator     *Simulator

	closeOnce sync.Once
}

// NewSession wires a session from opts. Missing options fall back to the
// defaults, the system scheduler and a silent logger.
func NewSession(opts Options) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	ctx, cancel := context.WithCancel(context.Background())
	group := schedule.NewGroup(opts.Scheduler)
	simulator := NewSimulator(cfg.Widgets.Seed, opts.RefreshLatency)

	return &Session{
		cfg:    cfg,
		log:    log,
		now:    now,
		ctx:    ctx,
		cancel: cancel,
		group:  group,
		notifications: notify.NewRegistry(
			notify.WithScheduler(group),
			notify.WithDefaultLifetime(cfg.NotificationLifetime()),
			notify.WithLogger(log),
			notify.WithClock(now),
		),
		overlays:  overlay.NewRegistry(log),
		widgets:   simulator.Widgets(cfg.Widgets, log, now),
		simulator: simulator,
	}
}

// Start begins automatic widget refresh.
func (s *Session) Start() {
	for _, w := range s.widgets {
		w.Start(s.ctx, s.group)
	}
	s.log.Debug("showcase session started")
}

// Close stops the widgets, closes both registries and cancels all timers.
// It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		for _, w := range s.widgets {
			w.Stop()
		}
		s.cancel()
		s.group.Close()
		s.notifications.Close()
		s.overlays.Shutdown()
		s.log.Debug("showcase session closed")
	})
}

// Config returns the session settings.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Notifications returns the notification registry.
func (s *Session) Notifications() *notify.Registry {
	return s.notifications
}

// Overlays returns the modal registry.
func (s *Session) Overlays() *overlay.Registry {
	return s.overlays
}

// Widgets returns the dashboard widgets in display order.
func (s *Session) Widgets() []*widget.Widget {
	return s.widgets
}

// Simulator returns the source of widget readings.
func (s *Session) Simulator() *Simulator {
	return s.simulator
}

// Now returns the session clock.
func (s *Session) Now() time.Time {
	return s.now()
}

// RefreshAll refreshes every widget once and joins the failures.
func (s *Session) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, w := range s.widgets {
		if err := w.Refresh(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// notificationDemos are the messages raised by the notification triggers.
var notificationDemos = map[notify.Kind]notify.Input{
	notify.KindSuccess: {Kind: notify.KindSuccess, Title: "Success", Message: "Operation completed successfully."},
	notify.KindError:   {Kind: notify.KindError, Title: "Error", Message: "Something went wrong. Please try again."},
	notify.KindInfo:    {Kind: notify.KindInfo, Title: "Information", Message: "Here is some useful information."},
	notify.KindWarning: {Kind: notify.KindWarning, Title: "Warning", Message: "Please review before proceeding."},
}

// DemoNotification raises the sample notification of kind.
func (s *Session) DemoNotification(kind notify.Kind) string {
	in, ok := notificationDemos[kind]
	if !ok {
		in = notificationDemos[notify.KindInfo]
	}
	return s.notifications.Add(in)
}

// OpenConfig opens the system configuration modal. Saving closes it and
// confirms with a notification; cancelling only closes it.
func (s *Session) OpenConfig() overlay.Descriptor {
	body := components.VStack(
		components.NewCard(
			components.BodyText("Endpoint      https://api.terrafusion.com/v2"),
			components.BodyText("Rate limit    1,000 requests / minute"),
			components.BodyText("Timeout       30 seconds"),
		).WithHeader("API Settings", "Connection settings for the public API"),
		components.NewCard(
			components.HStack(
				components.PrimaryBadge("Admin"),
				components.WarningBadge("Editor"),
				components.InfoBadge("User"),
			).WithGap(1),
			components.CaptionText("Admins manage users; editors publish content."),
		).WithHeader("User Permissions", "Default role for new members: User"),
	).WithGap(1)

	return s.overlays.Open(overlay.Descriptor{
		Title:       "System Configuration",
		Description: "Manage your TerraFusion system settings",
		Body:        body,
		Footer:      components.CaptionText("Changes apply to new sessions."),
		Size:        overlay.SizeLarge,
		Actions: []overlay.Action{
			{Label: "Cancel", Invoke: s.overlays.Close},
			{Label: "Save Changes", Primary: true, Invoke: func() {
				s.overlays.Close()
				s.notifications.Add(notify.Input{
					Kind:    notify.KindSuccess,
					Title:   "Settings saved",
					Message: "Your configuration has been updated.",
				})
			}},
		},
	})
}

// ConfirmRestart asks before simulating a system restart.
func (s *Session) ConfirmRestart() overlay.Descriptor {
	return s.overlays.Confirm(overlay.ConfirmOptions{
		Title:        "Restart System",
		Message:      "All services will be restarted. Active sessions will be disconnected.",
		ConfirmLabel: "Restart",
		Severity:     overlay.SeverityDanger,
		OnConfirm: func() {
			s.log.Info("system restart confirmed")
			s.notifications.Add(notify.Input{
				Kind:    notify.KindWarning,
				Title:   "System restarting",
				Message: "Services will be back in about 30 seconds.",
			})
		},
		OnCancel: func() {
			s.notifications.Add(notify.Input{
				Kind:    notify.KindInfo,
				Title:   "Restart cancelled",
				Message: "No changes were made.",
			})
		},
	})
}

// ToggleOutage flips the simulated outage and announces the change.
func (s *Session) ToggleOutage() bool {
	failing := s.simulator.ToggleFailing()
	if failing {
		s.notifications.Add(notify.Input{Kind: notify.KindError, Title: "Outage simulated", Message: "Widget refreshes will fail."})
	} else {
		s.notifications.Add(notify.Input{Kind: notify.KindSuccess, Title: "Outage resolved", Message: "Widget refreshes recovered."})
	}
	return failing
}
