package widget_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/terrafusion/internal/logger"
	"github.com/alexisbeaulieu97/terrafusion/internal/schedule/scheduletest"
	"github.com/alexisbeaulieu97/terrafusion/internal/widget"
	tferrors "github.com/alexisbeaulieu97/terrafusion/pkg/errors"
)

func sequence(values ...float64) widget.RefreshFunc {
	i := 0
	return func(context.Context) (widget.Value, error) {
		v := values[i%len(values)]
		i++
		return widget.Number(v), nil
	}
}

func TestRefreshShiftsValues(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	w := widget.New(widget.Config{
		Title:    "CPU Usage",
		Unit:     "%",
		Initial:  widget.Number(42),
		Previous: widget.Number(38),
		Refresh:  sequence(55),
	}, widget.WithClock(func() time.Time { return at }))

	require.NoError(t, w.Refresh(context.Background()))

	state := w.State()
	assert.Equal(t, widget.Number(55), state.Value)
	assert.Equal(t, widget.Number(42), state.Previous)
	assert.False(t, state.Refreshing)
	assert.Equal(t, at, state.LastUpdated)
	assert.NoError(t, state.Err)
}

func TestRefreshFailureKeepsValue(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)

	boom := errors.New("source offline")
	w := widget.New(widget.Config{
		Title:   "Server Uptime",
		Initial: widget.Number(98),
		Refresh: func(context.Context) (widget.Value, error) { return widget.Value{}, boom },
	}, widget.WithLogger(log))

	err = w.Refresh(context.Background())
	require.Error(t, err)

	var refreshErr *tferrors.RefreshError
	require.ErrorAs(t, err, &refreshErr)
	assert.Equal(t, "Server Uptime", refreshErr.Widget)
	assert.ErrorIs(t, err, boom)

	state := w.State()
	assert.Equal(t, widget.Number(98), state.Value)
	assert.False(t, state.Refreshing, "indicator is cleared after a failure")
	assert.ErrorIs(t, state.Err, boom)
	assert.Contains(t, buf.String(), "widget refresh failed")
	assert.Contains(t, buf.String(), "Server Uptime")
}

func TestSuccessfulRefreshClearsError(t *testing.T) {
	t.Parallel()

	fail := true
	w := widget.New(widget.Config{
		Title:   "Users",
		Initial: widget.Number(1),
		Refresh: func(context.Context) (widget.Value, error) {
			if fail {
				return widget.Value{}, errors.New("nope")
			}
			return widget.Number(2), nil
		},
	})

	require.Error(t, w.Refresh(context.Background()))
	fail = false
	require.NoError(t, w.Refresh(context.Background()))
	assert.NoError(t, w.State().Err)
	assert.Equal(t, widget.Number(1), w.State().Previous)
}

func TestRefreshSkippedWhileRunning(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	w := widget.New(widget.Config{
		Title: "slow",
		Refresh: func(context.Context) (widget.Value, error) {
			calls++
			close(entered)
			<-release
			return widget.Number(1), nil
		},
	})

	done := make(chan error, 1)
	go func() { done <- w.Refresh(context.Background()) }()
	<-entered

	assert.True(t, w.State().Refreshing)
	assert.NoError(t, w.Refresh(context.Background()))

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, calls)
	assert.False(t, w.State().Refreshing)
}

func TestRefreshWithoutFunction(t *testing.T) {
	t.Parallel()

	w := widget.New(widget.Config{Title: "static", Initial: widget.Text("Online")})
	assert.NoError(t, w.Refresh(context.Background()))
	assert.Equal(t, "Online", w.State().Value.String())
}

func TestStartRefreshesOnInterval(t *testing.T) {
	t.Parallel()

	clock := scheduletest.NewManual()
	w := widget.New(widget.Config{
		Title:    "Active Users",
		Initial:  widget.Number(1250),
		Interval: 15 * time.Second,
		Refresh:  sequence(1260, 1300, 1280),
	})
	changes := w.Subscribe()

	w.Start(context.Background(), clock)
	clock.Advance(14 * time.Second)
	assert.Equal(t, widget.Number(1250), w.State().Value)

	clock.Advance(time.Second)
	assert.Equal(t, widget.Number(1260), w.State().Value)
	assert.Len(t, changes, 1)

	clock.Advance(30 * time.Second)
	assert.Equal(t, widget.Number(1280), w.State().Value)
	assert.Equal(t, widget.Number(1300), w.State().Previous)

	w.Stop()
	clock.Advance(time.Minute)
	assert.Equal(t, widget.Number(1280), w.State().Value)
	assert.Equal(t, 0, clock.Pending())
}

func TestStartWithoutIntervalIsNoop(t *testing.T) {
	t.Parallel()

	clock := scheduletest.NewManual()
	w := widget.New(widget.Config{Title: "manual", Refresh: sequence(1)})
	w.Start(context.Background(), clock)
	assert.Equal(t, 0, clock.Pending())
	assert.NotPanics(t, w.Stop)
}

func TestStartTwiceKeepsOneSchedule(t *testing.T) {
	t.Parallel()

	clock := scheduletest.NewManual()
	w := widget.New(widget.Config{Title: "cpu", Interval: time.Second, Refresh: sequence(1)})
	w.Start(context.Background(), clock)
	w.Start(context.Background(), clock)
	assert.Equal(t, 1, clock.Pending())
	w.Stop()
}

func TestPercentChangeAndTrend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    widget.Value
		previous widget.Value
		pct      float64
		ok       bool
		trend    widget.Trend
	}{
		{name: "increase", value: widget.Number(42), previous: widget.Number(40), pct: 5, ok: true, trend: widget.TrendUp},
		{name: "decrease", value: widget.Number(90), previous: widget.Number(100), pct: -10, ok: true, trend: widget.TrendDown},
		{name: "flat", value: widget.Number(7), previous: widget.Number(7), pct: 0, ok: true, trend: widget.TrendNeutral},
		{name: "zero previous", value: widget.Number(7), previous: widget.Number(0), trend: widget.TrendNeutral},
		{name: "no previous", value: widget.Number(7), trend: widget.TrendNeutral},
		{name: "text value", value: widget.Text("Online"), previous: widget.Number(1), trend: widget.TrendNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			state := widget.State{Value: tt.value, Previous: tt.previous}
			pct, ok := state.PercentChange()
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.pct, pct, 1e-9)
			assert.Equal(t, tt.trend, state.Trend())
		})
	}
}

func TestValueString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,250", widget.Number(1250).String())
	assert.Equal(t, "42", widget.Number(42).String())
	assert.Equal(t, "98.5", widget.Number(98.5).String())
	assert.Equal(t, "Online", widget.Text("Online").String())
	assert.True(t, widget.Value{}.IsZero())
	assert.False(t, widget.Number(0).IsZero())
}
