package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/terrafusion/internal/overlay"
	"github.com/alexisbeaulieu97/terrafusion/internal/ui"
)

func TestOpenReplacesActiveModal(t *testing.T) {
	t.Parallel()

	reg := overlay.NewRegistry(nil)
	a := reg.Open(overlay.Descriptor{Title: "A", Body: ui.Static("first")})
	reg.Open(overlay.Descriptor{Title: "B", Size: overlay.SizeLarge})

	active, ok := reg.Active()
	require.True(t, ok)
	assert.Equal(t, "B", active.Title)
	assert.Equal(t, overlay.SizeLarge, active.Size)

	a.Close()
	active, ok = reg.Active()
	require.True(t, ok, "closing a replaced modal leaves the new one open")
	assert.Equal(t, "B", active.Title)

	active.Close()
	assert.False(t, reg.IsOpen())
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	reg := overlay.NewRegistry(nil)
	changes := reg.Subscribe()

	reg.Close()
	assert.Len(t, changes, 0, "closing an empty slot does not signal")

	reg.Open(overlay.Descriptor{Title: "A"})
	<-changes
	reg.Close()
	reg.Close()
	assert.Len(t, changes, 1)
	assert.False(t, reg.IsOpen())
}

func TestConfirmFiresOnceAndClears(t *testing.T) {
	t.Parallel()

	reg := overlay.NewRegistry(nil)
	var confirmed, canceled int
	d := reg.Confirm(overlay.ConfirmOptions{
		Title:     "Restart?",
		Message:   "All sessions end.",
		Severity:  overlay.SeverityDanger,
		OnConfirm: func() { confirmed++ },
		OnCancel:  func() { canceled++ },
	})

	require.Len(t, d.Actions, 2)
	assert.Equal(t, "Cancel", d.Actions[0].Label)
	assert.Equal(t, "Confirm", d.Actions[1].Label)
	assert.Equal(t, overlay.SeverityDanger, d.Actions[1].Severity)
	assert.Equal(t, overlay.SizeSmall, d.Size)

	primary, ok := d.PrimaryAction()
	require.True(t, ok)
	primary.Run()
	primary.Run()

	cancel, ok := d.CancelAction()
	require.True(t, ok)
	cancel.Run()

	assert.Equal(t, 1, confirmed)
	assert.Equal(t, 0, canceled)
	assert.False(t, reg.IsOpen())
}

func TestConfirmCancel(t *testing.T) {
	t.Parallel()

	reg := overlay.NewRegistry(nil)
	var confirmed, canceled int
	d := reg.Confirm(overlay.ConfirmOptions{
		Title:        "Discard?",
		ConfirmLabel: "Discard",
		CancelLabel:  "Keep",
		OnConfirm:    func() { confirmed++ },
		OnCancel:     func() { canceled++ },
	})
	assert.Equal(t, "Keep", d.Actions[0].Label)
	assert.Equal(t, "Discard", d.Actions[1].Label)

	d.Actions[0].Run()
	d.Actions[1].Run()

	assert.Equal(t, 0, confirmed)
	assert.Equal(t, 1, canceled)
	assert.False(t, reg.IsOpen())
}

func TestConfirmWithoutCancelCallback(t *testing.T) {
	t.Parallel()

	reg := overlay.NewRegistry(nil)
	d := reg.Confirm(overlay.ConfirmOptions{Title: "Go?", OnConfirm: func() {}})

	cancel, ok := d.CancelAction()
	require.True(t, ok)
	assert.NotPanics(t, cancel.Run)
	assert.False(t, reg.IsOpen())
}

func TestReplacedConfirmIsInert(t *testing.T) {
	t.Parallel()

	reg := overlay.NewRegistry(nil)
	confirmed := 0
	d := reg.Confirm(overlay.ConfirmOptions{Title: "Old", OnConfirm: func() { confirmed++ }})
	reg.Open(overlay.Descriptor{Title: "New"})

	d.Actions[1].Run()
	assert.Equal(t, 0, confirmed)

	active, ok := reg.Active()
	require.True(t, ok)
	assert.Equal(t, "New", active.Title)
}

func TestDismissedConfirmFiresNothing(t *testing.T) {
	t.Parallel()

	reg := overlay.NewRegistry(nil)
	var fired int
	d := reg.Confirm(overlay.ConfirmOptions{
		Title:     "Go?",
		OnConfirm: func() { fired++ },
		OnCancel:  func() { fired++ },
	})
	d.Close()

	d.Actions[0].Run()
	d.Actions[1].Run()
	assert.Equal(t, 0, fired)
}

func TestShutdownIgnoresLaterOpens(t *testing.T) {
	t.Parallel()

	reg := overlay.NewRegistry(nil)
	changes := reg.Subscribe()
	reg.Open(overlay.Descriptor{Title: "A"})
	reg.Shutdown()
	reg.Shutdown()

	d := reg.Open(overlay.Descriptor{Title: "late"})
	assert.NotPanics(t, d.Close)
	assert.False(t, reg.IsOpen())

	<-changes
	_, open := <-changes
	assert.False(t, open)
}

func TestSizeAndSeverityNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "md", overlay.Size(0).String())
	assert.Equal(t, "sm", overlay.SizeSmall.String())
	assert.Equal(t, "full", overlay.SizeFull.String())
	assert.Equal(t, "warning", overlay.SeverityWarning.String())
}

func TestPrimaryActionFallsBackToLast(t *testing.T) {
	t.Parallel()

	d := overlay.Descriptor{Actions: []overlay.Action{{Label: "a"}, {Label: "b"}}}
	primary, ok := d.PrimaryAction()
	require.True(t, ok)
	assert.Equal(t, "b", primary.Label)

	_, ok = overlay.Descriptor{}.PrimaryAction()
	assert.False(t, ok)
}
