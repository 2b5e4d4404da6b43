package overlay

import "sync"

// ConfirmOptions configures a confirmation dialog.
type ConfirmOptions struct {
	Title   string
	Message string
	// ConfirmLabel defaults to "Confirm".
	ConfirmLabel string
	// CancelLabel defaults to "Cancel".
	CancelLabel string
	Severity    Severity
	OnConfirm   func()
	OnCancel    func()
}

// Confirm opens a small modal with a cancel and a confirm action. Each
// action closes the dialog before running its callback, and at most one of
// the callbacks ever fires. Actions of a dialog that has been replaced or
// closed do nothing. Dismissing the dialog through Close fires neither.
func (r *Registry) Confirm(opts ConfirmOptions) Descriptor {
	confirmLabel := opts.ConfirmLabel
	if confirmLabel == "" {
		confirmLabel = "Confirm"
	}
	cancelLabel := opts.CancelLabel
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}

	return r.openWith(func(gen uint64) Descriptor {
		var once sync.Once
		settle := func(callback func()) func() {
			return func() {
				once.Do(func() {
					if !r.closeGeneration(gen) {
						return
					}
					if callback != nil {
						callback()
					}
				})
			}
		}

		return Descriptor{
			Title:       opts.Title,
			Description: opts.Message,
			Size:        SizeSmall,
			Actions: []Action{
				{Label: cancelLabel, Severity: SeverityDefault, Invoke: settle(opts.OnCancel)},
				{Label: confirmLabel, Severity: opts.Severity, Primary: true, Invoke: settle(opts.OnConfirm)},
			},
		}
	})
}
