// Package overlay manages the single modal dialog slot of the interface.
package overlay

import "github.com/alexisbeaulieu97/terrafusion/internal/ui"

// Size selects the width class of a modal.
type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
	SizeFull
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "sm"
	case SizeLarge:
		return "lg"
	case SizeFull:
		return "full"
	default:
		return "md"
	}
}

// Severity picks the visual treatment of an action. It has no behavioral
// effect.
type Severity int

const (
	SeverityDefault Severity = iota
	SeverityDanger
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityDanger:
		return "danger"
	case SeverityWarning:
		return "warning"
	default:
		return "default"
	}
}

// Action is a button in the modal footer.
type Action struct {
	Label    string
	Severity Severity
	// Primary marks the action triggered by the default key.
	Primary bool
	Invoke  func()
}

// Run invokes the action if it has a handler.
func (a Action) Run() {
	if a.Invoke != nil {
		a.Invoke()
	}
}

// Descriptor is the content of a modal dialog.
type Descriptor struct {
	Title       string
	Description string
	Body        ui.Renderable
	Footer      ui.Renderable
	Actions     []Action
	Size        Size
	// Close is set by the registry when the descriptor is opened. Calling it
	// closes this modal only if it is still the active one.
	Close func()
}

// PrimaryAction returns the action flagged Primary, falling back to the last
// action.
func (d Descriptor) PrimaryAction() (Action, bool) {
	for _, a := range d.Actions {
		if a.Primary {
			return a, true
		}
	}
	if len(d.Actions) == 0 {
		return Action{}, false
	}
	return d.Actions[len(d.Actions)-1], true
}

// CancelAction returns the first non-primary action.
func (d Descriptor) CancelAction() (Action, bool) {
	for _, a := range d.Actions {
		if !a.Primary {
			return a, true
		}
	}
	return Action{}, false
}
