// Package notify keeps the ordered list of transient notifications shown by
// the interface and expires them after their lifetime.
package notify

import (
	"fmt"
	"time"
)

// Kind classifies a notification for styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Kinds lists every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindSuccess, KindError, KindInfo, KindWarning}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindInfo, KindWarning:
		return true
	default:
		return false
	}
}

// ParseKind converts text to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown notification kind %q", s)
	}
	return k, nil
}

// DefaultLifetime applies when a notification does not choose one.
const DefaultLifetime = 5 * time.Second

// Lifetime controls when a notification expires. The zero value uses the
// registry default.
type Lifetime struct {
	d       time.Duration
	set     bool
	forever bool
}

// After expires the notification d after it was added. Zero expires it on
// the next scheduler tick; negative durations are treated as zero.
func After(d time.Duration) Lifetime {
	if d < 0 {
		d = 0
	}
	return Lifetime{d: d, set: true}
}

// Forever keeps the notification until it is removed explicitly.
func Forever() Lifetime {
	return Lifetime{forever: true}
}

// IsForever reports whether the lifetime never expires.
func (l Lifetime) IsForever() bool {
	return l.forever
}

// IsDefault reports whether the lifetime defers to the registry default.
func (l Lifetime) IsDefault() bool {
	return !l.set && !l.forever
}

// Duration resolves the lifetime against fallback. The second value is
// false for Forever.
func (l Lifetime) Duration(fallback time.Duration) (time.Duration, bool) {
	switch {
	case l.forever:
		return 0, false
	case l.set:
		return l.d, true
	default:
		return fallback, true
	}
}

func (l Lifetime) String() string {
	switch {
	case l.forever:
		return "forever"
	case l.set:
		return l.d.String()
	default:
		return "default"
	}
}

// Input describes a notification to add.
type Input struct {
	Kind     Kind
	Title    string
	Message  string
	Lifetime Lifetime
}

// Notification is a notification currently held by a Registry.
type Notification struct {
	ID        string
	Kind      Kind
	Title     string
	Message   string
	Lifetime  Lifetime
	CreatedAt time.Time
}
