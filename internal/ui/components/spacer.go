package components

import "strings"

// Spacer renders blank space.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer of width columns and height lines.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: max(width, 0), height: max(height, 0)}
}

// HorizontalSpacer is a single line of width blanks.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer is height empty lines.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the blank block.
func (s *Spacer) View() string {
	if s.height == 0 {
		return ""
	}
	line := strings.Repeat(" ", max(s.width, 1))
	return strings.TrimSuffix(strings.Repeat(line+"\n", s.height), "\n")
}
