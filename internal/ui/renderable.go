// Package ui holds the contracts shared by every presentation package.
package ui

// Renderable is anything that can draw itself as a block of terminal text.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View calls f. A nil func renders nothing.
func (f RenderFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}

// Static is fixed text.
type Static string

// View returns the text unchanged.
func (s Static) View() string {
	return string(s)
}
