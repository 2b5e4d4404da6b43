package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/terrafusion/internal/ui"
)

// Direction is the axis a Stack lays its children along.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in one direction with an optional gap.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// VStack stacks children top to bottom.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack places children side by side.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every child and joins them. In a horizontal stack
// the width limit is split evenly between children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.direction == DirectionHorizontal && ctx.Constraints.HasWidth() && len(s.children) > 0 {
		available := ctx.Constraints.MaxWidth - s.gap*(len(s.children)-1)
		childCtx = ctx.WithMaxWidth(max(available/len(s.children), 1))
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := Render(childCtx, child); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}
	if ctx.Constraints.HasWidth() {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}

	if s.direction == DirectionHorizontal {
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, s.withGap(views, strings.Repeat(" ", s.gap))...))
	}
	return style.Render(lipgloss.JoinVertical(s.crossAlign.position(), s.withGap(views, strings.Repeat("\n", max(s.gap-1, 0)))...))
}

func (s *Stack) withGap(views []string, spacer string) []string {
	if s.gap <= 0 {
		return views
	}
	out := make([]string, 0, len(views)*2-1)
	for i, v := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, v)
	}
	return out
}

// WithDirection sets the layout axis.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the blank lines (vertical) or columns (horizontal) between
// children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(gap, 0)
	return s
}

// WithCrossAlign aligns children of a vertical stack.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers appends theme-aware style functions.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
