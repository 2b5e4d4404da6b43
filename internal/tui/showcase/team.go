package showcase

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/terrafusion/internal/datatable"
	"github.com/alexisbeaulieu97/terrafusion/internal/ui/components"
)

// Member is a row of the team table.
type Member struct {
	ID     int
	Name   string
	Email  string
	Role   string
	Status string
}

// TeamMembers returns the demo team.
func TeamMembers() []Member {
	names := []struct{ name, role, status string }{
		{"Alex Johnson", "Admin", "Active"},
		{"Sarah Williams", "User", "Active"},
		{"Michael Brown", "Editor", "Inactive"},
		{"Emily Davis", "User", "Active"},
		{"David Wilson", "Admin", "Active"},
		{"Jessica Taylor", "User", "Pending"},
		{"Ryan Martinez", "Editor", "Active"},
	}
	members := make([]Member, len(names))
	for i, n := range names {
		first := strings.ToLower(strings.Fields(n.name)[0])
		members[i] = Member{
			ID:     i + 1,
			Name:   n.name,
			Email:  first + "@terrafusion.com",
			Role:   n.role,
			Status: n.status,
		}
	}
	return members
}

// teamSearchKeys are the columns the search box matches.
var teamSearchKeys = []string{"name", "email", "role"}

// TeamColumns describes the team table. Role and status cells are coloured
// for theme.
func TeamColumns(theme components.Theme) []datatable.Column[Member] {
	return []datatable.Column[Member]{
		{Header: "ID", Key: "id", Value: func(m Member) any { return m.ID }, Render: func(m Member) string { return strconv.Itoa(m.ID) }},
		{Header: "Name", Key: "name", Value: func(m Member) any { return m.Name }},
		{Header: "Email", Key: "email", Value: func(m Member) any { return m.Email }},
		{Header: "Role", Key: "role", Value: func(m Member) any { return m.Role }, Render: func(m Member) string {
			return lipgloss.NewStyle().Foreground(roleColour(theme, m.Role)).Render(m.Role)
		}},
		{Header: "Status", Key: "status", Value: func(m Member) any { return m.Status }, Render: func(m Member) string {
			return lipgloss.NewStyle().Foreground(statusColour(theme, m.Status)).Render("● " + m.Status)
		}},
	}
}

func roleColour(theme components.Theme, role string) lipgloss.Color {
	switch role {
	case "Admin":
		return theme.Palette.Primary.Base
	case "Editor":
		return theme.Palette.Warning.Base
	default:
		return theme.Palette.Info.Base
	}
}

func statusColour(theme components.Theme, status string) lipgloss.Color {
	switch status {
	case "Active":
		return theme.Palette.Success.Base
	case "Inactive":
		return theme.Palette.Danger.Base
	default:
		return theme.Palette.Warning.Base
	}
}

// NewTeamTable creates the interactive team table.
func NewTeamTable(pageSize int) *datatable.Table[Member] {
	table := datatable.NewTable(TeamColumns(components.DefaultTheme()), datatable.Options{
		SearchKeys: teamSearchKeys,
		PageSize:   pageSize,
	})
	table.SetData(TeamMembers())
	return table
}
