package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hsbacot/bookfinder/query"
	"github.com/hsbacot/bookfinder/render"
)

var (
	fieldStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("240"))
	activeFieldStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("205")).Bold(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// View renders the UI based on the current state
func (m Model) View() string {
	sections := []string{
		render.Header(),
		m.searchBar(),
	}

	state := m.controller.State()
	if badge := render.Badge(state); badge != "" {
		sections = append(sections, badge)
	}

	sections = append(sections, "", render.Body(state, m.cards, m.spinner.View(), m.width, m.selected))

	if m.status != "" {
		sections = append(sections, "", statusStyle.Render(m.status))
	}

	var keys help.KeyMap = resultKeys{m.keys}
	if m.focus == focusInput {
		keys = inputKeys{m.keys}
	}
	sections = append(sections, "", m.help.View(keys))

	return "\n" + strings.Join(sections, "\n") + "\n"
}

func (m Model) searchBar() string {
	fields := make([]string, len(query.Fields))
	for i, f := range query.Fields {
		if f == m.field {
			fields[i] = activeFieldStyle.Render(f.Label())
		} else {
			fields[i] = fieldStyle.Render(f.Label())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", strings.Join(fields, ""))
}

func textinputBlink() tea.Cmd {
	return textinput.Blink
}
