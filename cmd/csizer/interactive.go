package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/csizer/layout"
	"github.com/wippyai/csizer/witgen"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	engine  *layout.Engine
	input   textinput.Model
	history []string
	strict  bool
	showWIT bool
}

func newInteractiveModel(eng *layout.Engine, strict bool) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "cid"
	ti.Prompt = "spec: "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		engine: eng,
		input:  ti,
		strict: strict,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if line := m.summary(); line != "" {
				m.history = append(m.history, line)
			}
			m.input.Reset()
			return m, nil

		case "tab":
			m.showWIT = !m.showWIT
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// summary is the batch-mode size line for the current input.
func (m *interactiveModel) summary() string {
	value := m.input.Value()
	spec, err := parseSpec(value, m.strict)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%8d %s", m.engine.Size(spec), value)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("csizer"))
	if m.engine.TailPadding() {
		b.WriteString(" abi tail padding")
	}
	b.WriteString("\n\n")

	for _, line := range m.history {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(m.history) > 0 {
		b.WriteByte('\n')
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	spec, err := parseSpec(m.input.Value(), m.strict)
	if err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
	} else if m.showWIT {
		b.WriteString(witgen.Format(witgen.Record("aggregate", spec)))
	} else {
		b.WriteString(layoutTable(m.engine.Layout(spec)))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter keep • tab layout/wit • esc quit"))
	return b.String()
}

func runInteractive(eng *layout.Engine, strict bool) error {
	p := tea.NewProgram(newInteractiveModel(eng, strict), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
