package ui

import (
	"io"
	"strings"

	"github.com/alvinbaena/pwd-meter/internal/meter"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LiveModel is the Bubbletea model of the interactive meter. Every keystroke that changes the
// input re-runs the meter, so the panel always reflects the current value.
type LiveModel struct {
	input    textinput.Model
	panel    *Panel
	meter    *meter.Meter
	last     string
	reveal   bool
	quitting bool
}

// NewLiveModel creates the model with an empty, masked input
func NewLiveModel(styles *Styles) LiveModel {
	ti := textinput.New()
	ti.Placeholder = "Type a password"
	ti.Prompt = "Password: "
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 256
	ti.Focus()

	panel := NewPanel(styles)
	m := LiveModel{
		input: ti,
		panel: panel,
		meter: meter.New(panel.Targets()),
	}
	m.meter.OnInput("")

	return m
}

// Init initializes the model
func (m LiveModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and resizes
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+r":
			m.reveal = !m.reveal
			if m.reveal {
				m.input.EchoMode = textinput.EchoNormal
			} else {
				m.input.EchoMode = textinput.EchoPassword
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 10
		if width > 60 {
			width = 60
		}
		m.panel.SetWidth(width)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != m.last {
		m.last = value
		m.meter.OnInput(value)
	}

	return m, cmd
}

// View renders the model
func (m LiveModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.panel.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.panel.styles.Caption.Render("ctrl+r show/hide • esc quit"))
	sb.WriteString("\n")

	return sb.String()
}

// RunLive starts the interactive meter until the user quits
func RunLive(in io.Reader, out io.Writer, styles *Styles) error {
	p := tea.NewProgram(NewLiveModel(styles), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
