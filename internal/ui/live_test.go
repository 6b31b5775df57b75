package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeRunes(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestLiveModel_Typing(t *testing.T) {
	var m tea.Model = NewLiveModel(NewStyles(false))
	if !strings.Contains(m.View(), "Waiting for input...") {
		t.Errorf("Initial view should wait for input:\n%s", m.View())
	}

	m = typeRunes(m, "Tr0ub4dor&3xyzQ!")
	view := m.View()
	if !strings.Contains(view, "Strong") {
		t.Errorf("View should rate the password Strong:\n%s", view)
	}
	if strings.Contains(view, "Tr0ub4dor") {
		t.Errorf("Password should be masked:\n%s", view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if !strings.Contains(m.View(), "Tr0ub4dor&3xyzQ!") {
		t.Errorf("Password should be revealed after ctrl+r:\n%s", m.View())
	}
}

func TestLiveModel_Backspace(t *testing.T) {
	var m tea.Model = NewLiveModel(NewStyles(false))
	m = typeRunes(m, "ab")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	if !strings.Contains(m.View(), "Waiting for input...") {
		t.Errorf("Clearing the input should go back to waiting:\n%s", m.View())
	}
}

func TestLiveModel_Quit(t *testing.T) {
	var m tea.Model = NewLiveModel(NewStyles(false))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("Esc should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Esc should quit")
	}
	if m.View() != "" {
		t.Errorf("View should be empty after quitting")
	}
}
