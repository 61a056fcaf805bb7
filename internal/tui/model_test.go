package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwel/kwm/internal/wm"
)

func sendKey(m Model, key string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return updated.(Model)
}

func sendSpecial(m Model, t tea.KeyType) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: t})
	return updated.(Model)
}

func TestInsertAndDelete(t *testing.T) {
	m := New(nil)
	m = sendKey(m, "i")
	if !m.naming {
		t.Fatalf("expected 'i' to open the naming prompt")
	}
	m = sendSpecial(m, tea.KeyEnter)
	m = sendKey(m, "i")
	m = sendSpecial(m, tea.KeyEnter)

	if m.status == "" {
		t.Fatalf("expected a status message after insert")
	}

	win, ok := m.hub.Focused().AsWindow()
	if !ok {
		t.Fatalf("expected focus on a window after insert")
	}
	m.hub.DeleteWindow(wm.WindowRef(win))
	if m.hub.Focused().IsNil() {
		t.Fatalf("expected focus to repair to something after delete")
	}
}

func TestNamingEscCancelsInsert(t *testing.T) {
	m := New(nil)
	m = sendKey(m, "i")
	m = sendSpecial(m, tea.KeyEsc)
	if m.naming {
		t.Fatalf("expected esc to close the naming prompt")
	}
	if !m.hub.Focused().IsNil() {
		t.Fatalf("expected no window inserted after cancelling")
	}
}

func TestToggleHelp(t *testing.T) {
	m := New(nil)
	if m.showHelp {
		t.Fatalf("help should start hidden")
	}
	m = sendKey(m, "?")
	if !m.showHelp {
		t.Fatalf("expected showHelp to toggle on")
	}
}

func TestMoveModeConsumesNextDigit(t *testing.T) {
	m := New(nil)
	m = sendKey(m, "i")
	m = sendSpecial(m, tea.KeyEnter)
	m = sendKey(m, "g")
	if !m.moveMode {
		t.Fatalf("expected move mode armed after g")
	}
	m = sendKey(m, "2")
	if m.moveMode {
		t.Fatalf("expected move mode consumed by digit")
	}
	if m.hub.CurrentWorkspace() != 0 {
		t.Fatalf("move should not change the current workspace")
	}
}
