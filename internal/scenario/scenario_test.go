package scenario

import (
	"testing"

	"github.com/cwel/kwm/internal/wm"
)

func TestParseAndValidate(t *testing.T) {
	data := []byte(`
name: demo
description: a tiny scenario
steps:
  - command: insert_tiling
    label: a
  - command: insert_tiling
    label: b
  - command: focus_left
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(s.Steps) != 3 {
		t.Fatalf("len(Steps) = %d, want 3", len(s.Steps))
	}
}

func TestValidateRejectsUnknownCommand(t *testing.T) {
	s := &Scenario{Name: "bad", Steps: []Step{{Command: "levitate"}}}
	if err := s.Validate(); err == nil {
		t.Fatalf("expected an error for an unknown command")
	}
}

func TestRunBundledThreeWide(t *testing.T) {
	s, err := Load("three-wide")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	hub := wm.Setup()
	if err := NewRunner(hub).Run(s); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	win, ok := hub.Focused().AsWindow()
	if !ok {
		t.Fatalf("expected focus on a window after three-wide")
	}
	if win != 0 {
		t.Fatalf("focused window = %v, want the first inserted window (id 0)", win)
	}
}

func TestRunDeleteLastInsertedWithoutInsertFails(t *testing.T) {
	s := &Scenario{Name: "bad", Steps: []Step{{Command: "delete_last_inserted"}}}
	hub := wm.Setup()
	if err := NewRunner(hub).Run(s); err == nil {
		t.Fatalf("expected an error deleting with nothing inserted yet")
	}
}
