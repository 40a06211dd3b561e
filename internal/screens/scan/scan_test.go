package scan

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/xoxo/internal/flow"
)

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func esc() tea.KeyPressMsg   { return tea.KeyPressMsg{Code: tea.KeyEscape} }

func navTarget(t *testing.T, cmd tea.Cmd) flow.Name {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	nav, ok := msg.(flow.NavigateMsg)
	if !ok {
		t.Fatalf("expected flow.NavigateMsg, got %T", msg)
	}
	return nav.To
}

func TestStartScanningThenComplete(t *testing.T) {
	s := New(time.Second)

	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("start should schedule the spinner and the scan timer")
	}
	if !s.Scanning() {
		t.Fatal("expected scan in progress")
	}
	if !strings.Contains(s.View(80, 24), "Scanning...") {
		t.Error("expected scanning status in view")
	}

	_, cmd = s.Update(scanDoneMsg{gen: s.gen})
	if got := navTarget(t, cmd); got != flow.Profile {
		t.Errorf("expected profile, got %s", got)
	}
	if s.Scanning() {
		t.Error("scan should be finished")
	}
}

func TestSkipToProfile(t *testing.T) {
	s := New(time.Second)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := s.Update(enter())
	if got := navTarget(t, cmd); got != flow.Profile {
		t.Errorf("expected profile, got %s", got)
	}
	if s.Scanning() {
		t.Error("skip must not start a scan")
	}
}

func TestCancelDropsCompletion(t *testing.T) {
	s := New(time.Second)
	s.Update(enter())
	gen := s.gen

	s.Update(esc())
	if s.Scanning() {
		t.Fatal("esc should cancel the scan")
	}

	_, cmd := s.Update(scanDoneMsg{gen: gen})
	if cmd != nil {
		t.Error("completion of a cancelled scan must be ignored")
	}
}

func TestCloseDropsCompletion(t *testing.T) {
	s := New(time.Second)
	s.Update(enter())
	gen := s.gen

	s.Close()
	_, cmd := s.Update(scanDoneMsg{gen: gen})
	if cmd != nil {
		t.Error("completion after teardown must be ignored")
	}
}

func TestKeysIgnoredWhileScanning(t *testing.T) {
	s := New(time.Second)
	s.Update(enter())

	_, cmd := s.Update(enter())
	if cmd != nil {
		t.Error("menu must be inert while scanning")
	}
}

func TestEscGoesBackWhenIdle(t *testing.T) {
	s := New(time.Second)
	_, cmd := s.Update(esc())
	if got := navTarget(t, cmd); got != flow.Landing {
		t.Errorf("expected landing, got %s", got)
	}
}

func TestNegativeDelay(t *testing.T) {
	s := New(-time.Second)
	if s.delay != 0 {
		t.Errorf("expected delay clamped to 0, got %v", s.delay)
	}
}
