package tui

import (
	"bufio"
	"encoding/json"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timewheel/internal/timeunit"
)

func TestDebugLoggerWritesJSONLines(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := InitDebugLogger(true); err != nil {
		t.Fatalf("InitDebugLogger() error: %v", err)
	}
	LogKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	LogSheetChange(false, true, "open")
	LogSelection(timeunit.Selection{Minutes: 5}, "confirm")
	LogWheelChange(timeunit.Hours, 3)
	CloseDebugLogger()
	t.Cleanup(func() { debugLog = nil })

	f, err := os.Open(DebugLogPath)
	if err != nil {
		t.Fatalf("opening debug log: %v", err)
	}
	defer f.Close()

	var events []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", scanner.Text(), err)
		}
		events = append(events, entry["event"].(string))
	}

	want := []string{"DEBUG_START", "KEY_PRESS", "SHEET_CHANGE", "SELECTION", "WHEEL_CHANGE", "DEBUG_END"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d = %s, want %s", i, events[i], want[i])
		}
	}
}

func TestDebugLoggerDisabled(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := InitDebugLogger(false); err != nil {
		t.Fatalf("InitDebugLogger() error: %v", err)
	}
	LogKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	CloseDebugLogger()
	t.Cleanup(func() { debugLog = nil })

	if _, err := os.Stat(DebugLogPath); !os.IsNotExist(err) {
		t.Fatalf("disabled logger should not create %s", DebugLogPath)
	}
}
