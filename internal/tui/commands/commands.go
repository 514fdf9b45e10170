// Package commands provides TUI command constructors and message types.
package commands

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// StatusTimeout is how long a status line stays visible.
const StatusTimeout = 3 * time.Second

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsg is sent for temporary status messages.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CopiedMsg is sent after text was written to the clipboard.
type CopiedMsg struct {
	Text string
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: err}
		}
		return CopiedMsg{Text: text}
	}
}

// Status emits a status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Msg: msg}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
