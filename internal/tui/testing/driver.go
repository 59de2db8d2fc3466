package testing

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultSettle is how long Collect waits for commands to produce messages.
// Timer-driven commands such as spinner ticks take longer and are skipped.
const DefaultSettle = 50 * time.Millisecond

// Collect runs cmd and every command nested in a tea.BatchMsg, returning the
// messages produced within settle. Sequences are not expanded.
func Collect(cmd tea.Cmd, settle time.Duration) []tea.Msg {
	if cmd == nil {
		return nil
	}

	results := make(chan tea.Msg, 64)
	pending := 0

	var start func(c tea.Cmd)
	start = func(c tea.Cmd) {
		if c == nil {
			return
		}
		pending++
		go func() {
			results <- c()
		}()
	}
	start(cmd)

	deadline := time.After(settle)
	var msgs []tea.Msg
	for pending > 0 {
		select {
		case msg := <-results:
			pending--
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, c := range batch {
					start(c)
				}
				continue
			}
			if msg != nil {
				msgs = append(msgs, msg)
			}
		case <-deadline:
			return msgs
		}
	}
	return msgs
}

// Find returns the first message of type T.
func Find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// Send applies msgs to m in order and returns the final model together with
// the command returned by the last update.
func Send(m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}
