package repl

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/ditto/lang"
	"github.com/ardnew/ditto/log"
)

func testModel(t *testing.T) *model {
	t.Helper()

	input := textinput.New()
	input.Focus()

	return &model{
		ctxFunc:    func() context.Context { return t.Context() },
		input:      input,
		logger:     log.Logger{},
		table:      new(lang.Table),
		historyIdx: -1,
	}
}

// enter submits the given line and returns the command produced.
func enter(m *model, line string) tea.Cmd {
	m.input.SetValue(line)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}

	_, ok := cmd().(tea.QuitMsg)

	return ok
}

func TestUpdateQuitCommands(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name string
		line string
	}{
		{name: "quit", line: ":quit"},
		{name: "exit", line: ":exit"},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			m := testModel(t)

			cmd := enter(m, test.line)

			if !m.quitting {
				t.Fatalf("%s: quitting flag not set", test.line)
			}

			if !isQuit(cmd) {
				t.Fatalf("%s: expected quit command, got %#v", test.line, cmd)
			}
		})
	}
}

func TestUpdateEnterKeepsRunning(t *testing.T) {
	t.Parallel()

	m := testModel(t)

	if cmd := enter(m, "let &v = [1, 2];"); isQuit(cmd) {
		t.Fatal("declaration line produced a quit command")
	}

	if m.quitting {
		t.Fatal("declaration line set the quitting flag")
	}

	if got := m.table.Len(); got != 1 {
		t.Fatalf("table length = %d, want 1", got)
	}
}

func TestUpdateCtrlD(t *testing.T) {
	t.Parallel()

	m := testModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})

	if !m.quitting || !isQuit(cmd) {
		t.Fatal("Ctrl+D did not quit")
	}
}
