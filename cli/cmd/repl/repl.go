// Package repl implements an interactive playground for the template
// language.
//
// Declarations entered at the prompt accumulate across the session; any
// other line is treated as a template body and expanded immediately
// against the variables declared so far. Session commands are prefixed
// with ':'.
package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/ditto/lang"
	"github.com/ardnew/ditto/log"
)

const prompt = "➜ "

// maxSuggestions limits the completion candidates shown below the prompt.
const maxSuggestions = 5

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

func helpMessage() string {
	return `
: Commands:

  :help    Print this cruft
  :vars    List declared variables
  :clear   Clear the transcript
  :reset   Discard all declarations
  :quit    Exit

Usage:
  Lines of the form 'let &name = ...;' declare variables
  Any other line is expanded immediately as a template body
  Completions for *references appear as you type
  Press Tab / Shift-Tab to cycle candidates, Space to accept
  Use Up/Down arrows for history navigation
  Press Ctrl+C on an empty line or Ctrl+D to exit
`
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc    func() context.Context
	input      textinput.Model
	logger     log.Logger
	decls      []string // accumulated declaration source lines
	table      *lang.Table
	transcript []string
	history    []string
	historyIdx int
	matches    fuzzy.Matches // current fuzzy match results
	wordStart  int           // byte offset of the *reference being typed
	suggIdx    int           // selected candidate index
	quitting   bool
}

// Run starts the REPL, optionally seeded with declaration source.
func Run(
	ctx context.Context,
	seed string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(ctx, "repl start",
		slog.Bool("has_seed", seed != ""),
	)

	input := textinput.New()
	input.Prompt = promptStyle.Render(prompt)
	input.TextStyle = inputStyle
	input.Focus()

	m := model{
		ctxFunc:    func() context.Context { return ctx },
		input:      input,
		logger:     logger,
		table:      new(lang.Table),
		historyIdx: -1,
	}

	if seed != "" {
		m.addDeclarations(seed)
	}

	_, err = tea.NewProgram(&m, tea.WithContext(ctx)).Run()

	return err
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.clearSuggestions()

		return m, nil

	case tea.KeyEnter:
		m.submit(strings.TrimSpace(m.input.Value()))
		m.input.SetValue("")
		m.clearSuggestions()

		if m.quitting {
			return m, tea.Quit
		}

		return m, nil

	case tea.KeyTab, tea.KeyShiftTab:
		m.cycleSuggestion(key.Type == tea.KeyShiftTab)

		return m, nil

	case tea.KeySpace:
		if len(m.matches) > 0 {
			m.acceptSuggestion()

			return m, nil
		}

	case tea.KeyUp, tea.KeyDown:
		m.navigateHistory(key.Type == tea.KeyUp)

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()

	return m, cmd
}

// View implements tea.Model.
func (m *model) View() string {
	var b strings.Builder

	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if m.quitting {
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteByte('\n')

	if len(m.matches) > 0 {
		parts := make([]string, 0, len(m.matches))

		for i, match := range m.matches {
			style := suggestionStyle
			if i == m.suggIdx {
				style = selectedStyle
			}

			parts = append(parts, style.Render(match.Str))
		}

		b.WriteString(hintStyle.Render("  complete: "))
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	}

	return b.String()
}

// submit processes one input line.
func (m *model) submit(line string) {
	if line == "" {
		return
	}

	m.history = append(m.history, line)
	m.historyIdx = -1

	m.echo(promptStyle.Render(prompt) + inputStyle.Render(line))

	switch {
	case strings.HasPrefix(line, ":"):
		m.command(strings.TrimPrefix(line, ":"))

	case strings.HasPrefix(line, lang.KeywordLet+" "):
		m.addDeclarations(line)

	default:
		m.expand(line)
	}
}

// command dispatches a session command.
func (m *model) command(name string) {
	switch strings.TrimSpace(name) {
	case "help":
		m.echo(hintStyle.Render(helpMessage()))

	case "vars":
		if m.table.Len() == 0 {
			m.echo(hintStyle.Render("  no variables declared"))

			return
		}

		for name, variants := range m.table.All() {
			m.echo(resultStyle.Render(
				fmt.Sprintf("  %s = %q", name, variants),
			))
		}

	case "clear":
		m.transcript = nil

	case "reset":
		m.decls = nil
		m.table = new(lang.Table)
		m.echo(hintStyle.Render("  declarations discarded"))

	case "quit", "exit":
		m.quitting = true

	default:
		m.echo(errorStyle.Render("  unknown command (try :help)"))
	}
}

// addDeclarations parses new declaration source atop the accumulated
// session declarations. The whole declaration history is reparsed so
// references resolve exactly as they would in a file.
func (m *model) addDeclarations(src string) {
	decls := append(m.decls[:len(m.decls):len(m.decls)], src)

	tokens, err := lang.Lex(strings.Join(decls, "\n"))
	if err != nil {
		m.fail(err)

		return
	}

	template, err := lang.Parse(m.ctxFunc(), tokens,
		lang.WithLogger(m.logger),
	)
	if err != nil {
		m.fail(err)

		return
	}

	if len(template.Body) > 0 {
		m.echo(errorStyle.Render("  incomplete declaration"))

		return
	}

	m.decls = decls
	m.table = template.Table
}

// expand treats line as a template body and prints its expansion.
func (m *model) expand(line string) {
	tokens, err := lang.Lex(line)
	if err != nil {
		m.fail(err)

		return
	}

	out := lang.Duplicate(lang.Serialize(tokens), m.table)

	for _, unresolved := range m.table.Unresolved(out) {
		m.echo(hintStyle.Render("  unresolved: " + unresolved))
	}

	m.echo(resultStyle.Render(out))
}

func (m *model) echo(line string) {
	m.transcript = append(m.transcript, line)
}

func (m *model) fail(err error) {
	m.echo(errorStyle.Render("  " + err.Error()))
}

// refreshSuggestions recomputes fuzzy completion candidates for the
// *reference under the cursor.
func (m *model) refreshSuggestions() {
	value := m.input.Value()
	pos := m.input.Position()

	start := strings.LastIndexByte(value[:pos], lang.SigilRef)
	if start < 0 || strings.ContainsAny(value[start:pos], " \t") {
		m.clearSuggestions()

		return
	}

	partial := value[start+1 : pos]

	names := make([]string, 0, m.table.Len())
	for _, name := range m.table.Names() {
		names = append(names, strings.TrimPrefix(name, string(lang.SigilRef)))
	}

	matches := fuzzy.Find(partial, names)
	if partial == "" {
		matches = matches[:0]
		for i, name := range names {
			matches = append(matches, fuzzy.Match{Str: name, Index: i})
		}
	}

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	m.matches = matches
	m.wordStart = start
	m.suggIdx = 0
}

func (m *model) cycleSuggestion(reverse bool) {
	if len(m.matches) == 0 {
		return
	}

	if reverse {
		m.suggIdx = (m.suggIdx + len(m.matches) - 1) % len(m.matches)
	} else {
		m.suggIdx = (m.suggIdx + 1) % len(m.matches)
	}
}

// acceptSuggestion replaces the partial *reference with the selected
// candidate.
func (m *model) acceptSuggestion() {
	if m.suggIdx >= len(m.matches) {
		return
	}

	value := m.input.Value()
	pos := m.input.Position()
	completed := value[:m.wordStart+1] + m.matches[m.suggIdx].Str

	m.input.SetValue(completed + value[pos:])
	m.input.SetCursor(len(completed))
	m.clearSuggestions()
}

func (m *model) clearSuggestions() {
	m.matches = nil
	m.suggIdx = 0
}

// navigateHistory recalls earlier input lines.
func (m *model) navigateHistory(up bool) {
	if len(m.history) == 0 {
		return
	}

	switch {
	case up && m.historyIdx == -1:
		m.historyIdx = len(m.history) - 1

	case up && m.historyIdx > 0:
		m.historyIdx--

	case !up && m.historyIdx >= 0 && m.historyIdx < len(m.history)-1:
		m.historyIdx++

	case !up:
		m.historyIdx = -1
		m.input.SetValue("")

		return

	default:
		return
	}

	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}
