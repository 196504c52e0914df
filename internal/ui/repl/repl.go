// Package repl provides the interactive slash-command prompt: a bubbletea
// program that renders live suggestions while typing and submits completed
// commands through the wired application.
package repl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/relay-tools/slashcmd/internal/command"
	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/ui/style"
)

// maxVisibleSuggestions caps the dropdown height.
const maxVisibleSuggestions = 8

// SchemaReloaded notifies the repl that the command schema changed on disk.
// Send it through the running program after swapping the schema source.
type SchemaReloaded struct{}

// submitResult carries the outcome of one submission back into the model.
type submitResult struct {
	command  string
	callPath string
	markdown string
	err      error
}

// Model is the repl's bubbletea model.
type Model struct {
	app    *domain.Application
	cc     domain.CallContext
	parser *command.Parser

	input       textinput.Model
	suggestions []command.Suggestion
	selected    int

	transcript []string
	width      int
	submitting bool
	quitting   bool
}

// New creates a repl model over the wired application. The call context is
// attached to every composed call.
func New(app *domain.Application, cc domain.CallContext) Model {
	input := textinput.New()
	input.Placeholder = "/command (Tab completes, Enter runs, Ctrl+C quits)"
	input.Prompt = style.Prompt("> ")
	input.Focus()

	m := Model{
		app:   app,
		cc:    cc,
		input: input,
	}
	m.resetParser()
	return m
}

// resetParser starts a fresh edit session so cached forms are refetched.
func (m *Model) resetParser() {
	m.parser = command.NewParser(
		m.app.Schema,
		m.app.Client,
		m.app.Users,
		m.app.Channels,
		m.cc,
		command.WithLogger(m.app.Logger),
	)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case SchemaReloaded:
		m.resetParser()
		m.transcript = append(m.transcript, style.Muted("schema reloaded"))
		m.refreshSuggestions()
		return m, nil

	case submitResult:
		m.submitting = false
		m.transcript = append(m.transcript, style.Prompt("> ")+msg.command)
		if msg.err != nil {
			m.transcript = append(m.transcript, style.Error(msg.err.Error()))
		} else if msg.markdown != "" {
			m.transcript = append(m.transcript, msg.markdown)
		}
		m.recordHistory(msg)
		m.resetParser()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyUp:
		if len(m.suggestions) > 0 {
			m.selected--
			if m.selected < 0 {
				m.selected = len(m.suggestions) - 1
			}
		}
		return m, nil

	case tea.KeyDown:
		if len(m.suggestions) > 0 {
			m.selected = (m.selected + 1) % len(m.suggestions)
		}
		return m, nil

	case tea.KeyTab:
		m.applySelected()
		return m, nil

	case tea.KeyEnter:
		return m.handleEnter()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()
	return m, cmd
}

// applySelected replaces the input with the selected suggestion's full
// command text. Suggestions always carry the complete line, so no word
// splicing is needed here.
func (m *Model) applySelected() {
	if m.selected >= len(m.suggestions) {
		return
	}
	complete := m.suggestions[m.selected].Complete
	if complete == "" || complete == m.input.Value() {
		return
	}
	m.input.SetValue(complete)
	m.input.CursorEnd()
	m.refreshSuggestions()
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.submitting {
		return m, nil
	}
	if text == "exit" || text == "quit" {
		m.quitting = true
		return m, tea.Quit
	}

	m.submitting = true
	m.input.Reset()
	m.suggestions = nil
	m.selected = 0
	return m, m.submitCmd(text)
}

// submitCmd composes and performs the call off the update loop.
func (m Model) submitCmd(text string) tea.Cmd {
	parser := m.parser
	client := m.app.Client
	return func() tea.Msg {
		req, err := parser.ComposeCallFromCommand(context.Background(), text)
		if err != nil {
			return submitResult{command: text, err: err}
		}

		resp, err := client.PerformCall(context.Background(), domain.CallTypeSubmit, *req)
		if err != nil {
			return submitResult{command: text, callPath: req.Call.Path, err: err}
		}
		if resp.Type == domain.CallResponseTypeError {
			return submitResult{command: text, callPath: req.Call.Path, err: errors.New(resp.Error)}
		}
		return submitResult{command: text, callPath: req.Call.Path, markdown: resp.Markdown}
	}
}

func (m *Model) recordHistory(res submitResult) {
	if m.app.History == nil {
		return
	}

	entry := domain.HistoryEntry{
		Command:   res.command,
		CallPath:  res.callPath,
		Response:  res.markdown,
		Succeeded: res.err == nil,
	}
	if res.err != nil {
		entry.Response = res.err.Error()
	}
	if err := m.app.History.Insert(entry); err != nil {
		m.app.Logger.Warn("repl: history insert failed: %v", err)
	}
}

// refreshSuggestions recomputes the dropdown for the current input. Only
// slash-prefixed input produces suggestions.
func (m *Model) refreshSuggestions() {
	value := m.input.Value()
	if !strings.HasPrefix(value, "/") {
		m.suggestions = nil
		m.selected = 0
		return
	}

	m.suggestions = m.parser.GetSuggestions(context.Background(), value)
	if m.selected >= len(m.suggestions) {
		m.selected = 0
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString(style.Muted("running..."))
		b.WriteString("\n")
		return b.String()
	}

	for i, s := range m.suggestions {
		if i >= maxVisibleSuggestions {
			b.WriteString(style.Muted(fmt.Sprintf("  ... %d more", len(m.suggestions)-maxVisibleSuggestions)))
			b.WriteString("\n")
			break
		}
		b.WriteString(m.renderSuggestion(s, i == m.selected))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderSuggestion(s command.Suggestion, selected bool) string {
	label := s.Suggestion
	if s.IconData == command.IconError {
		label = style.Error(label)
	}

	line := "  " + label
	if s.Hint != "" {
		line += " " + style.Hint(s.Hint)
	}
	if s.Description != "" {
		line += "  " + style.Muted(s.Description)
	}

	if selected {
		return style.Selected(line)
	}
	return line
}
