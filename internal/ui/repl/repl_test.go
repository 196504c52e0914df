package repl

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/relay-tools/slashcmd/internal/client"
	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/log"
)

type memHistory struct {
	entries []domain.HistoryEntry
}

func (h *memHistory) Insert(entry domain.HistoryEntry) error {
	h.entries = append(h.entries, entry)
	return nil
}

func (h *memHistory) List(domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	return h.entries, nil
}

func (h *memHistory) Close() error { return nil }

func newTestModel(t *testing.T) (Model, *memHistory) {
	t.Helper()

	sf, err := client.LoadEmbedded()
	require.NoError(t, err)
	fixture := client.NewFixture(sf)

	history := &memHistory{}
	app := &domain.Application{
		Schema:   fixture,
		Client:   fixture,
		Users:    fixture,
		Channels: fixture,
		History:  history,
		Logger:   log.NopLogger{},
	}
	return New(app, domain.CallContext{TeamID: "t-main", ChannelID: "c-town"}), history
}

func typeRunes(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestTypingShowsCommandSuggestions(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeRunes(t, m, "/ji")

	require.NotEmpty(t, m.suggestions)
	require.Equal(t, "jira", m.suggestions[0].Suggestion)
	require.Equal(t, "/jira", m.suggestions[0].Complete)
}

func TestNonSlashInputHasNoSuggestions(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeRunes(t, m, "hello")

	require.Empty(t, m.suggestions)
}

func TestTabAppliesSelectedSuggestion(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeRunes(t, m, "/ji")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)

	require.Equal(t, "/jira", m.input.Value())
}

func TestArrowKeysMoveSelection(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeRunes(t, m, "/jira issue ")
	require.GreaterOrEqual(t, len(m.suggestions), 2)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	require.Equal(t, 1, m.selected)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	require.Equal(t, 0, m.selected)

	// Up from the top wraps to the bottom.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	require.Equal(t, len(m.suggestions)-1, m.selected)
}

func TestEnterSubmitsAndRecordsHistory(t *testing.T) {
	m, history := newTestModel(t)

	m = typeRunes(t, m, "/jira issue create PLAT")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.submitting)
	require.Empty(t, m.input.Value())

	res, ok := cmd().(submitResult)
	require.True(t, ok)
	require.NoError(t, res.err)
	require.Equal(t, "/issue/create/submit", res.callPath)
	require.Contains(t, res.markdown, "Submitted")

	next, _ = m.Update(res)
	m = next.(Model)
	require.False(t, m.submitting)
	require.Len(t, history.entries, 1)
	require.True(t, history.entries[0].Succeeded)
	require.Equal(t, "/jira issue create PLAT", history.entries[0].Command)
	require.Equal(t, "/issue/create/submit", history.entries[0].CallPath)
}

func TestEnterWithInvalidCommandRecordsFailure(t *testing.T) {
	m, history := newTestModel(t)

	m = typeRunes(t, m, "/jira issue create")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)

	res, ok := cmd().(submitResult)
	require.True(t, ok)
	require.Error(t, res.err)

	next, _ = m.Update(res)
	m = next.(Model)
	require.Len(t, history.entries, 1)
	require.False(t, history.entries[0].Succeeded)
}

func TestEmptyEnterDoesNothing(t *testing.T) {
	m, history := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.Nil(t, cmd)
	require.Empty(t, history.entries)
}

func TestQuitWords(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeRunes(t, m, "exit")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestSchemaReloadedResetsSession(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.parser

	next, _ := m.Update(SchemaReloaded{})
	m = next.(Model)

	require.NotSame(t, before, m.parser)
	require.NotEmpty(t, m.transcript)
}

func TestViewShowsSuggestions(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeRunes(t, m, "/ji")
	view := m.View()

	require.Contains(t, view, "jira")
}
