package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/fifths/app"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/storage"
	"github.com/jsphweid/fifths/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	return New(app.New(store.New(storage.NewMemory(), "progressions"), true))
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestBuildProgressionWithKeys(t *testing.T) {
	m := newModel(t)

	// melody: C, E
	press(m, "enter", "right", "right", "right", "right", "enter")
	// chord: C
	press(m, "tab", "enter", "c")

	ps := m.app.State().Progressions
	require.Len(t, ps, 1)
	assert.Equal(t, model.Notes{"C", "E"}, ps[0].MelodyNotes)
	assert.Equal(t, model.Notes{"C"}, ps[0].ChordNotes)
	assert.Contains(t, m.View(), "melody 1:C 2:E")
}

func TestIncompleteCommitShowsHint(t *testing.T) {
	m := newModel(t)
	press(m, "enter", "c")

	assert.Empty(t, m.app.State().Progressions)
	assert.Contains(t, m.status, "needs melody and chord")
}

func TestEditAndDeleteFromList(t *testing.T) {
	m := newModel(t)
	require.NoError(t, m.app.AddProgression(model.Notes{"C"}, model.Notes{"C"}))
	require.NoError(t, m.app.AddProgression(model.Notes{"D"}, model.Notes{"D"}))

	press(m, "tab", "tab", "down", "enter")
	assert.Equal(t, 1, *m.app.State().Session.EditIndex)
	assert.Contains(t, m.View(), "Save Changes")

	press(m, "esc", "d")
	ps := m.app.State().Progressions
	require.Len(t, ps, 1)
	assert.Equal(t, model.Notes{"C"}, ps[0].MelodyNotes)
	assert.Equal(t, 0, m.listCursor)
}

func TestClearNeedsConfirmation(t *testing.T) {
	m := newModel(t)
	require.NoError(t, m.app.AddProgression(model.Notes{"C"}, model.Notes{"C"}))

	press(m, "X", "n")
	assert.Len(t, m.app.State().Progressions, 1)

	press(m, "X")
	assert.Contains(t, m.View(), "Delete all progressions?")
	press(m, "y")
	assert.Empty(t, m.app.State().Progressions)
}

func TestClearResetsSessionWithEmptyList(t *testing.T) {
	m := newModel(t)
	press(m, "enter")
	require.Equal(t, model.Notes{"C"}, m.app.State().Session.Melody)

	press(m, "X", "y")
	assert.Empty(t, m.app.State().Session.Melody)
	assert.Equal(t, "Cleared all progressions", m.status)
}

func TestDeleteWithoutProgressions(t *testing.T) {
	m := newModel(t)
	press(m, "d")
	assert.Equal(t, "No progression to delete", m.status)
}

func TestCursorFollowsShrinkingList(t *testing.T) {
	m := newModel(t)
	require.NoError(t, m.app.AddProgression(model.Notes{"C"}, model.Notes{"C"}))
	require.NoError(t, m.app.AddProgression(model.Notes{"D"}, model.Notes{"D"}))
	press(m, "down")
	require.Equal(t, 1, m.listCursor)

	// changes made outside the key handler still move the cursor
	require.NoError(t, m.app.Delete(1))
	assert.Equal(t, 0, m.listCursor)
}

func TestNotationToggle(t *testing.T) {
	m := newModel(t)
	press(m, "n")
	assert.False(t, m.app.State().UseSharp)
	assert.Contains(t, m.View(), "Db")
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
