// Package tui is a terminal front end for building and editing
// progressions.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/jsphweid/fifths/app"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/note"
	"github.com/jsphweid/fifths/state"
)

type focus int

const (
	focusMelody focus = iota
	focusChord
	focusList
)

type Model struct {
	app *app.App

	focus        focus
	melodyCursor int
	chordCursor  int
	listCursor   int
	confirmClear bool
	status       string
	width        int
	quitting     bool
}

func New(a *app.App) *Model {
	m := &Model{app: a}
	a.OnChange(m.clampList)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		key := msg.String()
		if m.confirmClear {
			m.confirmClear = false
			if key == "y" {
				m.run("Cleared all progressions", m.app.ClearAll())
			} else {
				m.status = "Clear cancelled"
			}
			return m, nil
		}

		switch key {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.focus = (m.focus + 1) % 3
		case "shift+tab":
			m.focus = (m.focus + 2) % 3
		case "left", "h":
			m.movePicker(-1)
		case "right", "l":
			m.movePicker(1)
		case "up", "k":
			if m.listCursor > 0 {
				m.listCursor--
			}
		case "down", "j":
			if m.listCursor < len(m.app.State().Progressions)-1 {
				m.listCursor++
			}
		case "enter", " ":
			m.activate()
		case "c":
			label := m.app.CommitLabel()
			before := len(m.app.State().Progressions)
			err := m.app.Commit()
			if err == nil && label == state.AddLabel && len(m.app.State().Progressions) == before {
				m.status = "A new progression needs melody and chord notes"
				return m, nil
			}
			m.run(label+" done", err)
		case "e":
			m.run(fmt.Sprintf("Editing progression %d", m.listCursor), m.app.BeginEdit(m.listCursor))
		case "d", "x":
			if _, ok := m.selected(); !ok {
				m.status = "No progression to delete"
				return m, nil
			}
			m.run(fmt.Sprintf("Deleted progression %d", m.listCursor), m.app.Delete(m.listCursor))
		case "esc":
			m.run("Edit cancelled", m.app.CancelEdit())
		case "n":
			useSharp := !m.app.State().UseSharp
			m.run("Notation: "+note.NotationName(useSharp), m.app.SetNotation(useSharp))
		case "X":
			m.confirmClear = true
		}
	}
	return m, nil
}

// movePicker moves the focused picker and selects the note under it.
func (m *Model) movePicker(delta int) {
	names := m.app.Names()
	switch m.focus {
	case focusMelody:
		m.melodyCursor = (m.melodyCursor + delta + note.Count) % note.Count
		m.run("", m.app.SelectMelody(names[m.melodyCursor]))
	case focusChord:
		m.chordCursor = (m.chordCursor + delta + note.Count) % note.Count
		m.run("", m.app.SelectChord(names[m.chordCursor]))
	}
}

func (m *Model) activate() {
	names := m.app.Names()
	switch m.focus {
	case focusMelody:
		if err := m.app.SelectMelody(names[m.melodyCursor]); err != nil {
			m.run("", err)
			return
		}
		m.run("Added melody note "+string(names[m.melodyCursor]), m.app.AddMelodyNote())
	case focusChord:
		if err := m.app.SelectChord(names[m.chordCursor]); err != nil {
			m.run("", err)
			return
		}
		m.run("Added chord note "+string(names[m.chordCursor]), m.app.AddChordNote())
	case focusList:
		m.run(fmt.Sprintf("Editing progression %d", m.listCursor), m.app.BeginEdit(m.listCursor))
	}
}

// clampList keeps the list cursor on an existing row after the list shrinks.
func (m *Model) clampList(s model.State) {
	if n := len(s.Progressions); m.listCursor >= n && n > 0 {
		m.listCursor = n - 1
	} else if n == 0 {
		m.listCursor = 0
	}
}

func (m *Model) run(ok string, err error) {
	if err != nil {
		log.Error("Action failed", "err", err)
		m.status = "Error: " + err.Error()
		return
	}
	if ok != "" {
		m.status = ok
	}
}

func (m *Model) selected() (model.Progression, bool) {
	ps := m.app.State().Progressions
	if m.listCursor < 0 || m.listCursor >= len(ps) {
		return model.Progression{}, false
	}
	return ps[m.listCursor], true
}

// Run starts the program on the terminal.
func Run(a *app.App) error {
	_, err := tea.NewProgram(New(a), tea.WithAltScreen()).Run()
	return err
}
