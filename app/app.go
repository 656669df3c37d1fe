// Package app is the single owner of the interaction state. Every operation
// runs a pure transition, persists synchronously when the progression list
// changed, then notifies listeners so they can redraw.
package app

import (
	"github.com/charmbracelet/log"
	"github.com/jsphweid/fifths/diagram"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/note"
	"github.com/jsphweid/fifths/state"
	"github.com/jsphweid/fifths/store"
	"github.com/jsphweid/fifths/util"
)

type App struct {
	state     model.State
	store     *store.Store
	listeners []func(model.State)
}

// New loads whatever the store holds. Unreadable data starts an empty list.
func New(s *store.Store, useSharp bool) *App {
	return &App{
		state: model.NewState(s.Load(), useSharp),
		store: s,
	}
}

// OnChange registers a callback run after every transition.
func (a *App) OnChange(fn func(model.State)) {
	a.listeners = append(a.listeners, fn)
}

func (a *App) State() model.State {
	return a.state
}

func (a *App) Names() model.Notes {
	return note.Names(a.state.UseSharp)
}

func (a *App) CommitLabel() string {
	return state.CommitLabel(a.state)
}

// Apply runs t. The in-memory state only advances once the effect has been
// persisted, so memory and storage never disagree.
func (a *App) Apply(t state.Transition) error {
	next, effect := t(a.state)

	switch effect {
	case state.Write:
		if err := a.store.Save(next.Progressions); err != nil {
			log.Error("Could not persist progressions", "err", err)
			return err
		}
	case state.Remove:
		if err := a.store.Clear(); err != nil {
			log.Error("Could not clear progressions", "err", err)
			return err
		}
	}

	a.state = next
	for _, fn := range a.listeners {
		fn(a.state)
	}
	return nil
}

func (a *App) SelectMelody(n model.NoteName) error {
	return a.Apply(state.SelectMelody(n))
}

func (a *App) SelectChord(n model.NoteName) error {
	return a.Apply(state.SelectChord(n))
}

func (a *App) AddMelodyNote() error {
	return a.Apply(state.AddMelodyNote)
}

func (a *App) AddChordNote() error {
	return a.Apply(state.AddChordNote)
}

func (a *App) Commit() error {
	return a.Apply(state.Commit)
}

func (a *App) BeginEdit(i int) error {
	return a.Apply(state.BeginEdit(i))
}

func (a *App) CancelEdit() error {
	return a.Apply(state.CancelEdit)
}

func (a *App) Delete(i int) error {
	return a.Apply(state.Delete(i))
}

func (a *App) ClearAll() error {
	return a.Apply(state.ClearAll)
}

func (a *App) SetNotation(useSharp bool) error {
	return a.Apply(state.SetNotation(useSharp))
}

// AddProgression builds and commits a new progression in one go.
func (a *App) AddProgression(melody, chord model.Notes) error {
	return a.Apply(func(s model.State) (model.State, state.Effect) {
		s, _ = state.CancelEdit(s)
		s.Session.Melody = append(model.Notes{}, melody...)
		s.Session.Chord = append(model.Notes{}, chord...)
		return state.Commit(s)
	})
}

// ReplaceProgression is BeginEdit followed by a save with new sequences.
// An invalid index changes nothing.
func (a *App) ReplaceProgression(i int, melody, chord model.Notes) error {
	return a.Apply(func(s model.State) (model.State, state.Effect) {
		edited, _ := state.BeginEdit(i)(s)
		if !edited.Session.Editing() || *edited.Session.EditIndex != i {
			return s, state.None
		}
		edited.Session.Melody = append(model.Notes{}, melody...)
		edited.Session.Chord = append(model.Notes{}, chord...)
		return state.Commit(edited)
	})
}

// Diagrams renders every stored progression with the active spelling.
func (a *App) Diagrams() []diagram.Diagram {
	names := a.Names()
	res := make([]diagram.Diagram, len(a.state.Progressions))
	for i, p := range a.state.Progressions {
		res[i] = diagram.RenderProgression(p, names)
	}
	return res
}

// Diagram renders progression i. The second return is false for a bad index.
func (a *App) Diagram(i int) (diagram.Diagram, bool) {
	if !util.InRange(i, len(a.state.Progressions)) {
		return diagram.Diagram{}, false
	}
	return diagram.RenderProgression(a.state.Progressions[i], a.Names()), true
}
