// Package state holds the pure transitions of the interaction layer. Each
// takes the old state and returns a new one plus the persistence effect the
// caller has to perform. Input slices are never modified.
package state

import (
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/util"
)

type Effect int

const (
	None Effect = iota
	// Write persists the whole progression list.
	Write
	// Remove erases the persisted key.
	Remove
)

func (e Effect) String() string {
	switch e {
	case Write:
		return "write"
	case Remove:
		return "remove"
	}
	return "none"
}

type Transition func(model.State) (model.State, Effect)

const (
	AddLabel  = "Add Progression"
	SaveLabel = "Save Changes"
)

func CommitLabel(s model.State) string {
	if s.Session.Editing() {
		return SaveLabel
	}
	return AddLabel
}

func SelectMelody(n model.NoteName) Transition {
	return func(s model.State) (model.State, Effect) {
		s.Session.SelectedMelody = n
		return s, None
	}
}

func SelectChord(n model.NoteName) Transition {
	return func(s model.State) (model.State, Effect) {
		s.Session.SelectedChord = n
		return s, None
	}
}

func AddMelodyNote(s model.State) (model.State, Effect) {
	if s.Session.SelectedMelody == "" {
		return s, None
	}
	s.Session.Melody = util.Append(s.Session.Melody, s.Session.SelectedMelody)
	s.Session.SelectedMelody = ""
	return s, None
}

func AddChordNote(s model.State) (model.State, Effect) {
	if s.Session.SelectedChord == "" {
		return s, None
	}
	s.Session.Chord = util.Append(s.Session.Chord, s.Session.SelectedChord)
	s.Session.SelectedChord = ""
	return s, None
}

// Commit saves the session. In edit mode the progression at the edit index
// is replaced unconditionally; otherwise a new progression is appended only
// when both sequences have notes. The session's sequences are reset either way.
func Commit(s model.State) (model.State, Effect) {
	effect := None
	p := model.Progression{
		MelodyNotes: append(model.Notes{}, s.Session.Melody...),
		ChordNotes:  append(model.Notes{}, s.Session.Chord...),
	}

	if s.Session.Editing() {
		i := *s.Session.EditIndex
		if util.InRange(i, len(s.Progressions)) {
			progressions := cloneAll(s.Progressions)
			progressions[i] = p
			s.Progressions = progressions
			effect = Write
		}
	} else if p.IsComplete() {
		s.Progressions = util.Append(s.Progressions, p)
		effect = Write
	}

	s.Session.Melody = model.Notes{}
	s.Session.Chord = model.Notes{}
	s.Session.EditIndex = nil
	return s, effect
}

// BeginEdit loads progression i into the session. Invalid indices leave the
// state untouched.
func BeginEdit(i int) Transition {
	return func(s model.State) (model.State, Effect) {
		if !util.InRange(i, len(s.Progressions)) {
			return s, None
		}
		p := s.Progressions[i].Clone()
		s.Session.Melody = p.MelodyNotes
		s.Session.Chord = p.ChordNotes
		s.Session.EditIndex = util.Ptr(i)
		return s, None
	}
}

func CancelEdit(s model.State) (model.State, Effect) {
	s.Session.Melody = model.Notes{}
	s.Session.Chord = model.Notes{}
	s.Session.EditIndex = nil
	return s, None
}

// Delete drops progression i. An edit in progress keeps pointing at the
// same progression, or is cancelled if that progression is the one removed.
func Delete(i int) Transition {
	return func(s model.State) (model.State, Effect) {
		if !util.InRange(i, len(s.Progressions)) {
			return s, None
		}
		s.Progressions = util.RemoveAt(s.Progressions, i)

		if s.Session.Editing() {
			switch edit := *s.Session.EditIndex; {
			case edit == i:
				s, _ = CancelEdit(s)
			case edit > i:
				s.Session.EditIndex = util.Ptr(edit - 1)
			}
		}
		return s, Write
	}
}

func ClearAll(s model.State) (model.State, Effect) {
	s.Progressions = []model.Progression{}
	s.Session = model.Session{Melody: model.Notes{}, Chord: model.Notes{}}
	return s, Remove
}

// SetNotation only switches labels. Stored names are not rewritten, so a
// pending selection in the old spelling is dropped.
func SetNotation(useSharp bool) Transition {
	return func(s model.State) (model.State, Effect) {
		if s.UseSharp == useSharp {
			return s, None
		}
		s.UseSharp = useSharp
		s.Session.SelectedMelody = ""
		s.Session.SelectedChord = ""
		return s, None
	}
}

func cloneAll(ps []model.Progression) []model.Progression {
	res := make([]model.Progression, len(ps))
	copy(res, ps)
	return res
}
