package state

import (
	"testing"

	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/util"
	"github.com/stretchr/testify/assert"
)

func progression(melody, chord string) model.Progression {
	return model.Progression{
		MelodyNotes: model.Notes{model.NoteName(melody)},
		ChordNotes:  model.Notes{model.NoteName(chord)},
	}
}

func threeProgressions() model.State {
	return model.NewState([]model.Progression{
		progression("C", "C"),
		progression("D", "D"),
		progression("E", "E"),
	}, true)
}

func TestAddNoteRequiresSelection(t *testing.T) {
	s := model.NewState(nil, true)
	next, effect := AddMelodyNote(s)

	assert := assert.New(t)
	assert.Equal(None, effect)
	assert.Empty(next.Session.Melody)

	next, _ = SelectMelody("E")(next)
	next, _ = AddMelodyNote(next)
	next, _ = SelectChord("G")(next)
	next, _ = AddChordNote(next)
	assert.Equal(model.Notes{"E"}, next.Session.Melody)
	assert.Equal(model.Notes{"G"}, next.Session.Chord)
	assert.Equal(model.NoteName(""), next.Session.SelectedMelody)
	assert.Equal(model.NoteName(""), next.Session.SelectedChord)
}

func TestCommitNewProgression(t *testing.T) {
	s := model.NewState(nil, true)
	s.Session.Melody = model.Notes{"C", "E", "G"}
	s.Session.Chord = model.Notes{"C", "E"}

	next, effect := Commit(s)

	assert := assert.New(t)
	assert.Equal(Write, effect)
	assert.Len(next.Progressions, 1)
	assert.Equal(model.Notes{"C", "E", "G"}, next.Progressions[0].MelodyNotes)
	assert.Empty(next.Session.Melody)
	assert.Empty(next.Session.Chord)
	assert.Nil(s.Progressions)
}

func TestCommitIncompleteNewProgressionIsDiscarded(t *testing.T) {
	s := threeProgressions()
	s.Session.Melody = model.Notes{"C"}

	next, effect := Commit(s)

	assert := assert.New(t)
	assert.Equal(None, effect)
	assert.Equal(s.Progressions, next.Progressions)
	assert.Empty(next.Session.Melody)
}

func TestCommitInEditModeOverwritesEvenWhenEmpty(t *testing.T) {
	s := threeProgressions()
	s, _ = BeginEdit(1)(s)
	assert.Equal(t, SaveLabel, CommitLabel(s))

	s.Session.Chord = model.Notes{}
	next, effect := Commit(s)

	assert := assert.New(t)
	assert.Equal(Write, effect)
	assert.Equal(model.Notes{"D"}, next.Progressions[1].MelodyNotes)
	assert.Empty(next.Progressions[1].ChordNotes)
	assert.False(next.Session.Editing())
	assert.Equal(AddLabel, CommitLabel(next))
}

func TestCommitDoesNotMutatePreviousState(t *testing.T) {
	s := threeProgressions()
	s, _ = BeginEdit(0)(s)
	s.Session.Melody = model.Notes{"B"}

	_, _ = Commit(s)
	assert.Equal(t, model.Notes{"C"}, s.Progressions[0].MelodyNotes)
}

func TestCommitWithStaleEditIndex(t *testing.T) {
	s := threeProgressions()
	s.Session.EditIndex = util.Ptr(9)
	s.Session.Melody = model.Notes{"C"}
	s.Session.Chord = model.Notes{"C"}

	next, effect := Commit(s)
	assert.Equal(t, None, effect)
	assert.Len(t, next.Progressions, 3)
	assert.False(t, next.Session.Editing())
}

func TestBeginEditInvalidIndex(t *testing.T) {
	s := threeProgressions()
	s.Session.Melody = model.Notes{"A"}

	for _, i := range []int{-1, 3} {
		next, effect := BeginEdit(i)(s)
		assert.Equal(t, None, effect)
		assert.Equal(t, s, next)
	}
}

func TestBeginEditCopiesSequences(t *testing.T) {
	s := threeProgressions()
	s, _ = BeginEdit(2)(s)
	s.Session.Melody[0] = "F"

	assert.Equal(t, model.Notes{"E"}, s.Progressions[2].MelodyNotes)
	assert.Equal(t, 2, *s.Session.EditIndex)
}

func TestDeleteShiftsLaterProgressions(t *testing.T) {
	s := threeProgressions()
	next, effect := Delete(0)(s)

	assert := assert.New(t)
	assert.Equal(Write, effect)
	assert.Len(next.Progressions, 2)
	assert.Equal(s.Progressions[1], next.Progressions[0])
	assert.Equal(s.Progressions[2], next.Progressions[1])
	assert.Len(s.Progressions, 3)
}

func TestDeleteInvalidIndex(t *testing.T) {
	s := threeProgressions()
	next, effect := Delete(5)(s)
	assert.Equal(t, None, effect)
	assert.Equal(t, s, next)
}

func TestDeleteKeepsEditIndexOnSameProgression(t *testing.T) {
	s := threeProgressions()
	s, _ = BeginEdit(2)(s)

	next, _ := Delete(0)(s)
	assert.Equal(t, 1, *next.Session.EditIndex)

	next, _ = Delete(1)(next)
	assert.False(t, next.Session.Editing())
	assert.Empty(t, next.Session.Melody)
}

func TestClearAll(t *testing.T) {
	s := threeProgressions()
	s, _ = BeginEdit(1)(s)
	s.Session.SelectedMelody = "C"

	next, effect := ClearAll(s)

	assert := assert.New(t)
	assert.Equal(Remove, effect)
	assert.Empty(next.Progressions)
	assert.False(next.Session.Editing())
	assert.Empty(next.Session.Melody)
	assert.Empty(next.Session.Chord)
	assert.Equal(model.NoteName(""), next.Session.SelectedMelody)
}

func TestSetNotationLeavesProgressionsAlone(t *testing.T) {
	s := threeProgressions()
	next, effect := SetNotation(false)(s)

	assert := assert.New(t)
	assert.Equal(None, effect)
	assert.False(next.UseSharp)
	assert.Equal(s.Progressions, next.Progressions)
}

func TestEffectString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "write", Write.String())
	assert.Equal(t, "remove", Remove.String())
}
