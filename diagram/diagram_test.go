package diagram

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/note"
	"github.com/stretchr/testify/assert"
)

func assertPoint(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestAtPutsIndexZeroAtTheTop(t *testing.T) {
	assertPoint(t, Point{X: 0, Y: -150}, At(0, 150))
	assertPoint(t, Point{X: 150, Y: 0}, At(3, 150))
	assertPoint(t, Point{X: 0, Y: 150}, At(6, 150))
	assertPoint(t, Point{X: -150, Y: 0}, At(9, 150))
}

func TestRenderCMajorScenario(t *testing.T) {
	names := note.Names(true)
	d := Render(model.Notes{"C", "E", "G"}, model.Notes{"C", "E"}, names)

	assert := assert.New(t)
	assert.Len(d.Labels, 12)
	assert.Len(d.Melody, 3)
	assert.Len(d.Chord, 2)
	assert.Len(d.Spokes, 2)
	assert.Len(d.Tritones, 12)

	for i, n := range []model.NoteName{"C", "E", "G"} {
		m := d.Melody[i]
		idx, _ := note.IndexOf(names, n)
		assert.Equal(i+1, m.Index)
		assert.Equal(n, m.Note)
		assert.Equal(constants.MelodyColor, m.Color)
		assert.InDelta(float64(constants.MelodyRadius), math.Hypot(m.X, m.Y), 1e-9)
		assertPoint(t, At(idx, constants.MelodyRadius), m.Point)
	}

	for i, n := range []model.NoteName{"C", "E"} {
		m := d.Chord[i]
		idx, _ := note.IndexOf(names, n)
		assert.Equal(i+1, m.Index)
		assert.InDelta(float64(constants.ChordRadius), math.Hypot(m.X, m.Y), 1e-9)
		assertPoint(t, At(idx, constants.ChordRadius), m.Point)

		spoke := d.Spokes[i]
		assert.Equal("red", spoke.Color)
		assert.False(spoke.Dashed)
		assertPoint(t, At(idx, constants.RingRadius), spoke.From)
		assertPoint(t, Point{}, spoke.To)
	}
}

func TestTritonesAreAStaticGrid(t *testing.T) {
	empty := Render(nil, nil, note.Names(true))
	full := Render(model.Notes{"C", "D"}, model.Notes{"F#"}, note.Names(false))

	assert.Empty(t, cmp.Diff(empty.Tritones, full.Tritones))
	for i, l := range empty.Tritones {
		assert.True(t, l.Dashed)
		assert.Equal(t, "gray", l.Color)
		assertPoint(t, At(i, constants.RingRadius), l.From)
		assertPoint(t, At((i+6)%12, constants.RingRadius), l.To)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	melody := model.Notes{"A", "A", "B"}
	chord := model.Notes{"D", "F#", "A"}
	names := note.Names(true)

	first := Render(melody, chord, names)
	second := Render(melody, chord, names)
	assert.Empty(t, cmp.Diff(first, second))
}

func TestRepeatedNotesGetDistinctIndices(t *testing.T) {
	d := Render(model.Notes{"G", "G"}, nil, note.Names(true))

	assert := assert.New(t)
	assert.Len(d.Melody, 2)
	assert.Equal(1, d.Melody[0].Index)
	assert.Equal(2, d.Melody[1].Index)
	assert.Equal(d.Melody[0].Point, d.Melody[1].Point)
}

func TestEmptySequencesContributeNothing(t *testing.T) {
	d := Render(model.Notes{}, nil, note.Names(true))

	assert := assert.New(t)
	assert.Empty(d.Melody)
	assert.Empty(d.Chord)
	assert.Empty(d.Spokes)
	assert.Len(d.Tritones, 12)
	assert.Len(d.Labels, 12)
}

func TestUnknownNamesAreSkipped(t *testing.T) {
	// flat spellings looked up against the sharp table
	d := Render(model.Notes{"Db", "C"}, model.Notes{"Eb"}, note.Names(true))

	assert := assert.New(t)
	assert.Len(d.Melody, 1)
	assert.Equal(model.NoteName("C"), d.Melody[0].Note)
	assert.Equal(2, d.Melody[0].Index)
	assert.Empty(d.Chord)
	assert.Empty(d.Spokes)
}

func TestNotationOnlyChangesLabels(t *testing.T) {
	sharp := Render(model.Notes{"C#"}, model.Notes{"D#"}, note.Names(true))
	flat := Render(model.Notes{"Db"}, model.Notes{"Eb"}, note.Names(false))

	assert := assert.New(t)
	assert.Equal(sharp.Melody[0].Point, flat.Melody[0].Point)
	assert.Equal(sharp.Chord[0].Point, flat.Chord[0].Point)
	assert.Equal(sharp.Spokes, flat.Spokes)
	assert.Equal(model.NoteName("C#"), sharp.Labels[1].Text)
	assert.Equal(model.NoteName("Db"), flat.Labels[1].Text)
}
