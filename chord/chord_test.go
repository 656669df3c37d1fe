package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/fifths/model"
	"github.com/stretchr/testify/assert"
)

func TestCreateChordKey(t *testing.T) {
	cases := []struct {
		notes model.Notes
		want  string
	}{
		{model.Notes{"C", "E", "G"}, "0-4-7"},
		{model.Notes{"G", "E", "C", "E"}, "0-4-7"},
		{model.Notes{"Db", "F", "Ab"}, "1-5-8"},
		{model.Notes{"C#", "F", "G#"}, "1-5-8"},
		{model.Notes{}, ""},
		{model.Notes{"D", "nope"}, "2"},
	}

	for _, c := range cases {
		name := fmt.Sprintf("key for %v", c.notes)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, CreateChordKey(c.notes))
		})
	}
}

func TestShapesMostUsedFirst(t *testing.T) {
	progressions := []model.Progression{
		{ChordNotes: model.Notes{"D", "F#", "A"}},
		{ChordNotes: model.Notes{"C", "E", "G"}},
		{ChordNotes: model.Notes{"G", "C", "E"}},
		{ChordNotes: model.Notes{}},
	}
	shapes := Shapes(progressions)

	assert := assert.New(t)
	assert.Len(shapes, 2)
	assert.Equal("0-4-7", shapes[0].Key)
	assert.Equal(2, shapes[0].Count)
	assert.Equal(model.Notes{"C", "E", "G"}, shapes[0].Notes)
	assert.Equal("2-6-9", shapes[1].Key)
}
