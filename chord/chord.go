// Package chord groups chord voicings by the pitch classes they use.
package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/note"
)

// CreateChordKey returns the sorted, de-duplicated ring indices of notes
// joined by "-", so "E G C" and "C E G E" both give "0-4-7". Either
// spelling is accepted. Names outside both tables are ignored.
func CreateChordKey(notes model.Notes) string {
	seen := make(map[int]bool)
	var indices []int
	sharp := note.Names(true)
	for _, n := range notes {
		i, ok := note.IndexOf(sharp, note.Respell(n, true))
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		indices = append(indices, i)
	}
	sort.Ints(indices)

	var res string
	for i, idx := range indices {
		res += fmt.Sprintf("%v", idx)
		if i < len(indices)-1 {
			res += "-"
		}
	}
	return res
}

type Shape struct {
	Key   string
	Notes model.Notes // first voicing seen with this key
	Count int
}

// Shapes tallies the chord sequences of progressions by key, most used
// first. Progressions without recognizable chord notes are skipped.
func Shapes(progressions []model.Progression) []Shape {
	byKey := make(map[string]*Shape)
	var order []string
	for _, p := range progressions {
		key := CreateChordKey(p.ChordNotes)
		if key == "" {
			continue
		}
		s, ok := byKey[key]
		if !ok {
			s = &Shape{Key: key, Notes: append(model.Notes{}, p.ChordNotes...)}
			byKey[key] = s
			order = append(order, key)
		}
		s.Count++
	}

	res := make([]Shape, 0, len(order))
	for _, key := range order {
		res = append(res, *byKey[key])
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Count > res[j].Count
	})
	return res
}
