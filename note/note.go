package note

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsphweid/fifths/model"
)

const Count = 12

var Sharp = [Count]model.NoteName{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var Flat = [Count]model.NoteName{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// Names returns a copy of the active spelling table.
func Names(useSharp bool) model.Notes {
	table := Flat
	if useSharp {
		table = Sharp
	}
	res := make(model.Notes, Count)
	copy(res, table[:])
	return res
}

// Angle is the position of ring index i, in radians, independent of spelling.
func Angle(i int) float64 {
	return float64(i) * 2 * math.Pi / Count
}

func Angles() []float64 {
	res := make([]float64, Count)
	for i := range res {
		res[i] = Angle(i)
	}
	return res
}

// IndexOf looks a name up in the active table. Names from the other
// spelling (or garbage) are reported as missing rather than guessed.
func IndexOf(names model.Notes, n model.NoteName) (int, bool) {
	for i, name := range names {
		if name == n {
			return i, true
		}
	}
	return -1, false
}

// Respell maps a name to the same pitch class in the requested spelling.
// Unknown names are returned unchanged.
func Respell(n model.NoteName, toSharp bool) model.NoteName {
	for i := 0; i < Count; i++ {
		if Sharp[i] == n || Flat[i] == n {
			if toSharp {
				return Sharp[i]
			}
			return Flat[i]
		}
	}
	return n
}

// Normalize resolves loosely typed input ("c#", " eb ") against the active
// table. The second return is false when nothing matches.
func Normalize(names model.Notes, raw string) (model.NoteName, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.NewReplacer("♯", "#", "♭", "b").Replace(raw)
	if raw == "" {
		return "", false
	}
	for _, name := range names {
		if strings.EqualFold(string(name), raw) {
			return name, true
		}
	}
	return "", false
}

// ParseList splits "C,E,G" into names from the active table.
func ParseList(names model.Notes, raw string) (model.Notes, error) {
	res := model.Notes{}
	if strings.TrimSpace(raw) == "" {
		return res, nil
	}
	for _, part := range strings.Split(raw, ",") {
		n, ok := Normalize(names, part)
		if !ok {
			return nil, fmt.Errorf("unknown note %q", strings.TrimSpace(part))
		}
		res = append(res, n)
	}
	return res, nil
}

func ParseNotation(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sharp", "#", "♯":
		return true, nil
	case "flat", "b", "♭":
		return false, nil
	}
	return false, fmt.Errorf("unknown notation %q, expected sharp or flat", s)
}

func NotationName(useSharp bool) string {
	if useSharp {
		return "sharp"
	}
	return "flat"
}
