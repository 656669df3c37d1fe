package model

// NoteName is the spelling of one of the 12 pitch classes, e.g. "C#" or "Db".
type NoteName string

type Notes = []NoteName

// Progression is a melody and a chord voicing. Order matters in both and
// repeats are allowed.
type Progression struct {
	MelodyNotes Notes `json:"melodyNotes"`
	ChordNotes  Notes `json:"chordNotes"`
}

func (p Progression) Clone() Progression {
	return Progression{
		MelodyNotes: append(Notes{}, p.MelodyNotes...),
		ChordNotes:  append(Notes{}, p.ChordNotes...),
	}
}

func (p Progression) IsComplete() bool {
	return len(p.MelodyNotes) > 0 && len(p.ChordNotes) > 0
}
