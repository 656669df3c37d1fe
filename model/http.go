package model

type NoteRequestBody struct {
	Note NoteName `json:"note"`
}

type NotationRequestBody struct {
	Notation string `json:"notation"`
}

type SessionResponse struct {
	SelectedMelody NoteName `json:"selectedMelody"`
	SelectedChord  NoteName `json:"selectedChord"`
	MelodyNotes    Notes    `json:"melodyNotes"`
	ChordNotes     Notes    `json:"chordNotes"`
	EditIndex      *int     `json:"editIndex"`
	CommitLabel    string   `json:"commitLabel"`
}

type StateResponse struct {
	Notation     string          `json:"notation"`
	NoteNames    Notes           `json:"noteNames"`
	Progressions []Progression   `json:"progressions"`
	Session      SessionResponse `json:"session"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
