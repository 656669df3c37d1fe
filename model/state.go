package model

// Session is the in-progress edit. It is never persisted.
type Session struct {
	SelectedMelody NoteName
	SelectedChord  NoteName
	Melody         Notes
	Chord          Notes

	// nil means a new progression is being built
	EditIndex *int
}

func (s Session) Editing() bool {
	return s.EditIndex != nil
}

// State is everything the interaction layer owns. Only Progressions is
// durable.
type State struct {
	Progressions []Progression
	Session      Session
	UseSharp     bool
}

func NewState(progressions []Progression, useSharp bool) State {
	return State{Progressions: progressions, UseSharp: useSharp}
}
