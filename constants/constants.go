package constants

import "os"

// StorageKey is the single key the progression list lives under.
const StorageKey = "progressions"

// diagram geometry, in SVG user units
const (
	CanvasSize   = 400
	CenterX      = 200
	CenterY      = 200
	RingRadius   = 150
	MelodyRadius = 170
	ChordRadius  = 130
	MarkerRadius = 10

	// index labels sit a little below the marker center
	MarkerLabelDrop = 5
)

const (
	RingColor    = "black"
	SpokeColor   = "red"
	TritoneColor = "gray"
	MelodyColor  = "blue"
	ChordColor   = "red"
	IndexColor   = "white"
	TritoneDash  = "2,2"
	SpokeWidth   = 2
)

func GetConfigPath() string {
	return os.Getenv("FIFTHS_CONFIG")
}

func GetDataDir() string {
	path := os.Getenv("FIFTHS_DATA_DIR")
	if path != "" {
		return path
	}
	return "./data"
}
