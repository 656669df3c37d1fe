// Package diagram lays out a progression on the circle of fifths.
//
// Render only computes geometry. Coordinates are relative to Origin, with
// ring index 0 at the top and indices increasing clockwise.
package diagram

import (
	"math"

	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/note"
)

type Point struct {
	X float64
	Y float64
}

type Label struct {
	Point
	Text model.NoteName
}

type Line struct {
	From   Point
	To     Point
	Color  string
	Width  float64
	Dashed bool
}

type Marker struct {
	Point
	Note  model.NoteName
	Index int // 1-based position in its sequence
	Color string
}

type Diagram struct {
	Width        float64
	Height       float64
	Origin       Point
	RingRadius   float64
	MarkerRadius float64
	Labels       []Label
	Spokes       []Line
	Tritones     []Line
	Melody       []Marker
	Chord        []Marker
}

// At converts a ring index and radius to a point, rotated a quarter turn so
// index 0 is at twelve o'clock.
func At(i int, radius float64) Point {
	angle := note.Angle(i) - math.Pi/2
	return Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

func Render(melody, chord, names model.Notes) Diagram {
	d := Diagram{
		Width:        constants.CanvasSize,
		Height:       constants.CanvasSize,
		Origin:       Point{X: constants.CenterX, Y: constants.CenterY},
		RingRadius:   constants.RingRadius,
		MarkerRadius: constants.MarkerRadius,
		Labels:       []Label{},
		Spokes:       []Line{},
		Tritones:     []Line{},
	}

	for i, name := range names {
		if i >= note.Count {
			break
		}
		d.Labels = append(d.Labels, Label{Point: At(i, constants.RingRadius), Text: name})
	}

	for _, n := range chord {
		i, ok := note.IndexOf(names, n)
		if !ok {
			continue
		}
		d.Spokes = append(d.Spokes, Line{
			From:  At(i, constants.RingRadius),
			To:    Point{},
			Color: constants.SpokeColor,
			Width: constants.SpokeWidth,
		})
	}

	// background grid, drawn regardless of input
	for i := 0; i < note.Count; i++ {
		d.Tritones = append(d.Tritones, Line{
			From:   At(i, constants.RingRadius),
			To:     At((i+6)%note.Count, constants.RingRadius),
			Color:  constants.TritoneColor,
			Width:  1,
			Dashed: true,
		})
	}

	d.Melody = plot(melody, names, constants.MelodyRadius, constants.MelodyColor)
	d.Chord = plot(chord, names, constants.ChordRadius, constants.ChordColor)
	return d
}

func plot(notes, names model.Notes, radius float64, color string) []Marker {
	res := []Marker{}
	for pos, n := range notes {
		i, ok := note.IndexOf(names, n)
		if !ok {
			continue
		}
		res = append(res, Marker{
			Point: At(i, radius),
			Note:  n,
			Index: pos + 1,
			Color: color,
		})
	}
	return res
}

// RenderProgression renders a stored progression with the active names.
func RenderProgression(p model.Progression, names model.Notes) Diagram {
	return Render(p.MelodyNotes, p.ChordNotes, names)
}
