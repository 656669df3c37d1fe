package diagram

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
	"github.com/jsphweid/fifths/constants"
)

// WriteSVG draws d as a standalone SVG document. Every call starts from an
// empty canvas.
func WriteSVG(w io.Writer, d Diagram) error {
	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(d.Width, d.Height)
	canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", num(d.Origin.X), num(d.Origin.Y)))

	canvas.Circle(0, 0, d.RingRadius, `fill="none"`, `stroke="`+constants.RingColor+`"`)

	for _, l := range d.Labels {
		canvas.Text(l.X, l.Y, string(l.Text), `text-anchor="middle"`, `alignment-baseline="middle"`)
	}

	for _, l := range d.Spokes {
		drawLine(canvas, l)
	}
	for _, l := range d.Tritones {
		drawLine(canvas, l)
	}

	for _, m := range d.Melody {
		drawMarker(canvas, m, d.MarkerRadius)
	}
	for _, m := range d.Chord {
		drawMarker(canvas, m, d.MarkerRadius)
	}

	canvas.Gend()
	canvas.End()

	_, err := w.Write(buf.Bytes())
	return err
}

func SVG(d Diagram) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := WriteSVG(buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawLine(canvas *svg.SVG, l Line) {
	attrs := []string{
		`stroke="` + l.Color + `"`,
		`stroke-width="` + num(l.Width) + `"`,
	}
	if l.Dashed {
		attrs = append(attrs, `stroke-dasharray="`+constants.TritoneDash+`"`)
	}
	canvas.Line(l.From.X, l.From.Y, l.To.X, l.To.Y, attrs...)
}

func drawMarker(canvas *svg.SVG, m Marker, r float64) {
	canvas.Circle(m.X, m.Y, r, `fill="`+m.Color+`"`)
	canvas.Text(m.X, m.Y+constants.MarkerLabelDrop, strconv.Itoa(m.Index),
		`text-anchor="middle"`, `alignment-baseline="middle"`, `fill="`+constants.IndexColor+`"`)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
