package cmd

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/fifths/diagram"
	"github.com/jsphweid/fifths/model"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Music Analysis Tool</title>
</head>
<body>
<h1>Music Analysis Tool</h1>
{{range .Parts}}
<form method="post" action="/api/session/{{.Name}}/add">
  <label>Add {{.Title}} Note:
    <select name="note">
      <option value="" disabled {{if not .Selected}}selected{{end}}>Select a note</option>
      {{$sel := .Selected}}{{range $.Names}}<option value="{{.}}" {{if eq . $sel}}selected{{end}}>{{.}}</option>{{end}}
    </select>
  </label>
  <button type="submit">Add</button>
  <div>{{range .Notes}}<span>{{.}} </span>{{end}}</div>
</form>
{{end}}
<form method="post" action="/api/commit"><button type="submit">{{.CommitLabel}}</button></form>
{{if .Editing}}<form method="post" action="/api/edit/cancel"><button type="submit">Cancel</button></form>{{end}}
<form method="post" action="/api/notation">
  <label>Notation:
    <select name="notation">
      <option value="sharp" {{if .UseSharp}}selected{{end}}>Sharp (♯)</option>
      <option value="flat" {{if not .UseSharp}}selected{{end}}>Flat (♭)</option>
    </select>
  </label>
  <button type="submit">Apply</button>
</form>
<form method="post" action="/api/clear"><button type="submit">Clear Data</button></form>
<div style="display: flex; flex-wrap: wrap">
{{range .Diagrams}}
  <div style="margin: 20px">
    {{.SVG}}
    <form method="post" action="/api/progressions/{{.Index}}/edit" style="display: inline"><button type="submit">Edit</button></form>
    <form method="post" action="/api/progressions/{{.Index}}/delete" style="display: inline"><button type="submit">Delete</button></form>
  </div>
{{end}}
</div>
</body>
</html>
`))

type pagePart struct {
	Name     string
	Title    string
	Selected model.NoteName
	Notes    model.Notes
}

type pageDiagram struct {
	Index int
	SVG   template.HTML
}

type pageData struct {
	Names       model.Notes
	Parts       []pagePart
	CommitLabel string
	Editing     bool
	UseSharp    bool
	Diagrams    []pageDiagram
}

func (s *Server) pageData() (pageData, error) {
	st := s.app.State()
	data := pageData{
		Names: s.app.Names(),
		Parts: []pagePart{
			{Name: "melody", Title: "Melody", Selected: st.Session.SelectedMelody, Notes: st.Session.Melody},
			{Name: "chord", Title: "Chord", Selected: st.Session.SelectedChord, Notes: st.Session.Chord},
		},
		CommitLabel: s.app.CommitLabel(),
		Editing:     st.Session.Editing(),
		UseSharp:    st.UseSharp,
	}
	for i, d := range s.app.Diagrams() {
		svg, err := inlineSVG(d)
		if err != nil {
			return data, err
		}
		data.Diagrams = append(data.Diagrams, pageDiagram{Index: i, SVG: svg})
	}
	return data, nil
}

// inlineSVG drops the XML prolog so the document can sit inside HTML. The
// content comes from our own renderer, which escapes its text nodes.
func inlineSVG(d diagram.Diagram) (template.HTML, error) {
	data, err := diagram.SVG(d)
	if err != nil {
		return "", err
	}
	if i := bytes.Index(data, []byte("<svg")); i > 0 {
		data = data[i:]
	}
	return template.HTML(data), nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data, err := s.pageData()
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := pageTemplate.Execute(buf, data); err != nil {
		log.Error("Could not render page", "err", err)
		http.Error(w, "could not render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Warn("Could not write page", "err", err)
	}
}
