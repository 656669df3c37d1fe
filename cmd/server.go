package cmd

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fifths/app"
	"github.com/jsphweid/fifths/diagram"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/note"
	"github.com/jsphweid/fifths/state"
)

// Server exposes one App over HTTP. The App has a single owner, so every
// request takes the lock for its whole duration.
type Server struct {
	mu  sync.Mutex
	app *app.App
}

func NewServer(a *app.App) *Server {
	return &Server{app: a}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestLogger)

	router.HandleFunc("/", s.handleIndex).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", s.handleState).Methods("GET")
	api.HandleFunc("/notes", s.handleNotes).Methods("GET")
	api.HandleFunc("/render.svg", s.handleRender).Methods("GET")
	api.HandleFunc("/session/{part:melody|chord}/select", s.handleSelect).Methods("POST")
	api.HandleFunc("/session/{part:melody|chord}/add", s.handleAdd).Methods("POST")
	api.HandleFunc("/commit", s.mutate(func(r *http.Request) error { return s.app.Commit() })).Methods("POST")
	api.HandleFunc("/edit/cancel", s.mutate(func(r *http.Request) error { return s.app.CancelEdit() })).Methods("POST")
	api.HandleFunc("/clear", s.mutate(func(r *http.Request) error { return s.app.ClearAll() })).Methods("POST")
	api.HandleFunc("/notation", s.handleNotation).Methods("POST")
	api.HandleFunc("/progressions/{index:[0-9]+}/edit", s.mutate(func(r *http.Request) error {
		return s.app.BeginEdit(pathIndex(r))
	})).Methods("POST")
	api.HandleFunc("/progressions/{index:[0-9]+}", s.mutate(func(r *http.Request) error {
		return s.app.Delete(pathIndex(r))
	})).Methods("DELETE")
	// HTML forms cannot send DELETE
	api.HandleFunc("/progressions/{index:[0-9]+}/delete", s.mutate(func(r *http.Request) error {
		return s.app.Delete(pathIndex(r))
	})).Methods("POST")
	api.HandleFunc("/progressions/{index:[0-9]+}/diagram.svg", s.handleDiagram).Methods("GET")
	return router
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug("Handled request", "id", id, "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func pathIndex(r *http.Request) int {
	// the route pattern only matches digits; overflow maps to an invalid index
	i, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		return -1
	}
	return i
}

func isForm(r *http.Request) bool {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return ct == "application/x-www-form-urlencoded" || ct == "multipart/form-data"
}

// field reads a value from a form post or a JSON body.
func field(r *http.Request, name string) string {
	if isForm(r) {
		return r.FormValue(name)
	}
	if r.Body == nil {
		return ""
	}
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return ""
	}
	return body[name]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("Could not encode response", "err", err)
	}
}

func (s *Server) stateResponse() model.StateResponse {
	st := s.app.State()
	return model.StateResponse{
		Notation:     note.NotationName(st.UseSharp),
		NoteNames:    s.app.Names(),
		Progressions: st.Progressions,
		Session: model.SessionResponse{
			SelectedMelody: st.Session.SelectedMelody,
			SelectedChord:  st.Session.SelectedChord,
			MelodyNotes:    append(model.Notes{}, st.Session.Melody...),
			ChordNotes:     append(model.Notes{}, st.Session.Chord...),
			EditIndex:      st.Session.EditIndex,
			CommitLabel:    state.CommitLabel(st),
		},
	}
}

// respond answers a form post with a redirect to the page, anything else
// with the current state.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}
	if isForm(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) mutate(fn func(r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.respond(w, r, fn(r))
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.stateResponse())
}

func (s *Server) handleNotes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.app.Names())
}

// selectNote sets the selection for part. Names outside the active
// spelling are ignored and reported as not ok.
func (s *Server) selectNote(part, raw string) (bool, error) {
	n, ok := note.Normalize(s.app.Names(), raw)
	if !ok {
		return false, nil
	}
	if part == "melody" {
		return true, s.app.SelectMelody(n)
	}
	return true, s.app.SelectChord(n)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.selectNote(mux.Vars(r)["part"], field(r, "note"))
	s.respond(w, r, err)
}

// handleAdd appends the current selection. A note in the request body is
// selected first, so a form can do both in one post. An unknown note adds
// nothing, even when an earlier selection is pending.
func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := mux.Vars(r)["part"]
	if raw := field(r, "note"); raw != "" {
		ok, err := s.selectNote(part, raw)
		if err != nil || !ok {
			s.respond(w, r, err)
			return
		}
	}
	if part == "melody" {
		s.respond(w, r, s.app.AddMelodyNote())
		return
	}
	s.respond(w, r, s.app.AddChordNote())
}

func (s *Server) handleNotation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	useSharp, err := note.ParseNotation(field(r, "notation"))
	if err != nil {
		// unknown values leave the notation as it is
		s.respond(w, r, nil)
		return
	}
	s.respond(w, r, s.app.SetNotation(useSharp))
}

func writeSVG(w http.ResponseWriter, d diagram.Diagram) {
	data, err := diagram.SVG(d)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write(data); err != nil {
		log.Warn("Could not write diagram", "err", err)
	}
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.app.Diagram(pathIndex(r))
	if !ok {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "no progression at that index"})
		return
	}
	writeSVG(w, d)
}

// handleRender draws an ad hoc diagram from query parameters without
// touching the store.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	useSharp := s.app.State().UseSharp
	s.mu.Unlock()

	q := r.URL.Query()
	if raw := q.Get("notation"); raw != "" {
		parsed, err := note.ParseNotation(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		useSharp = parsed
	}
	names := note.Names(useSharp)
	melody, err := note.ParseList(names, q.Get("melody"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	chord, err := note.ParseList(names, q.Get("chord"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	writeSVG(w, diagram.Render(melody, chord, names))
}
