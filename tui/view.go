package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/fifths/diagram"
	"github.com/jsphweid/fifths/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	focusStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	melodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	chordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	bothStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A855F7")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	statusStyle  = lipgloss.NewStyle().Italic(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	st := m.app.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Music Analysis Tool"))
	b.WriteString("\n\n")

	b.WriteString(m.picker("Melody", focusMelody, m.melodyCursor, st.Session.Melody))
	b.WriteString(m.picker("Chord ", focusChord, m.chordCursor, st.Session.Chord))

	fmt.Fprintf(&b, "\n[c] %s", m.app.CommitLabel())
	if st.Session.Editing() {
		fmt.Fprintf(&b, "  (editing %d, esc to cancel)", *st.Session.EditIndex)
	}
	b.WriteString("\n\n")

	b.WriteString(m.list(st))

	if p, ok := m.selected(); ok {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(ring(diagram.RenderProgression(p, m.app.Names()))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.confirmClear {
		b.WriteString(warningStyle.Render("Delete all progressions? (y/n)"))
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("tab focus • ←/→ pick • enter add • c commit • e edit • d delete • n notation • X clear • q quit"))
	return b.String()
}

func (m *Model) picker(title string, f focus, cursor int, notes model.Notes) string {
	label := title
	if m.focus == f {
		label = focusStyle.Render(title)
	}
	names := m.app.Names()
	cells := make([]string, len(names))
	for i, n := range names {
		cell := fmt.Sprintf("%-2s", n)
		if i == cursor && m.focus == f {
			cell = cursorStyle.Render(cell)
		}
		cells[i] = cell
	}
	return fmt.Sprintf("%s  %s\n        %s\n", label, strings.Join(cells, " "), sequence(notes))
}

func sequence(notes model.Notes) string {
	if len(notes) == 0 {
		return dimStyle.Render("(empty)")
	}
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = string(n)
	}
	return strings.Join(parts, " ")
}

func (m *Model) list(st model.State) string {
	title := "Progressions"
	if m.focus == focusList {
		title = focusStyle.Render(title)
	}
	if len(st.Progressions) == 0 {
		return title + "\n  " + dimStyle.Render("none yet") + "\n"
	}
	var b strings.Builder
	b.WriteString(title + "\n")
	for i, p := range st.Progressions {
		line := fmt.Sprintf("%2d  %s | %s", i, sequence(p.MelodyNotes), sequence(p.ChordNotes))
		if i == m.listCursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

// ring prints the diagram's labels in ring order, colored by which
// sequences use them, followed by each sequence's marker order.
func ring(d diagram.Diagram) string {
	melody := make(map[model.NoteName][]int)
	for _, mk := range d.Melody {
		melody[mk.Note] = append(melody[mk.Note], mk.Index)
	}
	chord := make(map[model.NoteName][]int)
	for _, mk := range d.Chord {
		chord[mk.Note] = append(chord[mk.Note], mk.Index)
	}

	cells := make([]string, len(d.Labels))
	for i, l := range d.Labels {
		cell := fmt.Sprintf("%-2s", l.Text)
		_, inMelody := melody[l.Text]
		_, inChord := chord[l.Text]
		switch {
		case inMelody && inChord:
			cell = bothStyle.Render(cell)
		case inMelody:
			cell = melodyStyle.Render(cell)
		case inChord:
			cell = chordStyle.Render(cell)
		default:
			cell = dimStyle.Render(cell)
		}
		cells[i] = cell
	}
	return strings.Join(cells, " ") + "\n" +
		melodyStyle.Render("melody") + " " + markers(d.Melody) + "\n" +
		chordStyle.Render("chord") + "  " + markers(d.Chord)
}

func markers(ms []diagram.Marker) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = fmt.Sprintf("%d:%s", m.Index, m.Note)
	}
	return strings.Join(parts, " ")
}
