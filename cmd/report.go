package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/fifths/chord"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/note"
	"github.com/jsphweid/fifths/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Counts stored progressions and how often each pitch class is used.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeFn, err := openApp()
		if err != nil {
			return err
		}
		defer closeFn()
		writeReport(cmd.OutOrStdout(), buildReport(a.State().Progressions, a.State().UseSharp))
		return nil
	},
}

type progressionsReport struct {
	numProgressions int
	numMelodyNotes  int
	numChordNotes   int
	melodyCounts    []int
	chordCounts     []int
	unknown         []model.NoteName
	shapes          []chord.Shape
	names           model.Notes
}

// buildReport tallies per ring index, so C# and Db count as the same note.
func buildReport(progressions []model.Progression, useSharp bool) progressionsReport {
	names := note.Names(useSharp)
	r := progressionsReport{
		numProgressions: len(progressions),
		melodyCounts:    make([]int, note.Count),
		chordCounts:     make([]int, note.Count),
		names:           names,
	}
	var all model.Notes
	for _, p := range progressions {
		r.numMelodyNotes += len(p.MelodyNotes)
		r.numChordNotes += len(p.ChordNotes)
		tally(r.melodyCounts, p.MelodyNotes, useSharp, &all)
		tally(r.chordCounts, p.ChordNotes, useSharp, &all)
	}
	r.shapes = chord.Shapes(progressions)
	r.unknown, _ = util.CountBy(all, func(n model.NoteName) model.NoteName { return n })
	return r
}

func tally(counts []int, notes model.Notes, useSharp bool, unknown *model.Notes) {
	names := note.Names(useSharp)
	for _, n := range notes {
		i, ok := note.IndexOf(names, note.Respell(n, useSharp))
		if !ok {
			*unknown = append(*unknown, n)
			continue
		}
		counts[i]++
	}
}

func writeReport(w io.Writer, r progressionsReport) {
	fmt.Fprintf(w, "progressions: %v\n", r.numProgressions)
	fmt.Fprintf(w, "melody notes: %v\n", r.numMelodyNotes)
	fmt.Fprintf(w, "chord notes: %v\n", r.numChordNotes)
	if r.numProgressions == 0 {
		return
	}
	fmt.Fprintf(w, "%-4s %8s %8s\n", "note", "melody", "chord")
	for i, name := range r.names {
		if r.melodyCounts[i] == 0 && r.chordCounts[i] == 0 {
			continue
		}
		fmt.Fprintf(w, "%-4s %8d %8d\n", name, r.melodyCounts[i], r.chordCounts[i])
	}
	fmt.Fprintf(w, "distinct chord shapes: %v\n", len(r.shapes))
	for _, s := range r.shapes {
		fmt.Fprintf(w, "  %-12s %-16s x%d\n", s.Key, joinNotes(s.Notes), s.Count)
	}
	if len(r.unknown) > 0 {
		fmt.Fprintf(w, "unrecognized names: %v\n", r.unknown)
	}
	fmt.Fprintf(w, "total notes: %v\n", util.Sum(append(r.melodyCounts, r.chordCounts...)))
}
