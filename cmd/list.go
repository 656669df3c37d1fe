package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/fifths/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists stored progressions",
	Long:  `Lists stored progressions with the index used by edit and delete.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeFn, err := openApp()
		if err != nil {
			return err
		}
		defer closeFn()
		printProgressions(cmd.OutOrStdout(), a.State().Progressions)
		return nil
	},
}

func joinNotes(notes model.Notes) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = string(n)
	}
	return strings.Join(parts, " ")
}

func printProgressions(w io.Writer, progressions []model.Progression) {
	if len(progressions) == 0 {
		fmt.Fprintln(w, "No progressions stored")
		return
	}
	for i, p := range progressions {
		fmt.Fprintf(w, "[%d] melody: %-24s chord: %s\n", i, joinNotes(p.MelodyNotes), joinNotes(p.ChordNotes))
	}
}
