package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/jsphweid/fifths/note"
	"github.com/spf13/cobra"
)

var (
	addMelody  string
	addChord   string
	editMelody string
	editChord  string
	yesFlag    bool
)

func init() {
	addCmd.Flags().StringVar(&addMelody, "melody", "", "comma separated melody notes, e.g. C,E,G")
	addCmd.Flags().StringVar(&addChord, "chord", "", "comma separated chord notes, e.g. C,E")
	editCmd.Flags().StringVar(&editMelody, "melody", "", "replacement melody notes")
	editCmd.Flags().StringVar(&editChord, "chord", "", "replacement chord notes")
	clearCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(addCmd, editCmd, deleteCmd, clearCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Adds a progression",
	Long: `Adds a progression. Both --melody and --chord need at least one note,
otherwise nothing is stored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeFn, err := openApp()
		if err != nil {
			return err
		}
		defer closeFn()

		melody, err := note.ParseList(a.Names(), addMelody)
		if err != nil {
			return fmt.Errorf("--melody: %w", err)
		}
		chord, err := note.ParseList(a.Names(), addChord)
		if err != nil {
			return fmt.Errorf("--chord: %w", err)
		}

		before := len(a.State().Progressions)
		if err := a.AddProgression(melody, chord); err != nil {
			return err
		}
		if len(a.State().Progressions) == before {
			log.Warn("Progression needs both melody and chord notes, nothing added")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added progression %d\n", before)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Replaces a progression",
	Long: `Replaces the progression at index. A sequence that is not given keeps
its current notes; pass an empty value (--chord "") to clear it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		a, closeFn, err := openApp()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := a.BeginEdit(i); err != nil {
			return err
		}
		if !a.State().Session.Editing() {
			log.Warn("No progression at index", "index", i)
			return nil
		}

		session := a.State().Session
		melody, chord := session.Melody, session.Chord
		if cmd.Flags().Changed("melody") {
			if melody, err = note.ParseList(a.Names(), editMelody); err != nil {
				return fmt.Errorf("--melody: %w", err)
			}
		}
		if cmd.Flags().Changed("chord") {
			if chord, err = note.ParseList(a.Names(), editChord); err != nil {
				return fmt.Errorf("--chord: %w", err)
			}
		}
		if err := a.ReplaceProgression(i, melody, chord); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved progression %d\n", i)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Deletes a progression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		a, closeFn, err := openApp()
		if err != nil {
			return err
		}
		defer closeFn()

		before := len(a.State().Progressions)
		if err := a.Delete(i); err != nil {
			return err
		}
		if len(a.State().Progressions) == before {
			log.Warn("No progression at index", "index", i)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted progression %d\n", i)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Deletes every progression",
	Long:  `Deletes every progression and removes the stored key entirely.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !yesFlag {
			confirmed := false
			err := huh.NewConfirm().
				Title("Delete all stored progressions?").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed).
				Run()
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get confirmation: %w", err)
			}
			if !confirmed {
				return nil
			}
		}

		a, closeFn, err := openApp()
		if err != nil {
			return err
		}
		defer closeFn()
		if err := a.ClearAll(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cleared all progressions")
		return nil
	},
}
