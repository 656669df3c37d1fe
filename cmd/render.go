package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/fifths/app"
	"github.com/jsphweid/fifths/diagram"
	"github.com/jsphweid/fifths/note"
	"github.com/spf13/cobra"
)

var (
	renderMelody string
	renderChord  string
	outputFlag   string
	outDirFlag   string
)

func init() {
	renderCmd.Flags().StringVar(&renderMelody, "melody", "", "comma separated melody notes")
	renderCmd.Flags().StringVar(&renderChord, "chord", "", "comma separated chord notes")
	renderCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().StringVar(&outDirFlag, "out", "./diagrams", "directory for the SVG files")

	rootCmd.AddCommand(renderCmd, exportCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders one diagram without storing it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := note.Names(cfg.UseSharp())
		melody, err := note.ParseList(names, renderMelody)
		if err != nil {
			return fmt.Errorf("--melody: %w", err)
		}
		chord, err := note.ParseList(names, renderChord)
		if err != nil {
			return fmt.Errorf("--chord: %w", err)
		}

		d := diagram.Render(melody, chord, names)
		if outputFlag == "" {
			return diagram.WriteSVG(cmd.OutOrStdout(), d)
		}
		return writeDiagramFile(outputFlag, d)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes an SVG for every stored progression",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeFn, err := openApp()
		if err != nil {
			return err
		}
		defer closeFn()

		paths, err := exportAll(a, outDirFlag)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func diagramFilename(i int) string {
	return fmt.Sprintf("progression-%03d.svg", i)
}

// exportAll rewrites dir so it holds exactly one file per progression.
// Files left over from a longer list are removed.
func exportAll(a *app.App, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create %s: %w", dir, err)
	}

	stale, err := filepath.Glob(filepath.Join(dir, "progression-*.svg"))
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool)

	var paths []string
	for i, d := range a.Diagrams() {
		path := filepath.Join(dir, diagramFilename(i))
		if err := writeDiagramFile(path, d); err != nil {
			return nil, err
		}
		keep[path] = true
		paths = append(paths, path)
	}

	for _, path := range stale {
		if !keep[path] {
			if err := os.Remove(path); err != nil {
				log.Warn("Could not remove stale diagram", "path", path, "err", err)
			}
		}
	}
	log.Info("Exported diagrams", "dir", dir, "count", len(paths))
	return paths, nil
}

func writeDiagramFile(path string, d diagram.Diagram) error {
	data, err := diagram.SVG(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}
