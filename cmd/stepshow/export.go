package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stepshow/internal/export"
)

var (
	exportOut    string
	exportWidth  int
	exportFrames bool
)

var exportCmd = &cobra.Command{
	Use:   "export <deck>",
	Short: "Export a deck to PNG frames",
	Long: `Export renders a deck off-screen and writes one PNG per step, fully
revealed, plus the landing view. With --frames every animation tick is
written instead, one image per frame.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chosen, err := resolveDeck(args[0])
		if err != nil {
			return err
		}

		width := exportWidth
		if width == 0 {
			width = defaultSettings().ExportWidth
		}

		written, err := export.Deck(chosen, export.Options{
			OutDir:   exportOut,
			Width:    width,
			PerFrame: exportFrames,
		})
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d frames to %s\n", len(written), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "frames", "output directory")
	exportCmd.Flags().IntVarP(&exportWidth, "width", "w", 0, "frame width in pixels (default from settings)")
	exportCmd.Flags().BoolVar(&exportFrames, "frames", false, "write every animation tick, not just settled steps")
	rootCmd.AddCommand(exportCmd)
}
