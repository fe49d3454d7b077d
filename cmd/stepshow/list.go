package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stepshow/internal/deck"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundled decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := defaultSettings()
		for _, name := range deck.BuiltinNames() {
			entry, err := deck.Builtin(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-12s %s\n", name, entry.Title)
			if entry.Subtitle != "" {
				fmt.Printf("             %s\n", entry.Subtitle)
			}
			fmt.Printf("             %d stappen, animaties ~%s\n",
				len(entry.Steps), playTime(entry, settings.TickInterval).Round(time.Second))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// playTime sums the pure animation time of a deck; reading time between
// steps is up to the presenter.
func playTime(entry *deck.Deck, tick time.Duration) time.Duration {
	frames := 0
	for _, step := range entry.Steps {
		frames += step.Frames
	}
	return time.Duration(frames) * tick
}
