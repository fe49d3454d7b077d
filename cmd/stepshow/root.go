package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "StepShow"

var rootCmd = &cobra.Command{
	Use:   "stepshow",
	Short: "StepShow plays illustrated step-by-step presentations",
	Long: `StepShow walks a viewer through a deck of animated steps, driven by the
keyboard: SPACE advances, B goes back, R resets. Decks are bundled or
loaded from YAML files, and can be exported to still frames.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
