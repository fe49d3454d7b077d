package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"stepshow/internal/config"
	"stepshow/internal/deck"
	"stepshow/internal/platform"
	"stepshow/internal/storage"
	"stepshow/internal/ui/menu"
	"stepshow/internal/ui/player"
)

var playWindowed bool

var playCmd = &cobra.Command{
	Use:   "play [deck]",
	Short: "Play a deck, or open the deck menu",
	Long: `Play opens the presentation window. With a deck argument (a bundled name
or a YAML file path) it starts that deck directly; without one it shows
the deck selection menu.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playWindowed, "windowed", false, "start in a window instead of fullscreen")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			return fmt.Errorf("another %s instance is already running", appName)
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}
	if playWindowed {
		settings.Fullscreen = false
	}

	fyneApp := app.NewWithID("io.stepshow.app")

	if len(args) == 1 {
		chosen, err := resolveDeck(args[0])
		if err != nil {
			return err
		}
		session, err := player.New(fyneApp, chosen, player.Options{
			TickInterval: settings.TickInterval,
			Fullscreen:   settings.Fullscreen,
			OnQuit:       fyneApp.Quit,
		})
		if err != nil {
			return err
		}
		session.Show()
		fyneApp.Run()
		return nil
	}

	var chooser *menu.Window
	openDeck := func(name string) {
		chosen, err := deck.Builtin(name)
		if err != nil {
			log.Printf("open deck: %v", err)
			return
		}
		session, err := player.New(fyneApp, chosen, player.Options{
			TickInterval: settings.TickInterval,
			Fullscreen:   settings.Fullscreen,
			OnMenu:       chooser.Show,
			OnQuit:       fyneApp.Quit,
		})
		if err != nil {
			log.Printf("open deck: %v", err)
			return
		}
		chooser.Hide()
		session.Show()
	}

	chooser = menu.New(fyneApp, openDeck, fyneApp.Quit)
	chooser.Show()
	fyneApp.Run()

	if err := storage.SaveSettings(appName, settings); err != nil {
		log.Printf("save settings: %v", err)
	}
	return nil
}

// resolveDeck maps a command-line argument to a deck: YAML paths load from
// disk, anything else must be a bundled deck name.
func resolveDeck(arg string) (*deck.Deck, error) {
	if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		return deck.Load(arg)
	}
	return deck.Builtin(arg)
}

// defaultSettings is used by commands that run without the player window.
func defaultSettings() config.Settings {
	settings, err := storage.LoadSettings(appName)
	if err != nil {
		return config.DefaultSettings()
	}
	return settings
}
