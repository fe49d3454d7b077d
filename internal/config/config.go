// Package config holds the player's persisted preferences.
package config

import "time"

// Settings defines editable player preferences.
type Settings struct {
	// TickInterval is the fixed delay between animation frames.
	TickInterval time.Duration
	Fullscreen   bool
	// ExportWidth is the default pixel width for exported frames.
	ExportWidth int
}

// DefaultSettings returns the defaults the built-in decks were authored
// against: 30ms ticks on a fullscreen 16:9 stage.
func DefaultSettings() Settings {
	return Settings{
		TickInterval: 30 * time.Millisecond,
		Fullscreen:   true,
		ExportWidth:  1920,
	}
}
