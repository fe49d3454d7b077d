package storyboard

import (
	"errors"
	"fmt"
)

// LandingIndex is the distinguished pre-storyboard step index. The landing
// view has no animation and is always rendered statically.
const LandingIndex = -1

// ErrEmpty indicates a storyboard with no steps.
var ErrEmpty = errors.New("storyboard has no steps")

// Step describes one storyboard entry.
type Step struct {
	// Name is a display label; the sequencing core never interprets it.
	Name string
	// Frames is the number of ticks needed to play the step's reveal
	// animation to completion.
	Frames int
}

// Storyboard is the ordered, immutable list of steps for one deck.
type Storyboard []Step

// Validate checks the storyboard once, before any navigation is accepted.
// A storyboard that fails validation must not be played.
func (board Storyboard) Validate() error {
	if len(board) == 0 {
		return ErrEmpty
	}
	for index, step := range board {
		if step.Frames < 1 {
			return fmt.Errorf("step %d (%q): frame count %d, want at least 1", index, step.Name, step.Frames)
		}
	}
	return nil
}

// LastIndex returns the index of the final step.
func (board Storyboard) LastIndex() int {
	return len(board) - 1
}

// Contains reports whether index addresses a storyboard step or the landing.
func (board Storyboard) Contains(index int) bool {
	return index >= LandingIndex && index < len(board)
}
