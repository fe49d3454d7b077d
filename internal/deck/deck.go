// Package deck defines the presentation content model: a titled sequence of
// steps, each with a frame count and a list of text fragments revealed as
// the step's animation progresses.
package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"stepshow/internal/core/storyboard"
)

// Fragment styles understood by the renderer.
const (
	StyleTitle     = "title"
	StyleBody      = "body"
	StyleBullet    = "bullet"
	StyleHighlight = "highlight"
	StyleNote      = "note"
)

// Fragment is one reveal unit of a step. It becomes visible once the
// step's progress reaches At.
type Fragment struct {
	Text  string  `yaml:"text"`
	At    float64 `yaml:"at"`
	Style string  `yaml:"style,omitempty"`
}

// Step is one storyboard entry plus its visual content.
type Step struct {
	Name      string     `yaml:"name"`
	Frames    int        `yaml:"frames"`
	Fragments []Fragment `yaml:"fragments"`
}

// Deck is a complete presentation.
type Deck struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	Footer   string `yaml:"footer,omitempty"`
	Steps    []Step `yaml:"steps"`
}

// Parse decodes and validates a YAML deck.
func Parse(data []byte) (*Deck, error) {
	var parsed Deck
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse deck yaml: %w", err)
	}
	if err := parsed.Validate(); err != nil {
		return nil, err
	}
	return &parsed, nil
}

// Load reads a deck from a YAML file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	return loaded, nil
}

// Validate checks deck content before it is played. Failures here are
// configuration errors: a deck that does not validate must not start.
func (d *Deck) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("deck has no title")
	}
	if len(d.Steps) == 0 {
		return fmt.Errorf("deck %q has no steps", d.Title)
	}
	for stepIndex, step := range d.Steps {
		if step.Name == "" {
			return fmt.Errorf("deck %q: step %d has no name", d.Title, stepIndex)
		}
		if step.Frames < 1 {
			return fmt.Errorf("deck %q: step %q: frame count %d, want at least 1", d.Title, step.Name, step.Frames)
		}
		for fragIndex, fragment := range step.Fragments {
			if fragment.At < 0 || fragment.At > 1 {
				return fmt.Errorf("deck %q: step %q: fragment %d: reveal threshold %v outside [0,1]",
					d.Title, step.Name, fragIndex, fragment.At)
			}
			switch fragment.Style {
			case "", StyleTitle, StyleBody, StyleBullet, StyleHighlight, StyleNote:
			default:
				return fmt.Errorf("deck %q: step %q: fragment %d: unknown style %q",
					d.Title, step.Name, fragIndex, fragment.Style)
			}
		}
	}
	return nil
}

// Storyboard returns the sequencing view of the deck.
func (d *Deck) Storyboard() storyboard.Storyboard {
	board := make(storyboard.Storyboard, len(d.Steps))
	for index, step := range d.Steps {
		board[index] = storyboard.Step{Name: step.Name, Frames: step.Frames}
	}
	return board
}

// Step returns the step at index, or nil for the landing pseudo-step and
// out-of-range indexes.
func (d *Deck) Step(index int) *Step {
	if index < 0 || index >= len(d.Steps) {
		return nil
	}
	return &d.Steps[index]
}
