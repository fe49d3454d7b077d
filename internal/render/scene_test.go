package render

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepshow/internal/core/storyboard"
	"stepshow/internal/deck"
)

func sampleDeck() *deck.Deck {
	return &deck.Deck{
		Title:    "Sample",
		Subtitle: "Subtitle",
		Steps: []deck.Step{
			{
				Name:   "Reveal",
				Frames: 10,
				Fragments: []deck.Fragment{
					{Text: "first", At: 0},
					{Text: "second", At: 0.5},
					{Text: "third", At: 0.9, Style: deck.StyleNote},
				},
			},
		},
	}
}

func TestRevealAlpha(t *testing.T) {
	assert.Equal(t, float64(0), revealAlpha(0.3, 0.5))
	assert.Equal(t, float64(1), revealAlpha(1, 0.5))
	assert.Equal(t, float64(1), revealAlpha(0.5+fadeBand, 0.5))
	assert.InDelta(t, 0.5, revealAlpha(0.5+fadeBand/2, 0.5), 1e-9)
	// Settled frames show everything, even fragments at threshold 1.
	assert.Equal(t, float64(1), revealAlpha(1, 1))
}

func objectCount(t *testing.T, scene fyne.CanvasObject) int {
	t.Helper()
	frame, ok := scene.(*fyne.Container)
	require.True(t, ok)
	return len(frame.Objects)
}

func TestSceneRevealsFragmentsByThreshold(t *testing.T) {
	d := sampleDeck()

	// background + header + rule = 3 chrome objects per step scene.
	assert.Equal(t, 3+1, objectCount(t, Scene(d, 0, 0)))
	assert.Equal(t, 3+2, objectCount(t, Scene(d, 0, 0.6)))
	assert.Equal(t, 3+3, objectCount(t, Scene(d, 0, 1)))
}

func TestSceneLanding(t *testing.T) {
	scene := Scene(sampleDeck(), storyboard.LandingIndex, 1)
	assert.Equal(t, 8, objectCount(t, scene))
}

func TestSceneOutOfRangeStepIsEmptySlide(t *testing.T) {
	assert.Equal(t, 1, objectCount(t, Scene(sampleDeck(), 5, 1)))
}
