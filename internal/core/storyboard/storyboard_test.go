package storyboard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stepshow/internal/core/storyboard"
)

func TestValidateRejectsEmptyBoard(t *testing.T) {
	var board storyboard.Storyboard
	require.ErrorIs(t, board.Validate(), storyboard.ErrEmpty)
}

func TestValidateRejectsNonPositiveFrameCount(t *testing.T) {
	board := storyboard.Storyboard{
		{Name: "Intro", Frames: 60},
		{Name: "Broken", Frames: 0},
	}
	err := board.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Broken")
}

func TestValidateAcceptsSingleFrameSteps(t *testing.T) {
	board := storyboard.Storyboard{{Name: "Static", Frames: 1}}
	require.NoError(t, board.Validate())
	require.Equal(t, 0, board.LastIndex())
}

func TestContains(t *testing.T) {
	board := storyboard.Storyboard{{Name: "A", Frames: 3}, {Name: "B", Frames: 2}}
	require.True(t, board.Contains(storyboard.LandingIndex))
	require.True(t, board.Contains(0))
	require.True(t, board.Contains(1))
	require.False(t, board.Contains(2))
	require.False(t, board.Contains(-2))
}
