package platform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stepshow/internal/platform"
)

func TestSingleInstanceGuard(t *testing.T) {
	first, err := platform.AcquireSingleInstance("StepShowGuardTest")
	require.NoError(t, err)
	require.NotEmpty(t, first.Address())

	_, err = platform.AcquireSingleInstance("StepShowGuardTest")
	require.ErrorIs(t, err, platform.ErrAlreadyRunning)

	require.NoError(t, first.Release())

	second, err := platform.AcquireSingleInstance("StepShowGuardTest")
	require.NoError(t, err)
	require.NoError(t, second.Release())
}
