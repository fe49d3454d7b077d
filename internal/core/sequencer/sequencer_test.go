package sequencer_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepshow/internal/core/sequencer"
	"stepshow/internal/core/storyboard"
)

type renderCall struct {
	StepIndex int
	Progress  float64
}

type recordingSurface struct {
	mu      sync.Mutex
	calls   []renderCall
	failAll bool
}

func (surface *recordingSurface) Render(stepIndex int, progress float64) error {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	if surface.failAll {
		return errors.New("render surface lost")
	}
	surface.calls = append(surface.calls, renderCall{StepIndex: stepIndex, Progress: progress})
	return nil
}

func (surface *recordingSurface) snapshot() []renderCall {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	return append([]renderCall(nil), surface.calls...)
}

func (surface *recordingSurface) setFailAll(fail bool) {
	surface.mu.Lock()
	surface.failAll = fail
	surface.mu.Unlock()
}

func newTestSequencer(t *testing.T, board storyboard.Storyboard) (*sequencer.Sequencer, *recordingSurface, <-chan sequencer.Event) {
	t.Helper()
	surface := &recordingSurface{}
	seq, err := sequencer.New(board, surface, sequencer.Config{TickInterval: 2 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(seq.Close)
	return seq, surface, seq.Subscribe(512)
}

func waitEvent(t *testing.T, events <-chan sequencer.Event, wanted sequencer.EventType) sequencer.Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event := <-events:
			if event.Type == wanted {
				return event
			}
		case <-deadline:
			t.Fatalf("no %s event", wanted)
		}
	}
}

func advanceAndSettle(t *testing.T, seq *sequencer.Sequencer, events <-chan sequencer.Event) sequencer.Event {
	t.Helper()
	require.NoError(t, seq.Advance())
	return waitEvent(t, events, sequencer.EventStepSettled)
}

func TestNewRejectsInvalidStoryboard(t *testing.T) {
	_, err := sequencer.New(nil, &recordingSurface{}, sequencer.Config{})
	require.ErrorIs(t, err, storyboard.ErrEmpty)

	_, err = sequencer.New(storyboard.Storyboard{{Name: "X", Frames: 0}}, &recordingSurface{}, sequencer.Config{})
	require.Error(t, err)
}

func TestAdvancingThroughWholeBoardEndsSettledAtLastStep(t *testing.T) {
	board := storyboard.Storyboard{
		{Name: "One", Frames: 3},
		{Name: "Two", Frames: 1},
		{Name: "Three", Frames: 4},
	}
	seq, _, events := newTestSequencer(t, board)

	for i := range board {
		settled := advanceAndSettle(t, seq, events)
		assert.Equal(t, i, settled.StepIndex)
		assert.Equal(t, i == board.LastIndex(), settled.AtLastStep)
	}
	assert.Equal(t, board.LastIndex(), seq.CurrentIndex())
	assert.False(t, seq.Animating())
}

func TestRunDeliversStrictProgressLadder(t *testing.T) {
	board := storyboard.Storyboard{{Name: "Only", Frames: 4}}
	seq, surface, events := newTestSequencer(t, board)

	advanceAndSettle(t, seq, events)

	calls := surface.snapshot()
	require.Len(t, calls, 4)
	for i, call := range calls {
		assert.Equal(t, 0, call.StepIndex)
		assert.InDelta(t, float64(i)/4, call.Progress, 1e-9)
	}
}

func TestAdvancePastLastStepIsNoticedNoOp(t *testing.T) {
	board := storyboard.Storyboard{{Name: "Only", Frames: 1}}
	seq, surface, events := newTestSequencer(t, board)

	advanceAndSettle(t, seq, events)
	before := len(surface.snapshot())

	require.NoError(t, seq.Advance())
	notice := waitEvent(t, events, sequencer.EventNotice)
	assert.Equal(t, "already at last step", notice.Message)
	assert.Equal(t, 0, seq.CurrentIndex())
	assert.Len(t, surface.snapshot(), before)
}

func TestRetreatSnapsToSettledFrame(t *testing.T) {
	board := storyboard.Storyboard{{Name: "One", Frames: 2}, {Name: "Two", Frames: 2}}
	seq, surface, events := newTestSequencer(t, board)

	advanceAndSettle(t, seq, events)
	advanceAndSettle(t, seq, events)
	before := len(surface.snapshot())

	require.NoError(t, seq.Retreat())
	settled := waitEvent(t, events, sequencer.EventStepSettled)
	assert.Equal(t, 0, settled.StepIndex)

	calls := surface.snapshot()
	require.Len(t, calls, before+1)
	assert.Equal(t, renderCall{StepIndex: 0, Progress: 1}, calls[len(calls)-1])
	assert.Equal(t, 0, seq.CurrentIndex())
}

func TestRetreatFromFirstStepLandsOnLandingView(t *testing.T) {
	board := storyboard.Storyboard{{Name: "One", Frames: 1}}
	seq, surface, events := newTestSequencer(t, board)

	advanceAndSettle(t, seq, events)
	require.NoError(t, seq.Retreat())
	waitEvent(t, events, sequencer.EventReset)

	calls := surface.snapshot()
	assert.Equal(t, renderCall{StepIndex: storyboard.LandingIndex, Progress: 1}, calls[len(calls)-1])
	assert.Equal(t, storyboard.LandingIndex, seq.CurrentIndex())

	// Another retreat is a noticed no-op.
	require.NoError(t, seq.Retreat())
	notice := waitEvent(t, events, sequencer.EventNotice)
	assert.Equal(t, "already at first step", notice.Message)
}

func TestNavigationIgnoredWhileAnimating(t *testing.T) {
	board := storyboard.Storyboard{{Name: "Long", Frames: 5000}, {Name: "Next", Frames: 1}}
	seq, _, events := newTestSequencer(t, board)

	require.NoError(t, seq.Advance())
	require.True(t, seq.Animating())

	require.NoError(t, seq.Advance())
	notice := waitEvent(t, events, sequencer.EventNotice)
	assert.Equal(t, "navigation ignored while animating", notice.Message)
	assert.Equal(t, 0, seq.CurrentIndex())

	require.NoError(t, seq.Retreat())
	notice = waitEvent(t, events, sequencer.EventNotice)
	assert.Equal(t, "navigation ignored while animating", notice.Message)
	assert.Equal(t, 0, seq.CurrentIndex())
	assert.True(t, seq.Animating())
}

func TestResetCancelsPendingTicks(t *testing.T) {
	board := storyboard.Storyboard{{Name: "Long", Frames: 5000}}
	seq, surface, events := newTestSequencer(t, board)

	require.NoError(t, seq.Advance())
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, seq.Reset())
	waitEvent(t, events, sequencer.EventReset)
	assert.Equal(t, storyboard.LandingIndex, seq.CurrentIndex())
	assert.False(t, seq.Animating())

	calls := surface.snapshot()
	assert.Equal(t, renderCall{StepIndex: storyboard.LandingIndex, Progress: 1}, calls[len(calls)-1])

	// The cancelled run must stay silent.
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, surface.snapshot(), len(calls))
}

func TestFirstFrameRenderFailureSurfacesFromAdvance(t *testing.T) {
	board := storyboard.Storyboard{{Name: "One", Frames: 3}}
	surface := &recordingSurface{failAll: true}
	seq, err := sequencer.New(board, surface, sequencer.Config{TickInterval: 2 * time.Millisecond})
	require.NoError(t, err)
	defer seq.Close()

	require.ErrorContains(t, seq.Advance(), "render surface lost")
	assert.False(t, seq.Animating())
	assert.Equal(t, 0, seq.CurrentIndex())
}

func TestMidRunRenderFailureEmitsFailureEvent(t *testing.T) {
	board := storyboard.Storyboard{{Name: "One", Frames: 5000}}
	seq, surface, events := newTestSequencer(t, board)

	require.NoError(t, seq.Advance())
	time.Sleep(6 * time.Millisecond)
	surface.setFailAll(true)

	failure := waitEvent(t, events, sequencer.EventRenderFailure)
	require.ErrorContains(t, failure.Err, "render surface lost")
	assert.False(t, seq.Animating())
}

// The worked example from the sequencing contract: a two-step board with
// frame counts 3 and 2, driven through a full viewing session.
func TestTwoStepSessionScenario(t *testing.T) {
	board := storyboard.Storyboard{{Name: "A", Frames: 3}, {Name: "B", Frames: 2}}
	surface := &recordingSurface{}
	seq, err := sequencer.New(board, surface, sequencer.Config{TickInterval: 15 * time.Millisecond})
	require.NoError(t, err)
	defer seq.Close()
	events := seq.Subscribe(512)

	require.NoError(t, seq.Advance())
	require.Equal(t, 0, seq.CurrentIndex())
	require.NoError(t, seq.Advance()) // mid-run, ignored
	waitEvent(t, events, sequencer.EventStepSettled)

	stepA := surface.snapshot()
	require.Len(t, stepA, 3)
	assert.InDelta(t, 0, stepA[0].Progress, 1e-9)
	assert.InDelta(t, 1.0/3, stepA[1].Progress, 1e-9)
	assert.InDelta(t, 2.0/3, stepA[2].Progress, 1e-9)

	settled := advanceAndSettle(t, seq, events)
	assert.Equal(t, 1, settled.StepIndex)
	assert.True(t, settled.AtLastStep)

	stepB := surface.snapshot()[3:]
	require.Len(t, stepB, 2)
	assert.InDelta(t, 0, stepB[0].Progress, 1e-9)
	assert.InDelta(t, 0.5, stepB[1].Progress, 1e-9)

	require.NoError(t, seq.Advance()) // already at last step
	waitEvent(t, events, sequencer.EventNotice)
	assert.Equal(t, 1, seq.CurrentIndex())

	require.NoError(t, seq.Retreat())
	calls := surface.snapshot()
	assert.Equal(t, renderCall{StepIndex: 0, Progress: 1}, calls[len(calls)-1])

	require.NoError(t, seq.Reset())
	calls = surface.snapshot()
	assert.Equal(t, renderCall{StepIndex: storyboard.LandingIndex, Progress: 1}, calls[len(calls)-1])
	assert.Equal(t, storyboard.LandingIndex, seq.CurrentIndex())
}
