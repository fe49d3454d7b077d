package sequencer

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"stepshow/internal/core/scheduler"
	"stepshow/internal/core/storyboard"
)

// Surface renders one visual frame for a step. Progress 1.0 means fully
// revealed; intermediate values are monotonic reveal fractions. Render must
// be a pure function of its arguments (backward navigation depends on a
// settled frame being exactly reproducible) and must not call back into
// the sequencer.
type Surface interface {
	Render(stepIndex int, progress float64) error
}

// Config contains runtime options for the Sequencer.
type Config struct {
	TickInterval time.Duration
}

// Sequencer owns the current position in a storyboard and gates navigation
// while a step animation is in flight. Navigation that cannot be honored
// (past either end, or mid-animation) is ignored with a notice, never an
// error; only render failures surface to the caller.
//
// All renders are serialized under the sequencer mutex. A tick belonging to
// a cancelled run re-checks the run state under that mutex before touching
// the surface, so no render for it can land after Reset returns.
type Sequencer struct {
	mu        sync.Mutex
	board     storyboard.Storyboard
	surface   Surface
	scheduler *scheduler.Scheduler
	index     int
	animating bool
	events    []chan Event
	closed    bool
}

// New validates the storyboard and creates a sequencer positioned at the
// landing view. An invalid storyboard is a configuration error: the caller
// must refuse to start.
func New(board storyboard.Storyboard, surface Surface, options Config) (*Sequencer, error) {
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("storyboard: %w", err)
	}
	if surface == nil {
		return nil, errors.New("nil render surface")
	}
	return &Sequencer{
		board:     board,
		surface:   surface,
		scheduler: scheduler.New(options.TickInterval),
		index:     storyboard.LandingIndex,
	}, nil
}

// Subscribe registers a new observer channel.
func (seq *Sequencer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	seq.mu.Lock()
	seq.events = append(seq.events, ch)
	seq.mu.Unlock()
	return ch
}

// CurrentIndex returns the active step index, or storyboard.LandingIndex.
func (seq *Sequencer) CurrentIndex() int {
	seq.mu.Lock()
	defer seq.mu.Unlock()
	return seq.index
}

// Animating reports whether a step animation is in flight.
func (seq *Sequencer) Animating() bool {
	seq.mu.Lock()
	defer seq.mu.Unlock()
	return seq.animating
}

// Advance moves to the next step and plays its animation from frame 0.
// Ignored while animating or at the last step. The first frame renders
// synchronously; its error, if any, is returned.
func (seq *Sequencer) Advance() error {
	seq.mu.Lock()
	if seq.animating {
		seq.mu.Unlock()
		seq.notice("navigation ignored while animating")
		return nil
	}
	if seq.index == seq.board.LastIndex() {
		seq.mu.Unlock()
		seq.notice("already at last step")
		return nil
	}
	seq.index++
	seq.animating = true
	index := seq.index
	step := seq.board[index]
	seq.mu.Unlock()

	seq.emit(Event{Type: EventStepEnter, StepIndex: index, StepName: step.Name, At: time.Now()})

	err := seq.scheduler.Run(index, step.Frames, scheduler.Callbacks{
		OnTick: seq.handleTick,
		OnDone: seq.handleDone,
		OnFail: seq.handleFail,
	})
	if err != nil {
		seq.mu.Lock()
		seq.animating = false
		seq.mu.Unlock()
		return err
	}
	return nil
}

// Retreat moves back one step and redraws it already settled, at progress
// 1.0. Going back never replays an animation. Ignored while animating or
// at the landing view.
func (seq *Sequencer) Retreat() error {
	seq.mu.Lock()
	if seq.animating {
		seq.mu.Unlock()
		seq.notice("navigation ignored while animating")
		return nil
	}
	if seq.index == storyboard.LandingIndex {
		seq.mu.Unlock()
		seq.notice("already at first step")
		return nil
	}
	seq.index--
	index := seq.index
	var name string
	if index != storyboard.LandingIndex {
		name = seq.board[index].Name
	}
	err := seq.surface.Render(index, 1)
	seq.mu.Unlock()

	if err != nil {
		return err
	}
	if index == storyboard.LandingIndex {
		seq.emit(Event{Type: EventReset, StepIndex: index, At: time.Now()})
		return nil
	}
	seq.emit(Event{
		Type:      EventStepSettled,
		StepIndex: index,
		StepName:  name,
		Progress:  1,
		At:        time.Now(),
	})
	return nil
}

// Reset returns to the landing view from any state, cancelling a pending
// animation run.
func (seq *Sequencer) Reset() error {
	seq.mu.Lock()
	seq.index = storyboard.LandingIndex
	seq.animating = false
	err := seq.surface.Render(storyboard.LandingIndex, 1)
	seq.mu.Unlock()

	seq.scheduler.Cancel()

	if err != nil {
		return err
	}
	seq.emit(Event{Type: EventReset, StepIndex: storyboard.LandingIndex, At: time.Now()})
	return nil
}

// Close cancels any pending run and closes observer channels.
func (seq *Sequencer) Close() {
	seq.scheduler.Cancel()
	seq.mu.Lock()
	if seq.closed {
		seq.mu.Unlock()
		return
	}
	seq.closed = true
	events := seq.events
	seq.events = nil
	seq.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// handleTick delivers one animation frame to the surface. Ticks belonging
// to a superseded run are dropped.
func (seq *Sequencer) handleTick(stepIndex int, progress float64) error {
	seq.mu.Lock()
	if !seq.animating || seq.index != stepIndex {
		seq.mu.Unlock()
		return nil
	}
	name := seq.board[stepIndex].Name
	err := seq.surface.Render(stepIndex, progress)
	seq.mu.Unlock()

	if err != nil {
		return err
	}
	seq.emit(Event{
		Type:      EventProgress,
		StepIndex: stepIndex,
		StepName:  name,
		Progress:  progress,
		At:        time.Now(),
	})
	return nil
}

func (seq *Sequencer) handleDone(stepIndex int) {
	seq.mu.Lock()
	if !seq.animating || seq.index != stepIndex {
		seq.mu.Unlock()
		return
	}
	seq.animating = false
	last := stepIndex == seq.board.LastIndex()
	name := seq.board[stepIndex].Name
	seq.mu.Unlock()

	seq.emit(Event{
		Type:       EventStepSettled,
		StepIndex:  stepIndex,
		StepName:   name,
		Progress:   1,
		AtLastStep: last,
		At:         time.Now(),
	})
}

func (seq *Sequencer) handleFail(stepIndex int, err error) {
	seq.mu.Lock()
	if seq.index == stepIndex {
		seq.animating = false
	}
	seq.mu.Unlock()

	seq.emit(Event{Type: EventRenderFailure, StepIndex: stepIndex, Err: err, At: time.Now()})
}

func (seq *Sequencer) notice(message string) {
	seq.mu.Lock()
	index := seq.index
	seq.mu.Unlock()
	seq.emit(Event{Type: EventNotice, StepIndex: index, Message: message, At: time.Now()})
}

func (seq *Sequencer) emit(event Event) {
	seq.mu.Lock()
	events := append([]chan Event(nil), seq.events...)
	seq.mu.Unlock()
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
