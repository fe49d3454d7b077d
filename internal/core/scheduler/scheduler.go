package scheduler

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTickInterval matches the 30ms animation interval the built-in
// decks were authored against.
const DefaultTickInterval = 30 * time.Millisecond

// Callbacks receives the ticks of one animation run.
type Callbacks struct {
	// OnTick is invoked once per frame with progress = frame/totalFrames.
	// Returning an error stops the run; the error is not retried or
	// swallowed.
	OnTick func(stepIndex int, progress float64) error
	// OnDone is invoked after the final tick of a run that was neither
	// cancelled nor failed.
	OnDone func(stepIndex int)
	// OnFail is invoked when a tick delivered from the background loop
	// returns an error. A frame-0 error is reported by Run instead.
	OnFail func(stepIndex int, err error)
}

// Scheduler plays a single step's reveal animation tick by tick. At most
// one run is active at a time; starting a new run cancels the previous one.
type Scheduler struct {
	mu       sync.Mutex
	interval time.Duration
	active   *run
}

type run struct {
	stepIndex int
	total     int
	frame     int
	stop      chan struct{}
}

// New creates a scheduler with the given tick interval.
func New(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Scheduler{interval: interval}
}

// Run starts the animation for one step. Frame 0 is delivered synchronously
// before Run returns, so the caller observes the first render (and its
// error, if any) directly. The remaining frames are delivered from a ticker
// loop, one per interval, with strictly increasing progress values; the
// last value is (totalFrames-1)/totalFrames.
func (scheduler *Scheduler) Run(stepIndex, totalFrames int, callbacks Callbacks) error {
	if totalFrames < 1 {
		return fmt.Errorf("run step %d: frame count %d, want at least 1", stepIndex, totalFrames)
	}

	scheduler.mu.Lock()
	if scheduler.active != nil {
		close(scheduler.active.stop)
	}
	current := &run{
		stepIndex: stepIndex,
		total:     totalFrames,
		stop:      make(chan struct{}),
	}
	scheduler.active = current
	scheduler.mu.Unlock()

	if err := callbacks.OnTick(stepIndex, 0); err != nil {
		scheduler.clear(current)
		return err
	}

	current.frame = 1
	if current.frame >= current.total {
		scheduler.clear(current)
		if callbacks.OnDone != nil {
			callbacks.OnDone(stepIndex)
		}
		return nil
	}

	go scheduler.loop(current, callbacks)
	return nil
}

// Cancel stops the active run. No tick is dispatched for it after Cancel
// returns.
func (scheduler *Scheduler) Cancel() {
	scheduler.mu.Lock()
	if scheduler.active != nil {
		close(scheduler.active.stop)
		scheduler.active = nil
	}
	scheduler.mu.Unlock()
}

// Active reports whether a run is still pending ticks.
func (scheduler *Scheduler) Active() bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.active != nil
}

func (scheduler *Scheduler) loop(current *run, callbacks Callbacks) {
	ticker := time.NewTicker(scheduler.interval)
	defer ticker.Stop()

	for {
		select {
		case <-current.stop:
			return
		case <-ticker.C:
			scheduler.mu.Lock()
			if scheduler.active != current {
				scheduler.mu.Unlock()
				return
			}
			frame := current.frame
			current.frame++
			done := current.frame >= current.total
			if done {
				scheduler.active = nil
			}
			scheduler.mu.Unlock()

			progress := float64(frame) / float64(current.total)
			if err := callbacks.OnTick(current.stepIndex, progress); err != nil {
				scheduler.clear(current)
				if callbacks.OnFail != nil {
					callbacks.OnFail(current.stepIndex, err)
				}
				return
			}
			if done {
				if callbacks.OnDone != nil {
					callbacks.OnDone(current.stepIndex)
				}
				return
			}
		}
	}
}

func (scheduler *Scheduler) clear(current *run) {
	scheduler.mu.Lock()
	if scheduler.active == current {
		scheduler.active = nil
	}
	scheduler.mu.Unlock()
}
