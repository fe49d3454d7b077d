package sequencer

import "time"

// EventType defines the type of sequencer event.
type EventType string

const (
	// EventStepEnter fires when navigation makes a new step current,
	// just before its animation starts.
	EventStepEnter EventType = "step_enter"
	// EventProgress fires once per delivered animation tick.
	EventProgress EventType = "progress"
	// EventStepSettled fires when a step reaches its fully revealed
	// state, either by finishing its animation or via a static redraw.
	EventStepSettled EventType = "step_settled"
	// EventReset fires after the sequencer returns to the landing view.
	EventReset EventType = "reset"
	// EventNotice carries the informational signal for rejected
	// navigation. Rejections are not failures.
	EventNotice EventType = "notice"
	// EventRenderFailure fires when a render call errors mid-animation.
	// The host should treat the session as lost.
	EventRenderFailure EventType = "render_failure"
)

// Event represents a sequencer update for observers.
type Event struct {
	Type       EventType
	StepIndex  int
	StepName   string
	Progress   float64
	AtLastStep bool
	Message    string
	Err        error
	At         time.Time
}
