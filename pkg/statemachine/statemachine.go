package statemachine

import "context"

// State is a named node of the machine.
type State interface {
	Name() string
}

// Event is a named trigger for a transition.
type Event interface {
	Name() string
}

// Action runs during a transition. Returning an error keeps the current state.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Guard decides at fire time whether a transition may proceed.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Transition moves the machine from From to To when Event fires.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard  // all must pass
	Actions []Action // run in order before the state changes
}

// StateMachine is a finite state machine safe for concurrent use.
type StateMachine interface {
	Current() State
	Is(state State) bool
	AddTransition(from, to State, event Event, guards []Guard, actions []Action) error
	Fire(ctx context.Context, event Event, data any) error
	CanFire(ctx context.Context, event Event, data any) bool
	Reset() error
}

// StringState is a State backed by its name.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// StringEvent is an Event backed by its name.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}
