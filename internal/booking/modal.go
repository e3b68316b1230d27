package booking

import (
	"context"
	"errors"

	"github.com/perfecthome/site/pkg/statemachine"
)

// Modal states and events.
var (
	StateClosed = statemachine.StringState("closed")
	StateOpen   = statemachine.StringState("open")

	EventOpen  = statemachine.StringEvent("open")
	EventClose = statemachine.StringEvent("close")
)

// Modal is the two-state booking dialog: closed until a call to action opens
// it, open until the visitor closes it or a submission succeeds.
type Modal struct {
	sm statemachine.StateMachine
}

// ModalOption adds behaviour to the modal's transitions.
type ModalOption func(*modalConfig)

type modalConfig struct {
	onOpen  []statemachine.Action
	onClose []statemachine.Action
}

// OnOpen runs action when the modal opens.
func OnOpen(action statemachine.Action) ModalOption {
	return func(c *modalConfig) {
		c.onOpen = append(c.onOpen, action)
	}
}

// OnClose runs action when the modal closes. A failing action keeps it open.
func OnClose(action statemachine.Action) ModalOption {
	return func(c *modalConfig) {
		c.onClose = append(c.onClose, action)
	}
}

// NewModal creates a modal in the closed state, or open when open is true.
func NewModal(open bool, opts ...ModalOption) *Modal {
	cfg := &modalConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	openOpts := make([]statemachine.TransitionOption, 0, len(cfg.onOpen))
	for _, a := range cfg.onOpen {
		openOpts = append(openOpts, statemachine.WithAction(a))
	}
	closeOpts := make([]statemachine.TransitionOption, 0, len(cfg.onClose))
	for _, a := range cfg.onClose {
		closeOpts = append(closeOpts, statemachine.WithAction(a))
	}

	initial := StateClosed
	if open {
		initial = StateOpen
	}

	return &Modal{
		sm: statemachine.MustNew(initial,
			statemachine.WithTransition(StateClosed, StateOpen, EventOpen, openOpts...),
			statemachine.WithTransition(StateOpen, StateClosed, EventClose, closeOpts...),
		),
	}
}

// Open opens the modal. Opening an open modal is a no-op.
func (m *Modal) Open(ctx context.Context) error {
	return m.fire(ctx, EventOpen)
}

// Close closes the modal. Closing a closed modal is a no-op.
func (m *Modal) Close(ctx context.Context) error {
	return m.fire(ctx, EventClose)
}

func (m *Modal) IsOpen() bool {
	return m.sm.Is(StateOpen)
}

func (m *Modal) State() statemachine.State {
	return m.sm.Current()
}

func (m *Modal) fire(ctx context.Context, event statemachine.Event) error {
	err := m.sm.Fire(ctx, event, nil)

	var noTransition *statemachine.ErrNoTransitionAvailable
	if errors.As(err, &noTransition) {
		return nil
	}
	return err
}
