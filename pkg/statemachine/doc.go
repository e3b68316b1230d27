// Package statemachine implements a small finite state machine with guarded
// transitions and side-effect actions.
//
// States and events are anything with a Name. StringState and StringEvent
// cover the common case:
//
//	const (
//		Closed = statemachine.StringState("closed")
//		Open   = statemachine.StringState("open")
//		Show   = statemachine.StringEvent("open")
//		Hide   = statemachine.StringEvent("close")
//	)
//
//	m := statemachine.MustNew(Closed,
//		statemachine.WithTransition(Closed, Open, Show),
//		statemachine.WithTransition(Open, Closed, Hide,
//			statemachine.WithAction(clearForm),
//		),
//	)
//
//	err := m.Fire(ctx, Show, nil)
//
// Fire picks the first transition registered for the current state and event
// whose guards all pass, runs its actions in order and only then moves to the
// target state. An action error aborts the transition.
//
// Use IsNoTransitionAvailableError and IsTransitionRejectedError to tell an
// undefined transition from one vetoed by a guard.
package statemachine
