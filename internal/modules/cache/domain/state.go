package domain

import (
	"fmt"

	apperrors "examprep/internal/platform/errors"
)

type State string

const (
	StateNew        State = "new"
	StateInstalling State = "installing"
	StateInstalled  State = "installed"
	StateActive     State = "active"
	StateSuperseded State = "superseded"
	StateTerminated State = "terminated"
)

var transitions = map[State][]State{
	StateNew:        {StateInstalling, StateTerminated},
	StateInstalling: {StateInstalled, StateTerminated},
	StateInstalled:  {StateActive, StateSuperseded, StateTerminated},
	StateActive:     {StateSuperseded, StateTerminated},
	StateSuperseded: {StateTerminated},
}

func (s State) Next(to State) (State, error) {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return to, nil
		}
	}
	return s, fmt.Errorf("%s -> %s: %w", s, to, apperrors.ErrInvalidTransition)
}

// Controls reports whether a controller in this state intercepts requests.
func (s State) Controls() bool {
	return s == StateActive
}
