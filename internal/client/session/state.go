// Package session owns the client-side authentication state machine.
//
// Transitions are modeled as a pure reducer over an explicit action type, so
// the mapping (current state, action) → next state is total and testable in
// isolation from the I/O that produces the action payloads. The Manager in
// this package performs that I/O and dispatches the resulting actions.
package session

import "shopkeep/internal/client/models"

// Status is the authentication status of the session.
type Status string

const (
	// StatusChecking is the initial status, before the stored credential
	// has been validated.
	StatusChecking Status = "checking"

	StatusAuthenticated    Status = "authenticated"
	StatusNotAuthenticated Status = "not-authenticated"
)

// State is the whole session state. Invariant: Status == StatusAuthenticated
// exactly when Token and User are both set; transitions always clear or set
// them together.
type State struct {
	Status   Status
	Token    string
	User     *models.User
	ErrorMsg string
}

// Initial returns the process-start state.
func Initial() State {
	return State{Status: StatusChecking}
}

// Authenticated reports whether the session is in the authenticated status.
func (s State) Authenticated() bool {
	return s.Status == StatusAuthenticated
}

// ActionType enumerates the session transitions.
type ActionType string

const (
	ActionAuthenticated    ActionType = "authenticated"
	ActionAddError         ActionType = "addError"
	ActionRemoveError      ActionType = "removeError"
	ActionNotAuthenticated ActionType = "notAuthenticated"
	ActionSignOut          ActionType = "signOut"
)

// Action is one session transition with its payload.
type Action struct {
	Type     ActionType
	Token    string
	User     *models.User
	ErrorMsg string
}

// Reduce applies one action to the state and returns the next state.
// Unknown action types leave the state unchanged.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionAuthenticated:
		s.Status = StatusAuthenticated
		s.Token = a.Token
		s.User = a.User
		s.ErrorMsg = ""
		return s

	case ActionAddError:
		s.Status = StatusNotAuthenticated
		s.Token = ""
		s.User = nil
		s.ErrorMsg = a.ErrorMsg
		return s

	case ActionRemoveError:
		s.ErrorMsg = ""
		return s

	case ActionNotAuthenticated, ActionSignOut:
		s.Status = StatusNotAuthenticated
		s.Token = ""
		s.User = nil
		return s

	default:
		return s
	}
}
