package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"shopkeep/internal/client/api"
	"shopkeep/internal/client/credential"
	"shopkeep/internal/client/models"
	"shopkeep/internal/logging"
)

const (
	fallbackSignInError = "Wrong credentials"
	fallbackSignUpError = "Something went wrong"
)

// Manager owns the single session State and drives its transitions.
//
// Every operation returns an explicit error; the ErrorMsg slot of the state
// is additionally maintained as the user-facing display channel for failed
// sign-in/sign-up attempts.
type Manager struct {
	mu       sync.RWMutex
	state    State
	client   api.Client
	creds    credential.Store
	log      logging.Logger
	validate *validator.Validate
}

func NewManager(client api.Client, creds credential.Store, log logging.Logger) *Manager {
	return &Manager{
		state:    Initial(),
		client:   client,
		creds:    creds,
		log:      log.With("component", "session"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// State returns a copy of the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) dispatch(a Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Reduce(m.state, a)
}

// CheckSession validates the stored credential against the backend, once at
// process start. With no stored credential it transitions straight to
// not-authenticated without any network call. On a definitive rejection
// (401/403) the stale credential is removed from the store; on transport
// failure it is left in place, since its validity is unknown.
func (m *Manager) CheckSession(ctx context.Context) error {
	_, err := m.creds.Get(ctx)
	if err != nil {
		m.dispatch(Action{Type: ActionNotAuthenticated})
		if errors.Is(err, credential.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("read credential: %w", err)
	}

	res, err := m.client.ValidateSession(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			if clearErr := m.creds.Clear(ctx); clearErr != nil {
				m.log.Warn(ctx, "failed to clear rejected credential", "error", clearErr)
			}
		}
		m.dispatch(Action{Type: ActionNotAuthenticated})
		return fmt.Errorf("validate session: %w", err)
	}

	return m.authenticate(ctx, res)
}

type signInInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// SignIn exchanges credentials for a session. On failure the ErrorMsg slot
// is set to the server-supplied message, or "Wrong credentials" when the
// server gave none.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	if err := m.validate.Struct(signInInput{Email: email, Password: password}); err != nil {
		m.dispatch(Action{Type: ActionAddError, ErrorMsg: fallbackSignInError})
		return fmt.Errorf("invalid credentials: %w", err)
	}

	res, err := m.client.Login(ctx, email, password)
	if err != nil {
		msg := api.ServerMessage(err)
		if msg == "" {
			msg = fallbackSignInError
		}
		m.dispatch(Action{Type: ActionAddError, ErrorMsg: msg})
		return fmt.Errorf("sign in: %w", err)
	}

	return m.authenticate(ctx, res)
}

type signUpInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// SignUp registers a new account. On failure the ErrorMsg slot is set to the
// first field error reported by the server, or a generic fallback.
func (m *Manager) SignUp(ctx context.Context, name, email, password string) error {
	if err := m.validate.Struct(signUpInput{Name: name, Email: email, Password: password}); err != nil {
		m.dispatch(Action{Type: ActionAddError, ErrorMsg: err.Error()})
		return fmt.Errorf("invalid registration data: %w", err)
	}

	res, err := m.client.Register(ctx, name, email, password)
	if err != nil {
		msg := api.ServerMessage(err)
		if msg == "" {
			msg = fallbackSignUpError
		}
		m.dispatch(Action{Type: ActionAddError, ErrorMsg: msg})
		return fmt.Errorf("sign up: %w", err)
	}

	return m.authenticate(ctx, res)
}

// authenticate persists the (possibly refreshed) token and transitions to
// authenticated. A failed persist does not invalidate the in-memory session
// but is reported to the caller.
func (m *Manager) authenticate(ctx context.Context, res *models.AuthResult) error {
	persistErr := m.creds.Set(ctx, res.Token)

	user := res.User
	m.dispatch(Action{Type: ActionAuthenticated, Token: res.Token, User: &user})

	if persistErr != nil {
		m.log.Warn(ctx, "failed to persist token", "error", persistErr)
		return fmt.Errorf("persist token: %w", persistErr)
	}
	return nil
}

// SignOut removes the stored credential and unconditionally transitions to
// not-authenticated. Idempotent.
func (m *Manager) SignOut(ctx context.Context) error {
	err := m.creds.Clear(ctx)
	m.dispatch(Action{Type: ActionSignOut})
	if err != nil {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}

// RemoveError clears the ErrorMsg slot; no other state change.
func (m *Manager) RemoveError() {
	m.dispatch(Action{Type: ActionRemoveError})
}
