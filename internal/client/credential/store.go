// Package credential persists the session token across process restarts.
// A single opaque string is stored under a fixed location; the rest of the
// client treats it as a black box.
package credential

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no credential has been stored yet.
var ErrNotFound = errors.New("credential not found")

// Store is the persisted credential store.
//
// Contract:
//   - Get returns the stored token, or ErrNotFound when absent.
//   - Set overwrites the stored token; last completed write wins.
//   - Clear removes the stored token; clearing an empty store is not an error.
//
// All methods must honor context cancellation.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
