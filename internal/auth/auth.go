// Package auth declares the contract with the external authentication
// provider. The persistence core never implements sign-in itself; it consumes
// the resulting user id and the auth-state change stream.
package auth

import (
	"context"
	"errors"
)

// ErrSignedOut is returned by CurrentUID when no user session exists.
var ErrSignedOut = errors.New("no signed-in user")

// State is one auth-state change notification.
type State struct {
	UID      string
	SignedIn bool
}

// Provider is the external authentication collaborator. Account lifecycle
// (sign-in, sign-up, credential handling) is delegated entirely to it.
type Provider interface {
	// CurrentUID returns the signed-in user's id, or ErrSignedOut.
	CurrentUID(ctx context.Context) (string, error)

	// StateChanges streams auth-state transitions for the life of the
	// provider.
	StateChanges() <-chan State

	// SignOut ends the current session.
	SignOut(ctx context.Context) error

	// DeleteAccount permanently deletes the signed-in user's auth record.
	DeleteAccount(ctx context.Context) error
}
