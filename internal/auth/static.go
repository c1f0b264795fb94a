package auth

import "context"

// StaticProvider is a Provider with a fixed user id. It stands in for the
// platform auth provider in the CLI and in tests; an empty UID models the
// signed-out state.
type StaticProvider struct {
	UID     string
	changes chan State
}

// NewStaticProvider creates a provider fixed to the given uid.
func NewStaticProvider(uid string) *StaticProvider {
	return &StaticProvider{UID: uid, changes: make(chan State, 1)}
}

// CurrentUID returns the fixed uid, or ErrSignedOut when empty.
func (p *StaticProvider) CurrentUID(ctx context.Context) (string, error) {
	if p.UID == "" {
		return "", ErrSignedOut
	}
	return p.UID, nil
}

// StateChanges returns the (static) state stream.
func (p *StaticProvider) StateChanges() <-chan State {
	return p.changes
}

// SignOut clears the fixed uid.
func (p *StaticProvider) SignOut(ctx context.Context) error {
	p.UID = ""
	return nil
}

// DeleteAccount clears the fixed uid; the static provider has no remote
// account to remove.
func (p *StaticProvider) DeleteAccount(ctx context.Context) error {
	p.UID = ""
	return nil
}
