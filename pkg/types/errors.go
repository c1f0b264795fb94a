package types

import "errors"

// Store lifecycle and lookup errors.
var (
	// ErrNotFound is returned by get and update operations when no record
	// with the given id exists. Delete reports absence with a false return
	// instead, matching the destructive-operation contract.
	ErrNotFound = errors.New("record not found")

	// ErrStoreClosed is returned by operations on a store that has been
	// closed or was never opened.
	ErrStoreClosed = errors.New("record store is closed")

	// ErrSchemaTooNew is returned at open when the on-disk schema version
	// is newer than this binary supports. Fatal: the store must not be
	// used in-session.
	ErrSchemaTooNew = errors.New("on-disk schema version is newer than supported")
)

// ErrInvalidSnapshot wraps any shape or parse failure found while applying a
// remote snapshot. Restore aborts the whole transaction when it is raised.
var ErrInvalidSnapshot = errors.New("invalid snapshot")
