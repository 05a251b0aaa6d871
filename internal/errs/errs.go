// Package errs defines the sentinel error kinds shared across the omnibar
// engine, so callers can classify failures with errors.Is instead of
// string matching.
package errs

import "errors"

var (
	// ErrNotFound covers a missing macro, shortcut, or window id.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedAction covers an unrecognized internal:system: action.
	ErrUnsupportedAction = errors.New("unsupported action")

	// ErrSpawnFailed covers a child process that could not be started.
	ErrSpawnFailed = errors.New("spawn failed")

	// ErrPoisonedState covers a cache whose shared-state primitive is
	// unusable; the refresher exits and reads degrade to empty.
	ErrPoisonedState = errors.New("poisoned state")

	// ErrParseFailed covers an unparseable calculator expression.
	ErrParseFailed = errors.New("parse failed")
)
