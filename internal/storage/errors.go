package storage

import (
	"errors"
	"fmt"
)

// ErrNoProgress is returned by LoadProgress for a session that has
// never been saved. It is an expected outcome, not a failure: the
// caller starts the session from the intro cutscene.
var ErrNoProgress = errors.New("storage: no saved progress for session")

// ErrNoSettings is returned by LoadSettings when the settings row has
// never been written.
var ErrNoSettings = errors.New("storage: no settings saved")

// ErrLowDiskSpace is the cause carried by an UnavailableError when a
// write was refused by the free-space guard before touching the
// database.
var ErrLowDiskSpace = errors.New("storage: not enough free disk space")

// ValidationError reports a rejected input value (bad session name,
// bad level difficulty). The database was not touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("storage: invalid %s: %s", e.Field, e.Reason)
}

// CapacityError reports that the session limit is reached.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("storage: session limit of %d reached", e.Limit)
}

// DuplicateNameError reports a case-insensitive session name collision.
// Suggestion carries an alternate name the caller can offer the user.
type DuplicateNameError struct {
	Name       string
	Suggestion string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("storage: session name %q already exists (try %q)", e.Name, e.Suggestion)
}

// InvalidSessionError reports an operation against a session id that
// does not exist.
type InvalidSessionError struct {
	ID int64
}

func (e *InvalidSessionError) Error() string {
	return fmt.Sprintf("storage: no session with id %d", e.ID)
}

// UnavailableError reports that the underlying store could not be
// reached or written: connection failure, disk failure, or the
// free-space guard refusing the write. The caller is expected to
// surface a retry-oriented message; nothing is retried here.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// CorruptRecordError reports a stored progress row whose position does
// not parse back into two coordinates. This is a data-integrity
// failure surfaced to the caller, never silently defaulted.
type CorruptRecordError struct {
	SessionID int64
	Raw       string
	Err       error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("storage: corrupt position %q for session %d: %v", e.Raw, e.SessionID, e.Err)
}

func (e *CorruptRecordError) Unwrap() error {
	return e.Err
}

// unavailable wraps a database error with the failing operation.
func unavailable(op string, err error) error {
	return &UnavailableError{Op: op, Err: err}
}
