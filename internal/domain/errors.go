package domain

import "errors"

var (
	// ErrNotFound reports a record or submission id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrBusy reports an AI call already outstanding for the same field.
	ErrBusy = errors.New("operation already in progress")
	// ErrStorageFull reports that storage capacity is exhausted. The write
	// was abandoned and in-memory state is unchanged.
	ErrStorageFull = errors.New("storage is full")
	// ErrConfirmationRequired guards destructive actions.
	ErrConfirmationRequired = errors.New("confirmation required")
)
