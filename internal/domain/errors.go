package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource state has changed")
)

// ValidationError reports a precondition that failed locally, before any
// request was issued to the store.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// ConflictError carries the store's explanation for a state conflict, such as
// a decision already made by another admin.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	if e.Msg == "" {
		return ErrConflict.Error()
	}
	return e.Msg
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// CapacityExceededError is the conflict raised when an ACCEPT decision loses
// the race for a part's last open slot. It still matches ErrConflict under
// errors.Is, so generic conflict handling catches it.
type CapacityExceededError struct {
	Part string
	Msg  string
}

func (e *CapacityExceededError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Part == "" {
		return "part has no remaining capacity"
	}
	return fmt.Sprintf("part %s has no remaining capacity", e.Part)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrConflict
}

// TransportError wraps a network or infrastructure failure. A caller may
// retry it manually; the workflow layer never retries it on its own.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
