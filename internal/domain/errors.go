package domain

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned by session stores for unknown IDs.
var ErrSessionNotFound = errors.New("session not found")

// ProviderError wraps a failure calling the completion provider
// (network, auth, quota). The turn is aborted; the user message is already
// persisted and can be resubmitted.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("completion provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// PersistError wraps a journal or profile write failure inside tool
// execution. It is reported separately from provider errors: the assistant
// text was already generated and should still be shown.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
