package cards

import (
	"errors"
	"fmt"
)

// ErrRestartRequired is returned after the sample deck has been created
// on first run. The caller should tell the user to restart and exit cleanly.
var ErrRestartRequired = errors.New("sample deck created, restart required")

// StorageError indicates the deck file could not be read or written for a
// reason other than being absent.
type StorageError struct {
	Op   string // "load", "append" or "bootstrap"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s deck %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ValidationError indicates a card side was empty or missing.
type ValidationError struct {
	Field string // "question" or "answer"
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("flashcard %s must not be empty", e.Field)
}
