package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrUnknownAction is wrapped by UnknownActionError.
	ErrUnknownAction = errors.New("unknown action")
)

// UnknownActionError reports a key bound to an action that does not exist.
type UnknownActionError struct {
	Key    string
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("key %q: %s %q", e.Key, ErrUnknownAction, e.Action)
}

func (e *UnknownActionError) Unwrap() error {
	return ErrUnknownAction
}

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
