package editor

import (
	"errors"

	"github.com/dshills/taskpad/internal/engine/document"
	"github.com/dshills/taskpad/internal/engine/history"
	"github.com/dshills/taskpad/internal/search"
)

// Editor errors.
var (
	// ErrInvalidMode is returned when an operation is invoked outside the
	// mode it belongs to.
	ErrInvalidMode = errors.New("operation not valid in current mode")

	// ErrNoTasks is returned when task selection finds no unchecked task.
	ErrNoTasks = errors.New("no unchecked tasks")

	// ErrNoSelection is returned by selection commands without a marker.
	ErrNoSelection = errors.New("no active selection")
)

// Errors from the core packages, re-exported so callers can match on one
// package.
var (
	ErrOutOfBounds     = document.ErrOutOfBounds
	ErrContentMismatch = document.ErrContentMismatch
	ErrEmptyUndoStack  = history.ErrEmptyUndoStack
	ErrEmptyRedoStack  = history.ErrEmptyRedoStack
	ErrNoMatch         = search.ErrNoMatch
)
