// Package editor is the mode controller of taskpad.
//
// An Editor owns one document, its undo history and the cursor. Every
// content change goes through document.Modify and is committed to the
// history; every command runs to completion before the next one.
//
// # Modes
//
// Exactly one mode is active:
//
//   - Normal: editing and motion commands
//   - *Search: incremental search; the cursor follows the match
//   - *TaskSelection: reorder unchecked tasks below the entry line
//   - *FuzzySearch: ranked line search; confirming jumps to the line
//
// Non-normal modes only return to Normal. Calling an operation that belongs
// to another mode returns ErrInvalidMode.
//
// # Undo grouping
//
// Edits of the same kind committed within the grouping interval form one
// undo group. A change of edit kind, a cursor motion or a mode change
// starts a new group.
//
// # Thread Safety
//
// An Editor is not safe for concurrent use. The application drives it from
// its single event loop.
package editor
