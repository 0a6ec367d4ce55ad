package app

import (
	"errors"

	"github.com/dshills/taskpad/internal/editor"
	"github.com/dshills/taskpad/internal/search"
)

// run executes a Normal mode action.
func (a *App) run(action Action) error {
	e := a.editor
	switch action {
	case ActionSave:
		return a.Save()
	case ActionQuit:
		return a.quit()

	case ActionMoveUp:
		return e.MoveUp()
	case ActionMoveDown:
		return e.MoveDown()
	case ActionMoveLeft:
		return e.MoveLeft()
	case ActionMoveRight:
		return e.MoveRight()
	case ActionLineStart:
		return e.LineStart()
	case ActionLineEnd:
		return e.LineEnd()
	case ActionWordLeft:
		return e.WordLeft()
	case ActionWordRight:
		return e.WordRight()
	case ActionPageUp:
		return e.PageUp(a.pageHeight())
	case ActionPageDown:
		return e.PageDown(a.pageHeight())
	case ActionFileStart:
		return e.FileStart()
	case ActionFileEnd:
		return e.FileEnd()
	case ActionNextSection:
		return e.NextSection()
	case ActionPrevSection:
		return e.PrevSection()
	case ActionMoveLineUp:
		return e.MoveLineUp()
	case ActionMoveLineDown:
		return e.MoveLineDown()

	case ActionNewline:
		return a.newline()
	case ActionBackspace:
		return e.Backspace()
	case ActionDeleteForward:
		return e.DeleteForward()
	case ActionDeleteWord:
		return e.HungryDelete()
	case ActionKillLine:
		return e.KillLine()
	case ActionYank:
		return e.Yank()
	case ActionUndo:
		return e.Undo()
	case ActionRedo:
		return e.Redo()
	case ActionIndent:
		return e.Indent()
	case ActionOutdent:
		return e.Outdent()
	case ActionToggleComment:
		return e.ToggleComment()
	case ActionToggleCheckbox:
		return e.ToggleCheckbox()

	case ActionSetMarker:
		return e.SetMarker()
	case ActionClearMarker:
		e.ClearMarker()
		e.SetStatus("")
		return nil
	case ActionCutSelection:
		return e.CutSelection()
	case ActionCopySelection:
		return e.CopySelection()

	case ActionSearch:
		return e.BeginSearch(search.Forward)
	case ActionReverseSearch:
		return e.BeginSearch(search.Backward)
	case ActionFuzzySearch:
		return e.BeginFuzzySearch()
	case ActionTaskMode:
		return a.enterTaskMode()
	}
	return &UnknownActionError{Action: string(action)}
}

func (a *App) pageHeight() int {
	return max(a.renderer.TextRows(a.editor.Mode()), 1)
}

// newline inserts a line break, which may run a slash command that enters
// task selection.
func (a *App) newline() error {
	if err := a.editor.InsertNewline(); err != nil {
		return err
	}
	a.showTasks()
	return nil
}

func (a *App) enterTaskMode() error {
	if err := a.editor.EnterTaskMode(); err != nil {
		if errors.Is(err, editor.ErrNoTasks) {
			return nil
		}
		return err
	}
	a.showTasks()
	return nil
}

func (a *App) showTasks() {
	if t, ok := a.editor.Mode().(*editor.TaskSelection); ok {
		t.EnsureVisible(a.renderer.PaneItemRows(t))
	}
}

// quit ends the session. With unsaved changes the first request only
// warns.
func (a *App) quit() error {
	if a.Modified() && !a.quitPending {
		a.quitPending = true
		a.editor.SetStatus("Unsaved changes. Press quit again to discard them.")
		return nil
	}
	return ErrQuit
}
