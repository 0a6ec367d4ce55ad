package editor

import (
	"fmt"
	"strings"

	"github.com/dshills/taskpad/internal/engine/history"
	"github.com/dshills/taskpad/internal/task"
)

// EnterTaskMode scans for unchecked tasks from the cursor line to the end
// of the document and enters task selection. With no tasks the mode stays
// Normal and ErrNoTasks is returned.
func (e *Editor) EnterTaskMode() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	e.resetAction()
	tasks := task.Scan(e.doc, e.cursor.Line)
	if len(tasks) == 0 {
		e.status = "No unchecked tasks found below current line."
		return ErrNoTasks
	}
	e.setMode(&TaskSelection{Tasks: tasks, Entry: e.cursor})
	e.status = fmt.Sprintf("Found %d unchecked tasks. Use Up/Down to select, SPACE to move, ESC/ENTER to exit.", len(tasks))
	return nil
}

func (e *Editor) taskMode() (*TaskSelection, error) {
	t, ok := e.mode.(*TaskSelection)
	if !ok {
		return nil, ErrInvalidMode
	}
	return t, nil
}

// TaskUp selects the previous task, stopping at the first.
func (e *Editor) TaskUp() error {
	t, err := e.taskMode()
	if err != nil {
		return err
	}
	if t.Selected > 0 {
		t.Selected--
	}
	return nil
}

// TaskDown selects the next task, stopping at the last.
func (e *Editor) TaskDown() error {
	t, err := e.taskMode()
	if err != nil {
		return err
	}
	if t.Selected < len(t.Tasks)-1 {
		t.Selected++
	}
	return nil
}

// MoveSelectedTask moves the selected task line to the start of the entry
// line, shifting the lines in between down by one. The move is a single
// edit and its own undo group; undoing it restores the entry cursor.
// Afterwards the task list is rescanned and the moved task stays selected.
func (e *Editor) MoveSelectedTask() error {
	t, err := e.taskMode()
	if err != nil {
		return err
	}

	selected := t.Current()
	origin := selected.Line
	if e.doc.Line(origin) != selected.Text {
		// The list is stale; resolve the task by content.
		e.rescanTasks(t, selected.Text)
		if len(t.Tasks) == 0 {
			return nil
		}
		selected = t.Current()
		origin = selected.Line
	}

	dest := t.Entry.Line
	if origin == dest {
		e.status = "Task is already at the top."
		return nil
	}

	between := make([]string, 0, origin-dest)
	for i := dest; i < origin; i++ {
		between = append(between, e.doc.Line(i))
	}
	rest := strings.Join(between, "\n")
	pos := Position{Line: dest}
	deleted := rest + "\n" + selected.Text
	added := selected.Text + "\n" + rest

	before := e.cursor
	if _, err := e.doc.Modify(pos, added, deleted, false); err != nil {
		return err
	}
	rec := history.NewRecord(pos, added, deleted).WithCursor(before, pos)
	e.history.CommitGroup(e.clock.Now(), rec)
	e.lastAction = actionNone
	e.setCursor(pos)
	e.logger.Debug("task moved", "from", origin, "to", dest)

	e.rescanTasks(t, selected.Text)
	if len(t.Tasks) == 0 {
		e.setMode(Normal{})
	}
	return nil
}

// rescanTasks rebuilds the task list from the entry line, keeping the task
// with text selected or clamping the index.
func (e *Editor) rescanTasks(t *TaskSelection, text string) {
	t.Tasks = task.Scan(e.doc, t.Entry.Line)
	if i := task.IndexOf(t.Tasks, text); i >= 0 {
		t.Selected = i
	} else if t.Selected >= len(t.Tasks) {
		t.Selected = max(len(t.Tasks)-1, 0)
	}
	if t.Offset > t.Selected {
		t.Offset = t.Selected
	}
}

// ExitTaskMode discards the task list and returns to Normal. Moves already
// made stay in the document.
func (e *Editor) ExitTaskMode() error {
	if _, err := e.taskMode(); err != nil {
		return err
	}
	e.status = ""
	e.setMode(Normal{})
	return nil
}
