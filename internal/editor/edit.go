package editor

import (
	"errors"
	"strings"

	"github.com/dshills/taskpad/internal/engine/document"
	"github.com/dshills/taskpad/internal/engine/word"
	"github.com/dshills/taskpad/internal/task"
)

// commentPrefix is inserted after indentation by ToggleComment.
const commentPrefix = "# "

// InsertText inserts text at the cursor. Line breaks in text, including
// CRLF and lone CR, split the line.
func (e *Editor) InsertText(text string) error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	e.status = ""
	return e.edit(actionInsert, e.cursor, document.NormalizeLineEndings(text), "")
}

// InsertNewline splits the line at the cursor and indents the new line
// like the current one.
//
// When the cursor is at the end of a slash command line the command runs
// instead: "/task" clears the line and enters task selection, "/today" and
// "/now" are replaced by the date after the line break is inserted.
func (e *Editor) InsertNewline() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	cur := e.cursor
	line := e.doc.Line(cur.Line)
	atEnd := cur.Column == len(line)

	if atEnd && isTaskCommand(line) {
		start := Position{Line: cur.Line}
		err := e.editAlone(actionOther, start, "", line, func(Position) Position { return start })
		if err != nil {
			return err
		}
		if err := e.EnterTaskMode(); err != nil && !errors.Is(err, ErrNoTasks) {
			return err
		}
		return nil
	}

	indent := task.Indent(line)
	if err := e.edit(actionNewline, cur, "\n"+indent, ""); err != nil {
		return err
	}

	if atEnd {
		if repl, ok := expandCommand(line, e.clock.Now()); ok {
			here := e.cursor
			return e.editPlace(actionOther, Position{Line: cur.Line}, indent+repl, line,
				func(Position) Position { return here })
		}
	}
	return nil
}

// Backspace deletes the grapheme before the cursor. Inside leading spaces
// it deletes back to the previous indent stop; at the start of a line it joins the line to
// the previous one.
func (e *Editor) Backspace() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	cur := e.cursor
	if cur.Column == 0 {
		if cur.Line == 0 {
			return nil
		}
		prev := Position{Line: cur.Line - 1, Column: len(e.doc.Line(cur.Line - 1))}
		return e.edit(actionDelete, prev, "", "\n")
	}

	line := e.doc.Line(cur.Line)
	prefix := line[:cur.Column]
	if strings.TrimLeft(prefix, " ") == "" {
		// Back to the previous indent stop.
		n := cur.Column % e.indentWidth
		if n == 0 {
			n = e.indentWidth
		}
		return e.edit(actionDelete, Position{Line: cur.Line, Column: cur.Column - n}, "", prefix[:n])
	}

	start := e.doc.PrevGrapheme(cur)
	return e.edit(actionDelete, start, "", line[start.Column:cur.Column])
}

// DeleteForward deletes the grapheme under the cursor, or joins the next
// line at the end of a line.
func (e *Editor) DeleteForward() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	cur := e.cursor
	line := e.doc.Line(cur.Line)
	if cur.Column < len(line) {
		next := e.doc.NextGrapheme(cur)
		return e.edit(actionDelete, cur, "", line[cur.Column:next.Column])
	}
	if cur.Line+1 < e.doc.LineCount() {
		return e.edit(actionDelete, cur, "", "\n")
	}
	return nil
}

// HungryDelete deletes backward to the start of the previous word run,
// including whitespace before it.
func (e *Editor) HungryDelete() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	cur := e.cursor
	if cur.Column == 0 {
		return e.Backspace()
	}
	line := e.doc.Line(cur.Line)
	start := word.DeleteWordStart(line, cur.Column)
	return e.edit(actionDelete, Position{Line: cur.Line, Column: start}, "", line[start:cur.Column])
}

// KillLine deletes from the cursor to the end of the line, or the line
// break when the cursor is already there. Consecutive kills accumulate in
// the kill buffer, which is also copied to the clipboard.
func (e *Editor) KillLine() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	if !e.lastWasKill {
		e.killBuffer = ""
	}
	cur := e.cursor
	line := e.doc.Line(cur.Line)

	var killed string
	switch {
	case cur.Column < len(line):
		killed = line[cur.Column:]
	case cur.Line+1 < e.doc.LineCount():
		killed = "\n"
	default:
		e.lastWasKill = true
		return nil
	}
	if err := e.edit(actionDelete, cur, "", killed); err != nil {
		return err
	}
	e.killBuffer += killed
	e.lastWasKill = true
	e.writeClipboard(e.killBuffer)
	return nil
}

// Yank inserts the clipboard contents, falling back to the kill buffer.
func (e *Editor) Yank() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	if e.clip != nil {
		if text, err := e.clip.ReadAll(); err == nil && text != "" {
			e.killBuffer = document.NormalizeLineEndings(text)
		}
	}
	if e.killBuffer == "" {
		e.status = "Kill buffer is empty."
		return nil
	}
	return e.edit(actionInsert, e.cursor, e.killBuffer, "")
}

// KillBuffer returns the accumulated killed text.
func (e *Editor) KillBuffer() string {
	return e.killBuffer
}

func (e *Editor) writeClipboard(text string) {
	if e.clip == nil {
		return
	}
	if err := e.clip.WriteAll(text); err != nil {
		e.logger.Debug("clipboard write failed", "err", err)
		e.status = "Failed to set clipboard: " + err.Error()
	}
}

// Indent inserts one indent step at the start of the current line, or of
// every non-empty selected line.
func (e *Editor) Indent() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	step := strings.Repeat(" ", e.indentWidth)
	return e.transformLines(actionOther, func(lines []string) []string {
		return mapNonEmpty(lines, func(l string) string { return step + l })
	})
}

// Outdent removes up to one indent step of leading spaces from the current
// line, or from every selected line.
func (e *Editor) Outdent() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	return e.transformLines(actionOther, func(lines []string) []string {
		return mapNonEmpty(lines, func(l string) string {
			n := 0
			for n < e.indentWidth && n < len(l) && l[n] == ' ' {
				n++
			}
			return l[n:]
		})
	})
}

// ToggleComment comments or uncomments the current line, or every
// non-empty selected line. A selection is uncommented only when all of its
// lines are commented.
func (e *Editor) ToggleComment() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	return e.transformLines(actionComment, func(lines []string) []string {
		all := true
		for _, l := range lines {
			if l != "" && !isCommented(l) {
				all = false
				break
			}
		}
		return mapNonEmpty(lines, func(l string) string {
			indent := task.Indent(l)
			if all {
				return indent + strings.TrimPrefix(l[len(indent):], commentPrefix)
			}
			return indent + commentPrefix + l[len(indent):]
		})
	})
}

func isCommented(line string) bool {
	return strings.HasPrefix(line[len(task.Indent(line)):], commentPrefix)
}

// ToggleCheckbox advances the current line, or every non-empty selected
// line, through plain, list item, unchecked and checked. Selected lines
// that disagree are all made list items. The toggle is always an undo
// group of its own.
func (e *Editor) ToggleCheckbox() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	e.history.Break()
	err := e.transformLines(actionOther, func(lines []string) []string {
		var target task.LineState
		first := true
		for _, l := range lines {
			if l == "" {
				continue
			}
			s := task.StateOf(l)
			if first {
				target, first = s.Next(), false
			} else if s.Next() != target {
				target = task.ListItem
				break
			}
		}
		return mapNonEmpty(lines, func(l string) string { return task.Transform(l, target) })
	})
	e.history.Break()
	return err
}

func mapNonEmpty(lines []string, fn func(string) string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if l == "" {
			out[i] = l
			continue
		}
		out[i] = fn(l)
	}
	return out
}

// transformLines rewrites the current line, or the selected lines, with fn
// as one edit. fn receives and returns the same number of lines. The
// cursor and marker keep their place relative to the line content.
func (e *Editor) transformLines(kind actionKind, fn func([]string) []string) error {
	first, last := e.cursor.Line, e.cursor.Line
	if start, end, ok := e.Selection(); ok {
		first, last = start.Line, end.Line
		if end.Column == 0 && last > first {
			last--
		}
	}

	old := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		old = append(old, e.doc.Line(i))
	}
	repl := fn(old)
	if len(repl) != len(old) {
		return errors.New("line transform changed the line count")
	}
	oldText, newText := strings.Join(old, "\n"), strings.Join(repl, "\n")
	if oldText == newText {
		return nil
	}

	shift := func(p Position) Position {
		if p.Line < first || p.Line > last {
			return p
		}
		i := p.Line - first
		return Position{Line: p.Line, Column: shiftColumn(old[i], repl[i], p.Column)}
	}
	cursor := shift(e.cursor)
	err := e.editPlace(kind, Position{Line: first}, newText, oldText, func(Position) Position { return cursor })
	if err != nil {
		return err
	}
	if e.marker != nil {
		m := e.doc.Clamp(shift(*e.marker))
		e.marker = &m
	}
	return nil
}

// shiftColumn maps col in before to the matching column in after, where
// after differs from before only in a prefix change at the indentation.
func shiftColumn(before, after string, col int) int {
	indent := len(task.Indent(before))
	if col < indent && len(task.Indent(after)) >= col {
		return col
	}
	col += len(after) - len(before)
	if col < 0 {
		col = 0
	}
	if col > len(after) {
		col = len(after)
	}
	return col
}

// MoveLineUp swaps the current line with the one above it.
func (e *Editor) MoveLineUp() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	cur := e.cursor
	if cur.Line == 0 {
		return nil
	}
	above, here := e.doc.Line(cur.Line-1), e.doc.Line(cur.Line)
	dest := Position{Line: cur.Line - 1, Column: cur.Column}
	return e.editPlace(actionLineMove, Position{Line: cur.Line - 1}, here+"\n"+above, above+"\n"+here,
		func(Position) Position { return dest })
}

// MoveLineDown swaps the current line with the one below it.
func (e *Editor) MoveLineDown() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	cur := e.cursor
	if cur.Line+1 >= e.doc.LineCount() {
		return nil
	}
	here, below := e.doc.Line(cur.Line), e.doc.Line(cur.Line+1)
	dest := Position{Line: cur.Line + 1, Column: cur.Column}
	return e.editPlace(actionLineMove, Position{Line: cur.Line}, below+"\n"+here, here+"\n"+below,
		func(Position) Position { return dest })
}
