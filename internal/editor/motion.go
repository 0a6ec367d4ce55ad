package editor

import (
	"github.com/dshills/taskpad/internal/engine/word"
	"github.com/dshills/taskpad/internal/task"
)

// motion prepares a cursor-only command. Motions end the current undo
// group and the kill sequence.
func (e *Editor) motion() error {
	if err := e.requireNormal(); err != nil {
		return err
	}
	e.resetAction()
	return nil
}

// MoveLeft moves one grapheme left, wrapping to the previous line.
func (e *Editor) MoveLeft() error {
	if err := e.motion(); err != nil {
		return err
	}
	e.setCursor(e.doc.PrevGrapheme(e.cursor))
	return nil
}

// MoveRight moves one grapheme right, wrapping to the next line.
func (e *Editor) MoveRight() error {
	if err := e.motion(); err != nil {
		return err
	}
	e.setCursor(e.doc.NextGrapheme(e.cursor))
	return nil
}

// MoveUp moves to the previous line at the sticky display column.
func (e *Editor) MoveUp() error {
	return e.moveVertical(-1)
}

// MoveDown moves to the next line at the sticky display column.
func (e *Editor) MoveDown() error {
	return e.moveVertical(1)
}

// PageUp moves up by height lines.
func (e *Editor) PageUp(height int) error {
	return e.moveVertical(-max(height, 1))
}

// PageDown moves down by height lines.
func (e *Editor) PageDown(height int) error {
	return e.moveVertical(max(height, 1))
}

func (e *Editor) moveVertical(n int) error {
	if err := e.motion(); err != nil {
		return err
	}
	line := e.cursor.Line + n
	line = max(0, min(line, e.doc.LineCount()-1))
	if line == e.cursor.Line {
		return nil
	}
	col := e.doc.ColumnAtDisplay(line, e.desiredX, e.tabWidth)
	e.cursor = Position{Line: line, Column: col}
	return nil
}

// WordLeft moves to the start of the previous word run.
func (e *Editor) WordLeft() error {
	if err := e.motion(); err != nil {
		return err
	}
	cur := e.cursor
	if cur.Column == 0 {
		if cur.Line > 0 {
			e.setCursor(Position{Line: cur.Line - 1, Column: len(e.doc.Line(cur.Line - 1))})
		}
		return nil
	}
	e.setCursor(Position{Line: cur.Line, Column: word.PrevBoundary(e.doc.Line(cur.Line), cur.Column)})
	return nil
}

// WordRight moves to the end of the next word run.
func (e *Editor) WordRight() error {
	if err := e.motion(); err != nil {
		return err
	}
	cur := e.cursor
	line := e.doc.Line(cur.Line)
	if cur.Column >= len(line) {
		if cur.Line+1 < e.doc.LineCount() {
			e.setCursor(Position{Line: cur.Line + 1})
		}
		return nil
	}
	e.setCursor(Position{Line: cur.Line, Column: word.NextBoundary(line, cur.Column)})
	return nil
}

// LineStart moves to column 0.
func (e *Editor) LineStart() error {
	if err := e.motion(); err != nil {
		return err
	}
	e.setCursor(Position{Line: e.cursor.Line})
	return nil
}

// LineEnd moves to the end of the line.
func (e *Editor) LineEnd() error {
	if err := e.motion(); err != nil {
		return err
	}
	e.setCursor(Position{Line: e.cursor.Line, Column: len(e.doc.Line(e.cursor.Line))})
	return nil
}

// FileStart moves to the start of the document.
func (e *Editor) FileStart() error {
	if err := e.motion(); err != nil {
		return err
	}
	e.setCursor(Position{})
	return nil
}

// FileEnd moves to the end of the document.
func (e *Editor) FileEnd() error {
	if err := e.motion(); err != nil {
		return err
	}
	e.setCursor(e.doc.End())
	return nil
}

// NextSection moves to the line after the next "---" delimiter. On a
// delimiter line it moves to the line just after it. The cursor stays put
// when no such line exists.
func (e *Editor) NextSection() error {
	if err := e.motion(); err != nil {
		return err
	}
	n := e.doc.LineCount()
	target := -1
	if task.IsSeparator(e.doc.Line(e.cursor.Line)) {
		target = e.cursor.Line + 1
	} else {
		for i := e.cursor.Line + 1; i < n; i++ {
			if task.IsSeparator(e.doc.Line(i)) {
				target = i + 1
				break
			}
		}
	}
	if target > 0 && target < n {
		e.setCursor(Position{Line: target})
	}
	return nil
}

// PrevSection moves to the start of the closest section above the cursor:
// a line following a delimiter, or the first line.
func (e *Editor) PrevSection() error {
	if err := e.motion(); err != nil {
		return err
	}
	target := 0
	for i := e.cursor.Line - 1; i > 0; i-- {
		if task.IsSeparator(e.doc.Line(i - 1)) {
			target = i
			break
		}
	}
	e.setCursor(Position{Line: target})
	return nil
}
