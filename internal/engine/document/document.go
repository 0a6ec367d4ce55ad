package document

import (
	"strings"
	"unicode/utf8"
)

// Document is an ordered, non-empty sequence of lines.
type Document struct {
	lines []string
}

// New creates a document from text. Line endings are normalized to "\n".
func New(text string) *Document {
	d := &Document{}
	d.Load(text)
	return d
}

// NewFromLines creates a document holding a copy of lines.
// An empty slice yields a document with one empty line.
func NewFromLines(lines []string) *Document {
	d := &Document{}
	if len(lines) == 0 {
		d.lines = []string{""}
		return d
	}
	d.lines = make([]string, 0, len(lines))
	for _, l := range lines {
		d.lines = append(d.lines, strings.Split(NormalizeLineEndings(l), "\n")...)
	}
	return d
}

// Load replaces the whole content with text.
// It is meant for the persistence layer; edits go through Modify.
func (d *Document) Load(text string) {
	text = NormalizeLineEndings(text)
	text = strings.TrimSuffix(text, "\n")
	d.lines = strings.Split(text, "\n")
}

// ReplaceAll is an alias for Load kept for callers that reload content.
func (d *Document) ReplaceAll(text string) {
	d.Load(text)
}

// NormalizeLineEndings converts CRLF and lone CR line breaks to LF.
func NormalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// LineCount returns the number of lines. It is always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the text of line i, or "" if i is out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// Lines returns a copy of all lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Text returns the content joined with "\n".
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// End returns the position after the last character of the document.
func (d *Document) End() Position {
	last := len(d.lines) - 1
	return Position{Line: last, Column: len(d.lines[last])}
}

// Valid reports whether pos satisfies the bounds invariant.
func (d *Document) Valid(pos Position) bool {
	if pos.Line < 0 || pos.Line >= len(d.lines) {
		return false
	}
	line := d.lines[pos.Line]
	if pos.Column < 0 || pos.Column > len(line) {
		return false
	}
	return pos.Column == len(line) || utf8.RuneStart(line[pos.Column])
}

// Clamp returns the closest valid position to pos.
func (d *Document) Clamp(pos Position) Position {
	if pos.Line < 0 {
		return Position{}
	}
	if pos.Line >= len(d.lines) {
		return d.End()
	}
	line := d.lines[pos.Line]
	if pos.Column < 0 {
		pos.Column = 0
	}
	if pos.Column > len(line) {
		pos.Column = len(line)
	}
	for pos.Column > 0 && pos.Column < len(line) && !utf8.RuneStart(line[pos.Column]) {
		pos.Column--
	}
	return pos
}

// TextRange returns the text between start and end (exclusive).
func (d *Document) TextRange(start, end Position) (string, error) {
	if !d.Valid(start) || !d.Valid(end) {
		return "", ErrOutOfBounds
	}
	start, end = Ordered(start, end)
	if start.Line == end.Line {
		return d.lines[start.Line][start.Column:end.Column], nil
	}
	var sb strings.Builder
	sb.WriteString(d.lines[start.Line][start.Column:])
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(d.lines[i])
	}
	sb.WriteByte('\n')
	sb.WriteString(d.lines[end.Line][:end.Column])
	return sb.String(), nil
}

// Modify is the single content mutation primitive.
//
// Forward (isUndo false): the text at pos must equal deleted; it is removed
// and added is inserted in its place. Inverse (isUndo true): the roles of
// added and deleted are swapped. Line breaks inside either string split or
// merge lines. The returned position is immediately after the inserted text.
//
// On error the document is unchanged.
func (d *Document) Modify(pos Position, added, deleted string, isUndo bool) (Position, error) {
	if !d.Valid(pos) {
		return pos, ErrOutOfBounds
	}

	remove, insert := deleted, added
	if isUndo {
		remove, insert = added, deleted
	}

	end, ok := d.match(pos, remove)
	if !ok {
		got, _ := d.textFrom(pos, len(remove))
		return pos, &MismatchError{Pos: pos, Want: remove, Got: got}
	}

	prefix := d.lines[pos.Line][:pos.Column]
	suffix := d.lines[end.Line][end.Column:]

	parts := strings.Split(insert, "\n")
	last := len(parts) - 1
	result := Position{Line: pos.Line + last, Column: len(parts[last])}
	if last == 0 {
		result.Column += len(prefix)
	}
	parts[0] = prefix + parts[0]
	parts[last] += suffix

	d.splice(pos.Line, end.Line+1, parts)
	return result, nil
}

// match reports whether text occurs at pos and returns the position after it.
func (d *Document) match(pos Position, text string) (Position, bool) {
	cur := pos
	for len(text) > 0 {
		line := d.lines[cur.Line]
		nl := strings.IndexByte(text, '\n')
		segment := text
		if nl >= 0 {
			segment = text[:nl]
		}
		if !strings.HasPrefix(line[cur.Column:], segment) {
			return pos, false
		}
		cur.Column += len(segment)
		if nl < 0 {
			break
		}
		if cur.Column != len(line) || cur.Line+1 >= len(d.lines) {
			return pos, false
		}
		cur = Position{Line: cur.Line + 1}
		text = text[nl+1:]
	}
	return cur, true
}

// textFrom returns up to n bytes of content starting at pos, counting each
// line break as one byte. It is used for error reporting.
func (d *Document) textFrom(pos Position, n int) (string, bool) {
	var sb strings.Builder
	line, col := pos.Line, pos.Column
	for sb.Len() < n {
		rest := d.lines[line][col:]
		if need := n - sb.Len(); len(rest) >= need {
			sb.WriteString(rest[:need])
			return sb.String(), true
		}
		sb.WriteString(rest)
		if line+1 >= len(d.lines) {
			return sb.String(), false
		}
		sb.WriteByte('\n')
		line, col = line+1, 0
	}
	return sb.String(), true
}

// splice replaces lines[from:to] with repl.
func (d *Document) splice(from, to int, repl []string) {
	tail := append([]string(nil), d.lines[to:]...)
	d.lines = append(append(d.lines[:from], repl...), tail...)
}
