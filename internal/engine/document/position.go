package document

import "fmt"

// Position is a line and column location in a Document.
// Both fields are 0-indexed; Column is a byte offset within the line.
type Position struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Advance returns the position reached by writing text starting at p.
func (p Position) Advance(text string) Position {
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			p.Line++
			p.Column = 0
			continue
		}
		p.Column++
	}
	return p
}

// Ordered returns a and b sorted so that the first is not after the second.
func Ordered(a, b Position) (Position, Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}
