package task

import "strings"

// LineState is the checkbox state of a line.
type LineState uint8

const (
	Plain LineState = iota
	ListItem
	Unchecked
	Checked
)

var stateNames = [...]string{
	Plain:     "plain",
	ListItem:  "list item",
	Unchecked: "unchecked",
	Checked:   "checked",
}

// String returns the state name.
func (s LineState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Next returns the following state in the toggle cycle
// plain → list item → unchecked → checked → plain.
func (s LineState) Next() LineState {
	switch s {
	case Plain:
		return ListItem
	case ListItem:
		return Unchecked
	case Unchecked:
		return Checked
	}
	return Plain
}

// marker returns the prefix written for s.
func (s LineState) marker() string {
	switch s {
	case ListItem:
		return ListMarker
	case Unchecked:
		return UncheckedMarker
	case Checked:
		return CheckedMarker
	}
	return ""
}

// StateOf classifies line, ignoring indentation.
func StateOf(line string) LineState {
	t := trimIndent(line)
	switch {
	case strings.HasPrefix(t, CheckedMarker):
		return Checked
	case strings.HasPrefix(t, UncheckedMarker):
		return Unchecked
	case strings.HasPrefix(t, ListMarker):
		return ListItem
	}
	return Plain
}

// Transform rewrites line into state target, keeping its indentation and
// content.
func Transform(line string, target LineState) string {
	indent := Indent(line)
	content := strings.TrimPrefix(line[len(indent):], StateOf(line).marker())
	return indent + target.marker() + content
}

// Toggle returns line advanced to its next state and the change in the
// length of the marker, which callers use to shift the cursor.
func Toggle(line string) (string, int) {
	from := StateOf(line)
	to := from.Next()
	return Transform(line, to), len(to.marker()) - len(from.marker())
}
