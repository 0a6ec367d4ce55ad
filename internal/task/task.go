// Package task finds markdown checkbox tasks and cycles checkbox state.
package task

import "strings"

// Markers recognized at the start of a line, after indentation.
const (
	ListMarker      = "- "
	UncheckedMarker = "- [ ] "
	CheckedMarker   = "- [x] "
)

// Separator is a line that delimits sections of a note.
const Separator = "---"

// Lines is the read-only view of a document that scanning needs.
type Lines interface {
	LineCount() int
	Line(i int) string
}

// Task is an unchecked checkbox line captured by Scan.
// Line is only valid until the document is next modified.
type Task struct {
	Line int
	Text string
}

// IsTask reports whether line is an unchecked checkbox.
func IsTask(line string) bool {
	return strings.HasPrefix(trimIndent(line), UncheckedMarker)
}

// IsSeparator reports whether line is a section delimiter.
func IsSeparator(line string) bool {
	return line == Separator
}

// Scan returns the task lines from line from (inclusive) to the end of the
// document, in order.
func Scan(src Lines, from int) []Task {
	if from < 0 {
		from = 0
	}
	var tasks []Task
	for i := from; i < src.LineCount(); i++ {
		if l := src.Line(i); IsTask(l) {
			tasks = append(tasks, Task{Line: i, Text: l})
		}
	}
	return tasks
}

// IndexOf returns the index in tasks of the first task whose text is text,
// or -1.
func IndexOf(tasks []Task, text string) int {
	for i, t := range tasks {
		if t.Text == text {
			return i
		}
	}
	return -1
}

// Indent returns the leading spaces and tabs of line.
func Indent(line string) string {
	return line[:len(line)-len(trimIndent(line))]
}

func trimIndent(line string) string {
	return strings.TrimLeft(line, " \t")
}
