// Package search implements case-insensitive incremental search over
// document lines.
package search

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/dshills/taskpad/internal/engine/document"
)

// ErrNoMatch is returned when the query occurs nowhere in the document.
var ErrNoMatch = errors.New("no match")

// Direction is the search direction.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Lines is the read-only view of a document that search needs.
// *document.Document implements it.
type Lines interface {
	LineCount() int
	Line(i int) string
}

// Match is one occurrence of a query.
type Match struct {
	Pos     document.Position // Start of the match
	Len     int               // Length in bytes of the matched original text
	Wrapped bool              // The search passed a document boundary to find it
}

// End returns the position after the match.
func (m Match) End() document.Position {
	return document.Position{Line: m.Pos.Line, Column: m.Pos.Column + m.Len}
}

// span is a match within one line, in original byte offsets.
type span struct {
	start, end int
}

// lineMatches returns every occurrence of folded query q in line, in order.
// Overlapping occurrences are all reported.
func lineMatches(line, q string) []span {
	if q == "" || line == "" {
		return nil
	}
	f := Fold(line)
	var out []span
	for i := 0; i <= len(f.Text)-len(q); {
		j := strings.Index(f.Text[i:], q)
		if j < 0 {
			break
		}
		at := i + j
		start, end := f.Span(at, at+len(q))
		if len(out) == 0 || out[len(out)-1].start != start {
			out = append(out, span{start, end})
		}
		_, size := utf8.DecodeRuneInString(f.Text[at:])
		i = at + size
	}
	return out
}

// All returns every occurrence of query in document order.
func All(src Lines, query string) []Match {
	q := FoldString(query)
	var out []Match
	for i := 0; i < src.LineCount(); i++ {
		for _, s := range lineMatches(src.Line(i), q) {
			out = append(out, Match{
				Pos: document.Position{Line: i, Column: s.start},
				Len: s.end - s.start,
			})
		}
	}
	return out
}

// Find returns the occurrence of query nearest to from in direction dir.
//
// Forward finds the first match starting after from, backward the last
// match starting before it. With inclusive set a match starting exactly at
// from also qualifies. When nothing qualifies the search wraps around the
// document boundary. ErrNoMatch is returned if query occurs nowhere or is
// empty.
func Find(src Lines, query string, from document.Position, dir Direction, inclusive bool) (Match, error) {
	q := FoldString(query)
	n := src.LineCount()
	if q == "" || n == 0 {
		return Match{}, ErrNoMatch
	}
	if from.Line < 0 {
		from.Line = 0
	}
	if from.Line >= n {
		from.Line = n - 1
	}

	// Visit n+1 lines so the starting line is seen again after wrapping.
	for k := 0; k <= n; k++ {
		var i int
		if dir == Forward {
			i = (from.Line + k) % n
		} else {
			i = ((from.Line-k)%n + n) % n
		}
		spans := lineMatches(src.Line(i), q)
		if len(spans) == 0 {
			continue
		}

		wrapped := k > 0 && ((dir == Forward && i <= from.Line) || (dir == Backward && i >= from.Line))
		if dir == Forward {
			for _, s := range spans {
				if k == 0 && !(s.start > from.Column || (inclusive && s.start == from.Column)) {
					continue
				}
				return matchAt(i, s, wrapped), nil
			}
		} else {
			for j := len(spans) - 1; j >= 0; j-- {
				s := spans[j]
				if k == 0 && !(s.start < from.Column || (inclusive && s.start == from.Column)) {
					continue
				}
				return matchAt(i, s, wrapped), nil
			}
		}
	}
	return Match{}, ErrNoMatch
}

func matchAt(line int, s span, wrapped bool) Match {
	return Match{
		Pos:     document.Position{Line: line, Column: s.start},
		Len:     s.end - s.start,
		Wrapped: wrapped,
	}
}
