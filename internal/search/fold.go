package search

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Folded is a case-folded copy of a string that remembers which bytes of
// the original produced each folded byte.
type Folded struct {
	Text string

	// starts[i] and ends[i] delimit the original rune that produced
	// folded byte i.
	starts []int
	ends   []int
}

// Fold returns the Unicode case folding of s with an offset map back to s.
func Fold(s string) Folded {
	var sb strings.Builder
	sb.Grow(len(s))
	f := Folded{
		starts: make([]int, 0, len(s)),
		ends:   make([]int, 0, len(s)),
	}
	caser := cases.Fold()
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		var out string
		if r < utf8.RuneSelf {
			if 'A' <= r && r <= 'Z' {
				r += 'a' - 'A'
			}
			out = string(r)
		} else {
			out = caser.String(s[i : i+size])
		}
		sb.WriteString(out)
		for range len(out) {
			f.starts = append(f.starts, i)
			f.ends = append(f.ends, i+size)
		}
		i += size
	}
	f.Text = sb.String()
	return f
}

// FoldString returns the case folding of s.
func FoldString(s string) string {
	return Fold(s).Text
}

// Span maps the folded byte range [from, to) back to the original string.
func (f Folded) Span(from, to int) (start, end int) {
	if from >= len(f.starts) {
		n := 0
		if len(f.ends) > 0 {
			n = f.ends[len(f.ends)-1]
		}
		return n, n
	}
	start = f.starts[from]
	if to <= from {
		return start, start
	}
	return start, f.ends[to-1]
}
