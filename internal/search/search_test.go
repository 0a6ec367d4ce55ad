package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/taskpad/internal/engine/document"
)

func pos(line, col int) document.Position {
	return document.Position{Line: line, Column: col}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "hello"},
		{"Straße", "strasse"},
		{"ΑΒΓ", "αβγ"},
		{"\u212Aelvin", "kelvin"},
		{"日本", "日本"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldString(tt.in))
		})
	}
}

func TestFoldedSpan(t *testing.T) {
	f := Fold("Straße!")
	require.Equal(t, "strasse!", f.Text)

	// "ss" comes from the two-byte ß at offset 4.
	start, end := f.Span(4, 6)
	assert.Equal(t, 4, start)
	assert.Equal(t, 6, end)

	start, end = f.Span(7, 8)
	assert.Equal(t, 6, start)
	assert.Equal(t, 7, end)

	start, end = f.Span(20, 21)
	assert.Equal(t, 7, start)
	assert.Equal(t, 7, end)
}

func TestFindScenario(t *testing.T) {
	doc := document.New("- [ ] buy milk\nnote\n- [ ] pay bill")

	m, err := Find(doc, "bill", pos(0, 0), Forward, false)
	require.NoError(t, err)
	assert.Equal(t, pos(2, 10), m.Pos)
	assert.Equal(t, 4, m.Len)
	assert.Equal(t, pos(2, 14), m.End())
	assert.False(t, m.Wrapped)
}

func TestFindForward(t *testing.T) {
	doc := document.New("foo bar foo\nbaz foo\nqux")

	tests := []struct {
		name      string
		from      document.Position
		inclusive bool
		want      document.Position
		wrapped   bool
	}{
		{"strict skips match at from", pos(0, 0), false, pos(0, 8), false},
		{"inclusive keeps match at from", pos(0, 0), true, pos(0, 0), false},
		{"next line", pos(0, 9), false, pos(1, 4), false},
		{"wraps to top", pos(1, 5), false, pos(0, 0), true},
		{"wraps from last line", pos(2, 0), false, pos(0, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Find(doc, "FOO", tt.from, Forward, tt.inclusive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Pos)
			assert.Equal(t, tt.wrapped, m.Wrapped)
		})
	}
}

func TestFindBackward(t *testing.T) {
	doc := document.New("foo bar foo\nbaz foo\nqux")

	tests := []struct {
		name      string
		from      document.Position
		inclusive bool
		want      document.Position
		wrapped   bool
	}{
		{"previous on line", pos(0, 8), false, pos(0, 0), false},
		{"inclusive", pos(0, 8), true, pos(0, 8), false},
		{"previous line last match", pos(1, 0), false, pos(0, 8), false},
		{"from below", pos(2, 3), false, pos(1, 4), false},
		{"wraps to bottom", pos(0, 0), false, pos(1, 4), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Find(doc, "foo", tt.from, Backward, tt.inclusive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Pos)
			assert.Equal(t, tt.wrapped, m.Wrapped)
		})
	}
}

func TestFindSingleOccurrenceWraps(t *testing.T) {
	doc := document.New("only here")

	m, err := Find(doc, "here", pos(0, 5), Forward, false)
	require.NoError(t, err)
	assert.Equal(t, pos(0, 5), m.Pos)
	assert.True(t, m.Wrapped)
}

func TestFindUnicode(t *testing.T) {
	doc := document.New("Die Straße\n\u212Aelvin")

	m, err := Find(doc, "STRASSE", pos(0, 0), Forward, false)
	require.NoError(t, err)
	assert.Equal(t, pos(0, 4), m.Pos)
	assert.Equal(t, len("Straße"), m.Len)

	m, err = Find(doc, "kel", pos(0, 0), Forward, false)
	require.NoError(t, err)
	assert.Equal(t, pos(1, 0), m.Pos)
	assert.Equal(t, len("\u212Ael"), m.Len)
}

func TestFindNoMatch(t *testing.T) {
	doc := document.New("abc\ndef")

	_, err := Find(doc, "xyz", pos(0, 0), Forward, false)
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Find(doc, "", pos(0, 0), Backward, false)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestAll(t *testing.T) {
	doc := document.New("aaa\nbAa\nc")

	got := All(doc, "aa")
	require.Len(t, got, 3)
	assert.Equal(t, pos(0, 0), got[0].Pos)
	assert.Equal(t, pos(0, 1), got[1].Pos)
	assert.Equal(t, pos(1, 1), got[2].Pos)

	assert.Empty(t, All(doc, ""))
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "backward", Backward.String())
}
