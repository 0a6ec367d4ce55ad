// Package word classifies characters for word motion.
//
// Word boundaries fall at every change of category, not only at whitespace,
// so motion steps through text written without spaces (Japanese) and
// through mixed ASCII, ideograph and punctuation runs.
package word

import (
	"unicode"
	"unicode/utf8"
)

// Category is the class of a character for word motion.
type Category uint8

const (
	// Other covers everything not matched below, e.g. accented Latin or emoji.
	Other Category = iota
	Whitespace
	// AsciiWord is ASCII letters and digits, '_' and their fullwidth forms.
	AsciiWord
	// Ideograph is a CJK unified ideograph.
	Ideograph
	Hiragana
	Katakana
	Punctuation
)

var categoryNames = [...]string{
	Other:       "other",
	Whitespace:  "whitespace",
	AsciiWord:   "word",
	Ideograph:   "ideograph",
	Hiragana:    "hiragana",
	Katakana:    "katakana",
	Punctuation: "punctuation",
}

// String returns the category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Classify returns the category of r.
func Classify(r rune) Category {
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case r < utf8.RuneSelf && (isASCIIAlnum(r) || r == '_'):
		return AsciiWord
	case isFullwidthAlnum(r):
		return AsciiWord
	case r == '。' || r == '、':
		return Punctuation
	case unicode.Is(unicode.Hiragana, r):
		return Hiragana
	case unicode.Is(unicode.Katakana, r), r == 'ー':
		return Katakana
	case unicode.Is(unicode.Han, r):
		return Ideograph
	case unicode.IsPunct(r), unicode.In(r, unicode.Sm, unicode.Sc, unicode.Sk):
		return Punctuation
	}
	return Other
}

func isASCIIAlnum(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

func isFullwidthAlnum(r rune) bool {
	return ('０' <= r && r <= '９') || ('Ａ' <= r && r <= 'Ｚ') || ('ａ' <= r && r <= 'ｚ')
}

// NextBoundary returns the byte offset reached by a word-right motion from
// col: leading whitespace is skipped, then the run of characters sharing the
// category of the first non-space character.
func NextBoundary(line string, col int) int {
	if col < 0 {
		col = 0
	}
	if col >= len(line) {
		return len(line)
	}
	for col < len(line) {
		r, size := utf8.DecodeRuneInString(line[col:])
		if Classify(r) != Whitespace {
			break
		}
		col += size
	}
	if col >= len(line) {
		return col
	}
	r, _ := utf8.DecodeRuneInString(line[col:])
	cat := Classify(r)
	for col < len(line) {
		r, size := utf8.DecodeRuneInString(line[col:])
		if Classify(r) != cat {
			break
		}
		col += size
	}
	return col
}

// PrevBoundary returns the byte offset reached by a word-left motion from
// col: trailing whitespace is skipped, then the run of characters sharing the
// category of the last non-space character.
func PrevBoundary(line string, col int) int {
	if col > len(line) {
		col = len(line)
	}
	for col > 0 {
		r, size := utf8.DecodeLastRuneInString(line[:col])
		if Classify(r) != Whitespace {
			break
		}
		col -= size
	}
	if col <= 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(line[:col])
	return runStart(line, col, Classify(r))
}

// DeleteWordStart returns where a backward word delete from col stops: the
// start of the run before col, plus any whitespace preceding that run.
func DeleteWordStart(line string, col int) int {
	if col > len(line) {
		col = len(line)
	}
	if col <= 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(line[:col])
	start := runStart(line, col, Classify(r))
	return runStart(line, start, Whitespace)
}

// runStart walks back from col while characters belong to cat.
func runStart(line string, col int, cat Category) int {
	for col > 0 {
		r, size := utf8.DecodeLastRuneInString(line[:col])
		if Classify(r) != cat {
			break
		}
		col -= size
	}
	return col
}
