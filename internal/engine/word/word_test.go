package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Category
	}{
		{' ', Whitespace},
		{'\t', Whitespace},
		{'　', Whitespace},
		{'a', AsciiWord},
		{'Z', AsciiWord},
		{'7', AsciiWord},
		{'_', AsciiWord},
		{'３', AsciiWord},
		{'Ａ', AsciiWord},
		{'ｚ', AsciiWord},
		{'漢', Ideograph},
		{'字', Ideograph},
		{'ひ', Hiragana},
		{'カ', Katakana},
		{'ー', Katakana},
		{'。', Punctuation},
		{'、', Punctuation},
		{'.', Punctuation},
		{'-', Punctuation},
		{'+', Punctuation},
		{'「', Punctuation},
		{'é', Other},
		{'😀', Other},
		{'$', Punctuation},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.r))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "ideograph", Ideograph.String())
	assert.Equal(t, "unknown", Category(99).String())
}

func TestNextBoundary(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		want int
	}{
		{"word", "hello world", 0, 5},
		{"skip space", "hello world", 5, 11},
		{"punctuation run", "foo.bar", 3, 4},
		{"into punctuation", "foo.bar", 0, 3},
		{"at end", "abc", 3, 3},
		{"past end", "abc", 10, 3},
		{"trailing space", "ab   ", 2, 5},
		// 日本語 is 9 bytes, を 3 bytes, 読む 6 bytes.
		{"kanji then kana", "日本語を読む", 0, 9},
		{"kana", "日本語を読む", 9, 12},
		{"ascii then kanji", "Go言語", 0, 2},
		{"sentence mark", "です。次", 6, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextBoundary(tt.line, tt.col))
		})
	}
}

func TestPrevBoundary(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		want int
	}{
		{"word", "hello world", 11, 6},
		{"skip space", "hello world", 6, 0},
		{"punctuation", "foo.bar", 4, 3},
		{"at start", "abc", 0, 0},
		{"only space", "   ", 3, 0},
		{"kana after kanji", "日本語を", 12, 9},
		{"kanji", "日本語を", 9, 0},
		{"past end", "ab cd", 99, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrevBoundary(tt.line, tt.col))
		})
	}
}

func TestDeleteWordStart(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		want int
	}{
		{"word and preceding space", "foo bar", 7, 3},
		{"whitespace run", "foo   ", 6, 3},
		{"punctuation", "a.b", 2, 1},
		{"start", "abc", 0, 0},
		{"mid word", "hello", 3, 0},
		{"mixed script", "テスト 漢字", 16, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeleteWordStart(tt.line, tt.col))
		})
	}
}
