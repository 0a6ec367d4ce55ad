package fuzzy

import "github.com/dshills/taskpad/internal/engine/word"

// Scorer calculates match scores.
type Scorer interface {
	// Score calculates a score for one alignment. Higher is better.
	//
	// Parameters:
	//   - text: folded line runes
	//   - orig: original rune that produced each folded rune
	//   - matches: indices into text of the matched runes, ascending
	Score(text, orig []rune, matches []int) int
}

// WeightedScorer scores alignments with configurable weights.
type WeightedScorer struct {
	// BaseScore is the starting score for any match.
	BaseScore int

	// ConsecutiveBonus is added for each match adjacent to the previous one.
	ConsecutiveBonus int

	// WordBoundaryBonus is added for each match at a word boundary.
	WordBoundaryBonus int

	// PrefixBonus is added when the first match is at position 0.
	PrefixBonus int

	// ExactPrefixBonus is added when the whole query is a prefix of the line.
	ExactPrefixBonus int

	// GapPenalty is subtracted for each unmatched rune between matches.
	GapPenalty int

	// LeadingPenalty is subtracted for each rune before the first match.
	LeadingPenalty int
}

// DefaultWeights returns the default scoring weights.
// WordBoundaryBonus must stay below twice GapPenalty, otherwise scattered
// matches on word starts outrank tight ones.
func DefaultWeights() WeightedScorer {
	return WeightedScorer{
		BaseScore:         100,
		ConsecutiveBonus:  20,
		WordBoundaryBonus: 4,
		PrefixBonus:       20,
		ExactPrefixBonus:  25,
		GapPenalty:        3,
		LeadingPenalty:    1,
	}
}

// Score implements the Scorer interface.
func (s WeightedScorer) Score(text, orig []rune, matches []int) int {
	if len(matches) == 0 {
		return 0
	}

	score := s.BaseScore

	// Consecutive matches bonus
	run := true
	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			score += s.ConsecutiveBonus
		} else {
			run = false
		}
	}

	// Word boundary bonus
	for _, idx := range matches {
		if isWordBoundary(orig, idx) {
			score += s.WordBoundaryBonus
		}
	}

	// Prefix bonuses
	if matches[0] == 0 {
		score += s.PrefixBonus
		if run {
			score += s.ExactPrefixBonus
		}
	}

	// Gap penalty
	if len(matches) > 1 {
		gap := matches[len(matches)-1] - matches[0] - len(matches) + 1
		score -= gap * s.GapPenalty
	}

	// Leading penalty
	score -= matches[0] * s.LeadingPenalty

	return score
}

// isWordBoundary reports whether the rune at idx starts a word: the first
// rune, a change of word category, or a lower-to-upper camelCase step.
func isWordBoundary(orig []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(orig) {
		return false
	}
	prev, cur := orig[idx-1], orig[idx]
	pc, cc := word.Classify(prev), word.Classify(cur)
	if cc == word.Whitespace {
		return false
	}
	if pc != cc {
		return true
	}
	return isLower(prev) && isUpper(cur)
}

func isLower(r rune) bool { return 'a' <= r && r <= 'z' }
func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }
