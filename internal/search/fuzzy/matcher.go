package fuzzy

import (
	"sort"
	"unicode/utf8"

	"github.com/dshills/taskpad/internal/search"
)

// Result is one ranked line.
type Result struct {
	// Line is the index of the line in the ranked set.
	Line int

	// Text is the original line text.
	Text string

	// Score is the match score (higher is better). Zero for an empty query;
	// weak matches on long lines can go negative.
	Score int

	// Matches holds the byte offsets in Text of the matched characters.
	Matches []int
}

// Options configures ranking.
type Options struct {
	// CacheSize is the maximum number of cached query results.
	// Set to 0 to disable caching.
	CacheSize int

	// Limit caps the number of results. 0 means no limit.
	Limit int
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{CacheSize: 64}
}

// candidate is a line prepared for matching.
type candidate struct {
	text    string
	folded  []rune // folded runes
	orig    []rune // original rune for each folded rune
	offsets []int  // original byte offset for each folded rune
}

// Ranker ranks a fixed set of lines. The lines are captured once; a
// document edited after NewRanker needs a new Ranker.
type Ranker struct {
	cands   []candidate
	cache   *Cache
	scorer  Scorer
	options Options
}

// NewRanker prepares lines for ranking.
func NewRanker(lines []string, opts Options) *Ranker {
	r := &Ranker{
		cands:   make([]candidate, len(lines)),
		scorer:  DefaultWeights(),
		options: opts,
	}
	if opts.CacheSize > 0 {
		r.cache = NewCache(opts.CacheSize)
	}
	for i, l := range lines {
		r.cands[i] = prepare(l)
	}
	return r
}

// SetScorer replaces the scoring algorithm and drops cached results.
func (r *Ranker) SetScorer(s Scorer) {
	r.scorer = s
	if r.cache != nil {
		r.cache.Clear()
	}
}

// Len returns the number of candidate lines.
func (r *Ranker) Len() int {
	return len(r.cands)
}

// Rank returns the lines matching query, best first. Ties keep ascending
// line order. An empty query returns every line in order with score 0.
// Spaces in the query are matched like any other character.
func (r *Ranker) Rank(query string) []Result {
	q := []rune(search.FoldString(query))
	if len(q) == 0 {
		return r.applyLimit(r.emptyQueryResults())
	}

	key := string(q)
	if r.cache != nil {
		if cached := r.cache.Get(key); cached != nil {
			return r.applyLimit(cached)
		}
	}

	results := make([]Result, 0, len(r.cands))
	for i, c := range r.cands {
		score, matches := r.matchCandidate(q, c)
		if matches == nil {
			continue
		}
		results = append(results, Result{
			Line:    i,
			Text:    c.text,
			Score:   score,
			Matches: matches,
		})
	}

	// Stable sort keeps ascending line order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if r.cache != nil {
		r.cache.Set(key, results)
	}
	return r.applyLimit(results)
}

// Rank ranks lines against query with default options and no cache.
func Rank(lines []string, query string) []Result {
	return NewRanker(lines, Options{}).Rank(query)
}

func prepare(line string) candidate {
	f := search.Fold(line)
	c := candidate{text: line}
	for b, fr := range f.Text {
		start, _ := f.Span(b, b+1)
		or, _ := utf8.DecodeRuneInString(line[start:])
		c.folded = append(c.folded, fr)
		c.orig = append(c.orig, or)
		c.offsets = append(c.offsets, start)
	}
	return c
}

// matchCandidate returns the best score over all alignments of q in c and
// the matched byte offsets, or nil matches when q is not a subsequence.
func (r *Ranker) matchCandidate(q []rune, c candidate) (int, []int) {
	var best int
	var bestIdx []int
	for start := range c.folded {
		if c.folded[start] != q[0] {
			continue
		}
		idx := align(q, c.folded, start)
		if idx == nil {
			// No later start can complete the query either.
			break
		}
		if score := r.scorer.Score(c.folded, c.orig, idx); bestIdx == nil || score > best {
			best, bestIdx = score, idx
		}
	}
	if bestIdx == nil {
		return 0, nil
	}

	offsets := make([]int, 0, len(bestIdx))
	for _, i := range bestIdx {
		if n := len(offsets); n > 0 && offsets[n-1] == c.offsets[i] {
			continue
		}
		offsets = append(offsets, c.offsets[i])
	}
	return best, offsets
}

// align matches q in text with q[0] fixed at start: a greedy forward scan
// finds where the query can end, then a backward scan pulls the earlier
// matches as close to that end as possible.
func align(q, text []rune, start int) []int {
	qi, end := 1, start
	for i := start + 1; i < len(text) && qi < len(q); i++ {
		if text[i] == q[qi] {
			qi++
			end = i
		}
	}
	if qi < len(q) {
		return nil
	}

	idx := make([]int, len(q))
	idx[0] = start
	if len(q) == 1 {
		return idx
	}
	idx[len(q)-1] = end
	qi = len(q) - 2
	for i := end - 1; i > start && qi > 0; i-- {
		if text[i] == q[qi] {
			idx[qi] = i
			qi--
		}
	}
	return idx
}

func (r *Ranker) emptyQueryResults() []Result {
	results := make([]Result, len(r.cands))
	for i, c := range r.cands {
		results[i] = Result{Line: i, Text: c.text}
	}
	return results
}

// applyLimit returns at most Limit results.
func (r *Ranker) applyLimit(results []Result) []Result {
	if r.options.Limit <= 0 || r.options.Limit >= len(results) {
		return results
	}
	return results[:r.options.Limit]
}
