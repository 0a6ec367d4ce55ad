// Package fuzzy ranks document lines against a fuzzy query.
//
// A line matches when every query character appears in it in order, case
// folded, not necessarily contiguous. Among the possible alignments the
// best-scoring one is kept.
//
// # Scoring
//
// The scorer favors:
//   - consecutive matched characters
//   - matches at word boundaries (category changes, see package word)
//   - matches starting at or near the beginning of the line
//
// and penalizes gaps between matched characters. Results are ordered by
// descending score; equal scores keep ascending line order.
//
// # Usage
//
//	r := fuzzy.NewRanker(doc.Lines(), fuzzy.DefaultOptions())
//	for _, res := range r.Rank("tdy") {
//	    fmt.Printf("%d: %s (score: %d)\n", res.Line, res.Text, res.Score)
//	}
package fuzzy
