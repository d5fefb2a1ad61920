// Package fuzzy ranks candidate strings against a query using the
// Ratcliff/Obershelp sequence-matching ratio. The scoring reproduces the
// classic "get close matches" behavior: twice the number of characters in
// the longest common matching blocks, found recursively on the unmatched
// remainders, divided by the combined length of the two strings.
package fuzzy

import "sort"

const (
	// DefaultCutoff is the minimum similarity a candidate must reach.
	DefaultCutoff = 0.3

	// DefaultMaxResults bounds how many candidates are returned.
	DefaultMaxResults = 10
)

// Ratio returns the similarity of a and b in [0, 1]. Two empty strings are
// considered identical.
func Ratio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingTotal(a, b)) / float64(total)
}

// CloseMatches returns the candidates scoring at least cutoff against the
// query, best first. Candidates are de-duplicated preserving first-seen
// order, which is also the tie-break order for equal scores. At most
// maxResults entries are returned; nonpositive arguments select the
// defaults. The result is empty, never nil-vs-error, when nothing clears
// the cutoff.
func CloseMatches(query string, candidates []string, maxResults int, cutoff float64) []string {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}

	type scored struct {
		name  string
		score float64
	}

	seen := make(map[string]bool, len(candidates))
	var kept []scored
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true

		if score := Ratio(query, name); score >= cutoff {
			kept = append(kept, scored{name: name, score: score})
		}
	}

	// Stable sort keeps the original candidate order for ties.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	if len(kept) > maxResults {
		kept = kept[:maxResults]
	}

	matches := make([]string, len(kept))
	for i, s := range kept {
		matches[i] = s.name
	}
	return matches
}

// matchingTotal counts the characters covered by the longest common
// matching blocks of a and b, recursing on the unmatched stretches to the
// left and right of each block. Implemented iteratively with an explicit
// work queue.
func matchingTotal(a, b string) int {
	b2j := make(map[byte][]int, len(b))
	for j := 0; j < len(b); j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(a), 0, len(b)}}

	total := 0
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, size := longestMatch(a, s.alo, s.ahi, s.blo, s.bhi, b2j)
		if size == 0 {
			continue
		}
		total += size
		queue = append(queue,
			span{s.alo, i, s.blo, j},
			span{i + size, s.ahi, j + size, s.bhi},
		)
	}
	return total
}

// longestMatch finds the longest block a[i:i+size] == b[j:j+size] with
// alo <= i < i+size <= ahi and blo <= j < j+size <= bhi. Among equally long
// blocks the one starting earliest in a, then earliest in b, wins.
func longestMatch(a string, alo, ahi, blo, bhi int, b2j map[byte][]int) (int, int, int) {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
