package devicemap

import (
	"github.com/hbollon/go-edlib"
)

// Scorer computes a symmetric, length-normalized similarity in [0, 1]
// between two already-normalized keys. Implementations must be safe for
// concurrent use.
type Scorer interface {
	Score(a, b string) float64
}

// GetScorer returns the scorer for the given mode.
// Default is sequence (Ratcliff/Obershelp ratio).
func GetScorer(mode string) Scorer {
	switch mode {
	case "sequence":
		return SequenceScorer{}
	case "jaro_winkler":
		return JaroWinklerScorer{}
	default:
		return SequenceScorer{}
	}
}

// SequenceScorer scores by the Ratcliff/Obershelp ratio: twice the total
// length of the longest matching blocks over the combined length. The fuzzy
// thresholds shipped with the dictionary (0.6 best-match, 0.3 candidate
// floor) are calibrated against this metric.
type SequenceScorer struct{}

func (SequenceScorer) Score(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchingRunes(ar, br)) / float64(total)
}

// matchingRunes sums the lengths of the longest matching blocks, recursing
// on the pieces left and right of each block.
func matchingRunes(a, b []rune) int {
	ai, bj, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size + matchingRunes(a[:ai], b[:bj]) + matchingRunes(a[ai+size:], b[bj+size:])
}

// longestMatch finds the longest contiguous block common to a and b,
// preferring the earliest position in a, then in b.
func longestMatch(a, b []rune) (besti, bestj, bestsize int) {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	j2len := make(map[int]int)
	for i, r := range a {
		newj2len := make(map[int]int)
		for _, j := range b2j[r] {
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

// JaroWinklerScorer is an alternate strategy that weights matching prefixes
// heavily, which suits short romanized mentions. Wire it in via the scorer
// config mode; the shipped thresholds may need retuning with it.
type JaroWinklerScorer struct{}

func (JaroWinklerScorer) Score(a, b string) float64 {
	return float64(edlib.JaroWinklerSimilarity(a, b))
}
