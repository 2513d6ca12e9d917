package utils

import "strings"

// TrigramSimilarity computes the similarity of two strings as the
// Jaccard index over their padded character trigram sets, in [0,1].
// Matching is case-insensitive and whitespace-normalized. Identical
// strings score exactly 1.0; strings sharing no trigram score 0.
func TrigramSimilarity(a, b string) float64 {
	ta := trigramSet(a)
	tb := trigramSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	shared := 0
	for t := range ta {
		if _, ok := tb[t]; ok {
			shared++
		}
	}

	union := len(ta) + len(tb) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

// trigramSet extracts the set of character trigrams from a normalized,
// padded copy of s. Two leading spaces and one trailing space ensure
// short strings still produce trigrams.
func trigramSet(s string) map[string]struct{} {
	norm := normalizeText(s)
	if norm == "" {
		return nil
	}

	padded := []rune("  " + norm + " ")
	set := make(map[string]struct{}, len(padded))
	for i := 0; i+3 <= len(padded); i++ {
		set[string(padded[i:i+3])] = struct{}{}
	}
	return set
}

// normalizeText lowercases s and collapses runs of whitespace to a
// single space.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
