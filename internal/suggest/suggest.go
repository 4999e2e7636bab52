// Package suggest ranks candidate identifiers against an unrecognized
// token so parser errors can offer a "did you mean" hint. It is purely
// advisory: it never influences whether a token is accepted.
package suggest

import "github.com/lithammer/fuzzysearch/levenshtein"

// Closest returns the candidate with the smallest Levenshtein distance
// to target, or "" if candidates is empty. Ties keep the first
// candidate seen, matching the order callers build their candidate list
// in (primitives before seen identifiers).
func Closest(target string, candidates []string) string {
	best := ""
	bestDistance := -1
	for _, candidate := range candidates {
		d := levenshtein.Distance(target, candidate)
		if bestDistance == -1 || d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}
