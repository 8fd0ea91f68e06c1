// Package search scores and ranks job records against free-text queries
// and applies structured conjunctive filters. All functions are pure and
// operate on a snapshot the caller hands in; there is no I/O here.
package search

import "strings"

// Tokenize lower-cases a query and splits it on non-alphanumeric
// boundaries. The empty query yields no terms, which the engine treats
// as "no filtering".
func Tokenize(query string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(query) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}
