package location

import (
	"sort"
	"strings"
)

// Confidence grades how much of a query resolved against the gazetteer.
type Confidence string

const (
	ConfidenceExact   Confidence = "exact"   // city and state both resolved
	ConfidencePartial Confidence = "partial" // exactly one of the two resolved
	ConfidenceNone    Confidence = "none"    // nothing resolved
)

// Match is the structured result of parsing a location query. A failed
// parse is a normal value (Matched false, ConfidenceNone), never an
// error.
type Match struct {
	Matched    bool       `json:"isMatched"`
	City       string     `json:"city,omitempty"`
	State      StateCode  `json:"state,omitempty"`
	Confidence Confidence `json:"confidence"`
}

// Suggestion is one autocomplete candidate, most-relevant-first in the
// slice returned by Suggestions.
type Suggestion struct {
	Label string    `json:"label"` // "Sydney, NSW"
	City  string    `json:"city"`  // "sydney"
	State StateCode `json:"state"`
}

const (
	// minQueryLen short-circuits one-character queries: they match half
	// the gazetteer and carry no signal.
	minQueryLen = 2

	// maxSuggestions bounds the autocomplete payload.
	maxSuggestions = 12
)

// ParseQuery resolves a free-form location query into a Match.
//
// A comma splits the query into city and state parts ("Sydney, NSW").
// Without a comma the whole query is tried first as a state name, then
// as a gazetteer city; a city found in exactly one state resolves the
// state too.
func ParseQuery(query string) Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return Match{Confidence: ConfidenceNone}
	}

	if i := strings.Index(query, ","); i >= 0 {
		return matchParts(query[:i], query[i+1:])
	}

	// Bare state name: "victoria", "nsw".
	if state := ParseState(query); state != StateUnknown {
		return Match{Matched: true, State: state, Confidence: ConfidencePartial}
	}

	// Bare city: state is inferred only when unambiguous.
	slug := SlugifyCity(query)
	switch states := statesForCity(slug); len(states) {
	case 0:
		return Match{Confidence: ConfidenceNone}
	case 1:
		return Match{Matched: true, City: slug, State: states[0], Confidence: ConfidenceExact}
	default:
		return Match{Matched: true, City: slug, Confidence: ConfidencePartial}
	}
}

// matchParts resolves an explicit "city, state" pair.
func matchParts(cityPart, statePart string) Match {
	slug := SlugifyCity(cityPart)
	state := ParseState(statePart)

	cityKnown := len(statesForCity(slug)) > 0
	switch {
	case cityKnown && state != StateUnknown:
		return Match{Matched: true, City: slug, State: state, Confidence: ConfidenceExact}
	case cityKnown:
		return Match{Matched: true, City: slug, Confidence: ConfidencePartial}
	case state != StateUnknown:
		return Match{Matched: true, State: state, Confidence: ConfidencePartial}
	default:
		return Match{Confidence: ConfidenceNone}
	}
}

// IsMatched reports whether any part of the query resolved.
func IsMatched(query string) bool {
	return ParseQuery(query).Confidence != ConfidenceNone
}

// Suggestions returns ranked autocomplete candidates for a partial
// query: prefix matches first, then substring matches, alphabetical by
// label within each band, capped at maxSuggestions. Queries shorter
// than minQueryLen return an empty slice.
func Suggestions(query string) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < minQueryLen {
		return []Suggestion{}
	}

	type ranked struct {
		s    Suggestion
		band int // 0 = prefix, 1 = substring
	}
	var candidates []ranked

	for _, e := range entries {
		lower := strings.ToLower(e.display)
		var band int
		switch {
		case strings.HasPrefix(lower, q):
			band = 0
		case strings.Contains(lower, q):
			band = 1
		default:
			continue
		}
		candidates = append(candidates, ranked{
			s: Suggestion{
				Label: e.display + ", " + string(e.state),
				City:  e.slug,
				State: e.state,
			},
			band: band,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].band != candidates[j].band {
			return candidates[i].band < candidates[j].band
		}
		return candidates[i].s.Label < candidates[j].s.Label
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	out := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.s)
	}
	return out
}
