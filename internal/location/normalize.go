package location

import "strings"

// CanonicalLocation is a normalised city/state pair. City is a stable
// slug ("central-coast"), usable for exact filter comparisons.
type CanonicalLocation struct {
	City  string    `json:"city"`
	State StateCode `json:"state"`
}

// SlugifyCity produces the canonical city key: trimmed, lower-cased,
// internal whitespace runs collapsed to a single hyphen.
//
//	"  Central Coast " → "central-coast"
//
// Already-canonical input passes through unchanged, so the function is
// idempotent.
func SlugifyCity(raw string) string {
	fields := strings.Fields(strings.ToLower(raw))
	return strings.Join(fields, "-")
}

// Normalize canonicalises a raw city/state pair. Empty or unrecognised
// input degrades to the empty slug / StateUnknown sentinel rather than
// failing — "no location" is a representable value here.
func Normalize(cityRaw, stateRaw string) CanonicalLocation {
	return CanonicalLocation{
		City:  SlugifyCity(cityRaw),
		State: ParseState(stateRaw),
	}
}

// SplitDisplay canonicalises a combined display string ("Sydney, NSW").
// The first comma-delimited segment is the city and the second the
// state; with no comma the whole string is taken as the city and the
// state is left unknown. Segments past the second (e.g. a trailing
// country) are ignored.
func SplitDisplay(display string) CanonicalLocation {
	parts := strings.SplitN(display, ",", 3)
	if len(parts) == 1 {
		return Normalize(parts[0], "")
	}
	return Normalize(parts[0], parts[1])
}
