// Package location canonicalises free-form Australian location text into
// a closed city/state vocabulary, and resolves partial queries into
// autocomplete suggestions and structured matches.
//
// Everything in this package is a pure function over static tables: no
// I/O, no shared mutable state, safe to call from any goroutine.
package location

import "strings"

// StateCode is the closed set of Australian state and territory
// abbreviations. Free text maps onto exactly one code or onto
// StateUnknown — never an invalid value.
type StateCode string

const (
	StateNSW StateCode = "NSW"
	StateVIC StateCode = "VIC"
	StateQLD StateCode = "QLD"
	StateSA  StateCode = "SA"
	StateWA  StateCode = "WA"
	StateTAS StateCode = "TAS"
	StateNT  StateCode = "NT"
	StateACT StateCode = "ACT"

	// StateUnknown is the graceful sentinel for unrecognised or empty
	// input. Callers must treat it as "no state", not as an error.
	StateUnknown StateCode = ""
)

// stateNames maps every accepted spelling (lower-cased) to its code.
// Both the full name and the abbreviation of each state are listed once
// here; ParseState lower-cases its input before lookup.
var stateNames = map[string]StateCode{
	"nsw":                          StateNSW,
	"new south wales":              StateNSW,
	"vic":                          StateVIC,
	"victoria":                     StateVIC,
	"qld":                          StateQLD,
	"queensland":                   StateQLD,
	"sa":                           StateSA,
	"south australia":              StateSA,
	"wa":                           StateWA,
	"western australia":            StateWA,
	"tas":                          StateTAS,
	"tasmania":                     StateTAS,
	"nt":                           StateNT,
	"northern territory":           StateNT,
	"act":                          StateACT,
	"australian capital territory": StateACT,
}

// stateDisplay maps each code back to its full display name.
var stateDisplay = map[StateCode]string{
	StateNSW: "New South Wales",
	StateVIC: "Victoria",
	StateQLD: "Queensland",
	StateSA:  "South Australia",
	StateWA:  "Western Australia",
	StateTAS: "Tasmania",
	StateNT:  "Northern Territory",
	StateACT: "Australian Capital Territory",
}

// ParseState resolves a full state name or abbreviation, in any case and
// with surrounding whitespace, to its StateCode. Unrecognised input
// yields StateUnknown.
func ParseState(raw string) StateCode {
	key := strings.ToLower(strings.TrimSpace(raw))
	if code, ok := stateNames[key]; ok {
		return code
	}
	return StateUnknown
}

// DisplayName returns the full name for a code, or "" for StateUnknown.
func DisplayName(code StateCode) string {
	return stateDisplay[code]
}

// AllStates returns the eight codes in fixed display order.
func AllStates() []StateCode {
	return []StateCode{
		StateNSW, StateVIC, StateQLD, StateSA,
		StateWA, StateTAS, StateNT, StateACT,
	}
}
