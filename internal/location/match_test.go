package location_test

import (
	"strings"
	"testing"

	"alliedboard/search-service/internal/location"
)

// ── ParseQuery ─────────────────────────────────────────────────────────────

func TestParseQuery_CityAndStateIsExact(t *testing.T) {
	m := location.ParseQuery("Sydney, NSW")
	if !m.Matched || m.Confidence != location.ConfidenceExact {
		t.Fatalf("ParseQuery(\"Sydney, NSW\") = %+v, want exact match", m)
	}
	if m.City != "sydney" || m.State != location.StateNSW {
		t.Errorf("resolved to %q/%q, want sydney/NSW", m.City, m.State)
	}
}

func TestParseQuery_BareCityInfersState(t *testing.T) {
	m := location.ParseQuery("melbourne")
	if m.Confidence != location.ConfidenceExact || m.State != location.StateVIC {
		t.Errorf("ParseQuery(\"melbourne\") = %+v, want exact VIC", m)
	}
}

func TestParseQuery_BareStateIsPartial(t *testing.T) {
	m := location.ParseQuery("Victoria")
	if !m.Matched || m.Confidence != location.ConfidencePartial {
		t.Fatalf("ParseQuery(\"Victoria\") = %+v, want partial match", m)
	}
	if m.State != location.StateVIC || m.City != "" {
		t.Errorf("resolved to %q/%q, want \"\"/VIC", m.City, m.State)
	}
}

func TestParseQuery_UnknownCityWithKnownStateIsPartial(t *testing.T) {
	m := location.ParseQuery("Springfield, QLD")
	if !m.Matched || m.Confidence != location.ConfidencePartial {
		t.Fatalf("ParseQuery = %+v, want partial (state only)", m)
	}
	if m.State != location.StateQLD || m.City != "" {
		t.Errorf("resolved to %q/%q, want \"\"/QLD", m.City, m.State)
	}
}

func TestParseQuery_NothingResolvedIsNone(t *testing.T) {
	for _, q := range []string{"", "   ", "gotham", "gotham, narnia"} {
		m := location.ParseQuery(q)
		if m.Matched || m.Confidence != location.ConfidenceNone {
			t.Errorf("ParseQuery(%q) = %+v, want unmatched none", q, m)
		}
	}
}

func TestIsMatched(t *testing.T) {
	if !location.IsMatched("sydney") {
		t.Error("IsMatched(\"sydney\") should be true")
	}
	if location.IsMatched("gotham") {
		t.Error("IsMatched(\"gotham\") should be false")
	}
}

// ── Suggestions ────────────────────────────────────────────────────────────

func TestSuggestions_ShortQueryShortCircuits(t *testing.T) {
	for _, q := range []string{"", "s", " s "} {
		if got := location.Suggestions(q); len(got) != 0 {
			t.Errorf("Suggestions(%q) returned %d entries, want 0", q, len(got))
		}
	}
}

func TestSuggestions_PrefixHitIncludesSydney(t *testing.T) {
	got := location.Suggestions("sy")
	if len(got) == 0 {
		t.Fatal("Suggestions(\"sy\") returned nothing")
	}
	found := false
	for _, s := range got {
		if s.Label == "Sydney, NSW" {
			found = true
			if s.City != "sydney" || s.State != location.StateNSW {
				t.Errorf("Sydney suggestion carries %q/%q", s.City, s.State)
			}
		}
	}
	if !found {
		t.Errorf("Suggestions(\"sy\") missing \"Sydney, NSW\": %+v", got)
	}
}

// Prefix matches must outrank substring matches, and each band must be
// alphabetical by label.
func TestSuggestions_PrefixBeforeSubstringThenAlphabetical(t *testing.T) {
	got := location.Suggestions("bu")
	// "Bunbury, WA", "Bundaberg, QLD", "Burnie, TAS" are prefix hits;
	// "Albury, NSW" contains "bu" mid-word.
	lastPrefix := -1
	firstSubstring := len(got)
	for i, s := range got {
		if strings.HasPrefix(strings.ToLower(s.Label), "bu") {
			lastPrefix = i
		} else if i < firstSubstring {
			firstSubstring = i
		}
	}
	if lastPrefix == -1 {
		t.Fatalf("Suggestions(\"bu\") has no prefix hits: %+v", got)
	}
	if firstSubstring < lastPrefix {
		t.Errorf("substring hit at %d precedes prefix hit at %d: %+v", firstSubstring, lastPrefix, got)
	}
	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		aPre := strings.HasPrefix(strings.ToLower(a.Label), "bu")
		bPre := strings.HasPrefix(strings.ToLower(b.Label), "bu")
		if aPre == bPre && a.Label > b.Label {
			t.Errorf("band not alphabetical: %q before %q", a.Label, b.Label)
		}
	}
}

func TestSuggestions_Capped(t *testing.T) {
	// "a" is too short; "an" hits many labels via substring.
	if got := location.Suggestions("an"); len(got) > 12 {
		t.Errorf("Suggestions(\"an\") returned %d entries, cap is 12", len(got))
	}
}

// ── AllLocations ───────────────────────────────────────────────────────────

func TestAllLocations_CoversEveryState(t *testing.T) {
	all := location.AllLocations()
	if len(all) == 0 {
		t.Fatal("AllLocations returned empty gazetteer")
	}
	seen := map[location.StateCode]bool{}
	for _, loc := range all {
		if loc.City == "" {
			t.Errorf("gazetteer entry with empty city slug: %+v", loc)
		}
		seen[loc.State] = true
	}
	for _, state := range location.AllStates() {
		if !seen[state] {
			t.Errorf("gazetteer has no cities for %s", state)
		}
	}
}
