package category_test

import (
	"errors"
	"testing"

	"alliedboard/search-service/internal/category"
)

// ── ParseSlug ──────────────────────────────────────────────────────────────

func TestParseSlug_ValidValues(t *testing.T) {
	for _, slug := range category.All() {
		got, err := category.ParseSlug(string(slug))
		if err != nil {
			t.Errorf("ParseSlug(%q) returned unexpected error: %v", slug, err)
		}
		if got != slug {
			t.Errorf("ParseSlug(%q) = %q, want %q", slug, got, slug)
		}
	}
}

func TestParseSlug_CaseAndWhitespaceTolerant(t *testing.T) {
	got, err := category.ParseSlug("  Physiotherapy ")
	if err != nil {
		t.Fatalf("ParseSlug returned unexpected error: %v", err)
	}
	if got != category.Physiotherapy {
		t.Errorf("ParseSlug = %q, want %q", got, category.Physiotherapy)
	}
}

func TestParseSlug_UnknownValue(t *testing.T) {
	for _, s := range []string{"", "astrology", "physio-therapy"} {
		_, err := category.ParseSlug(s)
		if err == nil {
			t.Errorf("ParseSlug(%q) expected error, got nil", s)
			continue
		}
		if !errors.Is(err, category.ErrUnknownSlug) {
			t.Errorf("ParseSlug(%q) error %v is not ErrUnknownSlug", s, err)
		}
	}
}

// ── Slug ↔ display-name mapping ────────────────────────────────────────────

// Every slug must round-trip through its display name: the two lookup
// directions come from one table and may never disagree.
func TestDisplayNameRoundTrip(t *testing.T) {
	for _, slug := range category.All() {
		name := category.DisplayName(slug)
		if name == "" {
			t.Errorf("DisplayName(%q) is empty", slug)
			continue
		}
		back, ok := category.FromDisplayName(name)
		if !ok {
			t.Errorf("FromDisplayName(%q) not found", name)
			continue
		}
		if back != slug {
			t.Errorf("round trip %q → %q → %q", slug, name, back)
		}
	}
}

func TestFromDisplayName_CaseInsensitive(t *testing.T) {
	slug, ok := category.FromDisplayName("occupational therapy")
	if !ok || slug != category.OccupationalTherapy {
		t.Errorf("FromDisplayName(\"occupational therapy\") = %q, %v", slug, ok)
	}
}

func TestDisplayName_UnknownSlugIsEmpty(t *testing.T) {
	if got := category.DisplayName(category.Slug("astrology")); got != "" {
		t.Errorf("DisplayName(astrology) = %q, want \"\"", got)
	}
}
