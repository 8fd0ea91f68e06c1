package cache_test

import (
	"strings"
	"testing"

	"alliedboard/search-service/internal/cache"
	"alliedboard/search-service/internal/category"
	"alliedboard/search-service/internal/search"
)

func ptr(s string) *string { return &s }

// Equivalent requests must share one cache entry regardless of how the
// caller spelled the inputs.
func TestKey_NormalisesValues(t *testing.T) {
	a := cache.Key("Physio Sydney", search.Filters{City: ptr("Central Coast"), State: ptr("New South Wales")})
	b := cache.Key("physio   sydney!", search.Filters{City: ptr("central-coast"), State: ptr("nsw")})
	if a != b {
		t.Errorf("equivalent requests produced distinct keys:\n%s\n%s", a, b)
	}
}

func TestKey_DistinguishesFilters(t *testing.T) {
	base := cache.Key("physio", search.Filters{})
	withCity := cache.Key("physio", search.Filters{City: ptr("sydney")})
	withType := cache.Key("physio", search.Filters{JobType: ptr("Full-time")})
	if base == withCity || base == withType || withCity == withType {
		t.Errorf("distinct requests collided: %s / %s / %s", base, withCity, withType)
	}
}

func TestKey_AbsentFieldsOmitted(t *testing.T) {
	k := cache.Key("physio", search.Filters{})
	if strings.Contains(k, "city=") || strings.Contains(k, "state=") {
		t.Errorf("zero-filter key leaks filter fields: %s", k)
	}
}

func TestCategoryKey_SharesNamespaceWithSearchKeys(t *testing.T) {
	ck := cache.CategoryKey(category.Physiotherapy)
	sk := cache.Key("physio", search.Filters{})
	ci := strings.Index(ck, ":cat=")
	si := strings.Index(sk, ":q=")
	if ci < 0 || si < 0 {
		t.Fatalf("unexpected key shapes: %s / %s", ck, sk)
	}
	if ck[:ci] != sk[:si] {
		t.Errorf("category and search keys live under different namespaces: %s vs %s", ck, sk)
	}
}
