package search_test

import (
	"testing"
	"time"

	"alliedboard/search-service/internal/category"
	"alliedboard/search-service/internal/jobs"
	"alliedboard/search-service/internal/search"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func ptr(s string) *string { return &s }

func slugPtr(s category.Slug) *category.Slug { return &s }

func fixture() []jobs.Record {
	return []jobs.Record{
		{
			Title: "Senior Physiotherapist", CompanyName: "Harbour Health",
			Categories: []string{"physiotherapy"},
			CityRaw:    "Sydney", StateRaw: "NSW", LocationDisplay: "Sydney, NSW",
			JobType: "Full-time", ExperienceLevel: "Senior",
			CreatedAt: t0,
		},
		{
			Title: "OT Assistant", CompanyName: "Coastal Therapy",
			Categories: []string{"occupational-therapy"},
			CityRaw:    "sydney", StateRaw: "nsw", LocationDisplay: "sydney, nsw",
			JobType: "Part-time", ExperienceLevel: "Graduate",
			CreatedAt: t0.Add(time.Hour),
		},
		{
			Title: "Speech Pathologist", CompanyName: "Yarra Allied Health",
			Categories: []string{"speech-pathology"},
			CityRaw:    "Melbourne", StateRaw: "Victoria", LocationDisplay: "Melbourne, VIC",
			JobType: "Full-time", ExperienceLevel: "Mid",
			CreatedAt: t0.Add(2 * time.Hour),
		},
	}
}

// ── Apply ──────────────────────────────────────────────────────────────────

func TestApply_NoFiltersKeepsEverything(t *testing.T) {
	list := fixture()
	got := search.Apply(list, search.Filters{})
	if len(got) != len(list) {
		t.Errorf("Apply with zero filters dropped records: %d of %d", len(got), len(list))
	}
}

// Stored "Sydney"/"NSW" must match query input "sydney"/"nsw" and
// "New South Wales" — comparison runs on normalised forms.
func TestApply_LocationCaseAndFormatInsensitive(t *testing.T) {
	list := fixture()

	byCity := search.Apply(list, search.Filters{City: ptr("SYDNEY")})
	if len(byCity) != 2 {
		t.Errorf("City=SYDNEY matched %d jobs, want 2", len(byCity))
	}

	byState := search.Apply(list, search.Filters{State: ptr("new south wales")})
	if len(byState) != 2 {
		t.Errorf("State=new south wales matched %d jobs, want 2", len(byState))
	}

	byVic := search.Apply(list, search.Filters{State: ptr("vic")})
	if len(byVic) != 1 || byVic[0].Title != "Speech Pathologist" {
		t.Errorf("State=vic matched %v, want the Melbourne job", titles(byVic))
	}
}

func TestApply_OccupationIsExactSlugOnly(t *testing.T) {
	list := []jobs.Record{
		// Untagged but titled — must NOT survive the occupation filter;
		// the text fallback belongs to category pages only.
		{Title: "Senior Physiotherapist", CreatedAt: t0},
		{Title: "Clinician", Categories: []string{"physiotherapy"}, CreatedAt: t0},
	}
	got := search.Apply(list, search.Filters{Occupation: slugPtr(category.Physiotherapy)})
	if len(got) != 1 || got[0].Title != "Clinician" {
		t.Errorf("Occupation filter matched %v, want only the tagged job", titles(got))
	}
}

func TestApply_JobTypeAndExperience(t *testing.T) {
	list := fixture()
	got := search.Apply(list, search.Filters{JobType: ptr("full-time"), ExperienceLevel: ptr("senior")})
	if len(got) != 1 || got[0].Title != "Senior Physiotherapist" {
		t.Errorf("Apply matched %v, want only the senior full-time job", titles(got))
	}
}

// Adding a filter can only shrink the result set.
func TestApply_ConjunctiveNarrowing(t *testing.T) {
	list := fixture()
	wide := search.Apply(list, search.Filters{City: ptr("sydney")})
	narrow := search.Apply(list, search.Filters{City: ptr("sydney"), JobType: ptr("Full-time")})
	if len(narrow) > len(wide) {
		t.Fatalf("narrow (%d) larger than wide (%d)", len(narrow), len(wide))
	}
	for _, n := range narrow {
		found := false
		for _, w := range wide {
			if w.Title == n.Title {
				found = true
			}
		}
		if !found {
			t.Errorf("narrow result %q not in wide result", n.Title)
		}
	}
}

// Filters commute: any application order produces the same subset.
func TestApply_OrderIndependent(t *testing.T) {
	list := fixture()
	f := search.Filters{City: ptr("sydney"), State: ptr("nsw"), JobType: ptr("Part-time")}
	combined := search.Apply(list, f)
	stepwise := search.Apply(
		search.Apply(
			search.Apply(list, search.Filters{JobType: ptr("Part-time")}),
			search.Filters{State: ptr("nsw")}),
		search.Filters{City: ptr("sydney")})
	if len(combined) != len(stepwise) {
		t.Fatalf("combined %d vs stepwise %d", len(combined), len(stepwise))
	}
	for i := range combined {
		if combined[i].Title != stepwise[i].Title {
			t.Errorf("order-dependent result at %d: %q vs %q", i, combined[i].Title, stepwise[i].Title)
		}
	}
}

func titles(list []jobs.Record) []string {
	out := make([]string, 0, len(list))
	for _, j := range list {
		out = append(out, j.Title)
	}
	return out
}
