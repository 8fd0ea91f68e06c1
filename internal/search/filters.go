package search

import (
	"strings"

	"alliedboard/search-service/internal/category"
	"alliedboard/search-service/internal/jobs"
	"alliedboard/search-service/internal/location"
)

// Filters is the structured, conjunctive filter set. A nil field
// imposes no constraint; the HTTP layer maps the "any" sentinel to nil
// before the core ever sees it. Each present field must match for a job
// to survive, and the fields commute — application order never changes
// the surviving subset.
type Filters struct {
	Occupation      *category.Slug
	City            *string
	State           *string
	JobType         *string
	ExperienceLevel *string
}

// IsZero reports whether no field is set.
func (f Filters) IsZero() bool {
	return f.Occupation == nil && f.City == nil && f.State == nil &&
		f.JobType == nil && f.ExperienceLevel == nil
}

// Apply returns the jobs that satisfy every present filter field.
// City and state are compared in normalised form, so "Sydney" in the
// database matches "sydney" from the query string.
func Apply(list []jobs.Record, f Filters) []jobs.Record {
	if f.IsZero() {
		out := make([]jobs.Record, len(list))
		copy(out, list)
		return out
	}

	var (
		wantCity  string
		wantState location.StateCode
	)
	if f.City != nil {
		wantCity = location.SlugifyCity(*f.City)
	}
	if f.State != nil {
		wantState = location.ParseState(*f.State)
	}

	out := make([]jobs.Record, 0)
	for i := range list {
		if matches(&list[i], f, wantCity, wantState) {
			out = append(out, list[i])
		}
	}
	return out
}

func matches(job *jobs.Record, f Filters, wantCity string, wantState location.StateCode) bool {
	// Occupation is exact slug membership only. The fuzzy text fallback
	// belongs to category listing pages, not to this filter.
	if f.Occupation != nil && !job.HasCategory(string(*f.Occupation)) {
		return false
	}

	if f.City != nil || f.State != nil {
		loc := location.Normalize(job.CityRaw, job.StateRaw)
		if f.City != nil && loc.City != wantCity {
			return false
		}
		if f.State != nil && loc.State != wantState {
			return false
		}
	}

	if f.JobType != nil && !strings.EqualFold(job.JobType, *f.JobType) {
		return false
	}
	if f.ExperienceLevel != nil && !strings.EqualFold(job.ExperienceLevel, *f.ExperienceLevel) {
		return false
	}
	return true
}
