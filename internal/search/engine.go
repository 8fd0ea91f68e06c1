package search

import (
	"sort"
	"strings"

	"alliedboard/search-service/internal/category"
	"alliedboard/search-service/internal/jobs"
)

// FieldName identifies which job fields a query term matched in.
type FieldName string

const (
	FieldTitle    FieldName = "title"
	FieldCompany  FieldName = "company"
	FieldCategory FieldName = "category"
	FieldLocation FieldName = "location"
	FieldDetails  FieldName = "details"
)

// fieldWeights ranks fields by importance. A term hit in the title is
// worth five times a hit buried in the details text; a job matching in
// several fields accumulates weight from each.
var fieldWeights = []struct {
	field  FieldName
	weight int
}{
	{FieldTitle, 5},
	{FieldCompany, 4},
	{FieldCategory, 3},
	{FieldLocation, 2},
	{FieldDetails, 1},
}

// Result pairs a job with its relevance score for one query. Results
// are transient — recomputed per request, never stored.
type Result struct {
	Job           jobs.Record `json:"job"`
	Score         int         `json:"score"`
	MatchedFields []FieldName `json:"matchedFields"`
}

// Search scores every job against the query and returns matches in
// descending score order, ties broken by CreatedAt descending. The
// order is a deterministic total order: two calls on an unchanged
// snapshot return identical sequences.
//
// An empty query short-circuits to the full list in recency order. For
// a non-empty query, a job with no matched field is dropped entirely —
// score zero means "no match", not "ranked last".
func Search(list []jobs.Record, query string) []Result {
	terms := Tokenize(query)
	if len(terms) == 0 {
		return byRecency(list)
	}

	results := make([]Result, 0)
	for i := range list {
		if r, ok := score(&list[i], terms); ok {
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Job.CreatedAt.After(results[j].Job.CreatedAt)
	})
	return results
}

// SearchWithFilters applies the conjunctive filters first, then scores
// only the surviving subset. Filtering is a pre-condition: excluded
// records are never scored.
func SearchWithFilters(list []jobs.Record, query string, f Filters) []Result {
	return Search(Apply(list, f), query)
}

// score checks term containment across the weighted fields. Substring
// containment is deliberate: "physio" should hit "Physiotherapist" on a
// small corpus where recall beats precision.
func score(job *jobs.Record, terms []string) (Result, bool) {
	texts := map[FieldName]string{
		FieldTitle:    strings.ToLower(job.Title),
		FieldCompany:  strings.ToLower(job.CompanyName),
		FieldCategory: categoryText(job),
		FieldLocation: strings.ToLower(job.LocationDisplay),
		FieldDetails:  strings.ToLower(job.Details),
	}

	total := 0
	matched := make(map[FieldName]bool)
	for _, term := range terms {
		for _, fw := range fieldWeights {
			if strings.Contains(texts[fw.field], term) {
				total += fw.weight
				matched[fw.field] = true
			}
		}
	}
	if total == 0 {
		return Result{}, false
	}

	fields := make([]FieldName, 0, len(matched))
	for _, fw := range fieldWeights {
		if matched[fw.field] {
			fields = append(fields, fw.field)
		}
	}
	return Result{Job: *job, Score: total, MatchedFields: fields}, true
}

// categoryText renders a job's category slugs and display names as one
// lower-cased haystack, so queries hit either form.
func categoryText(job *jobs.Record) string {
	var parts []string
	for _, slug := range job.Categories {
		parts = append(parts, slug)
		if name := category.DisplayName(category.Slug(slug)); name != "" {
			parts = append(parts, strings.ToLower(name))
		}
	}
	return strings.Join(parts, " ")
}

// byRecency wraps the whole list as zero-score results, newest first.
func byRecency(list []jobs.Record) []Result {
	results := make([]Result, 0, len(list))
	for i := range list {
		results = append(results, Result{Job: list[i], MatchedFields: []FieldName{}})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Job.CreatedAt.After(results[j].Job.CreatedAt)
	})
	return results
}
