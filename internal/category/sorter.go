package category

import (
	"sort"
	"strings"

	"alliedboard/search-service/internal/jobs"
)

// matchTerms lists, per category, the phrases whose presence in a job's
// title or details implies membership when explicit tags are missing.
// Category tagging at posting time is not reliable, so listing pages
// fall back to this text match to keep obviously-relevant postings
// visible. The slug and display name are implied; the extra entries
// cover the practitioner forms ("Physiotherapist") that plain
// display-name containment would miss.
var matchTerms = map[Slug][]string{
	Physiotherapy:       {"physiotherap", "physio "},
	OccupationalTherapy: {"occupational therap", "ot assistant"},
	SpeechPathology:     {"speech patholog", "speech therap"},
	Psychology:          {"psycholog"},
	Podiatry:            {"podiatr"},
	Dietetics:           {"dietetic", "dietitian", "dietician"},
	ExercisePhysiology:  {"exercise physiolog"},
	Audiology:           {"audiolog"},
	SocialWork:          {"social work"},
	Chiropractic:        {"chiropract"},
}

// Matches reports whether a job belongs to the category: either the
// slug is tagged on the record, or a category phrase appears
// (case-insensitively) in the title or details. Adding the slug to a
// record's categories can only ever widen membership.
func Matches(job *jobs.Record, slug Slug) bool {
	if job.HasCategory(string(slug)) {
		return true
	}

	text := strings.ToLower(job.Title + " " + job.Details)
	if strings.Contains(text, string(slug)) ||
		strings.Contains(text, strings.ToLower(DisplayName(slug))) {
		return true
	}
	for _, term := range matchTerms[slug] {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// JobsForPage selects the jobs belonging to a category and orders them
// for display: featured postings first, newest first within each group.
// The input slice is left untouched; duplicates in the input are the
// caller's problem and are not collapsed here.
func JobsForPage(list []jobs.Record, slug Slug) []jobs.Record {
	out := make([]jobs.Record, 0)
	for i := range list {
		if Matches(&list[i], slug) {
			out = append(out, list[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsFeatured != out[j].IsFeatured {
			return out[i].IsFeatured
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
