// Package category defines the closed set of allied-health occupation
// categories and the ordering rules for category-scoped listing pages.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// Slug identifies one occupation category. Values mirror the slugs used
// in job URLs and in the jobs.categories column.
type Slug string

const (
	Physiotherapy       Slug = "physiotherapy"
	OccupationalTherapy Slug = "occupational-therapy"
	SpeechPathology     Slug = "speech-pathology"
	Psychology          Slug = "psychology"
	Podiatry            Slug = "podiatry"
	Dietetics           Slug = "dietetics"
	ExercisePhysiology  Slug = "exercise-physiology"
	Audiology           Slug = "audiology"
	SocialWork          Slug = "social-work"
	Chiropractic        Slug = "chiropractic"
)

// catalog is the single source of truth for the slug ↔ display-name
// mapping. Both lookup directions are derived from this one table so
// they cannot drift apart.
var catalog = []struct {
	Slug    Slug
	Display string
}{
	{Physiotherapy, "Physiotherapy"},
	{OccupationalTherapy, "Occupational Therapy"},
	{SpeechPathology, "Speech Pathology"},
	{Psychology, "Psychology"},
	{Podiatry, "Podiatry"},
	{Dietetics, "Dietetics"},
	{ExercisePhysiology, "Exercise Physiology"},
	{Audiology, "Audiology"},
	{SocialWork, "Social Work"},
	{Chiropractic, "Chiropractic"},
}

var (
	displayBySlug = make(map[Slug]string, len(catalog))
	slugByDisplay = make(map[string]Slug, len(catalog))
)

func init() {
	for _, c := range catalog {
		displayBySlug[c.Slug] = c.Display
		slugByDisplay[strings.ToLower(c.Display)] = c.Slug
	}
}

// ErrUnknownSlug marks a category identifier outside the closed set.
// It is a caller bug, distinct from "zero jobs matched", and is meant
// to be checked with errors.Is at the transport boundary.
var ErrUnknownSlug = errors.New("unknown category slug")

// ParseSlug converts a raw string to a Slug, returning ErrUnknownSlug
// for values outside the closed set.
func ParseSlug(s string) (Slug, error) {
	slug := Slug(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := displayBySlug[slug]; ok {
		return slug, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSlug, s)
}

// DisplayName returns the human-readable name for a slug, or "" when
// the slug is outside the closed set.
func DisplayName(s Slug) string {
	return displayBySlug[s]
}

// FromDisplayName resolves a display name (any case) back to its slug.
func FromDisplayName(name string) (Slug, bool) {
	slug, ok := slugByDisplay[strings.ToLower(strings.TrimSpace(name))]
	return slug, ok
}

// All returns every slug in catalog order.
func All() []Slug {
	out := make([]Slug, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, c.Slug)
	}
	return out
}
