// Package jobs defines the job posting view shared by the search core.
package jobs

import (
	"time"

	"github.com/google/uuid"
)

// Record is a read-only view of an active job posting, materialised from
// the jobs table. The search core filters and re-orders copies of these;
// it never mutates a Record in place.
type Record struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	CompanyName     string    `json:"companyName"`
	Details         string    `json:"details"`
	Categories      []string  `json:"categories"`
	CityRaw         string    `json:"city"`
	StateRaw        string    `json:"state"`
	LocationDisplay string    `json:"locationDisplay"`
	JobType         string    `json:"jobType"`
	ExperienceLevel string    `json:"experienceLevel"`
	IsFeatured      bool      `json:"isFeatured"`
	SourceURL       string    `json:"sourceUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// HasCategory reports whether slug is an element of the record's category
// set. Categories are stored as slugs; insertion order is irrelevant.
func (r *Record) HasCategory(slug string) bool {
	for _, c := range r.Categories {
		if c == slug {
			return true
		}
	}
	return false
}
