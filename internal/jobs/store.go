package jobs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store loads job postings from PostgreSQL. The search core never queries
// the database directly — callers hand it the materialised slice returned
// here.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a configured Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ListActive returns every visible posting, newest first. Expired and
// unpublished rows are excluded at the query level so the core only ever
// sees listable jobs.
func (s *Store) ListActive(ctx context.Context) ([]Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id::text, title, company_name, details, categories,
		        city, state, location_display, job_type, experience_level,
		        is_featured, COALESCE(source_url, ''), created_at
		 FROM jobs
		 WHERE is_active = true AND (expires_at IS NULL OR expires_at > NOW())
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listActive query: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var (
			r     Record
			idStr string
		)
		if err := rows.Scan(
			&idStr, &r.Title, &r.CompanyName, &r.Details, &r.Categories,
			&r.CityRaw, &r.StateRaw, &r.LocationDisplay, &r.JobType,
			&r.ExperienceLevel, &r.IsFeatured, &r.SourceURL, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("listActive scan: %w", err)
		}
		if r.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("listActive id %q: %w", idStr, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountActive returns the number of visible postings. Used by the health
// endpoint to report snapshot freshness against the database.
func (s *Store) CountActive(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs
		 WHERE is_active = true AND (expires_at IS NULL OR expires_at > NOW())`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("countActive: %w", err)
	}
	return n, nil
}
