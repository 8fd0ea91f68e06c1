// Package snapshot holds the materialised job collection the search
// core reads from, and keeps it fresh on a cron schedule.
package snapshot

import (
	"sync"
	"time"

	"alliedboard/search-service/internal/jobs"
)

// Snapshot is the process-wide view of active postings. The slice is
// swapped atomically under an RWMutex on refresh; readers get the
// current slice and must treat it as read-only, which the pure search
// core already guarantees.
type Snapshot struct {
	mu       sync.RWMutex
	jobs     []jobs.Record
	loadedAt time.Time
}

// New returns an empty Snapshot. Callers load it before serving.
func New() *Snapshot {
	return &Snapshot{}
}

// Jobs returns the current job slice. The slice itself is never
// mutated after a swap, so handing it out without copying is safe.
func (s *Snapshot) Jobs() []jobs.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs
}

// Replace swaps in a freshly loaded job collection.
func (s *Snapshot) Replace(list []jobs.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = list
	s.loadedAt = time.Now().UTC()
}

// Stats reports the snapshot size and load time for the health endpoint.
func (s *Snapshot) Stats() (count int, loadedAt time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs), s.loadedAt
}
