package snapshot

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"alliedboard/search-service/internal/jobs"
)

// Invalidator is the slice of the cache contract the refresher needs:
// after a snapshot swap, cached search results are stale and must go.
type Invalidator interface {
	Clear(ctx context.Context)
}

// Refresher reloads the snapshot from the job store on a fixed
// interval, clearing the result cache whenever the collection changes.
type Refresher struct {
	cron  *cron.Cron
	store *jobs.Store
	snap  *Snapshot
	inval Invalidator
	spec  string // e.g. "@every 5m"
}

// NewRefresher creates a Refresher that fires every intervalMinutes.
func NewRefresher(store *jobs.Store, snap *Snapshot, inval Invalidator, intervalMinutes int) *Refresher {
	return &Refresher{
		cron:  cron.New(cron.WithLogger(cron.DefaultLogger)),
		store: store,
		snap:  snap,
		inval: inval,
		spec:  fmt.Sprintf("@every %dm", intervalMinutes),
	}
}

// Start runs one refresh synchronously so the service never serves an
// empty snapshot, then registers the cron job.
func (r *Refresher) Start(ctx context.Context) error {
	if err := r.RefreshNow(ctx); err != nil {
		return fmt.Errorf("initial snapshot load: %w", err)
	}

	_, err := r.cron.AddFunc(r.spec, func() {
		if err := r.RefreshNow(ctx); err != nil {
			log.Printf("[snapshot] refresh error: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	r.cron.Start()
	log.Printf("[snapshot] cron started — spec: %s", r.spec)
	return nil
}

// Stop gracefully shuts down the cron scheduler.
func (r *Refresher) Stop() {
	r.cron.Stop()
	log.Println("[snapshot] cron stopped")
}

// RefreshNow reloads the job collection immediately and clears the
// result cache. Also called by the admin endpoint after job mutations.
func (r *Refresher) RefreshNow(ctx context.Context) error {
	list, err := r.store.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("listActive: %w", err)
	}

	r.snap.Replace(list)
	r.inval.Clear(ctx)
	log.Printf("[snapshot] refreshed — %d active jobs", len(list))
	return nil
}
