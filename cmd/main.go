// alliedboard-search-service
//
// Job search and location resolution for the allied-health job board.
// Exposes a REST API used by the web frontend to implement:
//   - free-text job search with structured filters (conjunctive AND)
//   - location autocomplete, parsing and validation (AU gazetteer)
//   - category-scoped listing pages (featured-first ordering)
//
// The job snapshot is loaded from PostgreSQL and refreshed on a cron
// interval; ranked results are cached in Redis on a short TTL.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"alliedboard/search-service/internal/cache"
	"alliedboard/search-service/internal/config"
	"alliedboard/search-service/internal/db"
	"alliedboard/search-service/internal/httpapi"
	"alliedboard/search-service/internal/jobs"
	"alliedboard/search-service/internal/snapshot"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	// .env is a local-dev convenience; in containers the variables come
	// from the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("[search-service] Loaded .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[search-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[search-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[search-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[search-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[search-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[search-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[search-service] Redis connected ✓")

	// ── Snapshot + cache ─────────────────────────────────────────────────────
	store := jobs.NewStore(pool)
	resultCache := cache.New(rdb, cfg.CacheTTL)
	snap := snapshot.New()

	refresher := snapshot.NewRefresher(store, snap, resultCache, cfg.SnapshotRefreshMinutes)
	if err := refresher.Start(ctx); err != nil {
		log.Fatalf("[search-service] Snapshot: %v", err)
	}
	defer refresher.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler(snap))

	h := httpapi.NewHandler(snap, resultCache, refresher)
	h.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[search-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[search-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[search-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[search-service] Shutdown error: %v", err)
	}
	log.Println("[search-service] Stopped.")
}

func healthHandler(snap *snapshot.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, loadedAt := snap.Stats()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":         "ok",
			"service":        "search-service",
			"version":        version,
			"jobs":           count,
			"snapshotLoaded": loadedAt,
		})
	}
}
