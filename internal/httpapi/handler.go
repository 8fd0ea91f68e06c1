// Package httpapi implements the HTTP handlers for the search service.
//
// The core is transport-agnostic; this layer parses query strings,
// maps the "any" sentinel to absent filters, serialises core return
// values as JSON, and translates caller bugs (unknown category slug)
// into status codes. "Zero results" is always a 200 with an empty
// array — only a request for something outside the closed vocabulary
// is an error.
//
// Routes:
//
//	GET  /jobs/search              → ranked, filtered search results
//	GET  /locations                → full gazetteer
//	GET  /locations/suggest?q=     → autocomplete suggestions
//	GET  /locations/parse?q=       → structured match with confidence
//	GET  /categories/{slug}/jobs   → category page ordering
//	POST /admin/refresh            → reload snapshot, clear cache
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"alliedboard/search-service/internal/cache"
	"alliedboard/search-service/internal/category"
	"alliedboard/search-service/internal/location"
	"alliedboard/search-service/internal/search"
	"alliedboard/search-service/internal/snapshot"
)

// anySentinel is the reserved filter value the web frontend sends for
// "Any" dropdown selections. It is equivalent to omitting the field and
// is stripped here so the core never sees a magic string.
const anySentinel = "any"

// Refresher is the slice of the snapshot contract the admin endpoint
// needs.
type Refresher interface {
	RefreshNow(ctx context.Context) error
}

// ResultCache is the slice of the cache contract this layer needs.
// *cache.Cache satisfies it; tests substitute an in-memory fake.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

// Handler holds shared dependencies.
type Handler struct {
	snap      *snapshot.Snapshot
	cache     ResultCache
	refresher Refresher
}

// NewHandler returns a configured Handler.
func NewHandler(snap *snapshot.Snapshot, c ResultCache, refresher Refresher) *Handler {
	return &Handler{snap: snap, cache: c, refresher: refresher}
}

// RegisterRoutes mounts all search-service routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/jobs/search", h.searchJobs)
	mux.HandleFunc("/locations", h.listLocations)
	mux.HandleFunc("/locations/suggest", h.suggestLocations)
	mux.HandleFunc("/locations/parse", h.parseLocation)
	mux.HandleFunc("/categories/", h.categoryJobs)
	mux.HandleFunc("/admin/refresh", h.adminRefresh)
}

// ─── Search ──────────────────────────────────────────────────────────────────

func (h *Handler) searchJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	filters, err := filtersFromQuery(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := cache.Key(query, filters)
	if payload, ok := h.cache.Get(r.Context(), key); ok {
		jsonRaw(w, payload)
		return
	}

	results := search.SearchWithFilters(h.snap.Jobs(), query, filters)
	payload, err := json.Marshal(results)
	if err != nil {
		log.Printf("[httpapi] marshal search results: %v", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.cache.Set(r.Context(), key, payload)
	jsonRaw(w, payload)
}

// filtersFromQuery builds the structured filter set from query params.
// Empty and "any" values impose no constraint. An occupation outside
// the closed category set is a caller bug, reported as 400.
func filtersFromQuery(r *http.Request) (search.Filters, error) {
	q := r.URL.Query()
	var f search.Filters

	if v, ok := filterValue(q.Get("occupation")); ok {
		slug, err := category.ParseSlug(v)
		if err != nil {
			return search.Filters{}, fmt.Errorf("occupation: %w", err)
		}
		f.Occupation = &slug
	}
	if v, ok := filterValue(q.Get("city")); ok {
		f.City = &v
	}
	if v, ok := filterValue(q.Get("state")); ok {
		f.State = &v
	}
	if v, ok := filterValue(q.Get("jobType")); ok {
		f.JobType = &v
	}
	if v, ok := filterValue(q.Get("experienceLevel")); ok {
		f.ExperienceLevel = &v
	}
	return f, nil
}

// filterValue strips the "any" sentinel: ("", false) means the field is
// absent and must not constrain the result.
func filterValue(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, anySentinel) {
		return "", false
	}
	return v, true
}

// ─── Locations ───────────────────────────────────────────────────────────────

func (h *Handler) listLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	jsonOK(w, location.AllLocations())
}

func (h *Handler) suggestLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	jsonOK(w, location.Suggestions(r.URL.Query().Get("q")))
}

func (h *Handler) parseLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	jsonOK(w, location.ParseQuery(r.URL.Query().Get("q")))
}

// ─── Category pages ──────────────────────────────────────────────────────────

// categoryJobs handles GET /categories/{slug}/jobs.
func (h *Handler) categoryJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse /categories/{slug}/jobs
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[2] != "jobs" {
		jsonError(w, "invalid path", http.StatusNotFound)
		return
	}

	slug, err := category.ParseSlug(parts[1])
	if err != nil {
		// Unknown slug is "you asked for something that doesn't exist",
		// not "nothing matched" — the latter is a 200 with [].
		if errors.Is(err, category.ErrUnknownSlug) {
			jsonError(w, err.Error(), http.StatusNotFound)
			return
		}
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := cache.CategoryKey(slug)
	if payload, ok := h.cache.Get(r.Context(), key); ok {
		jsonRaw(w, payload)
		return
	}

	list := category.JobsForPage(h.snap.Jobs(), slug)
	payload, err := json.Marshal(list)
	if err != nil {
		log.Printf("[httpapi] marshal category page: %v", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.cache.Set(r.Context(), key, payload)
	jsonRaw(w, payload)
}

// ─── Admin ───────────────────────────────────────────────────────────────────

// adminRefresh forces a snapshot reload and cache clear. Called by the
// posting CRUD service after a job mutation instead of waiting for the
// cron tick.
func (h *Handler) adminRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.refresher.RefreshNow(r.Context()); err != nil {
		log.Printf("[httpapi] admin refresh failed: %v", err)
		jsonError(w, "refresh failed", http.StatusInternalServerError)
		return
	}
	count, loadedAt := h.snap.Stats()
	jsonOK(w, map[string]any{"jobs": count, "loadedAt": loadedAt})
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonRaw(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
