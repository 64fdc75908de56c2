// Package api serves the pgradar JSON API.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpx "github.com/mfreeman451/pgradar/pkg/http"
	"github.com/mfreeman451/pgradar/pkg/metrics"
	"github.com/mfreeman451/pgradar/pkg/models"
)

const (
	defaultHistoryHours = 1
	maxHistoryHours     = 24 * 30
)

type APIServer struct {
	router      *mux.Router
	snapshots   SnapshotReader
	store       StoreInspector
	cooldowns   CooldownManager
	metrics     http.Handler
	corsOrigins []string
}

type Option func(*APIServer)

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *APIServer) {
		s.metrics = h
	}
}

func WithCORSOrigins(origins []string) Option {
	return func(s *APIServer) {
		s.corsOrigins = origins
	}
}

func NewAPIServer(snapshots SnapshotReader, store StoreInspector, cooldowns CooldownManager, opts ...Option) *APIServer {
	s := &APIServer{
		router:    mux.NewRouter(),
		snapshots: snapshots,
		store:     store,
		cooldowns: cooldowns,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()

	return s
}

func (s *APIServer) setupRoutes() {
	s.router.Use(httpx.CommonMiddleware(s.corsOrigins))
	s.router.Use(httpx.LogRequests)

	s.router.HandleFunc("/api/instances/{id}/history", s.getHistory).Methods(http.MethodGet)
	s.router.HandleFunc("/api/instances/{id}/count", s.getCount).Methods(http.MethodGet)
	s.router.HandleFunc("/api/instances/{id}/rates", s.getRates).Methods(http.MethodGet)

	s.router.HandleFunc("/api/store/summary", s.getSummary).Methods(http.MethodGet)
	s.router.HandleFunc("/api/store/retention", s.getRetention).Methods(http.MethodGet)

	s.router.HandleFunc("/api/cooldowns", s.getCooldowns).Methods(http.MethodGet)
	s.router.HandleFunc("/api/cooldowns", s.clearCooldowns).Methods(http.MethodDelete)
	s.router.HandleFunc("/api/cooldowns/{instance}/{type}", s.clearCooldown).Methods(http.MethodDelete)

	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics).Methods(http.MethodGet)
	}
}

// Handler returns the routed API.
func (s *APIServer) Handler() http.Handler {
	return s.router
}

func (s *APIServer) getHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	hours, ok := parseHours(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, HistoryResponse{
		InstanceID: id,
		Hours:      hours,
		Snapshots:  s.snapshots.History(id, hours),
	})
}

func (s *APIServer) getCount(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	writeJSON(w, http.StatusOK, CountResponse{InstanceID: id, Count: s.snapshots.Count(id)})
}

func (s *APIServer) getRates(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	metric := r.URL.Query().Get("metric")

	field, err := metrics.FieldByName(metric)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hours, ok := parseHours(w, r)
	if !ok {
		return
	}

	history := s.snapshots.History(id, hours)
	rates := metrics.SnapshotRates(history, field)

	points := make([]RatePoint, len(rates))
	for i, v := range rates {
		points[i] = RatePoint{At: history[i+1].SampledAt, Value: v}
	}

	writeJSON(w, http.StatusOK, RatesResponse{InstanceID: id, Metric: metric, Hours: hours, Rates: points})
}

func (s *APIServer) getSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Summary())
}

func (s *APIServer) getRetention(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, RetentionResponse{
		RetentionMinutes: s.store.RetentionMinutes(),
		Persistent:       s.store.Persistent(),
	})
}

func (s *APIServer) getCooldowns(w http.ResponseWriter, _ *http.Request) {
	entries := s.cooldowns.Cooldowns()
	if entries == nil {
		entries = []models.CooldownEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *APIServer) clearCooldowns(w http.ResponseWriter, _ *http.Request) {
	s.cooldowns.ClearAllCooldowns()
	log.Printf("Cleared all alert cooldowns")

	w.WriteHeader(http.StatusNoContent)
}

func (s *APIServer) clearCooldown(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	s.cooldowns.ClearCooldown(vars["instance"], models.AlertType(vars["type"]))
	log.Printf("Cleared %s cooldown for %s", vars["type"], vars["instance"])

	w.WriteHeader(http.StatusNoContent)
}

// parseHours reads the hours query parameter, writing a 400 on bad input.
func parseHours(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("hours")
	if raw == "" {
		return defaultHistoryHours, true
	}

	hours, err := strconv.Atoi(raw)
	if err != nil || hours < 0 || hours > maxHistoryHours {
		writeError(w, http.StatusBadRequest, "hours must be an integer between 0 and "+strconv.Itoa(maxHistoryHours))
		return 0, false
	}

	return hours, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
