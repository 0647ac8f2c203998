// Package server provides the HTTP API over the scheduling and points cores.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/studyhall-app/studyhall/internal/leaderboard"
	"github.com/studyhall-app/studyhall/internal/review"
	"github.com/studyhall-app/studyhall/internal/worker"
)

// Handler holds the services behind the HTTP API.
type Handler struct {
	scheduler   *review.Scheduler
	awardWorker *worker.AwardWorker
	aggregator  *leaderboard.Aggregator
}

// NewHandler creates a new Handler.
func NewHandler(scheduler *review.Scheduler, awardWorker *worker.AwardWorker, aggregator *leaderboard.Aggregator) *Handler {
	return &Handler{
		scheduler:   scheduler,
		awardWorker: awardWorker,
		aggregator:  aggregator,
	}
}

// Router assembles the API routes.
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/flashcards/{flashcardID}/schedule", h.createSchedule).Methods(http.MethodPost)
	r.HandleFunc("/api/flashcards/{flashcardID}/reviews", h.recordReview).Methods(http.MethodPost)
	r.HandleFunc("/api/students/{studentID}/due", h.listDue).Methods(http.MethodGet)
	r.HandleFunc("/api/activities", h.award).Methods(http.MethodPost)
	r.HandleFunc("/api/leaderboard", h.leaderboard).Methods(http.MethodGet)

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// CORSMiddleware allows cross-origin requests from the configured origins.
func CORSMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
