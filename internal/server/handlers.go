package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/studyhall-app/studyhall/internal/leaderboard"
	"github.com/studyhall-app/studyhall/internal/points"
	"github.com/studyhall-app/studyhall/internal/review"
	"github.com/studyhall-app/studyhall/internal/worker"
)

type scheduleResponse struct {
	FlashcardID    int64      `json:"flashcard_id"`
	StudentID      int64      `json:"student_id"`
	IntervalDays   int        `json:"interval_days"`
	EaseFactor     float64    `json:"ease_factor"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextReviewDate time.Time  `json:"next_review_date"`
}

func newScheduleResponse(s *review.FlashcardSchedule) scheduleResponse {
	return scheduleResponse{
		FlashcardID:    s.FlashcardID,
		StudentID:      s.StudentID,
		IntervalDays:   s.IntervalDays,
		EaseFactor:     s.EaseFactor,
		LastReviewedAt: s.LastReviewedAt,
		NextReviewDate: s.NextReviewDate,
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

type createScheduleRequest struct {
	StudentID int64 `json:"student_id"`
}

func (h *Handler) createSchedule(w http.ResponseWriter, r *http.Request) {
	flashcardID, err := pathID(r, "flashcardID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flashcard id")
		return
	}

	var req createScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.StudentID <= 0 {
		writeError(w, http.StatusBadRequest, "student_id must be positive")
		return
	}

	schedule, err := h.scheduler.CreateDefault(r.Context(), flashcardID, req.StudentID)
	if err != nil {
		slog.Error("Failed to create schedule", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to create schedule")
		return
	}
	writeJSON(w, http.StatusCreated, newScheduleResponse(schedule))
}

type recordReviewRequest struct {
	StudentID int64 `json:"student_id"`
	Quality   int   `json:"quality"`
}

func (h *Handler) recordReview(w http.ResponseWriter, r *http.Request) {
	flashcardID, err := pathID(r, "flashcardID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flashcard id")
		return
	}

	var req recordReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.StudentID <= 0 {
		writeError(w, http.StatusBadRequest, "student_id must be positive")
		return
	}

	schedule, err := h.scheduler.Record(r.Context(), flashcardID, req.StudentID, req.Quality)
	if err != nil {
		if errors.Is(err, review.ErrScheduleNotFound) {
			writeError(w, http.StatusNotFound, "schedule not found")
			return
		}
		slog.Error("Failed to record review", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to record review")
		return
	}
	writeJSON(w, http.StatusOK, newScheduleResponse(schedule))
}

const defaultDueLimit = 50

func (h *Handler) listDue(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "studentID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	limit := defaultDueLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
	}

	schedules, err := h.scheduler.ListDue(r.Context(), studentID, time.Now(), limit)
	if err != nil {
		slog.Error("Failed to list due schedules", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to list due schedules")
		return
	}

	responses := make([]scheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		responses = append(responses, newScheduleResponse(&s))
	}
	writeJSON(w, http.StatusOK, responses)
}

type awardOutcome struct {
	CorrectCount   int `json:"correct_count"`
	TotalQuestions int `json:"total_questions"`
}

type awardRequest struct {
	StudentID       int64         `json:"student_id"`
	ActivityType    string        `json:"activity_type"`
	RelatedEntityID *int64        `json:"related_entity_id,omitempty"`
	Outcome         *awardOutcome `json:"outcome,omitempty"`
}

type awardResponse struct {
	Queued bool `json:"queued"`
}

func (h *Handler) award(w http.ResponseWriter, r *http.Request) {
	var req awardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.StudentID <= 0 {
		writeError(w, http.StatusBadRequest, "student_id must be positive")
		return
	}
	activityType, err := points.ParseActivityType(req.ActivityType)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown activity type")
		return
	}
	if req.RelatedEntityID != nil && *req.RelatedEntityID < 0 {
		writeError(w, http.StatusBadRequest, "related_entity_id must not be negative")
		return
	}

	var outcome points.Outcome
	if req.Outcome != nil {
		outcome = points.Outcome{
			CorrectCount:   req.Outcome.CorrectCount,
			TotalQuestions: req.Outcome.TotalQuestions,
		}
	}

	queued := h.awardWorker.Enqueue(worker.AwardRequest{
		StudentID:       req.StudentID,
		ActivityType:    activityType,
		RelatedEntityID: req.RelatedEntityID,
		Outcome:         outcome,
	})
	if !queued {
		writeError(w, http.StatusServiceUnavailable, "award queue is full")
		return
	}
	writeJSON(w, http.StatusAccepted, awardResponse{Queued: true})
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	period, err := leaderboard.ParsePeriodType(r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "period must be weekly or monthly")
		return
	}

	entries, err := h.aggregator.Rank(r.Context(), period, time.Now())
	if err != nil {
		slog.Error("Failed to rank leaderboard", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to rank leaderboard")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
