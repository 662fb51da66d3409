package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/middleware"
	"github.com/avdeenkov/avito-tasker/internal/models"
)

type claimTaskRequest struct {
	Type string `json:"type"`
}

type submitAssignmentRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type assignmentDetailResponse struct {
	*models.Assignment
	Screenshots []models.Screenshot `json:"screenshots"`
}

func (h *Handler) ClaimTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req claimTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	assignment, err := h.taskService.ClaimTask(r.Context(), userID, req.Type)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(assignment)
	case errors.Is(err, apperrors.ErrInvalidTaskType):
		http.Error(w, "invalid task type", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrTaskLimitExceeded):
		http.Error(w, "active task limit exceeded", http.StatusConflict)
	case errors.Is(err, apperrors.ErrNoTasksAvailable):
		http.Error(w, "no tasks available", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrTaskNotAvailable):
		http.Error(w, "task is no longer available", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("claim task failed", zap.Error(err))
	}
}

func (h *Handler) GetActiveAssignments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	assignments, err := h.taskService.GetActiveAssignments(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get active assignments", zap.Error(err))
		return
	}

	if len(assignments) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(assignments)
}

func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "invalid assignment id", http.StatusBadRequest)
		return
	}

	assignment, err := h.taskService.GetAssignment(r.Context(), id, userID)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		http.Error(w, "assignment not found", http.StatusNotFound)
		return
	case errors.Is(err, apperrors.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get assignment", zap.Error(err))
		return
	}

	screenshots, err := h.screenshotService.GetScreenshots(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get screenshots", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(assignmentDetailResponse{
		Assignment:  assignment,
		Screenshots: screenshots,
	})
}

func (h *Handler) CancelAssignment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "invalid assignment id", http.StatusBadRequest)
		return
	}

	err := h.taskService.CancelAssignment(r.Context(), id, userID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		http.Error(w, "assignment not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInvalidStatus):
		http.Error(w, "assignment is not cancellable", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("cancel assignment failed", zap.Error(err))
	}
}

func (h *Handler) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "invalid assignment id", http.StatusBadRequest)
		return
	}

	var req submitAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	assignment, err := h.taskService.SubmitAssignment(r.Context(), id, userID, req.PhoneNumber)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(assignment)
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		http.Error(w, "assignment not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInvalidStatus):
		http.Error(w, "assignment already submitted", http.StatusConflict)
	case errors.Is(err, apperrors.ErrScreenshotRequired):
		http.Error(w, "at least one screenshot is required", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInvalidPhoneNumber):
		http.Error(w, "invalid phone number", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("submit assignment failed", zap.Error(err))
	}
}
