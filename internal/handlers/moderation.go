package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/logger"
)

func (h *Handler) GetPendingAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.moderationService.GetPendingAssignments(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get pending assignments", zap.Error(err))
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

func (h *Handler) ApproveAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "invalid assignment id", http.StatusBadRequest)
		return
	}

	err := h.moderationService.ApproveAssignment(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		http.Error(w, "assignment not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidStatus):
		http.Error(w, "assignment is not awaiting moderation", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("approve assignment failed", zap.Error(err))
	}
}

func (h *Handler) RejectAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "invalid assignment id", http.StatusBadRequest)
		return
	}

	err := h.moderationService.RejectAssignment(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		http.Error(w, "assignment not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidStatus):
		http.Error(w, "assignment is not awaiting moderation", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("reject assignment failed", zap.Error(err))
	}
}

func (h *Handler) GetPendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.moderationService.GetPendingWithdrawals(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get pending withdrawals", zap.Error(err))
		return
	}

	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(withdrawals)
}

func (h *Handler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	err := h.moderationService.ApproveWithdrawal(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrWithdrawalNotFound):
		http.Error(w, "withdrawal not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidStatus):
		http.Error(w, "withdrawal is not pending", http.StatusConflict)
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		http.Error(w, "insufficient balance", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("approve withdrawal failed", zap.Error(err))
	}
}

func (h *Handler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	err := h.moderationService.RejectWithdrawal(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrWithdrawalNotFound):
		http.Error(w, "withdrawal not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidStatus):
		http.Error(w, "withdrawal is not pending", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("reject withdrawal failed", zap.Error(err))
	}
}
