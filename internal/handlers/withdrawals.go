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

func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.withdrawalService.CreateWithdrawal(r.Context(), userID, req)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(withdrawal)
	case errors.Is(err, apperrors.ErrInvalidWithdrawalMethod):
		http.Error(w, "invalid withdrawal method", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInvalidWithdrawalDetails):
		http.Error(w, "invalid withdrawal details", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInvalidWithdrawalAmount):
		http.Error(w, "invalid withdrawal amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrBelowMinWithdrawal):
		http.Error(w, "amount is below the minimum", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrTooManyPending):
		http.Error(w, "too many pending withdrawals", http.StatusConflict)
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		http.Error(w, "insufficient balance", http.StatusPaymentRequired)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("create withdrawal failed", zap.Error(err))
	}
}

func (h *Handler) GetWithdrawalHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	withdrawals, err := h.withdrawalService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get withdrawals", zap.Error(err))
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
