package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/models"
)

type authInitRequest struct {
	InitData string `json:"init_data"`
}

type authInitResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthInit validates Telegram WebApp initData and issues a session token.
// Registration and login are the same operation: the user row is upserted
// on every call.
func (h *Handler) AuthInit(w http.ResponseWriter, r *http.Request) {
	var req authInitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.InitData == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.InitData)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInitData) {
			http.Error(w, "invalid init data", http.StatusUnauthorized)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("auth init failed", zap.Error(err))
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.TelegramID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(h.secretKey))
	if err != nil {
		http.Error(w, "could not create token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+tokenString)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(authInitResponse{Token: tokenString, User: user})
}
