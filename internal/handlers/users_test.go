package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	service_mocks "github.com/avdeenkov/avito-tasker/internal/mocks/service_mocks"
	"github.com/avdeenkov/avito-tasker/internal/models"
)

func TestHandler_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUserService := service_mocks.NewMockUserService(ctrl)
	h := &Handler{userService: mockUserService}

	tests := []struct {
		name           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockUserService.EXPECT().GetUser(gomock.Any(), int64(1)).
					Return(&models.User{TelegramID: 1, MainBalance: 150, ReferralBalance: 25}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "user not found",
			mockSetup: func() {
				mockUserService.EXPECT().GetUser(gomock.Any(), int64(1)).
					Return(nil, apperrors.ErrUserNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "service error",
			mockSetup: func() {
				mockUserService.EXPECT().GetUser(gomock.Any(), int64(1)).
					Return(nil, errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			req = requestWithUserID(req, 1)
			w := httptest.NewRecorder()
			h.GetMe(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
		})
	}
}

func TestHandler_GetMe_NoContextUser(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	w := httptest.NewRecorder()
	h.GetMe(w, req)
	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
}
