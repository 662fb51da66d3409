package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	service_mocks "github.com/avdeenkov/avito-tasker/internal/mocks/service_mocks"
	"github.com/avdeenkov/avito-tasker/internal/models"
)

func TestHandler_CreateWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawalService := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawalService}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"amount":500,"method":"card","details":{"card_number":"1234567812345678","cardholder_name":"IVAN IVANOV"}}`,
			mockSetup: func() {
				mockWithdrawalService.EXPECT().CreateWithdrawal(gomock.Any(), int64(1), gomock.Any()).
					Return(&models.Withdrawal{ID: 1, Amount: 500, Status: models.WithdrawalStatusPending}, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "insufficient balance",
			body: `{"amount":500,"method":"card","details":{"card_number":"1234567812345678","cardholder_name":"IVAN IVANOV"}}`,
			mockSetup: func() {
				mockWithdrawalService.EXPECT().CreateWithdrawal(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, apperrors.ErrInsufficientBalance)
			},
			wantStatusCode: http.StatusPaymentRequired,
		},
		{
			name: "below minimum",
			body: `{"amount":100,"method":"card","details":{"card_number":"1234567812345678","cardholder_name":"IVAN IVANOV"}}`,
			mockSetup: func() {
				mockWithdrawalService.EXPECT().CreateWithdrawal(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, apperrors.ErrBelowMinWithdrawal)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "bad details",
			body: `{"amount":500,"method":"sbp","details":{}}`,
			mockSetup: func() {
				mockWithdrawalService.EXPECT().CreateWithdrawal(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, apperrors.ErrInvalidWithdrawalDetails)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "too many pending",
			body: `{"amount":500,"method":"card","details":{"card_number":"1234567812345678","cardholder_name":"IVAN IVANOV"}}`,
			mockSetup: func() {
				mockWithdrawalService.EXPECT().CreateWithdrawal(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, apperrors.ErrTooManyPending)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:           "malformed json",
			body:           `{`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodPost, "/api/withdrawals", bytes.NewBufferString(tt.body))
			req = requestWithUserID(req, 1)
			w := httptest.NewRecorder()
			h.CreateWithdrawal(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
		})
	}
}

func TestHandler_GetWithdrawalHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawalService := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawalService}

	tests := []struct {
		name           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockWithdrawalService.EXPECT().GetWithdrawals(gomock.Any(), int64(1)).
					Return([]models.Withdrawal{{ID: 1, Amount: 500}}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "empty history",
			mockSetup: func() {
				mockWithdrawalService.EXPECT().GetWithdrawals(gomock.Any(), int64(1)).
					Return(nil, nil)
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name: "service error",
			mockSetup: func() {
				mockWithdrawalService.EXPECT().GetWithdrawals(gomock.Any(), int64(1)).
					Return(nil, errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodGet, "/api/withdrawals/history", nil)
			req = requestWithUserID(req, 1)
			w := httptest.NewRecorder()
			h.GetWithdrawalHistory(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
		})
	}
}
