package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	service_mocks "github.com/avdeenkov/avito-tasker/internal/mocks/service_mocks"
	"github.com/avdeenkov/avito-tasker/internal/models"
)

func TestHandler_GetReferralLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockReferralService := service_mocks.NewMockReferralService(ctrl)
	h := &Handler{referralService: mockReferralService}

	mockReferralService.EXPECT().GetReferralLink(int64(42)).
		Return("https://t.me/avito_tasker_bot?start=ref_42")

	req := httptest.NewRequest(http.MethodGet, "/api/referrals/link", nil)
	req = requestWithUserID(req, 42)
	w := httptest.NewRecorder()
	h.GetReferralLink(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var got referralLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Link != "https://t.me/avito_tasker_bot?start=ref_42" {
		t.Errorf("unexpected link: %s", got.Link)
	}
}

func TestHandler_GetReferralStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockReferralService := service_mocks.NewMockReferralService(ctrl)
	h := &Handler{referralService: mockReferralService}

	tests := []struct {
		name           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockReferralService.EXPECT().GetReferralStats(gomock.Any(), int64(1)).
					Return(models.ReferralStats{ReferralsCount: 3, TotalEarned: 175}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "service error",
			mockSetup: func() {
				mockReferralService.EXPECT().GetReferralStats(gomock.Any(), int64(1)).
					Return(models.ReferralStats{}, errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodGet, "/api/referrals/stats", nil)
			req = requestWithUserID(req, 1)
			w := httptest.NewRecorder()
			h.GetReferralStats(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
		})
	}
}

func TestHandler_GetReferralList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockReferralService := service_mocks.NewMockReferralService(ctrl)
	h := &Handler{referralService: mockReferralService}

	tests := []struct {
		name           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockReferralService.EXPECT().GetReferralList(gomock.Any(), int64(1)).
					Return([]models.ReferralSummary{{ReferralID: 2, Earned: 25}}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "no referrals",
			mockSetup: func() {
				mockReferralService.EXPECT().GetReferralList(gomock.Any(), int64(1)).Return(nil, nil)
			},
			wantStatusCode: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodGet, "/api/referrals/list", nil)
			req = requestWithUserID(req, 1)
			w := httptest.NewRecorder()
			h.GetReferralList(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
		})
	}
}
