package handlers

import (
	"encoding/json"
	"net/http"
)

type configResponse struct {
	SimpleTaskPrice    int64   `json:"simple_task_price"`
	PhoneTaskPrice     int64   `json:"phone_task_price"`
	ReferralCommission float64 `json:"referral_commission"`
	MaxActiveTasks     int     `json:"max_active_tasks"`
	TaskLockHours      int     `json:"task_lock_hours"`
	MaxScreenshots     int     `json:"max_screenshots"`
	MaxFileSize        int64   `json:"max_file_size"`
	MinWithdrawal      int64   `json:"min_withdrawal"`
	MaxWithdrawal      int64   `json:"max_withdrawal"`
}

// GetConfig exposes the prices and limits the Mini App shows before a
// user picks a task. Public: nothing here is secret.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(configResponse{
		SimpleTaskPrice:    h.cfg.SimpleTaskPrice,
		PhoneTaskPrice:     h.cfg.PhoneTaskPrice,
		ReferralCommission: h.cfg.ReferralCommission,
		MaxActiveTasks:     h.cfg.MaxActiveTasks,
		TaskLockHours:      h.cfg.TaskLockHours,
		MaxScreenshots:     h.cfg.MaxScreenshots,
		MaxFileSize:        h.cfg.MaxFileSize,
		MinWithdrawal:      h.cfg.MinWithdrawal,
		MaxWithdrawal:      h.cfg.MaxWithdrawal,
	})
}
