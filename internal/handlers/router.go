package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/avdeenkov/avito-tasker/internal/config"
	"github.com/avdeenkov/avito-tasker/internal/middleware"
	"github.com/avdeenkov/avito-tasker/internal/service"
)

type Handler struct {
	userService       service.UserService
	taskService       service.TaskService
	screenshotService service.ScreenshotService
	withdrawalService service.WithdrawalService
	referralService   service.ReferralService
	moderationService service.ModerationService
	secretKey         string
	cfg               *config.Config
}

func NewHandler(
	userService service.UserService,
	taskService service.TaskService,
	screenshotService service.ScreenshotService,
	withdrawalService service.WithdrawalService,
	referralService service.ReferralService,
	moderationService service.ModerationService,
	cfg *config.Config,
) *Handler {
	return &Handler{
		userService:       userService,
		taskService:       taskService,
		screenshotService: screenshotService,
		withdrawalService: withdrawalService,
		referralService:   referralService,
		moderationService: moderationService,
		secretKey:         cfg.SecretKey,
		cfg:               cfg,
	}
}

func NewRouter(handler *Handler, secretKey, moderatorToken string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging())
	r.Use(middleware.WithGzip())
	r.Use(middleware.RateLimit(rate.Limit(10), 20))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/init", handler.AuthInit)
		r.Get("/config", handler.GetConfig)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))

			r.Get("/users/me", handler.GetMe)

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/claim", handler.ClaimTask)
				r.Get("/active", handler.GetActiveAssignments)
				r.Get("/{id}", handler.GetAssignment)
				r.Delete("/{id}", handler.CancelAssignment)
				r.Post("/{id}/submit", handler.SubmitAssignment)
			})

			r.Route("/screenshots", func(r chi.Router) {
				r.Post("/upload", handler.UploadScreenshot)
				r.Delete("/{id}", handler.DeleteScreenshot)
			})

			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", handler.CreateWithdrawal)
				r.Get("/history", handler.GetWithdrawalHistory)
			})

			r.Route("/referrals", func(r chi.Router) {
				r.Get("/link", handler.GetReferralLink)
				r.Get("/stats", handler.GetReferralStats)
				r.Get("/list", handler.GetReferralList)
			})
		})

		r.Route("/moderation", func(r chi.Router) {
			r.Use(middleware.ModeratorMiddleware(moderatorToken))

			r.Get("/pending", handler.GetPendingAssignments)
			r.Post("/assignments/{id}/approve", handler.ApproveAssignment)
			r.Post("/assignments/{id}/reject", handler.RejectAssignment)
			r.Get("/withdrawals", handler.GetPendingWithdrawals)
			r.Post("/withdrawals/{id}/approve", handler.ApproveWithdrawal)
			r.Post("/withdrawals/{id}/reject", handler.RejectWithdrawal)
		})
	})

	return r
}

func parseIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
