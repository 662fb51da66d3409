package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/middleware"
)

// multipart form is parsed with a fixed in-memory ceiling; anything larger
// spills to disk and the size limit itself is enforced by the service.
const multipartMemoryLimit = 32 << 20

func (h *Handler) UploadScreenshot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	assignmentID, err := strconv.ParseInt(r.FormValue("assignment_id"), 10, 64)
	if err != nil || assignmentID <= 0 {
		http.Error(w, "invalid assignment id", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Log.Error("failed to close uploaded file", zap.Error(err))
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}

	screenshot, err := h.screenshotService.UploadScreenshot(
		r.Context(), userID, assignmentID, data, header.Header.Get("Content-Type"))
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(screenshot)
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		http.Error(w, "assignment not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInvalidStatus):
		http.Error(w, "assignment is not accepting screenshots", http.StatusConflict)
	case errors.Is(err, apperrors.ErrInvalidFileType):
		http.Error(w, "only jpeg and png are allowed", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrFileTooLarge):
		http.Error(w, "file is too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, apperrors.ErrScreenshotLimitExceeded):
		http.Error(w, "screenshot limit exceeded", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("upload screenshot failed", zap.Error(err))
	}
}

func (h *Handler) DeleteScreenshot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "invalid screenshot id", http.StatusBadRequest)
		return
	}

	err := h.screenshotService.DeleteScreenshot(r.Context(), userID, id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperrors.ErrScreenshotNotFound):
		http.Error(w, "screenshot not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInvalidStatus):
		http.Error(w, "screenshots are locked after submission", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("delete screenshot failed", zap.Error(err))
	}
}
