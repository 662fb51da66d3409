package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	service_mocks "github.com/avdeenkov/avito-tasker/internal/mocks/service_mocks"
	"github.com/avdeenkov/avito-tasker/internal/models"
)

func buildUploadRequest(t *testing.T, assignmentID, contentType string, payload []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if assignmentID != "" {
		if err := mw.WriteField("assignment_id", assignmentID); err != nil {
			t.Fatalf("failed to write field: %v", err)
		}
	}
	if payload != nil {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="file"; filename="proof.jpg"`)
		hdr.Set("Content-Type", contentType)
		part, err := mw.CreatePart(hdr)
		if err != nil {
			t.Fatalf("failed to create part: %v", err)
		}
		if _, err := part.Write(payload); err != nil {
			t.Fatalf("failed to write payload: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/screenshots/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return requestWithUserID(req, 1)
}

func TestHandler_UploadScreenshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockScreenshotService := service_mocks.NewMockScreenshotService(ctrl)
	h := &Handler{screenshotService: mockScreenshotService}

	tests := []struct {
		name           string
		assignmentID   string
		contentType    string
		payload        []byte
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name:         "success",
			assignmentID: "10",
			contentType:  "image/jpeg",
			payload:      []byte("jpegdata"),
			mockSetup: func() {
				mockScreenshotService.EXPECT().
					UploadScreenshot(gomock.Any(), int64(1), int64(10), []byte("jpegdata"), "image/jpeg").
					Return(&models.Screenshot{ID: 1, AssignmentID: 10}, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:         "wrong content type",
			assignmentID: "10",
			contentType:  "image/gif",
			payload:      []byte("gifdata"),
			mockSetup: func() {
				mockScreenshotService.EXPECT().
					UploadScreenshot(gomock.Any(), int64(1), int64(10), []byte("gifdata"), "image/gif").
					Return(nil, apperrors.ErrInvalidFileType)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:         "limit exceeded",
			assignmentID: "10",
			contentType:  "image/png",
			payload:      []byte("pngdata"),
			mockSetup: func() {
				mockScreenshotService.EXPECT().
					UploadScreenshot(gomock.Any(), int64(1), int64(10), []byte("pngdata"), "image/png").
					Return(nil, apperrors.ErrScreenshotLimitExceeded)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:         "file too large",
			assignmentID: "10",
			contentType:  "image/jpeg",
			payload:      []byte("hugejpeg"),
			mockSetup: func() {
				mockScreenshotService.EXPECT().
					UploadScreenshot(gomock.Any(), int64(1), int64(10), []byte("hugejpeg"), "image/jpeg").
					Return(nil, apperrors.ErrFileTooLarge)
			},
			wantStatusCode: http.StatusRequestEntityTooLarge,
		},
		{
			name:           "missing assignment id",
			assignmentID:   "",
			contentType:    "image/jpeg",
			payload:        []byte("jpegdata"),
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing file",
			assignmentID:   "10",
			contentType:    "",
			payload:        nil,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := buildUploadRequest(t, tt.assignmentID, tt.contentType, tt.payload)
			w := httptest.NewRecorder()
			h.UploadScreenshot(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
		})
	}
}

func TestHandler_DeleteScreenshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockScreenshotService := service_mocks.NewMockScreenshotService(ctrl)
	h := &Handler{screenshotService: mockScreenshotService}

	tests := []struct {
		name           string
		id             string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			id:   "5",
			mockSetup: func() {
				mockScreenshotService.EXPECT().DeleteScreenshot(gomock.Any(), int64(1), int64(5)).Return(nil)
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name: "not found",
			id:   "5",
			mockSetup: func() {
				mockScreenshotService.EXPECT().DeleteScreenshot(gomock.Any(), int64(1), int64(5)).
					Return(apperrors.ErrScreenshotNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "locked after submission",
			id:   "5",
			mockSetup: func() {
				mockScreenshotService.EXPECT().DeleteScreenshot(gomock.Any(), int64(1), int64(5)).
					Return(apperrors.ErrInvalidStatus)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:           "invalid id",
			id:             "zero",
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodDelete, "/api/screenshots/"+tt.id, nil)
			req = requestWithUserID(req, 1)
			req = requestWithIDParam(req, tt.id)
			w := httptest.NewRecorder()
			h.DeleteScreenshot(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
		})
	}
}
