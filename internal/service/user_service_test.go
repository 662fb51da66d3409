package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
	"github.com/avdeenkov/avito-tasker/internal/config"
	"github.com/avdeenkov/avito-tasker/internal/mocks/repository_mocks"
	"github.com/avdeenkov/avito-tasker/internal/models"
)

const testBotToken = "123456:test-bot-token"

func signedInitData(t *testing.T, user string, startParam string) string {
	t.Helper()

	values := url.Values{}
	values.Set("auth_date", strconv.FormatInt(time.Now().Add(-time.Minute).Unix(), 10))
	values.Set("user", user)
	if startParam != "" {
		values.Set("start_param", startParam)
	}

	var keys []string
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var pairs []string
	for _, key := range keys {
		pairs = append(pairs, key+"="+values.Get(key))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(testBotToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))

	return values.Encode()
}

func TestUserService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := &config.Config{BotToken: testBotToken}

	alice := `{"id":100,"first_name":"Alice","username":"alice"}`

	tests := []struct {
		name      string
		initData  func(t *testing.T) string
		mockSetup func(m *repository_mocks.MockUserRepository)
		wantID    int64
		wantErr   error
	}{
		{
			name:     "успешный вход без реферала",
			initData: func(t *testing.T) string { return signedInitData(t, alice, "") },
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().UpsertUser(ctx, int64(100), gomock.Any(), "Alice", gomock.Nil()).
					Return(&models.User{TelegramID: 100, FirstName: "Alice"}, nil).Times(1)
			},
			wantID: 100,
		},
		{
			name: "невалидная подпись",
			initData: func(t *testing.T) string {
				return signedInitData(t, alice, "") + "x"
			},
			mockSetup: func(m *repository_mocks.MockUserRepository) {},
			wantErr:   apperrors.ErrInvalidInitData,
		},
		{
			name:     "реферальный токен привязывает пригласившего",
			initData: func(t *testing.T) string { return signedInitData(t, alice, "ref_55") },
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().UserExists(ctx, int64(55)).Return(true, nil).Times(1)
				referrer := int64(55)
				m.EXPECT().UpsertUser(ctx, int64(100), gomock.Any(), "Alice", &referrer).
					Return(&models.User{TelegramID: 100, ReferredBy: &referrer}, nil).Times(1)
			},
			wantID: 100,
		},
		{
			name:     "самореферал игнорируется",
			initData: func(t *testing.T) string { return signedInitData(t, alice, "ref_100") },
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().UpsertUser(ctx, int64(100), gomock.Any(), "Alice", gomock.Nil()).
					Return(&models.User{TelegramID: 100}, nil).Times(1)
			},
			wantID: 100,
		},
		{
			name:     "несуществующий реферер игнорируется",
			initData: func(t *testing.T) string { return signedInitData(t, alice, "ref_999") },
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().UserExists(ctx, int64(999)).Return(false, nil).Times(1)
				m.EXPECT().UpsertUser(ctx, int64(100), gomock.Any(), "Alice", gomock.Nil()).
					Return(&models.User{TelegramID: 100}, nil).Times(1)
			},
			wantID: 100,
		},
		{
			name:     "кривой реферальный токен игнорируется",
			initData: func(t *testing.T) string { return signedInitData(t, alice, "ref_abc") },
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().UpsertUser(ctx, int64(100), gomock.Any(), "Alice", gomock.Nil()).
					Return(&models.User{TelegramID: 100}, nil).Times(1)
			},
			wantID: 100,
		},
		{
			name:     "ошибка проверки реферера не ломает вход",
			initData: func(t *testing.T) string { return signedInitData(t, alice, "ref_55") },
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().UserExists(ctx, int64(55)).Return(false, errors.New("db error")).Times(1)
				m.EXPECT().UpsertUser(ctx, int64(100), gomock.Any(), "Alice", gomock.Nil()).
					Return(&models.User{TelegramID: 100}, nil).Times(1)
			},
			wantID: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := repository_mocks.NewMockUserRepository(ctrl)
			tt.mockSetup(mockRepo)

			svc := NewUserService(mockRepo, cfg)
			user, err := svc.Authenticate(ctx, tt.initData(t))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, user.TelegramID)
		})
	}
}

func TestUserService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := repository_mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, &config.Config{})

	mockRepo.EXPECT().GetUser(ctx, int64(100)).Return(&models.User{TelegramID: 100, MainBalance: 150}, nil)
	user, err := svc.GetUser(ctx, 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(150), user.MainBalance)

	mockRepo.EXPECT().GetUser(ctx, int64(101)).Return(nil, apperrors.ErrUserNotFound)
	_, err = svc.GetUser(ctx, 101)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
