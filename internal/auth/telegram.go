package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/avdeenkov/avito-tasker/internal/apperrors"
)

const initDataMaxAge = time.Hour

type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// InitData is the verified payload of a Telegram Mini App launch.
type InitData struct {
	User       TelegramUser
	AuthDate   time.Time
	StartParam string
}

// ValidateInitData checks the HMAC signature of raw Telegram WebApp init
// data against the bot token and returns the parsed payload. The signature
// covers all fields except hash, joined as sorted key=value lines.
func ValidateInitData(initData, botToken string, now time.Time) (*InitData, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, apperrors.ErrInvalidInitData
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, apperrors.ErrInvalidInitData
	}

	authDateRaw, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, apperrors.ErrInvalidInitData
	}
	authDate := time.Unix(authDateRaw, 0)
	if now.Sub(authDate) > initDataMaxAge {
		return nil, apperrors.ErrInvalidInitData
	}

	values.Del("hash")
	var keys []string
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var pairs []string
	for _, key := range keys {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	dataCheckString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(dataCheckString))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(hash)) {
		return nil, apperrors.ErrInvalidInitData
	}

	var user TelegramUser
	if raw := values.Get("user"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, apperrors.ErrInvalidInitData
		}
	}
	if user.ID == 0 {
		return nil, apperrors.ErrInvalidInitData
	}

	return &InitData{
		User:       user,
		AuthDate:   authDate,
		StartParam: values.Get("start_param"),
	}, nil
}
