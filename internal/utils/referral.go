package utils

import (
	"fmt"
	"strconv"
	"strings"
)

const referralTokenPrefix = "ref_"

func GenerateReferralToken(telegramID int64) string {
	return fmt.Sprintf("%s%d", referralTokenPrefix, telegramID)
}

// ParseReferralToken extracts the referrer id from a ref_<id> token.
// Malformed tokens yield ok=false, never an error: a broken invite link
// must not break registration.
func ParseReferralToken(token string) (int64, bool) {
	raw, found := strings.CutPrefix(token, referralTokenPrefix)
	if !found {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
