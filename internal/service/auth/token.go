package auth

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt"
)

// tokenExpiry читает exp из access-токена без проверки подписи: подпись проверяет бэкенд
func tokenExpiry(accessToken string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, false
	}

	switch exp := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(exp), 0).UTC(), true
	case json.Number:
		v, err := exp.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(v, 0).UTC(), true
	default:
		return time.Time{}, false
	}
}
