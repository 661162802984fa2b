package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtKey   []byte
	tokenTTL time.Duration
)

// ErrTokenInvalid возвращается при любом невалидном или просроченном токене
var ErrTokenInvalid = errors.New("invalid or expired token")

// Claims - полезная нагрузка access-токена
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Init устанавливает ключ подписи и время жизни access-токена
func Init(secret string, ttlMinutes int) {
	jwtKey = []byte(secret)
	tokenTTL = time.Duration(ttlMinutes) * time.Minute
}

// GenerateToken выпускает подписанный access-токен
func GenerateToken(userID, role string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
			Issuer:    "upss-webly",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken проверяет подпись и извлекает claims
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	// Парсер jwt/v5 сам проверяет exp, но проверяем явно
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, ErrTokenInvalid
	}

	// Токен со сторонней ролью не принимается
	if err := ValidateRole(claims.Role); err != nil {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
