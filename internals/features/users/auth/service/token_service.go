package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"swimclub_backend/internals/configs"
	userModel "swimclub_backend/internals/features/users/user/model"
)

const (
	AccessTTL  = 24 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

// CreateAccessToken emite o JWT de acesso com id + role
func CreateAccessToken(u *userModel.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":   u.UserID.String(),
		"role": u.UserRole,
		"name": u.UserName,
		"iat":  now.Unix(),
		"exp":  now.Add(AccessTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// NewRefreshToken gera o refresh token opaco (hex) e sua expiração
func NewRefreshToken() (string, time.Time, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}
	return hex.EncodeToString(buf), time.Now().UTC().Add(RefreshTTL), nil
}

// ComputeRefreshHash: só o HMAC do refresh token vai para o banco
func ComputeRefreshHash(token string) []byte {
	m := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

// TokenExpiry extrai o exp de um access token já validado (para blacklist)
func TokenExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return time.Now().UTC().Add(AccessTTL)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0).UTC()
	}
	return time.Now().UTC().Add(AccessTTL)
}

// ParseUserID util para claims com id em string
func ParseUserID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
