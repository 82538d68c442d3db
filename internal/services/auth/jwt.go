package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type JWTService struct {
	secretKey []byte
	tokens    TokenStore
}

func NewJWTService(secretKey string, tokens TokenStore) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		tokens:    tokens,
	}
}

// GenerateToken выпускает пару access/refresh. Refresh — непрозрачная строка,
// живёт только на сервере; access несёт uid, имя и роль.
func (s *JWTService) GenerateToken(ctx context.Context, uid, fullName, role string) (string, string, error) {
	claims := jwt.MapClaims{
		"user_id": uid,
		"name":    fullName,
		"role":    role,
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %v", err)
	}

	refreshToken := uuid.NewString()
	if err := s.tokens.Save(ctx, refreshToken, uid, refreshTokenTTL); err != nil {
		return "", "", fmt.Errorf("failed to store refresh token: %v", err)
	}
	return accessToken, refreshToken, nil
}

// ValidateRefreshToken возвращает uid владельца refresh-токена.
func (s *JWTService) ValidateRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	return s.tokens.Lookup(ctx, refreshToken)
}

// RevokeRefreshToken — выход: refresh перестаёт действовать немедленно,
// access доживает свой срок.
func (s *JWTService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	return s.tokens.Revoke(ctx, refreshToken)
}
