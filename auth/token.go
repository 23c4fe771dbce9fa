package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenTTL is how long a session token stays valid after login.
const TokenTTL = 8 * time.Hour

// TokenService signs and verifies session tokens. The trainer id rides
// in the subject claim.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue creates a signed token for the trainer, valid for TokenTTL.
func (s *TokenService) Issue(trainerID string) (string, error) {
	now := time.Now()
	claims := &jwt.StandardClaims{
		Subject:   trainerID,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses a signed token and returns the trainer id it carries.
func (s *TokenService) Verify(signed string) (string, error) {
	token, err := jwt.ParseWithClaims(
		signed,
		&jwt.StandardClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
	)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("token carries no trainer id")
	}
	return claims.Subject, nil
}
