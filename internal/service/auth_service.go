package service

import (
	"crypto/subtle"
	"errors"

	"workshop-backend/pkg/jwt"
)

var ErrInvalidPassword = errors.New("invalid password")

// AuthService verifies the shared workshop password and issues bearer tokens.
// There are no per-user accounts, refresh tokens or revocation; verification
// is stateless against the signing secret.
type AuthService interface {
	Login(password string) (string, error)
}

type authService struct {
	password string
	tokens   *jwt.TokenManager
}

func NewAuthService(password string, tokens *jwt.TokenManager) AuthService {
	return &authService{password: password, tokens: tokens}
}

func (s *authService) Login(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrInvalidPassword
	}
	return s.tokens.Generate()
}
