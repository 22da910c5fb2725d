package service_test

import (
	"testing"

	"workshop-backend/internal/service"
	"workshop-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesValidToken(t *testing.T) {
	tokens := jwt.NewTokenManager("signing-secret")
	svc := service.NewAuthService("workshop-password", tokens)

	token, err := svc.Login("workshop-password")
	require.NoError(t, err)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "granted", claims.Access)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := service.NewAuthService("workshop-password", jwt.NewTokenManager("signing-secret"))

	_, err := svc.Login("guess")
	assert.ErrorIs(t, err, service.ErrInvalidPassword)
}

func TestLoginEmptyPassword(t *testing.T) {
	svc := service.NewAuthService("workshop-password", jwt.NewTokenManager("signing-secret"))

	_, err := svc.Login("")
	assert.ErrorIs(t, err, service.ErrInvalidPassword)
}
