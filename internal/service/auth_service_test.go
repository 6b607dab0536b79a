package service_test

import (
	"context"
	"testing"

	"github.com/aquihaydesarrollo/a-digital-central/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesAdminToken(t *testing.T) {
	secret := []byte("test-secret")
	svc, err := service.NewAuthService("admin@asesoria.es", "s3cret", secret)
	require.NoError(t, err)

	tokenString, err := svc.Login(context.Background(), "admin@asesoria.es", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "admin@asesoria.es", claims["sub"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, err := service.NewAuthService("admin@asesoria.es", "s3cret", []byte("test-secret"))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Login(ctx, "admin@asesoria.es", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "otro@asesoria.es", "s3cret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
