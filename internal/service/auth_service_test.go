package service

import (
	"context"
	"testing"

	"course-portal-be/internal/config"
	"course-portal-be/internal/dto"
	"course-portal-be/internal/pkg/apperr"
	"course-portal-be/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(cfg config.AuthConfig) IAuthService {
	return NewAuthService(cfg, token.NewCodec([]byte(cfg.JWTSecret)), nopLogger{})
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	cfg := config.AuthConfig{
		JWTSecret:     "test-secret",
		AdminPassword: "hunter2",
		TokenTTL:      "24h",
	}
	svc := newTestAuthService(cfg)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Password: "hunter2"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "24h", res.ExpiresIn)

	claims, err := token.NewCodec([]byte("test-secret")).Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginAgainstBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.AuthConfig{
		JWTSecret:         "test-secret",
		AdminPasswordHash: string(hash),
		TokenTTL:          "1h",
	}
	svc := newTestAuthService(cfg)
	ctx := context.Background()

	_, err = svc.Login(ctx, &dto.LoginRequest{Password: "hunter2"})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, 401, apperr.StatusOf(err))
}

func TestLoginRejectsWrongOrEmptyPassword(t *testing.T) {
	cfg := config.AuthConfig{
		JWTSecret:     "test-secret",
		AdminPassword: "hunter2",
		TokenTTL:      "24h",
	}
	svc := newTestAuthService(cfg)
	ctx := context.Background()

	for _, pw := range []string{"", "wrong", "HUNTER2"} {
		_, err := svc.Login(ctx, &dto.LoginRequest{Password: pw})
		require.Error(t, err, "password %q", pw)
		assert.Equal(t, 401, apperr.StatusOf(err))
	}
}

func TestLoginFailsClosedWithoutConfig(t *testing.T) {
	ctx := context.Background()

	// No admin password configured at all.
	svc := newTestAuthService(config.AuthConfig{JWTSecret: "s", TokenTTL: "24h"})
	_, err := svc.Login(ctx, &dto.LoginRequest{Password: "anything"})
	require.Error(t, err)
	assert.Equal(t, 500, apperr.StatusOf(err))

	// Password set but no signing secret.
	svc = newTestAuthService(config.AuthConfig{AdminPassword: "hunter2", TokenTTL: "24h"})
	_, err = svc.Login(ctx, &dto.LoginRequest{Password: "hunter2"})
	require.Error(t, err)
	assert.Equal(t, 500, apperr.StatusOf(err))
}
