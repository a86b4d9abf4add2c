package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"course-portal-be/internal/config"
	"course-portal-be/internal/dto"
	"course-portal-be/internal/pkg/apperr"
	"course-portal-be/internal/pkg/logger"
	"course-portal-be/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	cfg    config.AuthConfig
	codec  *token.Codec
	logger logger.ILogger
}

func NewAuthService(cfg config.AuthConfig, codec *token.Codec, log logger.ILogger) IAuthService {
	return &authService{
		cfg:    cfg,
		codec:  codec,
		logger: log,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.AdminPassword == "" && s.cfg.AdminPasswordHash == "" {
		return nil, apperr.ServerConfig("admin password is not configured")
	}
	if s.cfg.JWTSecret == "" {
		return nil, apperr.ServerConfig("token signing secret is not configured")
	}

	if !s.passwordMatches(req.Password) {
		s.logger.Warn("AUTH", "admin login rejected", map[string]interface{}{})
		return nil, apperr.Unauthorized("invalid password")
	}

	signed, err := s.codec.Issue(map[string]interface{}{"role": "admin"}, s.cfg.TokenTTL)
	if err != nil {
		s.logger.Error("AUTH", "token issue failed", map[string]interface{}{"error": err.Error()})
		return nil, apperr.ServerConfig("could not issue admin token")
	}

	s.logger.Info("AUTH", "admin login succeeded", map[string]interface{}{})
	return &dto.LoginResponse{
		Success:   true,
		Token:     signed,
		ExpiresIn: s.cfg.TokenTTL,
	}, nil
}

func (s *authService) passwordMatches(candidate string) bool {
	if candidate == "" {
		return false
	}
	if s.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(candidate)) == nil
	}
	// Plain-text fallback for local development. Compared in constant time
	// so that the deployment without a bcrypt hash does not leak length info.
	expected := strings.TrimSpace(s.cfg.AdminPassword)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(candidate)) == 1
}
