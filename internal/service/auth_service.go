package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"jadwal-guru/config"
	"jadwal-guru/internal/dto"
	"jadwal-guru/internal/repository"
)

var (
	ErrEmptyCredentials   = errors.New("Username dan password harus diisi")
	ErrInvalidCredentials = errors.New("Username atau password salah")
)

// TokenPrefix prefix of the opaque session token; the user id follows it
const TokenPrefix = "fake-jwt-token-"

// AuthService checks credentials against the users fixture
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo   *repository.Repository
	delay  time.Duration
	logger *zap.Logger
}

// NewAuthService creates an AuthService instance
func NewAuthService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		delay:  cfg.Auth.LoginDelay,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. both fields required, checked before any waiting
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, ErrEmptyCredentials
	}

	// 2. simulated round trip
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	// 3. exact, case-sensitive match; first row wins
	user, ok := s.repo.UserByCredentials(req.Username, req.Password)
	if !ok {
		s.logger.Info("login rejected", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("login succeeded", zap.Int64("user_id", int64(user.ID)))
	return &dto.LoginResponse{
		Success: true,
		Token:   fmt.Sprintf("%s%d", TokenPrefix, user.ID),
		User:    dto.NewUserProfile(user),
	}, nil
}
