package service

import (
	"context"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/repository"
	"stock-backtest/internal/session"
	"stock-backtest/pkg/logger"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Register(ctx context.Context, username, email, password string) (*dto.AuthResponse, error)
	Logout(ctx context.Context) error
}

type authService struct {
	log      *logger.Logger
	authRepo repository.AuthAPIRepository
	session  *session.Manager
}

func NewAuthService(log *logger.Logger, authRepo repository.AuthAPIRepository, session *session.Manager) *authService {
	return &authService{log: log, authRepo: authRepo, session: session}
}

func (s *authService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	resp, err := s.authRepo.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return resp, s.persist(ctx, resp)
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*dto.AuthResponse, error) {
	resp, err := s.authRepo.Register(ctx, dto.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return resp, s.persist(ctx, resp)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *authService) persist(ctx context.Context, resp *dto.AuthResponse) error {
	if err := s.session.Set(ctx, resp.Token, resp.UserProfile); err != nil {
		s.log.ErrorContext(ctx, "Failed to persist session", logger.ErrorField(err))
		return err
	}
	return nil
}
