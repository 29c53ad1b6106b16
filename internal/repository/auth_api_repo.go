package repository

import (
	"context"
	"fmt"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/httpclient"
	"stock-backtest/pkg/logger"
)

const (
	endpointLogin    = "/api/auth/login"
	endpointRegister = "/api/auth/register"
)

type AuthAPIRepository interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
}

type authAPIRepository struct {
	log        *logger.Logger
	httpClient httpclient.HTTPClient
}

func NewAuthAPIRepository(log *logger.Logger, client httpclient.HTTPClient) *authAPIRepository {
	return &authAPIRepository{log: log, httpClient: client}
}

func (r *authAPIRepository) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	return r.exchange(ctx, endpointLogin, req)
}

func (r *authAPIRepository) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	return r.exchange(ctx, endpointRegister, req)
}

func (r *authAPIRepository) exchange(ctx context.Context, endpoint string, body interface{}) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	resp, err := r.httpClient.Post(ctx, endpoint, body, nil, &out)
	if err := httpclient.CheckResponse(resp, err); err != nil {
		r.log.ErrorContext(ctx, "Credential exchange failed",
			logger.StringField("endpoint", endpoint), logger.ErrorField(err))
		return nil, err
	}

	if out.Token == "" {
		return nil, fmt.Errorf("auth response from %s is missing a token", endpoint)
	}
	return &out, nil
}
