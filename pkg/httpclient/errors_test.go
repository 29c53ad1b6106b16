package httpclient

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		name     string
		resp     *BaseResponse
		callErr  error
		wantKind error
	}{
		{
			name: "200 is nil",
			resp: &BaseResponse{StatusCode: http.StatusOK},
		},
		{
			name: "204 is nil",
			resp: &BaseResponse{StatusCode: http.StatusNoContent},
		},
		{
			name:     "401 maps to unauthorized",
			resp:     &BaseResponse{StatusCode: http.StatusUnauthorized},
			wantKind: ErrUnauthorized,
		},
		{
			name:     "400 maps to bad request",
			resp:     &BaseResponse{StatusCode: http.StatusBadRequest},
			wantKind: ErrBadRequest,
		},
		{
			name:     "500 maps to server error",
			resp:     &BaseResponse{StatusCode: http.StatusInternalServerError},
			wantKind: ErrServerError,
		},
		{
			name:     "503 maps to server error",
			resp:     &BaseResponse{StatusCode: http.StatusServiceUnavailable},
			wantKind: ErrServerError,
		},
		{
			name:     "other statuses map to network error",
			resp:     &BaseResponse{StatusCode: http.StatusNotFound},
			wantKind: ErrNetwork,
		},
		{
			name:     "403 maps to network error",
			resp:     &BaseResponse{StatusCode: http.StatusForbidden},
			wantKind: ErrNetwork,
		},
		{
			name:     "transport failure maps to network error",
			callErr:  errors.New("connection refused"),
			wantKind: ErrNetwork,
		},
		{
			name:     "no response maps to network error",
			wantKind: ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckResponse(tt.resp, tt.callErr)
			if tt.wantKind == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := CheckResponse(&BaseResponse{
		StatusCode: http.StatusBadRequest,
		Body:       []byte("  startDate is required \n"),
	}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "startDate is required", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "startDate is required")
}

func TestIsAuthEndpoint(t *testing.T) {
	assert.True(t, isAuthEndpoint("/api/auth/login"))
	assert.True(t, isAuthEndpoint("/api/auth/register"))
	assert.False(t, isAuthEndpoint("/api/backtest/analyze"))
	assert.False(t, isAuthEndpoint("/api/backtest/health"))
}
