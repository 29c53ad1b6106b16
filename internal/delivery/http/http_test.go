package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/logger"
)

func newTestHandler() (*HttpAPIHandler, *echo.Echo) {
	e := echo.New()
	h := NewHttpAPIHandler(e, goValidator.New(), &logger.Logger{Logger: zap.NewNop()})

	base := e.Group("/api")
	h.SetupAuth(base)
	h.SetupBacktest(base)
	h.SetupScanner(base)
	h.SetupAccount(base)
	return h, e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/api/auth/register", "",
		`{"username":"alice","email":"alice@example.com","password":"secret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestAuthEndpoints(t *testing.T) {
	_, e := newTestHandler()

	t.Run("register issues a token", func(t *testing.T) {
		token := registerAndLogin(t, e)
		assert.NotEmpty(t, token)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/auth/register", "",
			`{"username":"alice2","email":"alice@example.com","password":"secret-pass"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/auth/register", "",
			`{"username":"bob","email":"bob@example.com","password":"short"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login with valid credentials", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/auth/login", "",
			`{"email":"alice@example.com","password":"secret-pass"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/auth/login", "",
			`{"email":"alice@example.com","password":"wrong-pass"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/auth/login", "",
			`{"email":"nobody@example.com","password":"secret-pass"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAnalyzeEndpoint(t *testing.T) {
	_, e := newTestHandler()
	token := registerAndLogin(t, e)

	validBody := `{
		"symbols": ["2330", "0050"],
		"startDate": "2024-01-01",
		"endDate": "2024-02-01",
		"initialCapital": 100000,
		"tradeActions": [
			{"date": "2024-01-15", "symbol": "2330", "action": "BUY", "shares": 100}
		]
	}`

	t.Run("requires a token", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/backtest/analyze", "", validBody)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = doJSON(e, http.MethodPost, "/api/backtest/analyze", "made-up-token", validBody)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid request returns the full response", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/backtest/analyze", token, validBody)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp dto.AnalyzeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 100000.0, resp.InitialCapital)
		assert.Positive(t, resp.TradingDays)
		assert.Len(t, resp.StockPrices, 2)
		assert.Len(t, resp.PortfolioHistory, resp.TradingDays)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		first := doJSON(e, http.MethodPost, "/api/backtest/analyze", token, validBody)
		second := doJSON(e, http.MethodPost, "/api/backtest/analyze", token, validBody)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
	})

	t.Run("start after end is a bad request", func(t *testing.T) {
		body := `{
			"symbols": ["2330"],
			"startDate": "2024-02-01",
			"endDate": "2024-01-01",
			"initialCapital": 100000,
			"tradeActions": []
		}`
		rec := doJSON(e, http.MethodPost, "/api/backtest/analyze", token, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("trade on a symbol outside the request is a bad request", func(t *testing.T) {
		body := `{
			"symbols": ["2330"],
			"startDate": "2024-01-01",
			"endDate": "2024-02-01",
			"initialCapital": 100000,
			"tradeActions": [
				{"date": "2024-01-15", "symbol": "9999", "action": "BUY", "shares": 100}
			]
		}`
		rec := doJSON(e, http.MethodPost, "/api/backtest/analyze", token, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing symbols fail validation", func(t *testing.T) {
		body := `{
			"symbols": [],
			"startDate": "2024-01-01",
			"endDate": "2024-02-01",
			"initialCapital": 100000,
			"tradeActions": []
		}`
		rec := doJSON(e, http.MethodPost, "/api/backtest/analyze", token, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("health is public", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/backtest/health", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"UP"}`, rec.Body.String())
	})
}

func TestScannerEndpoint(t *testing.T) {
	_, e := newTestHandler()
	token := registerAndLogin(t, e)

	t.Run("returns rows sorted by the requested metric", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/scanner/data", token,
			`{"scanner_type":"VolumeRank","date":"2024-05-02","count":5}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp dto.ScannerResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 5)
		assert.Equal(t, 5, resp.Count)

		prev := resp.Data[0]["volume"].(float64)
		for _, row := range resp.Data[1:] {
			v := row["volume"].(float64)
			assert.LessOrEqual(t, v, prev)
			prev = v
		}
	})

	t.Run("unknown scanner type", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/scanner/data", token,
			`{"scanner_type":"BogusRank","date":"2024-05-02","count":5}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("requires a token", func(t *testing.T) {
		rec := doJSON(e, http.MethodPost, "/api/scanner/data", "",
			`{"scanner_type":"VolumeRank","date":"2024-05-02","count":5}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPortfolioPieChartEndpoint(t *testing.T) {
	_, e := newTestHandler()
	token := registerAndLogin(t, e)

	rec := doJSON(e, http.MethodGet, "/api/account/portfolio/pie-chart", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PieChartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Positive(t, resp.TotalValue)
	require.NotEmpty(t, resp.Positions)

	var sum float64
	for _, slice := range resp.Positions {
		sum += slice.Value
	}
	assert.InDelta(t, resp.TotalValue, sum, 0.01)
}
