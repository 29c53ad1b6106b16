package httpclient

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type RestyClient struct {
	client *resty.Client
}

// New creates a resty-backed client. The token provider is consulted per request
// so a login during the process lifetime takes effect immediately; the two auth
// endpoints never carry a bearer token.
func New(baseURL string, timeout time.Duration, tokens TokenProvider) HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if tokens != nil {
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if isAuthEndpoint(req.URL) {
				return nil
			}
			if token := tokens(); token != "" {
				req.SetAuthToken(token)
			}
			return nil
		})
	}

	return &RestyClient{client: client}
}

func isAuthEndpoint(url string) bool {
	return strings.Contains(url, "/auth/login") || strings.Contains(url, "/auth/register")
}

// GET request with optional query params
func (rc *RestyClient) Get(ctx context.Context, endpoint string, queryParams map[string]string, headers map[string]string, result interface{}) (*BaseResponse, error) {
	req := rc.client.R().SetContext(ctx)

	if result != nil {
		req.SetResult(result)
	}

	if queryParams != nil {
		req.SetQueryParams(queryParams)
	}

	if headers != nil {
		req.SetHeaders(headers)
	}

	resp, err := req.Get(endpoint)
	return &BaseResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Headers:    resp.Header(),
	}, err
}

// POST request with body
func (rc *RestyClient) Post(ctx context.Context, endpoint string, body interface{}, headers map[string]string, result interface{}) (*BaseResponse, error) {
	req := rc.client.R().
		SetContext(ctx).
		SetBody(body)

	if result != nil {
		req.SetResult(result)
	}

	if headers != nil {
		req.SetHeaders(headers)
	}

	resp, err := req.Post(endpoint)
	return &BaseResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Headers:    resp.Header(),
	}, err
}
