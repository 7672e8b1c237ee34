package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"signhub/internal/app/client/config"
)

const userAgent = "Signhub-Client/1.0"

type Client struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		log:     log.With("component", "http_client"),
		baseURL: cfg.BaseURL(),
	}
}

// HealthCheck returns nil when the server and its storage are up.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return err
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := c.parseResponse(resp, &health); err != nil {
		return err
	}
	if health.Status != "OK" {
		return fmt.Errorf("server reported status %q", health.Status)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, username string) (*RegisterResult, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/register", map[string]string{"username": username})
	if err != nil {
		return nil, err
	}

	var res RegisterResult
	if err := c.parseResponse(resp, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Sign(ctx context.Context, username, message string) (*SignResult, error) {
	body := map[string]string{"username": username, "message": message}
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/sign", body)
	if err != nil {
		return nil, err
	}

	var res SignResult
	if err := c.parseResponse(resp, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Verify always returns the decoded body when the server sent one, so callers can show
// the verdict message of a 404 alongside the error.
func (c *Client) Verify(ctx context.Context, req VerifyRequest) (*VerifyResult, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/verify_signature", req)
	if err != nil {
		return nil, err
	}

	var res VerifyResult
	err = c.parseResponse(resp, &res)
	return &res, err
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server unreachable: %w", err)
	}
	return resp, nil
}

// parseResponse decodes the body into result for every status that carries JSON and
// turns 4xx/5xx into *APIError.
func (c *Client) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("response received", "status", resp.StatusCode)

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil && resp.StatusCode < 400 {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error   string `json:"error"`
			Message string `json:"message"`
			Detail  string `json:"detail"`
		}
		_ = json.Unmarshal(body, &errResp)

		msg := firstNonEmpty(errResp.Error, errResp.Message, errResp.Detail)
		if msg == "" {
			msg = fmt.Sprintf("server returned status %d", resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
