package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
	"github.com/bnema/clipgen-cli/internal/version"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL        = "http://localhost:8000"
	DefaultRequestTimeout = 60 * time.Second

	tokenHeader      = "x-token"
	requestIDHeader  = "X-Request-ID"
	maxResponseBytes = 1 << 20
)

var errInvalidResponse = errors.New("invalid response payload")

// Client talks to the clipart backend. One request per call, no retries.
type Client struct {
	baseURL        *url.URL
	httpClient     *http.Client
	requestTimeout time.Duration
	logger         *zap.Logger
	newRequestID   func() string
}

var _ ports.Gateway = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.requestTimeout = timeout
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	client := &Client{
		baseURL:        parsed,
		httpClient:     http.DefaultClient,
		requestTimeout: DefaultRequestTimeout,
		logger:         zap.NewNop(),
		newRequestID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type authPayload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email string, password string) (ports.AuthResult, error) {
	var payload authPayload
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", "", body, &payload); err != nil {
		return ports.AuthResult{}, err
	}
	return authResult("login", payload)
}

func (c *Client) Signup(ctx context.Context, name string, email string, password string) (ports.AuthResult, error) {
	var payload authPayload
	body := map[string]string{"email": email, "password": password, "name": name}
	if err := c.do(ctx, "signup", http.MethodPost, "/auth/signup", "", body, &payload); err != nil {
		return ports.AuthResult{}, err
	}
	return authResult("signup", payload)
}

func authResult(op string, payload authPayload) (ports.AuthResult, error) {
	if strings.TrimSpace(payload.Token) == "" || payload.User == nil {
		return ports.AuthResult{}, networkError(op, fmt.Errorf("%w: missing token or user", errInvalidResponse))
	}
	return ports.AuthResult{Token: payload.Token, User: *payload.User}, nil
}

func (c *Client) Generate(ctx context.Context, token string, prompt string) (string, error) {
	var payload struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, "generate", http.MethodPost, "/generate", token, map[string]string{"prompt": prompt}, &payload); err != nil {
		return "", err
	}
	if strings.TrimSpace(payload.URL) == "" {
		return "", networkError("generate", fmt.Errorf("%w: missing url", errInvalidResponse))
	}
	return payload.URL, nil
}

func (c *Client) GetCredits(ctx context.Context, token string) (domain.Credits, error) {
	var payload struct {
		Credits *int64 `json:"credits"`
	}
	if err := c.do(ctx, "credits", http.MethodGet, "/credits", token, nil, &payload); err != nil {
		return 0, err
	}
	if payload.Credits == nil {
		return 0, networkError("credits", fmt.Errorf("%w: missing credits", errInvalidResponse))
	}
	return domain.ClampCredits(*payload.Credits), nil
}

func (c *Client) SaveToLibrary(ctx context.Context, token string, req domain.SaveRequest) error {
	return c.do(ctx, "save to library", http.MethodPost, "/library/save", token, req, nil)
}

func (c *Client) ListLibrary(ctx context.Context, token string) ([]domain.LibraryItem, error) {
	items := []domain.LibraryItem{}
	if err := c.do(ctx, "list library", http.MethodGet, "/library", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) DeleteLibraryItem(ctx context.Context, token string, id domain.LibraryItemID) error {
	return c.do(ctx, "delete library item", http.MethodDelete, "/library/"+url.PathEscape(string(id)), token, nil, nil)
}

func (c *Client) Checkout(ctx context.Context, token string, tier domain.TierID) error {
	return c.do(ctx, "checkout", http.MethodPost, "/billing/checkout", token, map[string]string{"tier": string(tier)}, nil)
}

func (c *Client) GetPurchaseHistory(ctx context.Context, token string) ([]domain.Purchase, error) {
	history := []domain.Purchase{}
	if err := c.do(ctx, "purchase history", http.MethodGet, "/billing/history", token, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *Client) UpdateEmail(ctx context.Context, token string, email string) (domain.User, error) {
	var user domain.User
	if err := c.do(ctx, "update email", http.MethodPost, "/settings/email", token, map[string]string{"email": email}, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (c *Client) ChangePassword(ctx context.Context, token string, oldPassword string, newPassword string) error {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	return c.do(ctx, "change password", http.MethodPost, "/settings/password", token, body, nil)
}

func (c *Client) DeleteAccount(ctx context.Context, token string) error {
	return c.do(ctx, "delete account", http.MethodDelete, "/settings/delete-account", token, nil, nil)
}

// Download copies the asset at rawURL into w. Relative URLs resolve
// against the API base. The session token is never sent.
func (c *Client) Download(ctx context.Context, rawURL string, w io.Writer) (int64, error) {
	const op = "download"

	target, err := c.baseURL.Parse(strings.TrimSpace(rawURL))
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") {
		return 0, &domain.APIError{Op: op, Kind: domain.ErrorKindValidation, Detail: fmt.Sprintf("invalid asset url %q", rawURL)}
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return 0, networkError(op, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, networkError(op, fmt.Errorf("perform request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return 0, classify(op, resp.StatusCode, body)
	}

	written, err := io.Copy(w, resp.Body)
	if err != nil {
		return written, networkError(op, fmt.Errorf("copy asset: %w", err))
	}

	return written, nil
}

func (c *Client) do(ctx context.Context, op string, method string, path string, token string, in any, out any) error {
	endpoint := c.baseURL.JoinPath(path)
	requestID := c.newRequestID()
	started := time.Now()

	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(encoded)
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return networkError(op, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set(requestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	logger := c.logger.With(
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", endpoint.Path),
		zap.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("request failed", zap.Duration("duration", time.Since(started)), zap.Error(err))
		return networkError(op, fmt.Errorf("perform request: %w", err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	logger.Debug("request completed", zap.Int("status", resp.StatusCode), zap.Duration("duration", time.Since(started)))
	if err != nil {
		return networkError(op, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classify(op, resp.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return networkError(op, fmt.Errorf("%w: %w", errInvalidResponse, err))
	}

	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("api base url is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("api base url host is required")
	}

	return parsed, nil
}
