// Package gateway is the single egress point for all SmartSaaS backend
// calls. It resolves the backend base address from the current host,
// attaches the persisted bearer token to every outgoing request, and
// reacts to authentication failures by clearing the session token and
// redirecting to the login entry point.
package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/octabyte/smartsaas-go/storage"
	"github.com/octabyte/smartsaas-go/utils/logger"
)

const (
	// LoginPath is where the redirector points the UI after an
	// authentication failure.
	LoginPath = "/login"

	DefaultTimeout = 30 * time.Second
)

// RedirectFunc forces navigation to the login entry point. In a browser
// host this maps to a location change; the default implementation logs
// the target.
type RedirectFunc func(target string)

// Config holds the configuration for the API gateway client.
type Config struct {
	// BaseURL, when set, wins over hostname resolution.
	BaseURL string
	// Hostname feeds ResolveBaseURL when BaseURL is empty.
	Hostname string
	// Store persists the bearer token. Defaults to an in-memory store.
	Store storage.TokenStore
	// Redirect is invoked once per authentication failure storm.
	Redirect RedirectFunc
	// Timeout bounds every request. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Client wraps one configured resty client. The base address is
// resolved once per client lifetime.
type Client struct {
	rest     *resty.Client
	store    storage.TokenStore
	redirect RedirectFunc
	validate *validator.Validate
}

func New(cfg Config) *Client {
	if cfg.Store == nil {
		cfg.Store = storage.NewMemoryStore()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Redirect == nil {
		cfg.Redirect = func(target string) {
			logger.LogWarnf("authentication failed, redirect to %s", target)
		}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = ResolveBaseURL(cfg.Hostname)
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	rest.JSONMarshal = json.Marshal
	rest.JSONUnmarshal = json.Unmarshal

	c := &Client{
		rest:     rest,
		store:    cfg.Store,
		redirect: cfg.Redirect,
		validate: validator.New(),
	}

	rest.OnBeforeRequest(c.attachBearer)
	rest.OnAfterResponse(c.decodeFailure)

	return c
}

// BaseURL reports the resolved backend address.
func (c *Client) BaseURL() string {
	return c.rest.BaseURL
}

// attachBearer loads the persisted token and attaches it as a bearer
// credential. Requests proceed without the header when no token is
// persisted, so anonymous endpoints stay reachable.
func (c *Client) attachBearer(_ *resty.Client, req *resty.Request) error {
	token, err := c.store.Load(req.Context())
	if err != nil {
		if errors.Is(err, storage.ErrNoToken) {
			return nil
		}
		return err
	}
	req.SetHeader("Authorization", "Bearer "+token)
	return nil
}

// decodeFailure turns every non-2xx response into a typed *APIError. On
// a 401 the persisted token is cleared; only the caller whose clear
// actually removed the token triggers the redirect, so concurrent
// failures redirect exactly once.
func (c *Client) decodeFailure(_ *resty.Client, resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		removed, err := c.store.Clear(resp.Request.Context())
		if err != nil {
			logger.LogErrorf("clearing token after 401: %v", err)
		}
		if removed {
			c.redirect(LoginPath)
		}
	}

	return newAPIError(resp)
}

// validateRequest rejects malformed payloads before network dispatch.
func (c *Client) validateRequest(req interface{}) error {
	if err := c.validate.Struct(req); err != nil {
		return &ValidationError{cause: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	_, err := c.rest.R().
		SetContext(ctx).
		SetResult(out).
		Get(path)
	return err
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	req := c.rest.R().SetContext(ctx).SetResult(out)
	if body != nil {
		req.SetBody(body)
	}
	_, err := req.Post(path)
	return err
}
