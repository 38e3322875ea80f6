// Package api implements the HTTP client for the store API: it resolves
// request paths against the configured origin, attaches the stored bearer
// token, and normalizes non-2xx responses into errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
	"github.com/freshcart/store-console/internal/metrics"
)

const apiPrefix = "/api"

// Client talks to the store API. It is the only component allowed to
// clear the durable token outside of an explicit logout: any observed 401
// drops the token before the failure is surfaced.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  ports.TokenStore
	log     zerolog.Logger
}

// NewClient builds a Client for the given API origin. No client-side
// timeout is set; callers bound requests through ctx when they need to.
func NewClient(baseURL string, tokens ports.TokenStore, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

// Resolve turns a caller-supplied path into an absolute request URL.
// Already-absolute URLs pass through untouched; everything else gets the
// /api prefix (when missing) and the configured origin.
func (c *Client) Resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, apiPrefix) {
		if strings.HasPrefix(path, "/") {
			path = apiPrefix + path
		} else {
			path = apiPrefix + "/" + path
		}
	}
	return c.baseURL + path
}

// Request performs a JSON request. On any 2xx the raw response is returned
// and the caller owns the body. 401 clears the durable token and fails
// with domain.ErrUnauthorized; other non-2xx statuses fail with a
// *RequestError carrying the response body text.
func (c *Client) Request(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Resolve(path), payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.attachToken(ctx, req)

	return c.do(ctx, req)
}

// RequestMultipart posts form fields plus an optional file, used by
// product creation which ships an image alongside the record fields.
func (c *Client) RequestMultipart(ctx context.Context, path string, fields map[string]string, file *ports.FormFile) (*http.Response, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return nil, fmt.Errorf("copy form file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Resolve(path), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.attachToken(ctx, req)

	return c.do(ctx, req)
}

// QueryFetch performs a read-only request and returns the payload bytes.
// Under ports.On401ReturnNil an unauthorized read resolves to (nil, nil)
// after the token clear, letting callers treat it as "no data".
func (c *Client) QueryFetch(ctx context.Context, path string, policy ports.UnauthorizedPolicy) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Resolve(path), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.attachToken(ctx, req)

	resp, err := c.do(ctx, req)
	if err != nil {
		if policy == ports.On401ReturnNil && isUnauthorized(err) {
			return nil, nil
		}
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return raw, nil
}

// do executes the request and applies the shared status handling.
func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(req.Method, "error").Inc()
		c.log.Debug().Err(err).Str("url", req.URL.String()).Msg("request transport failure")
		return nil, &RequestError{StatusCode: 0, Message: err.Error()}
	}
	metrics.RequestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusUnauthorized {
		drainAndClose(resp)
		c.clearToken(ctx)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, domain.ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(text)),
		}
	}

	return resp, nil
}

// attachToken adds the Authorization header when a token is stored. A
// failing token store is treated as no token; the request still goes out.
func (c *Client) attachToken(ctx context.Context, req *http.Request) {
	token, err := c.tokens.Get(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("token store read failed, sending unauthenticated")
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// clearToken drops the durable token after an observed 401. This is a
// deliberate layering shortcut carried over from the dashboard: the
// transport owns the 401 side effect, not the session service.
func (c *Client) clearToken(ctx context.Context) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.log.Error().Err(err).Msg("failed to clear token after 401")
		return
	}
	metrics.TokenClearsTotal.Inc()
	c.log.Debug().Msg("cleared stored token after 401")
}

func isUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
}
