package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/authpipe/authpipe/internal/config"
)

// DefaultTimeout is the per-request timeout when none is configured.
const DefaultTimeout = 30 * time.Second

// maxResponseBody caps how much of a response body is read.
const maxResponseBody = 1 << 20 // 1 MiB

// HTTPClient is the net/http backed Transport. The action URL path is
// resolved against the configured base URL.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds an HTTPClient from transport configuration.
func NewHTTPClient(cfg config.TransportConfig) *HTTPClient {
	timeout := cfg.GetTimeoutOption().OrElse(DefaultTimeout)

	return &HTTPClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Send issues one HTTP request and returns the full response envelope.
// Error statuses (>= 400) are returned as a StatusError carrying the body so
// the errors extractor can interpret structured failures. Any other error is
// an opaque transport failure.
func (c *HTTPClient) Send(ctx context.Context, method, url string, body []byte) (*Envelope, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), c.baseURL+url, reader)
	if err != nil {
		return nil, fmt.Errorf("transport: failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	log.Ctx(ctx).Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("sending request")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport: request failed: %w", err)
	}
	defer closeBody(resp.Body)

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("transport: failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{
			Status: resp.StatusCode,
			Header: resp.Header,
			Body:   respBody,
		}
	}

	return &Envelope{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   respBody,
	}, nil
}

// closeBody drains and closes a response body, logging close failures.
func closeBody(body io.ReadCloser) {
	if _, err := io.Copy(io.Discard, io.LimitReader(body, maxResponseBody)); err != nil {
		log.Debug().Err(err).Msg("failed to drain response body")
	}
	if err := body.Close(); err != nil {
		log.Debug().Err(err).Msg("failed to close response body")
	}
}
