package lavalink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// requestTimeout bounds the wait for a Lavalink response. The node is usually
// on the same host; if it has not answered in this window it is not going to.
const requestTimeout = 7 * time.Second

// restClient is the single place where URLs, HTTP methods, and headers for
// the Lavalink REST API are assembled.
type restClient struct {
	baseURL  string
	password string
	client   *http.Client
	limiter  *rate.Limiter
	timeout  time.Duration
}

func newRestClient(cfg Config) *restClient {
	scheme := "http"
	if cfg.Secure {
		scheme = "https"
	}

	return &restClient{
		baseURL:  scheme + "://" + net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		password: cfg.Password,
		client:   &http.Client{Timeout: requestTimeout},
		// A command burst should not turn into a request storm against the node.
		limiter: rate.NewLimiter(rate.Limit(10), 10),
		timeout: requestTimeout,
	}
}

// do sends a request and blocks until the node responds or the bounded wait
// expires. Transport-level failures surface as ErrUnreachable, responses with
// status >= 400 as *UpstreamError. A 2xx/3xx response returns the raw body,
// which is legitimately empty for some endpoints.
func (c *restClient) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	req.Header.Set("Authorization", c.password)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(data)}
	}

	slog.Debug("lavalink request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"response_bytes", len(data),
	)

	return data, nil
}
