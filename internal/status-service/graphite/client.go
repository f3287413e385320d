package graphite

import (
	"VCS_Status_Microservice/internal/status-service/decoder"
	apperrors "VCS_Status_Microservice/internal/status-service/errors"
	"VCS_Status_Microservice/internal/status-service/model"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"
)

// maxResponseBytes matches the inbound batch limit of the HTTP API.
const maxResponseBytes = 10 << 20

type Client interface {
	FetchDatapoints(ctx context.Context, target model.Target) ([]model.DataPoint, error)
}

type ClientConfig struct {
	// BaseURL is a graphite-web root, requests go to BaseURL/render/.
	BaseURL string
	// ProxyURL is the VPC helper endpoint, when set it wins over BaseURL.
	ProxyURL       string
	MaxRetries     int
	InitialBackoff time.Duration
	RequestTimeout time.Duration
}

type client struct {
	httpClient     *http.Client
	baseURL        string
	proxyURL       string
	maxRetries     int
	initialBackoff time.Duration
}

type proxyRequest struct {
	Path    string `json:"path"`
	Payload string `json:"payload"`
}

// renderPath builds the render query. The VPC helper only understands "to" for the
// end of the window, graphite-web uses "until".
func renderPath(target model.Target, untilKey string) string {
	q := url.Values{}
	q.Set("target", target.Name)
	q.Set("format", "json")
	if target.From != "" {
		q.Set("from", target.From)
	}
	if target.Until != "" {
		q.Set(untilKey, target.Until)
	}
	return "/render/?" + q.Encode()
}

func (c *client) newRequest(ctx context.Context, target model.Target) (*http.Request, error) {
	if c.proxyURL != "" {
		b, err := json.Marshal(proxyRequest{Path: renderPath(target, "to")})
		if err != nil {
			return nil, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.proxyURL, bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}
	return http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(c.baseURL, "/")+renderPath(target, "until"), nil)
}

// FetchDatapoints retries transport errors and 5xx responses with exponential backoff.
// A refused connection or a 4xx response is returned straight away.
func (c *client) FetchDatapoints(ctx context.Context, target model.Target) ([]model.DataPoint, error) {
	if target.Name == "" {
		return nil, fmt.Errorf("GraphiteClient.FetchDatapoints: %w", apperrors.ErrEmptyTarget)
	}
	if c.proxyURL == "" && c.baseURL == "" {
		return nil, fmt.Errorf("GraphiteClient.FetchDatapoints: %w", apperrors.ErrSourceNotConfigured)
	}
	attempts := c.maxRetries
	if attempts < 1 {
		attempts = 1
	}
	backoff := c.initialBackoff
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("GraphiteClient.FetchDatapoints: %w", ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}
		req, err := c.newRequest(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("GraphiteClient.FetchDatapoints creating request: %w", err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if errors.Is(err, syscall.ECONNREFUSED) || ctx.Err() != nil {
				break
			}
			continue
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if len(body) > maxResponseBytes {
			return nil, fmt.Errorf("GraphiteClient.FetchDatapoints: %w", apperrors.ErrResponseTooLarge)
		}
		if resp.StatusCode >= 500 {
			lastErr = apperrors.NewUpstreamError(resp.StatusCode, truncate(body))
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("GraphiteClient.FetchDatapoints: %w", apperrors.NewUpstreamError(resp.StatusCode, truncate(body)))
		}
		points, err := decoder.DecodeBatch(body)
		if err != nil {
			return nil, fmt.Errorf("GraphiteClient.FetchDatapoints: %w", err)
		}
		return points, nil
	}
	return nil, fmt.Errorf("GraphiteClient.FetchDatapoints: %w", lastErr)
}

func truncate(body []byte) string {
	const limit = 256
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

func NewClient(cfg ClientConfig) Client {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:        cfg.BaseURL,
		proxyURL:       cfg.ProxyURL,
		maxRetries:     cfg.MaxRetries,
		initialBackoff: cfg.InitialBackoff,
	}
}
