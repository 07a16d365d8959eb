package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/career-gateway/internal/metrics"
	"alfredoptarigan/career-gateway/internal/models"
)

const contentTypeJSON = "application/json"

// ForwarderDeps are shared by every forwarder.
type ForwarderDeps struct {
	Resolver   EndpointResolver
	HTTPClient *http.Client
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
}

func (d ForwarderDeps) client(service models.ServiceName, timeout time.Duration) *downstreamClient {
	httpClient := d.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &downstreamClient{
		service:    service,
		baseURL:    d.Resolver.Resolve(service),
		timeout:    timeout,
		httpClient: httpClient,
		logger:     logger.With(zap.String("service", string(service))),
		metrics:    d.Metrics,
	}
}

// downstreamClient performs one bounded call per request. There are no
// retries: a timeout is a failure.
type downstreamClient struct {
	service    models.ServiceName
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func (c *downstreamClient) getJSON(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

func (c *downstreamClient) postJSON(ctx context.Context, path string, query url.Values, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", c.service, err)
	}
	return c.do(ctx, http.MethodPost, path, query, bytes.NewReader(body), contentTypeJSON)
}

func (c *downstreamClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	op := method + " " + path
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &DownstreamError{Service: c.service, Op: op, Err: err}
	}
	req.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	c.logger.Debug("calling downstream", zap.String("method", method), zap.String("url", target))

	data, status, err := c.send(req)
	elapsed := time.Since(start)

	if err != nil {
		downstreamErr := &DownstreamError{Service: c.service, Op: op, StatusCode: status, Payload: data, Err: err}
		outcome := metrics.OutcomeFailure
		if downstreamErr.Timeout() {
			outcome = metrics.OutcomeTimeout
		}
		c.metrics.ObserveDownstream(string(c.service), outcome, elapsed)
		c.logger.Warn("downstream call failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, downstreamErr
	}

	c.metrics.ObserveDownstream(string(c.service), metrics.OutcomeSuccess, elapsed)
	c.logger.Debug("downstream call succeeded", zap.String("op", op), zap.Int("status", status), zap.Duration("elapsed", elapsed))
	return data, nil
}

func (c *downstreamClient) send(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return data, resp.StatusCode, fmt.Errorf("bad status: %s", resp.Status)
	}

	return data, resp.StatusCode, nil
}

func (c *downstreamClient) contractError(op string, format string, args ...any) error {
	err := &DownstreamError{
		Service: c.service,
		Op:      op,
		Err:     fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(format, args...)),
	}
	c.logger.Warn("downstream contract violation", zap.String("op", op), zap.Error(err.Err))
	return err
}
