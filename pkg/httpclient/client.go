package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Get performs a GET request. A body is never attached to GET requests.
func (c *clientImpl) Get(ctx context.Context, endpoint string, out any) error {
	return c.Do(ctx, http.MethodGet, endpoint, nil, out, RequestConfig{})
}

// Post performs a POST request with a JSON body.
func (c *clientImpl) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.Do(ctx, http.MethodPost, endpoint, body, out, RequestConfig{})
}

// Put performs a PUT request with a JSON body.
func (c *clientImpl) Put(ctx context.Context, endpoint string, body, out any) error {
	return c.Do(ctx, http.MethodPut, endpoint, body, out, RequestConfig{})
}

// Patch performs a PATCH request with a JSON body.
func (c *clientImpl) Patch(ctx context.Context, endpoint string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, endpoint, body, out, RequestConfig{})
}

// Delete performs a DELETE request.
func (c *clientImpl) Delete(ctx context.Context, endpoint string, out any) error {
	return c.Do(ctx, http.MethodDelete, endpoint, nil, out, RequestConfig{})
}

// Do issues one logical request, retrying transient failures with
// exponential backoff. Client errors (4xx) terminate immediately; server,
// network, and timeout failures retry up to the configured count and the
// last recorded error is surfaced on exhaustion.
func (c *clientImpl) Do(ctx context.Context, method, endpoint string, body, out any, reqCfg RequestConfig) error {
	if endpoint == "" {
		return fmt.Errorf("httpclient: endpoint is required")
	}

	timeout := c.config.Timeout
	if reqCfg.Timeout > 0 {
		timeout = reqCfg.Timeout
	}
	retries := c.config.Retries
	if reqCfg.Retries > 0 {
		retries = reqCfg.Retries
	}
	if reqCfg.NoRetry {
		retries = 0
	}
	retryDelay := c.config.RetryDelay
	if reqCfg.RetryDelay > 0 {
		retryDelay = reqCfg.RetryDelay
	}

	// GET requests never carry a body even when one is supplied.
	var payload []byte
	if body != nil && method != http.MethodGet {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("httpclient: failed to marshal request body: %w", err)
		}
	}

	url := c.config.BaseURL + endpoint

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			c.countRetry()
			if err := c.wait(ctx, backoffDelay(retryDelay, attempt-1)); err != nil {
				return err
			}
		}

		err := c.attempt(ctx, method, url, payload, out, reqCfg.Headers, timeout)
		if err == nil {
			return nil
		}

		typed, ok := AsError(err)
		if !ok {
			// Marshal/decode failures are not transport failures; retrying
			// cannot change the outcome.
			return err
		}
		if !typed.Retriable() {
			return typed
		}
		lastErr = typed

		// The caller's context is gone; further attempts cannot succeed.
		if ctx.Err() != nil {
			return lastErr
		}
	}

	if lastErr == nil {
		lastErr = NewNetworkError("request failed", nil)
	}
	return lastErr
}

// attempt issues a single HTTP request bounded by the per-attempt timeout.
func (c *clientImpl) attempt(ctx context.Context, method, url string, payload []byte, out any, headers map[string]string, timeout time.Duration) error {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bodyReader io.Reader
	if len(payload) > 0 {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("httpclient: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if len(payload) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.observe(method, "error", time.Since(start))
		return c.classifyTransport(attemptCtx, err)
	}
	defer resp.Body.Close()

	c.observe(method, strconv.Itoa(resp.StatusCode), time.Since(start))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewNetworkError("failed to read response body", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.serviceError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	if c.config.TransformResponse != nil {
		respBody, err = c.config.TransformResponse(respBody)
		if err != nil {
			// A pre-classified error from the hook propagates untouched.
			if _, ok := AsError(err); ok {
				return err
			}
			return fmt.Errorf("httpclient: transform response failed: %w", err)
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("httpclient: failed to decode response: %w", err)
	}
	return nil
}

// serviceError builds the typed error for a non-2xx response, consulting the
// service's ErrorMapper first.
func (c *clientImpl) serviceError(status int, body []byte) error {
	if c.config.ErrorMapper != nil {
		if err := c.config.ErrorMapper(status, body); err != nil {
			return err
		}
	}
	message, code, details := parseErrorBody(status, body)
	return NewAPIError(status, code, message, details)
}

// classifyTransport distinguishes deadline expiry from connection failures.
// Both the internal per-attempt timeout and a caller-supplied deadline or
// cancellation surface as the timeout kind.
func (c *clientImpl) classifyTransport(attemptCtx context.Context, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || attemptCtx.Err() != nil {
		return NewTimeoutError("request aborted before a response arrived", err)
	}
	return NewNetworkError("request failed", err)
}

// wait sleeps for the backoff delay, honoring caller cancellation.
func (c *clientImpl) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return NewTimeoutError("request aborted during retry backoff", ctx.Err())
	}
}

// backoffDelay returns retryDelay * 2^attempt capped at maxRetryDelay.
func backoffDelay(retryDelay time.Duration, attempt int) time.Duration {
	d := retryDelay << uint(attempt)
	if d > maxRetryDelay || d <= 0 {
		return maxRetryDelay
	}
	return d
}

func (c *clientImpl) countRetry() {
	if c.config.Metrics != nil {
		c.config.Metrics.retries.WithLabelValues(c.config.ServiceName).Inc()
	}
}

func (c *clientImpl) observe(method, code string, elapsed time.Duration) {
	if c.config.Metrics == nil {
		return
	}
	c.config.Metrics.attempts.WithLabelValues(c.config.ServiceName, method, code).Inc()
	c.config.Metrics.duration.WithLabelValues(c.config.ServiceName, method).Observe(elapsed.Seconds())
}
