package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(baseURL string, retries int, retryDelay time.Duration) IClient {
	return NewClient(ClientConfig{
		ServiceName: "test",
		BaseURL:     baseURL,
		Timeout:     2 * time.Second,
		Retries:     retries,
		RetryDelay:  retryDelay,
	})
}

func TestClientRetryPolicy(t *testing.T) {
	t.Run("client error is never retried", func(t *testing.T) {
		var attempts int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"bad address"}`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, 3, time.Millisecond)
		err := c.Get(context.Background(), "/api/v1/balances", nil)
		if err == nil {
			t.Fatal("expected an error")
		}
		if got := atomic.LoadInt32(&attempts); got != 1 {
			t.Errorf("attempts = %d, want 1", got)
		}

		typed, ok := AsError(err)
		if !ok {
			t.Fatalf("expected typed error, got %T", err)
		}
		if typed.Kind != KindAPI || typed.Status != http.StatusUnprocessableEntity {
			t.Errorf("got kind=%s status=%d, want api/422", typed.Kind, typed.Status)
		}
		if typed.Message != "bad address" {
			t.Errorf("message = %q, want parsed body message", typed.Message)
		}
	})

	t.Run("server error retries up to the configured count", func(t *testing.T) {
		var attempts int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, 2, time.Millisecond)
		err := c.Get(context.Background(), "/api/v1/balances", nil)
		if err == nil {
			t.Fatal("expected an error")
		}
		if got := atomic.LoadInt32(&attempts); got != 3 {
			t.Errorf("attempts = %d, want retries+1 = 3", got)
		}
		if !IsAPI(err) || StatusOf(err) != http.StatusInternalServerError {
			t.Errorf("expected API error with status 500, got %v", err)
		}
	})

	t.Run("recovers after transient 503s", func(t *testing.T) {
		// 503 twice, then 200 with the payload.
		var attempts int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&attempts, 1) <= 2 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"user_id":"user-123","value":42.5}`))
		}))
		defer srv.Close()

		var out struct {
			UserID string  `json:"user_id"`
			Value  float64 `json:"value"`
		}
		c := newTestClient(srv.URL, 3, time.Millisecond)
		start := time.Now()
		if err := c.Get(context.Background(), "/api/v1/risk/summary/user-123", &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := atomic.LoadInt32(&attempts); got != 3 {
			t.Errorf("attempts = %d, want 3", got)
		}
		if out.UserID != "user-123" || out.Value != 42.5 {
			t.Errorf("unexpected payload: %+v", out)
		}
		// Backoff 1ms + 2ms must have elapsed.
		if elapsed := time.Since(start); elapsed < 3*time.Millisecond {
			t.Errorf("elapsed = %v, want at least 3ms of backoff", elapsed)
		}
	})

	t.Run("network failure retries then surfaces network error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		c := newTestClient(srv.URL, 1, time.Millisecond)
		err := c.Get(context.Background(), "/ping", nil)
		if !IsNetwork(err) {
			t.Fatalf("expected network error, got %v", err)
		}
	})
}

func TestClientTimeout(t *testing.T) {
	t.Run("slow response classifies as timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(500 * time.Millisecond):
			}
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{
			BaseURL:    srv.URL,
			Timeout:    20 * time.Millisecond,
			Retries:    1,
			RetryDelay: time.Millisecond,
		})
		err := c.Get(context.Background(), "/slow", nil)
		if !IsTimeout(err) {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})

	t.Run("caller cancellation stops further attempts", func(t *testing.T) {
		var attempts int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		c := newTestClient(srv.URL, 5, 50*time.Millisecond)

		errCh := make(chan error, 1)
		go func() { errCh <- c.Get(ctx, "/it", nil) }()
		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if err == nil {
				t.Fatal("expected an error")
			}
		case <-time.After(time.Second):
			t.Fatal("request did not abort after cancellation")
		}
		if got := atomic.LoadInt32(&attempts); got > 2 {
			t.Errorf("attempts = %d, want at most 2 after cancellation", got)
		}
	})
}

func TestClientRequestShape(t *testing.T) {
	t.Run("GET never sends a body", func(t *testing.T) {
		var bodyLen int64 = -1
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			bodyLen = int64(len(b))
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, 0, time.Millisecond)
		err := c.Do(context.Background(), http.MethodGet, "/x", map[string]string{"k": "v"}, nil, RequestConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bodyLen != 0 {
			t.Errorf("GET request carried %d body bytes, want 0", bodyLen)
		}
	})

	t.Run("POST serializes JSON body and content type", func(t *testing.T) {
		var gotCT string
		var gotBody map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotCT = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL, 0, time.Millisecond)
		if err := c.Post(context.Background(), "/x", map[string]string{"k": "v"}, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotCT != "application/json" {
			t.Errorf("Content-Type = %q", gotCT)
		}
		if gotBody["k"] != "v" {
			t.Errorf("body = %v", gotBody)
		}
	})

	t.Run("default and per-call headers are merged", func(t *testing.T) {
		var auth, extra string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			extra = r.Header.Get("X-Request-Source")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{
			BaseURL: srv.URL,
			Headers: map[string]string{"Authorization": "Bearer token"},
		})
		err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil, RequestConfig{
			Headers: map[string]string{"X-Request-Source": "dashboard"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if auth != "Bearer token" || extra != "dashboard" {
			t.Errorf("headers not merged: auth=%q extra=%q", auth, extra)
		}
	})

	t.Run("empty endpoint is rejected", func(t *testing.T) {
		c := newTestClient("http://localhost:1", 0, time.Millisecond)
		if err := c.Get(context.Background(), "", nil); err == nil {
			t.Fatal("expected an error for empty endpoint")
		}
	})
}

func TestClientHooks(t *testing.T) {
	t.Run("transform response runs before decode", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{"value":7}}`))
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{
			BaseURL: srv.URL,
			TransformResponse: func(body []byte) ([]byte, error) {
				var envelope struct {
					Data json.RawMessage `json:"data"`
				}
				if err := json.Unmarshal(body, &envelope); err != nil {
					return nil, err
				}
				return envelope.Data, nil
			},
		})

		var out struct {
			Value int `json:"value"`
		}
		if err := c.Get(context.Background(), "/x", &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Value != 7 {
			t.Errorf("value = %d, want 7", out.Value)
		}
	})

	t.Run("error mapper replaces generic copy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"address is malformed"}`))
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{
			BaseURL: srv.URL,
			ErrorMapper: func(status int, body []byte) error {
				if status == http.StatusBadRequest {
					return NewAPIError(status, "invalid_address", "Invalid wallet address", nil)
				}
				return nil
			},
		})

		err := c.Get(context.Background(), "/x", nil)
		typed, ok := AsError(err)
		if !ok {
			t.Fatalf("expected typed error, got %v", err)
		}
		if typed.Code != "invalid_address" || typed.Message != "Invalid wallet address" {
			t.Errorf("mapper output not used: %+v", typed)
		}
	})

	t.Run("error mapper fallthrough keeps generic error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{
			BaseURL:     srv.URL,
			ErrorMapper: func(status int, body []byte) error { return nil },
		})
		err := c.Get(context.Background(), "/x", nil)
		if StatusOf(err) != http.StatusTeapot {
			t.Errorf("expected generic 418 error, got %v", err)
		}
	})
}

func TestBackoffDelay(t *testing.T) {
	base := 100 * time.Millisecond

	prev := time.Duration(0)
	for attempt := 0; attempt < 5; attempt++ {
		d := backoffDelay(base, attempt)
		if d < prev {
			t.Errorf("backoff decreased at attempt %d: %v < %v", attempt, d, prev)
		}
		want := base << uint(attempt)
		if want <= maxRetryDelay && d != want {
			t.Errorf("backoffDelay(%v, %d) = %v, want %v", base, attempt, d, want)
		}
		prev = d
	}

	if d := backoffDelay(base, 20); d != maxRetryDelay {
		t.Errorf("uncapped delay: %v", d)
	}
	// Shift overflow must also land on the cap.
	if d := backoffDelay(time.Second, 62); d != maxRetryDelay {
		t.Errorf("overflowed delay: %v", d)
	}
}

func TestParseErrorBody(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		msg, code, details := parseErrorBody(400, []byte(`{"message":"bad input","code":"E400","details":{"field":"address"}}`))
		if msg != "bad input" || code != "E400" {
			t.Errorf("got msg=%q code=%q", msg, code)
		}
		if len(details) == 0 {
			t.Error("details dropped")
		}
	})

	t.Run("error field fallback", func(t *testing.T) {
		msg, _, _ := parseErrorBody(403, []byte(`{"error":"forbidden"}`))
		if msg != "forbidden" {
			t.Errorf("msg = %q", msg)
		}
	})

	t.Run("non-json body", func(t *testing.T) {
		msg, code, _ := parseErrorBody(500, []byte("<html>oops</html>"))
		if msg != "HTTP 500: Internal Server Error" || code != "" {
			t.Errorf("got msg=%q code=%q", msg, code)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		msg, _, _ := parseErrorBody(502, nil)
		if msg != "HTTP 502: Bad Gateway" {
			t.Errorf("msg = %q", msg)
		}
	})
}

func TestErrorHelpers(t *testing.T) {
	if NewAPIError(400, "", "x", nil).Retriable() {
		t.Error("4xx must not be retriable")
	}
	if !NewAPIError(503, "", "x", nil).Retriable() {
		t.Error("5xx must be retriable")
	}
	if !NewTimeoutError("x", nil).Retriable() || !NewNetworkError("x", nil).Retriable() {
		t.Error("timeout and network errors must be retriable")
	}
}
