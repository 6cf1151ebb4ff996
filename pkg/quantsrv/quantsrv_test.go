package quantsrv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetValueHistory(t *testing.T) {
	t.Run("unwraps the envelope and parses samples", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != PathValueHistory+"/b-1" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("days"); got != "90" {
				t.Errorf("expected days=90, got %q", got)
			}
			_, _ = w.Write([]byte(`{"data": [
				{"timestamp": 1756512000, "value_usd": 12000},
				{"timestamp": 1756598400, "value_usd": 12500.5}
			]}`))
		}))
		defer srv.Close()

		client := New(QuantConfig{BaseURL: srv.URL})
		points, err := client.GetValueHistory(context.Background(), "b-1", 90)
		if err != nil {
			t.Fatalf("GetValueHistory returned error: %v", err)
		}
		if len(points) != 2 {
			t.Fatalf("expected 2 samples, got %d", len(points))
		}
		if points[1].ValueUSD != 12500.5 || points[1].Timestamp != 1756598400 {
			t.Errorf("unexpected sample %+v", points[1])
		}
	})

	t.Run("defaults the window when days is not positive", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("days"); got != "30" {
				t.Errorf("expected days=30, got %q", got)
			}
			_, _ = w.Write([]byte(`{"data": []}`))
		}))
		defer srv.Close()

		client := New(QuantConfig{BaseURL: srv.URL})
		if _, err := client.GetValueHistory(context.Background(), "b-1", 0); err != nil {
			t.Fatalf("GetValueHistory returned error: %v", err)
		}
	})

	t.Run("requires a bundle ID", func(t *testing.T) {
		client := New(QuantConfig{BaseURL: "http://localhost"})
		if _, err := client.GetValueHistory(context.Background(), "", 30); err == nil {
			t.Error("expected an error for an empty bundle ID")
		}
	})
}

func TestGetPerformance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathPerformance+"/b-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data": {
			"bundle_id": "b-1",
			"return_24h": 0.012,
			"return_7d": -0.03,
			"return_30d": 0.15,
			"return_all": 1.2,
			"best_day": 0.09,
			"worst_day": -0.11
		}}`))
	}))
	defer srv.Close()

	client := New(QuantConfig{BaseURL: srv.URL})
	perf, err := client.GetPerformance(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("GetPerformance returned error: %v", err)
	}
	if perf.BundleID != "b-1" {
		t.Errorf("expected bundle b-1, got %s", perf.BundleID)
	}
	if perf.Return7d != -0.03 || perf.WorstDay != -0.11 {
		t.Errorf("unexpected performance %+v", perf)
	}
}
