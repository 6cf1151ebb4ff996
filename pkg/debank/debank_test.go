package debank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"portfolio-srv/pkg/httpclient"
)

func TestGetTotalBalance(t *testing.T) {
	t.Run("parses the per-chain summary", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != PathChainBalance {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("id"); got != "0xabc" {
				t.Errorf("expected id=0xabc, got %q", got)
			}
			if got := r.Header.Get("AccessKey"); got != "key-1" {
				t.Errorf("expected AccessKey header, got %q", got)
			}
			_, _ = w.Write([]byte(`{
				"total_usd_value": 12500.5,
				"chain_list": [
					{"id": "eth", "name": "Ethereum", "usd_value": 11000},
					{"id": "bsc", "name": "BNB Chain", "usd_value": 1500.5}
				]
			}`))
		}))
		defer srv.Close()

		client := New(DebankConfig{BaseURL: srv.URL, AccessKey: "key-1"})
		balance, err := client.GetTotalBalance(context.Background(), "0xabc")
		if err != nil {
			t.Fatalf("GetTotalBalance returned error: %v", err)
		}
		if balance.TotalUSDValue != 12500.5 {
			t.Errorf("expected total 12500.5, got %f", balance.TotalUSDValue)
		}
		if len(balance.ChainList) != 2 || balance.ChainList[0].ID != "eth" {
			t.Errorf("unexpected chain list %+v", balance.ChainList)
		}
	})

	t.Run("requires an address", func(t *testing.T) {
		client := New(DebankConfig{BaseURL: "http://localhost"})
		if _, err := client.GetTotalBalance(context.Background(), ""); err == nil {
			t.Error("expected an error for an empty address")
		}
	})
}

func TestAddressErrorMapping(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "invalid address format"}`))
	}))
	defer srv.Close()

	client := New(DebankConfig{BaseURL: srv.URL})
	_, err := client.GetTotalBalance(context.Background(), "not-an-address")
	if err == nil {
		t.Fatal("expected an error for a rejected address")
	}
	apiErr, ok := httpclient.AsError(err)
	if !ok {
		t.Fatalf("expected a typed client error, got %v", err)
	}
	if apiErr.Message != "Invalid wallet address" {
		t.Errorf("expected mapped copy, got %q", apiErr.Message)
	}
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Errorf("expected a client error to never retry, got %d attempts", got)
	}
}
