package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bankgo/mspayment/domain"
)

func TestActiveGatewayFindByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Given a resolving code When fetched Then the active payload is decoded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/active/A1" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"Done","data":{"id":"1","code":"A1","amount":1000}}`))
		}))
		defer server.Close()

		g := NewActiveGateway(Config{BaseURL: server.URL}, nil)

		result, err := g.FindByCode(ctx, "A1")

		if err != nil {
			t.Fatalf("FindByCode failed: %v", err)
		}
		if result.Data == nil || result.Data.Code != "A1" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("Given a non-resolving code When fetched Then Data is nil without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"Not found","data":null}`))
		}))
		defer server.Close()

		g := NewActiveGateway(Config{BaseURL: server.URL}, nil)

		result, err := g.FindByCode(ctx, "A404")

		if err != nil {
			t.Fatalf("FindByCode failed: %v", err)
		}
		if result.Data != nil {
			t.Errorf("expected nil Data, got %+v", result.Data)
		}
	})

	t.Run("Given a remote 500 When fetched Then the call fails after the configured attempts", func(t *testing.T) {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		g := NewActiveGateway(Config{BaseURL: server.URL, MaxAttempts: 3}, nil)

		_, err := g.FindByCode(ctx, "A1")

		if err == nil {
			t.Fatal("expected an error")
		}
		if got := atomic.LoadInt32(&hits); got != 3 {
			t.Errorf("expected 3 attempts, got %d", got)
		}
	})

	t.Run("Given a cancelled context When fetched Then no attempt is made", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("remote should not be called")
		}))
		defer server.Close()

		g := NewActiveGateway(Config{BaseURL: server.URL}, nil)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		if _, err := g.FindByCode(cancelled, "A1"); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestClientGatewayFindByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Given a resolving code When fetched Then the classification is decoded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/client/C1" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"Done","data":{"id":"9","code":"C1","type":"PERSONAL"}}`))
		}))
		defer server.Close()

		g := NewClientGateway(Config{BaseURL: server.URL, Timeout: time.Second}, nil)

		result, err := g.FindByCode(ctx, "C1")

		if err != nil {
			t.Fatalf("FindByCode failed: %v", err)
		}
		if result.Data == nil || result.Data.Type != domain.TypePersonal {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("Given an unreachable remote When fetched Then an error is returned", func(t *testing.T) {
		g := NewClientGateway(Config{
			BaseURL:     "http://127.0.0.1:1",
			Timeout:     200 * time.Millisecond,
			MaxAttempts: 1,
		}, nil)

		if _, err := g.FindByCode(ctx, "C1"); err == nil {
			t.Fatal("expected an error")
		}
	})
}
