package tasks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/binarakost/kostctl/internal/api"
)

func TestHealthPoller(t *testing.T) {
	t.Run("Probe Reads Ok As Up", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		poller := NewHealthPoller(api.NewPublicService(server.URL, time.Second), time.Minute)
		status := poller.Probe(context.Background())

		if !status.Up || status.Detail != "ok" {
			t.Errorf("expected up, got %+v", status)
		}
	})

	t.Run("Probe Reads Other Statuses As Down", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"degraded"}`))
		}))
		defer server.Close()

		poller := NewHealthPoller(api.NewPublicService(server.URL, time.Second), time.Minute)
		status := poller.Probe(context.Background())

		if status.Up {
			t.Errorf("expected down, got %+v", status)
		}
	})

	t.Run("Probe Reads Transport Failure As Down", func(t *testing.T) {
		poller := NewHealthPoller(api.NewPublicService("http://127.0.0.1:1", 200*time.Millisecond), time.Minute)
		status := poller.Probe(context.Background())

		if status.Up || status.Detail == "" {
			t.Errorf("expected down with a detail, got %+v", status)
		}
	})

	t.Run("Run Emits Immediately And Stops On Cancel", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		poller := NewHealthPoller(api.NewPublicService(server.URL, time.Second), time.Hour)
		updates := poller.Run(ctx)

		select {
		case status := <-updates:
			if !status.Up {
				t.Errorf("expected the initial probe up, got %+v", status)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("expected an immediate probe")
		}

		cancel()
		select {
		case _, open := <-updates:
			if open {
				t.Error("expected the channel closed after cancel")
			}
		case <-time.After(5 * time.Second):
			t.Fatal("expected the poller to stop")
		}
	})
}
