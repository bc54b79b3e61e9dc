package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testConfig(endpoint string) *Config {
	return &Config{
		PracticumToken: "practicum-token",
		TelegramToken:  "telegram-token",
		TelegramChatID: "42",
		Endpoint:       endpoint,
		RetryPeriod:    time.Minute,
		RequestTimeout: 2 * time.Second,
	}
}

func TestHomeworkAPIFetch(t *testing.T) {
	body := `{"homeworks": [], "current_date": 1700000100}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "OAuth practicum-token" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.URL.Query().Get("from_date"); got != "1700000000" {
			t.Errorf("from_date = %q, want 1700000000", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer server.Close()

	api := NewHomeworkAPI(testConfig(server.URL))
	raw, err := api.Fetch(context.Background(), 1700000000)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(raw) != body {
		t.Errorf("body = %s, want %s", raw, body)
	}
}

func TestHomeworkAPIUnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	api := NewHomeworkAPI(testConfig(server.URL))
	_, err := api.Fetch(context.Background(), 1700000000)

	var statusErr *UnexpectedStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *UnexpectedStatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", statusErr.StatusCode)
	}
	if statusErr.Endpoint != server.URL {
		t.Errorf("Endpoint = %q, want %q", statusErr.Endpoint, server.URL)
	}
	if statusErr.Params.Get("from_date") != "1700000000" {
		t.Errorf("Params = %v", statusErr.Params)
	}
}

func TestHomeworkAPITransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	api := NewHomeworkAPI(testConfig(endpoint))
	_, err := api.Fetch(context.Background(), 1700000000)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	if transportErr.Endpoint != endpoint {
		t.Errorf("Endpoint = %q, want %q", transportErr.Endpoint, endpoint)
	}
	if transportErr.Params.Get("from_date") != "1700000000" {
		t.Errorf("Params = %v", transportErr.Params)
	}
}

func TestHomeworkAPITimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	cfg := testConfig(server.URL)
	cfg.RequestTimeout = 50 * time.Millisecond
	api := NewHomeworkAPI(cfg)

	_, err := api.Fetch(context.Background(), 1700000000)
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError on timeout, got %v", err)
	}
}
