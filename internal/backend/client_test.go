package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gateway/internal/storage"
)

func newTestClient(t *testing.T) (*Client, *storage.FileStore) {
	t.Helper()
	media, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return NewClient(Options{Media: media}), media
}

func TestInvokeDecodesJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"video_url":"http://x/v.mp4"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t)
	resp, err := client.Invoke(context.Background(), srv.URL, map[string]any{"prompt": "p"}, "job-1")
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if resp["video_url"] != "http://x/v.mp4" {
		t.Fatalf("resp = %#v", resp)
	}
}

func TestInvokePersistsBinaryMedia(t *testing.T) {
	payload := []byte{0x52, 0x49, 0x46, 0x46, 0x00}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/wav")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	client, media := newTestClient(t)
	resp, err := client.Invoke(context.Background(), srv.URL, map[string]any{}, "job-2")
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if resp["url"] != "/files/job-2.wav" {
		t.Fatalf("url = %v", resp["url"])
	}
	data, err := os.ReadFile(filepath.Join(media.BasePath(), "job-2.wav"))
	if err != nil {
		t.Fatalf("read stored media: %v", err)
	}
	if string(data) != string(payload) {
		t.Fatalf("stored bytes mismatch")
	}
}

func TestInvokeWrapsUnknownContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("done"))
	}))
	defer srv.Close()

	client, _ := newTestClient(t)
	resp, err := client.Invoke(context.Background(), srv.URL, map[string]any{}, "job-3")
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if resp["raw"] != "done" {
		t.Fatalf("resp = %#v", resp)
	}
}

func TestInvokeStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"model not loaded"}`))
	}))
	defer srv.Close()

	client, _ := newTestClient(t)
	_, err := client.Invoke(context.Background(), srv.URL, map[string]any{}, "job-4")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d", statusErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "model not loaded") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestInvokeConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	client, _ := newTestClient(t)
	_, err := client.Invoke(context.Background(), srv.URL, map[string]any{}, "job-5")

	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("err = %v, want *ConnectionError", err)
	}
	if !strings.HasPrefix(err.Error(), "Connection error:") {
		t.Fatalf("message = %q", err.Error())
	}
}
