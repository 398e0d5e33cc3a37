package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"gateway/internal/infra"
	"gateway/internal/storage"
)

// StatusError reports a non-2xx backend response, carrying the status
// code and a best-effort error body.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("Container error: %d", e.StatusCode)
	if e.Detail != "" {
		msg += " - " + e.Detail
	}
	return msg
}

// ConnectionError reports a network-level failure reaching the backend
// (DNS, connection refused, timeout).
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "Connection error: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Options configures the backend client.
type Options struct {
	// Timeout bounds each backend call. Inference backends are slow, so
	// the default is 10 minutes.
	Timeout    time.Duration
	HTTPClient *http.Client
	Media      *storage.FileStore
	Logger     *infra.Logger
}

// Client performs single-shot HTTP calls against resolved backend URLs
// and classifies responses by content type. Binary media payloads are
// persisted to the media store under a job-scoped name.
type Client struct {
	httpClient *http.Client
	media      *storage.FileStore
	logger     *infra.Logger
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 600 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		httpClient: httpClient,
		media:      opts.Media,
		logger:     logger,
	}
}

// Invoke POSTs the payload to url and returns the backend's response as
// a generic JSON object. A JSON body is decoded as-is; binary media is
// written to the media store as "{jobID}.{ext}" and represented as
// {"url": "/files/{jobID}.{ext}"}; anything else is wrapped as raw text.
// Failures are reported as *StatusError or *ConnectionError; no retries
// are attempted.
func (c *Client) Invoke(ctx context.Context, url string, payload map[string]any, jobID string) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("backend: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Detail: errorDetail(raw)}
	}

	contentType := resp.Header.Get("Content-Type")
	switch {
	case strings.Contains(contentType, "application/json"):
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("backend: decode response: %w", err)
		}
		return decoded, nil
	case strings.Contains(contentType, "audio"),
		strings.Contains(contentType, "video"),
		strings.Contains(contentType, "image"):
		ext := mediaExt(contentType)
		key, err := c.media.Write(ctx, jobID+"."+ext, raw)
		if err != nil {
			return nil, fmt.Errorf("backend: persist media: %w", err)
		}
		c.logger.Debug().
			Str("job_id", jobID).
			Str("key", key).
			Int("bytes", len(raw)).
			Msg("backend: stored binary response")
		return map[string]any{"url": "/files/" + key}, nil
	default:
		return map[string]any{"raw": string(raw)}, nil
	}
}

func mediaExt(contentType string) string {
	switch {
	case strings.Contains(contentType, "audio"):
		return "wav"
	case strings.Contains(contentType, "video"):
		return "mp4"
	default:
		return "png"
	}
}

// errorDetail extracts a readable message from an error body, preferring
// its JSON form when it parses.
func errorDetail(raw []byte) string {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err == nil {
		if compact, err := json.Marshal(decoded); err == nil {
			return string(compact)
		}
	}
	return strings.TrimSpace(string(raw))
}
