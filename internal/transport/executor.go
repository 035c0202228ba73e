// Package transport performs single backend HTTP calls with bounded latency.
// Only transport-tier failures (no HTTP response at all) are returned as
// errors; any obtained body, whatever its status code, is handed back for
// the normalizer to interpret.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-mobile-sdk/pkg/config"
	appErrors "github.com/noah-isme/sma-mobile-sdk/pkg/errors"
	"github.com/noah-isme/sma-mobile-sdk/pkg/metrics"
)

// Params is a query or form parameter map. Empty values are skipped when
// building URLs so optional filters can be passed unconditionally.
type Params map[string]string

// Response is the raw outcome of one executed call.
type Response struct {
	StatusCode int
	Body       []byte
	RequestID  string
	Duration   time.Duration
}

// Executor issues HTTP calls against the configured backend base URL.
type Executor struct {
	baseURL        string
	defaultTimeout time.Duration
	client         *http.Client
	logger         *zap.Logger
	recorder       *metrics.Recorder
}

// Option customises a single call.
type Option func(*callOptions)

type callOptions struct {
	timeout time.Duration
}

// WithTimeout overrides the executor's default timeout for one call.
func WithTimeout(d time.Duration) Option {
	return func(o *callOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// New constructs an executor from config.
func New(cfg config.APIConfig, logger *zap.Logger, recorder *metrics.Recorder) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Executor{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		defaultTimeout: timeout,
		// The per-call context enforces the deadline; the client itself
		// carries no timeout so overrides are never capped.
		client:   &http.Client{},
		logger:   logger,
		recorder: recorder,
	}
}

// Get issues a GET with the params URL-encoded onto the path.
func (e *Executor) Get(ctx context.Context, path string, params Params, opts ...Option) (*Response, error) {
	return e.do(ctx, http.MethodGet, path, params, nil, opts...)
}

// PostJSON issues a POST carrying body as JSON, with params on the URL.
func (e *Executor) PostJSON(ctx context.Context, path string, params Params, body interface{}, opts ...Option) (*Response, error) {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "encode request body")
		}
		payload = bytes.NewReader(encoded)
	}
	return e.do(ctx, http.MethodPost, path, params, payload, opts...)
}

func (e *Executor) do(ctx context.Context, method, path string, params Params, body io.Reader, opts ...Option) (*Response, error) {
	options := callOptions{timeout: e.defaultTimeout}
	for _, opt := range opts {
		opt(&options)
	}

	ctx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	fullURL := e.buildURL(path, params)
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "build request")
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Accept", "application/json, text/plain")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := e.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		return nil, e.transportError(err, method, path, reqID, duration)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, e.transportError(err, method, path, reqID, duration)
	}

	e.logger.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", duration),
		zap.String("request_id", reqID),
	)
	e.recorder.ObserveRequest(method, path, "ok", duration)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       raw,
		RequestID:  reqID,
		Duration:   duration,
	}, nil
}

// transportError classifies a failed call as timeout or network failure.
func (e *Executor) transportError(err error, method, path, reqID string, duration time.Duration) error {
	kind := "network"
	out := appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Message)

	if isTimeout(err) {
		kind = "timeout"
		out = appErrors.Wrap(err, appErrors.ErrTimeout.Code, appErrors.ErrTimeout.Message)
	}

	e.logger.Warn("backend call failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("kind", kind),
		zap.Duration("latency", duration),
		zap.String("request_id", reqID),
		zap.Error(err),
	)
	e.recorder.ObserveRequest(method, path, kind, duration)
	e.recorder.RecordTransportError(path, kind)

	return out
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	return false
}

func (e *Executor) buildURL(path string, params Params) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	full := e.baseURL + path

	if len(params) == 0 {
		return full
	}

	values := url.Values{}
	for key, value := range params {
		if value == "" {
			continue
		}
		values.Set(key, value)
	}
	if encoded := values.Encode(); encoded != "" {
		full += "?" + encoded
	}
	return full
}
