package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/devfeed/internal/common"
	"github.com/dmitrijs2005/devfeed/internal/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is used when no API base is configured.
const DefaultBaseURL = "http://localhost:8000/api"

const tracerName = "github.com/dmitrijs2005/devfeed/internal/client/client"

// Credentials is the session surface the client needs. *session.Session
// satisfies it.
type Credentials interface {
	AccessToken() string
	Set(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}

type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	session    Credentials
	logger     logging.Logger
	tracer     trace.Tracer
	requestID  func() string
}

// Option customizes a RESTClient.
type Option func(*RESTClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *RESTClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *RESTClient) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *RESTClient) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(c *RESTClient) {
		if t != nil {
			c.tracer = t
		}
	}
}

// NewRESTClient builds a client for baseURL (e.g. "http://localhost:8000/api")
// that authenticates with the given session.
func NewRESTClient(baseURL string, session Credentials, opts ...Option) (*RESTClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("API base URL is required")
	}
	if session == nil {
		return nil, errors.New("session is required")
	}

	c := &RESTClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		session:    session,
		logger:     logging.Discard(),
		tracer:     otel.Tracer(tracerName),
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized API base.
func (c *RESTClient) BaseURL() string { return c.baseURL }

// Request sends method to endpoint with body serialized as JSON (when
// non-nil) and decodes the response into out (when non-nil).
func (c *RESTClient) Request(ctx context.Context, method, endpoint string, body, out any) error {
	raw, err := c.Raw(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, endpoint, err)
	}
	return nil
}

func (c *RESTClient) Get(ctx context.Context, endpoint string, out any) error {
	return c.Request(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *RESTClient) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.Request(ctx, http.MethodPost, endpoint, body, out)
}

func (c *RESTClient) Patch(ctx context.Context, endpoint string, body, out any) error {
	return c.Request(ctx, http.MethodPatch, endpoint, body, out)
}

func (c *RESTClient) Delete(ctx context.Context, endpoint string) error {
	return c.Request(ctx, http.MethodDelete, endpoint, nil, nil)
}

// Raw performs the request and returns the validated JSON body. An empty
// success body yields (nil, nil).
func (c *RESTClient) Raw(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	url := c.baseURL + endpoint

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, endpoint, err)
		}
		payload = bytes.NewReader(b)
	}

	requestID := c.requestID()
	ctx, span := c.tracer.Start(ctx, method+" "+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", url),
			attribute.String("devfeed.request_id", requestID),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		c.logger.Error(ctx, "request failed", "method", method, "endpoint", endpoint, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, endpoint, err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, fmt.Errorf("%w: read %s %s: %w", ErrUnavailable, method, endpoint, err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.Debug(ctx, "request done",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(started),
	)

	raw, err := c.handleResponse(ctx, resp.StatusCode, text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return raw, err
}

// handleResponse turns a status and body into JSON or one of the client's
// error kinds. A 401 clears the session before anything else.
func (c *RESTClient) handleResponse(ctx context.Context, status int, body []byte) (json.RawMessage, error) {
	if status == http.StatusUnauthorized {
		if err := c.session.Clear(ctx); err != nil {
			c.logger.Warn(ctx, "failed to clear session", "error", err)
		}
		return nil, ErrAuthExpired
	}

	ok := status >= 200 && status < 300
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) == 0 {
		if ok {
			return nil, nil
		}
		return nil, newAPIError(status, nil)
	}

	var probe any
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, &InvalidResponseError{
			Status:  status,
			Excerpt: common.Excerpt(string(body), excerptLimit),
			Err:     err,
		}
	}

	if !ok {
		return nil, newAPIError(status, trimmed)
	}
	return json.RawMessage(trimmed), nil
}
