// Package client is the HTTP transport for the users REST resource. It
// implements directory.Gateway for the web service and dirctl.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/platform/telemetry/metrics"
	"github.com/louisbranch/staffbook/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	usersPath    = "/users"
	maxBodyBytes = 4 << 20
	tracerName   = "github.com/louisbranch/staffbook/internal/services/users/client"
)

// StatusError reports a non-2xx response from the users service.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("users %s: unexpected status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("users %s: unexpected status %d: %s", e.Operation, e.StatusCode, body)
}

// Client calls the users REST resource.
type Client struct {
	usersURL *url.URL
	http     *http.Client
	metrics  *metrics.ClientMetrics
	tracer   trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		if c != nil {
			client.http = c
		}
	}
}

// WithMetrics records each call on m.
func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(client *Client) { client.metrics = m }
}

// New returns a client for baseURL, which may name the service root
// ("http://localhost:3004") or the resource itself ("http://localhost:3004/users").
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse users base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("users base url must be http or https, got %q", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("users base url has no host: %q", baseURL)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(parsed.Path, usersPath) {
		parsed.Path += usersPath
	}
	c := &Client{
		usersURL: parsed,
		http:     &http.Client{Timeout: timeouts.UpstreamRequest},
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// UsersURL returns the resolved collection URL.
func (c *Client) UsersURL() string {
	return c.usersURL.String()
}

// ListRecords fetches every record.
func (c *Client) ListRecords(ctx context.Context) ([]directory.Record, error) {
	body, err := c.do(ctx, "list", http.MethodGet, c.usersURL.String(), nil)
	if err != nil {
		return nil, err
	}
	var records []directory.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("users list: decode response: %w", err)
	}
	if records == nil {
		records = []directory.Record{}
	}
	return records, nil
}

// CreateRecord posts one record and decodes the response by shape.
func (c *Client) CreateRecord(ctx context.Context, record directory.Record) (directory.CreateResult, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return directory.CreateResult{}, fmt.Errorf("users create: encode record: %w", err)
	}
	body, err := c.do(ctx, "create", http.MethodPost, c.usersURL.String(), payload)
	if err != nil {
		return directory.CreateResult{}, err
	}
	return directory.DecodeCreateResult(body)
}

// DeleteRecord deletes one record. The response body is not inspected.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	target := c.usersURL.JoinPath(id).String()
	_, err := c.do(ctx, "delete", http.MethodDelete, target, nil)
	return err
}

func (c *Client) do(ctx context.Context, operation, method, target string, payload []byte) (body []byte, err error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "users."+operation, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.request.method", method), attribute.String("url.full", target)))
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		c.metrics.Observe(operation, outcome, time.Since(start))
		span.End()
	}()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("users %s: build request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("users %s: %w", operation, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("users %s: read response: %w", operation, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Operation: operation, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

var _ directory.Gateway = (*Client)(nil)
