// Package client calls the remote cards service.
//
// The service address is looked up through a discovery.Resolver on every call.
// The client applies no timeout, retry or circuit breaking: deadlines and
// cancellation come from the caller's context, and failures are returned as *Error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"accounts/internal/cards/metrics"
	"accounts/internal/cards/models"
	"accounts/internal/discovery"
	"accounts/pkg/platform/requestcontext"
	"accounts/pkg/platform/tracer"
)

const (
	DefaultServiceName = "cards"
	DefaultPath        = "myCards"
)

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches card records for a customer. Safe for concurrent use.
type Client struct {
	resolver discovery.Resolver
	http     HTTPDoer
	service  string
	path     string
	metrics  *metrics.Metrics
	tracer   tracer.Tracer
}

type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.http = doer
		}
	}
}

func WithServiceName(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.service = name
		}
	}
}

// WithPath sets the endpoint path relative to the resolved base URL.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// New creates a client bound to the service resolved by resolver.
func New(resolver discovery.Resolver, opts ...Option) *Client {
	c := &Client{
		resolver: resolver,
		http:     &http.Client{},
		service:  DefaultServiceName,
		path:     DefaultPath,
		tracer:   tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Service returns the logical service name the client calls.
func (c *Client) Service() string {
	return c.service
}

// GetCardsDetails posts customer to the cards service and returns its cards in
// response order. Exactly one outbound request is made per call.
func (c *Client) GetCardsDetails(ctx context.Context, customer models.Customer) (cards []models.Card, err error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, tracer.SpanCardsGetDetails,
		tracer.String(tracer.AttrPeerService, c.service),
		tracer.String(tracer.AttrCustomerHash, tracer.HashIdentifier(customer.MobileNumber)),
	)
	defer func() {
		c.record(span, start, cards, err)
	}()

	endpoint, err := c.endpoint(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(tracer.String(tracer.AttrHTTPURL, endpoint))

	payload, err := json.Marshal(customer)
	if err != nil {
		return nil, newError(KindDeserialization, c.service, "failed to encode customer", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, newError(KindRemoteUnavailable, c.service, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := requestcontext.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, newError(KindRemoteUnavailable, c.service, "failed to execute request", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	span.SetAttributes(tracer.Int(tracer.AttrHTTPStatusCode, resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodyBytes))
		return nil, &Error{
			Kind:       KindRemoteError,
			Service:    c.service,
			Message:    "unexpected response status",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindRemoteUnavailable, c.service, "failed to read response", err)
	}

	return decodeCards(c.service, body)
}

// endpoint resolves the service and joins the configured path onto its base URL.
func (c *Client) endpoint(ctx context.Context) (string, error) {
	if c.resolver == nil {
		return "", newError(KindRemoteUnavailable, c.service, "no resolver configured", discovery.ErrServiceNotFound)
	}
	base, err := c.resolver.Resolve(ctx, c.service)
	if err != nil {
		return "", newError(KindRemoteUnavailable, c.service, "failed to resolve service", err)
	}
	endpoint, err := url.JoinPath(base, c.path)
	if err != nil {
		return "", newError(KindRemoteUnavailable, c.service, "invalid service address", err)
	}
	return endpoint, nil
}

// decodeCards accepts exactly one JSON array. A null body yields an empty slice.
func decodeCards(service string, body []byte) ([]models.Card, error) {
	var cards []models.Card
	if err := json.Unmarshal(body, &cards); err != nil {
		return nil, newError(KindDeserialization, service, "failed to decode cards", err)
	}
	if cards == nil {
		cards = []models.Card{}
	}
	return cards, nil
}

func (c *Client) record(span tracer.Span, start time.Time, cards []models.Card, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		kind := KindOf(err)
		span.SetAttributes(tracer.String(tracer.AttrErrorKind, string(kind)))
		outcome = outcomeFor(kind)
	} else {
		span.SetAttributes(tracer.Int(tracer.AttrCardCount, len(cards)))
	}
	span.End(err)

	if c.metrics == nil {
		return
	}
	c.metrics.IncrementRequest(outcome)
	c.metrics.ObserveRequest(start)
	if err == nil {
		c.metrics.ObserveCardsReturned(len(cards))
	}
}

func outcomeFor(kind Kind) string {
	switch kind {
	case KindRemoteError:
		return metrics.OutcomeRemoteError
	case KindDeserialization:
		return metrics.OutcomeDeserialization
	default:
		return metrics.OutcomeUnavailable
	}
}
