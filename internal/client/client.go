// Package client exposes the typed fetch functions screens call. Each call
// resolves a session token, executes one backend request and returns a
// normalized result. Thrown errors mean the call never produced a usable
// response (no session, network, timeout); business failures always come
// back as Success=false results.
package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-mobile-sdk/internal/credstore"
	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
	"github.com/noah-isme/sma-mobile-sdk/internal/proxy"
	"github.com/noah-isme/sma-mobile-sdk/internal/transport"
)

type executor interface {
	Get(ctx context.Context, path string, params transport.Params, opts ...transport.Option) (*transport.Response, error)
	PostJSON(ctx context.Context, path string, params transport.Params, body interface{}, opts ...transport.Option) (*transport.Response, error)
}

type codeResolver interface {
	AuthCode(ctx context.Context) (string, error)
	AuthCodeFor(ctx context.Context, t credstore.AccountType) (string, error)
}

// Client aggregates the data-access layer behind one handle.
type Client struct {
	resolver codeResolver
	store    *credstore.Store
	exec     executor
	norm     *normalize.Normalizer
	logger   *zap.Logger
	demoMode bool
}

// Option customises the client.
type Option func(*Client)

// WithDemoMode short-circuits all fetches with fixture data.
func WithDemoMode(enabled bool) Option {
	return func(c *Client) {
		c.demoMode = enabled
	}
}

// New constructs a client.
func New(resolver codeResolver, store *credstore.Store, exec executor, norm *normalize.Normalizer, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if norm == nil {
		norm = normalize.New(nil)
	}
	c := &Client{resolver: resolver, store: store, exec: exec, norm: norm, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Context builds a validated request context from navigation parameters,
// resolving the acting auth code from stored sessions.
func (c *Client) Context(ctx context.Context, params proxy.NavParams) (proxy.Context, error) {
	code, err := c.resolver.AuthCode(ctx)
	if err != nil {
		return proxy.Context{}, err
	}
	return proxy.FromNavParams(code, params)
}

// ContextFor is Context scoped to a specific account type's session.
func (c *Client) ContextFor(ctx context.Context, t credstore.AccountType, params proxy.NavParams) (proxy.Context, error) {
	code, err := c.resolver.AuthCodeFor(ctx, t)
	if err != nil {
		return proxy.Context{}, err
	}
	return proxy.FromNavParams(code, params)
}

// authParams assembles the query parameters for an endpoint: the auth code
// under the endpoint's exact expected key, plus the target student id when
// the call is proxied.
func authParams(ep endpoint, rc proxy.Context, extra transport.Params) transport.Params {
	params := transport.Params{}
	for key, value := range extra {
		params[key] = value
	}
	if ep.authParam != "" {
		params[ep.authParam] = rc.ActingAuthCode
	}
	if rc.IsProxied && ep.studentParam != "" {
		params[ep.studentParam] = rc.TargetStudentID
	}
	return params
}
