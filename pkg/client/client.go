// Package client exposes the read-only accessors for the three Polymarket
// services: the Gamma market catalog, the CLOB order book, and the Data
// activity API.
package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/exhuman777/polymarket-go/pkg/httpclient"
	"github.com/exhuman777/polymarket-go/pkg/types"
)

// Client is an unauthenticated accessor over the public read endpoints. It
// is not safe for concurrent use; create one client per goroutine.
type Client struct {
	gammaHost string
	clobHost  string
	dataHost  string
	http      *httpclient.Client
	log       logrus.FieldLogger

	// tokenCache memoizes reverse token-id lookups per client.
	tokenCache map[string]*types.TokenLookup
}

// Option configures a Client.
type Option func(*Client)

// WithGammaHost overrides the market-catalog base URL.
func WithGammaHost(host string) Option {
	return func(c *Client) { c.gammaHost = host }
}

// WithClobHost overrides the order-book base URL.
func WithClobHost(host string) Option {
	return func(c *Client) { c.clobHost = host }
}

// WithDataHost overrides the activity base URL.
func WithDataHost(host string) Option {
	return func(c *Client) { c.dataHost = host }
}

// WithTimeout sets the fixed request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.http = httpclient.NewWithTimeout(timeout) }
}

// WithHTTPClient installs a custom http.Client, used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http.SetHTTPClient(hc) }
}

// WithLogger installs a caller-provided logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client against the production hosts.
func New(opts ...Option) *Client {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	c := &Client{
		gammaHost:  types.GammaHost,
		clobHost:   types.ClobHost,
		dataHost:   types.DataHost,
		http:       httpclient.New(),
		log:        logger,
		tokenCache: make(map[string]*types.TokenLookup),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.gammaHost = strings.TrimSuffix(c.gammaHost, "/")
	c.clobHost = strings.TrimSuffix(c.clobHost, "/")
	c.dataHost = strings.TrimSuffix(c.dataHost, "/")
	return c
}
