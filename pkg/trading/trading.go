// Package trading is the authenticated facade over the CLOB: order
// placement and cancellation, open orders, and balances. It validates
// credentials up front and delegates signing to the exchange implementation;
// the remote service stays the sole source of truth for order state.
package trading

import (
	"strings"

	"github.com/polymarket/go-order-utils/pkg/model"
	"github.com/sirupsen/logrus"

	clienterr "github.com/exhuman777/polymarket-go/pkg/errors"
	"github.com/exhuman777/polymarket-go/pkg/orderbuilder"
	"github.com/exhuman777/polymarket-go/pkg/signer"
	"github.com/exhuman777/polymarket-go/pkg/types"
)

// Config carries the credential set for authenticated trading. Every field
// except Host and ChainID is required. Credential values are never logged.
type Config struct {
	// PrivateKey is the hex-encoded wallet key used for order signing.
	PrivateKey string
	// APIKey, APISecret, APIPassphrase are the CLOB L2 credentials.
	APIKey        string
	APISecret     string
	APIPassphrase string
	// Funder is the Polymarket proxy wallet holding the collateral.
	Funder string
	// Host defaults to the production CLOB.
	Host string
	// ChainID defaults to Polygon mainnet.
	ChainID int
}

func (c *Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"private_key", c.PrivateKey},
		{"api_key", c.APIKey},
		{"api_secret", c.APISecret},
		{"api_passphrase", c.APIPassphrase},
		{"funder", c.Funder},
	}
	for _, field := range required {
		if field.value == "" {
			return clienterr.NewValidationError("missing required credential field: %s", field.name)
		}
	}
	return nil
}

// Client is the trading facade.
type Client struct {
	ex      Exchange
	address string
	log     logrus.FieldLogger
}

// New validates the credential set and builds the facade. A missing field or
// a non-hex private key fails here, before any network call. Polymarket
// proxy wallets sign with the Gnosis-safe scheme, so that is the default.
func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	host := cfg.Host
	if host == "" {
		host = types.ClobHost
	}
	host = strings.TrimSuffix(host, "/")

	chainID := cfg.ChainID
	if chainID == 0 {
		chainID = types.PolygonChainID
	}

	s, err := signer.New(cfg.PrivateKey, chainID)
	if err != nil {
		return nil, err
	}

	sigType := model.POLY_GNOSIS_SAFE
	funder := strings.ToLower(cfg.Funder)
	builder := orderbuilder.New(s, &sigType, &funder)

	creds := &types.ApiCreds{
		ApiKey:        cfg.APIKey,
		ApiSecret:     cfg.APISecret,
		ApiPassphrase: cfg.APIPassphrase,
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	return &Client{
		ex:      newClobExchange(host, s, creds, builder),
		address: s.Address(),
		log:     logger,
	}, nil
}

// NewWithExchange builds a facade over a caller-provided delegate. Tests use
// this with a fake Exchange.
func NewWithExchange(ex Exchange) *Client {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return &Client{ex: ex, log: logger}
}

// Address returns the signing wallet address, empty for fake exchanges.
func (c *Client) Address() string {
	return c.address
}

// SetLogger installs a caller-provided logger.
func (c *Client) SetLogger(log logrus.FieldLogger) {
	c.log = log
}

// PlaceOrder signs and posts a GTC limit order. Price is a decimal in (0,1)
// and size a share count; both are validated before the delegate runs.
func (c *Client) PlaceOrder(tokenID, side string, price, size float64) (map[string]interface{}, error) {
	normalized := strings.ToUpper(side)
	if normalized != types.BUY && normalized != types.SELL {
		return nil, clienterr.NewValidationError("side must be %q or %q, got %q", types.BUY, types.SELL, side)
	}
	if tokenID == "" {
		return nil, clienterr.NewValidationError("token id is required")
	}
	if price <= 0 || price >= 1 {
		return nil, clienterr.NewValidationError("price %v out of range (0,1)", price)
	}
	if size <= 0 {
		return nil, clienterr.NewValidationError("size %v must be positive", size)
	}

	c.log.WithFields(logrus.Fields{
		"token_id": tokenID,
		"side":     normalized,
		"price":    price,
		"size":     size,
	}).Debug("placing order")

	args := &types.OrderArgs{
		TokenID: tokenID,
		Side:    normalized,
		Price:   price,
		Size:    size,
		Taker:   types.ZeroAddress,
	}
	return c.ex.PostOrder(args, types.OrderTypeGTC)
}

// CancelOrder cancels one order by id.
func (c *Client) CancelOrder(orderID string) (map[string]interface{}, error) {
	if orderID == "" {
		return nil, clienterr.NewValidationError("order id is required")
	}
	return c.ex.CancelOrder(orderID)
}

// CancelAll cancels every open order of the account.
func (c *Client) CancelAll() (map[string]interface{}, error) {
	return c.ex.CancelAll()
}

// OpenOrders returns all resting orders.
func (c *Client) OpenOrders() ([]types.OpenOrder, error) {
	return c.ex.OpenOrders()
}

// Balance returns the collateral balance and allowance.
func (c *Client) Balance() (map[string]interface{}, error) {
	return c.ex.Balance()
}
