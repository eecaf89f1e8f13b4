package trading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clienterr "github.com/exhuman777/polymarket-go/pkg/errors"
	"github.com/exhuman777/polymarket-go/pkg/types"
)

// Well-known hardhat development key, never funded on any real network.
const testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func validConfig() Config {
	return Config{
		PrivateKey:    testPrivateKey,
		APIKey:        "11111111-2222-3333-4444-555555555555",
		APISecret:     "c2VjcmV0LXNpZ25pbmcta2V5LWZvci10ZXN0cw==",
		APIPassphrase: "passphrase",
		Funder:        "0x9D84ce0306F8551E02EfEF1680475Fc0F1dc1344",
	}
}

type fakeExchange struct {
	postedArgs  *types.OrderArgs
	postedType  types.OrderType
	canceledID  string
	cancelAlled bool

	response map[string]interface{}
	orders   []types.OpenOrder
	err      error
}

func (f *fakeExchange) PostOrder(args *types.OrderArgs, orderType types.OrderType) (map[string]interface{}, error) {
	f.postedArgs = args
	f.postedType = orderType
	return f.response, f.err
}

func (f *fakeExchange) CancelOrder(orderID string) (map[string]interface{}, error) {
	f.canceledID = orderID
	return f.response, f.err
}

func (f *fakeExchange) CancelAll() (map[string]interface{}, error) {
	f.cancelAlled = true
	return f.response, f.err
}

func (f *fakeExchange) OpenOrders() ([]types.OpenOrder, error) {
	return f.orders, f.err
}

func (f *fakeExchange) Balance() (map[string]interface{}, error) {
	return f.response, f.err
}

func TestNew(t *testing.T) {
	c, err := New(validConfig())
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", c.Address())
}

func TestNewMissingCredentials(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Config)
	}{
		{"private_key", func(c *Config) { c.PrivateKey = "" }},
		{"api_key", func(c *Config) { c.APIKey = "" }},
		{"api_secret", func(c *Config) { c.APISecret = "" }},
		{"api_passphrase", func(c *Config) { c.APIPassphrase = "" }},
		{"funder", func(c *Config) { c.Funder = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			_, err := New(cfg)
			require.Error(t, err)
			assert.True(t, clienterr.IsValidation(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestNewBadPrivateKey(t *testing.T) {
	cfg := validConfig()
	cfg.PrivateKey = "not-a-hex-key"

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, clienterr.IsValidation(err))
}

func TestPlaceOrder(t *testing.T) {
	fake := &fakeExchange{response: map[string]interface{}{"success": true, "orderID": "0xabc"}}
	c := NewWithExchange(fake)

	resp, err := c.PlaceOrder("123456", "buy", 0.64, 100)
	require.NoError(t, err)
	assert.Equal(t, true, resp["success"])

	require.NotNil(t, fake.postedArgs)
	assert.Equal(t, "123456", fake.postedArgs.TokenID)
	assert.Equal(t, types.BUY, fake.postedArgs.Side)
	assert.Equal(t, 0.64, fake.postedArgs.Price)
	assert.Equal(t, 100.0, fake.postedArgs.Size)
	assert.Equal(t, types.ZeroAddress, fake.postedArgs.Taker)
	assert.Equal(t, types.OrderTypeGTC, fake.postedType)
}

func TestPlaceOrderValidation(t *testing.T) {
	tests := []struct {
		name    string
		tokenID string
		side    string
		price   float64
		size    float64
	}{
		{"bad side", "123456", "hold", 0.5, 10},
		{"empty token", "", "BUY", 0.5, 10},
		{"price zero", "123456", "BUY", 0, 10},
		{"price one", "123456", "SELL", 1, 10},
		{"price negative", "123456", "BUY", -0.2, 10},
		{"size zero", "123456", "BUY", 0.5, 0},
		{"size negative", "123456", "SELL", 0.5, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExchange{}
			c := NewWithExchange(fake)

			_, err := c.PlaceOrder(tt.tokenID, tt.side, tt.price, tt.size)
			require.Error(t, err)
			assert.True(t, clienterr.IsValidation(err))
			assert.Nil(t, fake.postedArgs, "delegate must not run on invalid input")
		})
	}
}

func TestCancelOrder(t *testing.T) {
	fake := &fakeExchange{response: map[string]interface{}{"canceled": []interface{}{"0xabc"}}}
	c := NewWithExchange(fake)

	_, err := c.CancelOrder("0xabc")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", fake.canceledID)

	_, err = c.CancelOrder("")
	require.Error(t, err)
	assert.True(t, clienterr.IsValidation(err))
}

func TestCancelAll(t *testing.T) {
	fake := &fakeExchange{response: map[string]interface{}{"canceled": []interface{}{}}}
	c := NewWithExchange(fake)

	_, err := c.CancelAll()
	require.NoError(t, err)
	assert.True(t, fake.cancelAlled)
}

func TestOpenOrders(t *testing.T) {
	fake := &fakeExchange{orders: []types.OpenOrder{
		{ID: "0xabc", Side: "BUY", Price: "0.64", Status: "LIVE"},
	}}
	c := NewWithExchange(fake)

	orders, err := c.OpenOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "0xabc", orders[0].ID)
}

func TestBalance(t *testing.T) {
	fake := &fakeExchange{response: map[string]interface{}{"balance": "250000000"}}
	c := NewWithExchange(fake)

	balance, err := c.Balance()
	require.NoError(t, err)
	assert.Equal(t, "250000000", balance["balance"])
}
