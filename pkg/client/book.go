package client

import (
	"sort"
	"strconv"

	perrors "github.com/pkg/errors"

	"github.com/exhuman777/polymarket-go/pkg/types"
)

// rawBook mirrors the CLOB /book wire format, which carries price levels as
// decimal strings.
type rawBook struct {
	Market    string     `json:"market"`
	AssetID   string     `json:"asset_id"`
	Timestamp string     `json:"timestamp"`
	Bids      []rawLevel `json:"bids"`
	Asks      []rawLevel `json:"asks"`
}

type rawLevel struct {
	Price string `json:"price"`
	Size  string `json:"size"`
}

// GetOrderBook fetches the book snapshot for an outcome token, with bids
// sorted best (highest) first and asks best (lowest) first.
func (c *Client) GetOrderBook(tokenID string) (*types.OrderBook, error) {
	c.log.WithField("token_id", tokenID).Debug("fetching order book")

	var raw rawBook
	err := c.http.Get(c.clobHost+types.GetOrderBookPath, map[string]string{"token_id": tokenID}, nil, &raw)
	if err != nil {
		return nil, err
	}
	return projectBook(&raw)
}

func projectBook(raw *rawBook) (*types.OrderBook, error) {
	bids, err := projectLevels(raw.Bids)
	if err != nil {
		return nil, perrors.Wrap(err, "bid levels")
	}
	asks, err := projectLevels(raw.Asks)
	if err != nil {
		return nil, perrors.Wrap(err, "ask levels")
	}

	sort.Slice(bids, func(i, j int) bool { return bids[i].Price > bids[j].Price })
	sort.Slice(asks, func(i, j int) bool { return asks[i].Price < asks[j].Price })

	return &types.OrderBook{
		Market:    raw.Market,
		AssetID:   raw.AssetID,
		Timestamp: raw.Timestamp,
		Bids:      bids,
		Asks:      asks,
	}, nil
}

func projectLevels(raw []rawLevel) ([]types.Level, error) {
	levels := make([]types.Level, len(raw))
	for i, l := range raw {
		price, err := strconv.ParseFloat(l.Price, 64)
		if err != nil {
			return nil, perrors.Errorf("malformed price %q", l.Price)
		}
		size, err := strconv.ParseFloat(l.Size, 64)
		if err != nil {
			return nil, perrors.Errorf("malformed size %q", l.Size)
		}
		levels[i] = types.Level{Price: price, Size: size}
	}
	return levels, nil
}

// GetSpread derives the best bid/ask and their difference for a market
// outcome. The outcome string must be "yes" or "no"; a book missing either
// side is an error because no spread exists.
func (c *Client) GetSpread(marketID, outcome string) (*types.Spread, error) {
	tokenID, err := c.GetTokenID(marketID, outcome)
	if err != nil {
		return nil, err
	}
	if tokenID == "" {
		return nil, perrors.Errorf("market %s not found", marketID)
	}

	book, err := c.GetOrderBook(tokenID)
	if err != nil {
		return nil, err
	}
	if len(book.Bids) == 0 {
		return nil, perrors.Errorf("order book for token %s has no bid levels", tokenID)
	}
	if len(book.Asks) == 0 {
		return nil, perrors.Errorf("order book for token %s has no ask levels", tokenID)
	}

	bid := book.Bids[0].Price
	ask := book.Asks[0].Price
	return &types.Spread{Bid: bid, Ask: ask, Spread: ask - bid}, nil
}

// GetMidpoint returns the mid market price for an outcome token.
func (c *Client) GetMidpoint(tokenID string) (float64, error) {
	var out struct {
		Mid string `json:"mid"`
	}
	err := c.http.Get(c.clobHost+types.MidpointPath, map[string]string{"token_id": tokenID}, nil, &out)
	if err != nil {
		return 0, err
	}
	mid, err := strconv.ParseFloat(out.Mid, 64)
	if err != nil {
		return 0, perrors.Errorf("malformed midpoint %q", out.Mid)
	}
	return mid, nil
}

// GetLastTradePrice returns the most recent fill for an outcome token.
func (c *Client) GetLastTradePrice(tokenID string) (*types.LastTrade, error) {
	var out struct {
		Price string `json:"price"`
		Side  string `json:"side"`
	}
	err := c.http.Get(c.clobHost+types.LastTradePricePath, map[string]string{"token_id": tokenID}, nil, &out)
	if err != nil {
		return nil, err
	}
	price, err := strconv.ParseFloat(out.Price, 64)
	if err != nil {
		return nil, perrors.Errorf("malformed last trade price %q", out.Price)
	}
	return &types.LastTrade{Price: price, Side: out.Side}, nil
}
