package client

import (
	"strconv"

	clienterr "github.com/exhuman777/polymarket-go/pkg/errors"
	"github.com/exhuman777/polymarket-go/pkg/types"
)

const defaultTradeLimit = 50

// GetTrades returns recent fills for a market, most recent first as the
// Data API orders them. The market's YES token keys the query; a missing
// market yields (nil, nil).
func (c *Client) GetTrades(marketID string, limit int) ([]types.Trade, error) {
	if limit <= 0 {
		limit = defaultTradeLimit
	}

	tokenID, err := c.GetTokenID(marketID, types.OutcomeYes)
	if err != nil {
		return nil, err
	}
	if tokenID == "" {
		return nil, nil
	}

	var trades []types.Trade
	err = c.http.Get(c.dataHost+types.DataTrades, map[string]string{
		"asset_id": tokenID,
		"limit":    strconv.Itoa(limit),
	}, nil, &trades)
	if err != nil {
		return nil, err
	}
	return trades, nil
}

// GetPositions returns the open positions of a wallet address.
func (c *Client) GetPositions(address string) ([]types.Position, error) {
	if address == "" {
		return nil, clienterr.NewValidationError("wallet address is required")
	}

	var positions []types.Position
	err := c.http.Get(c.dataHost+types.DataPositions, map[string]string{"user": address}, nil, &positions)
	if err != nil {
		return nil, err
	}
	return positions, nil
}

// GetLeaderboard returns the top traders by profit.
func (c *Client) GetLeaderboard(limit int) ([]types.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	var entries []types.LeaderboardEntry
	err := c.http.Get(c.dataHost+types.DataLeaderboard, map[string]string{"limit": strconv.Itoa(limit)}, nil, &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
