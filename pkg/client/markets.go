package client

import (
	"strconv"
	"strings"

	perrors "github.com/pkg/errors"
	"github.com/samber/lo"

	clienterr "github.com/exhuman777/polymarket-go/pkg/errors"
	"github.com/exhuman777/polymarket-go/pkg/types"
)

const defaultSearchLimit = 10

// searchPageSize is how many active markets one catalog page fetch pulls in
// before the client-side question filter runs.
const searchPageSize = 100

// GetMarket fetches a market by its numeric catalog id. A missing id yields
// (nil, nil), not an error.
func (c *Client) GetMarket(marketID string) (*types.Market, error) {
	c.log.WithField("market_id", marketID).Debug("fetching market")

	var markets []types.Market
	err := c.http.Get(c.gammaHost+types.GammaMarkets, map[string]string{"id": marketID}, nil, &markets)
	if err != nil {
		return nil, err
	}
	if len(markets) == 0 {
		return nil, nil
	}
	return &markets[0], nil
}

// GetEvent fetches an event by its URL slug, e.g. "trump-election-2024" from
// polymarket.com/event/trump-election-2024. A missing slug yields (nil, nil).
func (c *Client) GetEvent(slug string) (*types.Event, error) {
	c.log.WithField("slug", slug).Debug("fetching event")

	var events []types.Event
	err := c.http.Get(c.gammaHost+types.GammaEvents, map[string]string{"slug": slug}, nil, &events)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

// SearchMarkets filters active open markets by a case-insensitive substring
// match on the question, capped at limit.
func (c *Client) SearchMarkets(query string, limit int) ([]types.Market, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	pageSize := limit
	if pageSize < searchPageSize {
		pageSize = searchPageSize
	}

	var markets []types.Market
	err := c.http.Get(c.gammaHost+types.GammaMarkets, map[string]string{
		"_limit": strconv.Itoa(pageSize),
		"active": "true",
		"closed": "false",
	}, nil, &markets)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := lo.Filter(markets, func(m types.Market, _ int) bool {
		return strings.Contains(strings.ToLower(m.Question), needle)
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// GetTrending returns active open markets ordered by volume descending.
func (c *Client) GetTrending(limit int) ([]types.Market, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var markets []types.Market
	err := c.http.Get(c.gammaHost+types.GammaMarkets, map[string]string{
		"_limit":    strconv.Itoa(limit),
		"active":    "true",
		"closed":    "false",
		"order":     "volume",
		"ascending": "false",
	}, nil, &markets)
	if err != nil {
		return nil, err
	}
	return markets, nil
}

// GetTokenID resolves a market outcome ("yes" or "no", case-insensitive) to
// its CLOB token id. The token id is required for order-book lookups and
// trading. A missing market yields ("", nil).
func (c *Client) GetTokenID(marketID, outcome string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(outcome))
	if normalized != types.OutcomeYes && normalized != types.OutcomeNo {
		return "", clienterr.NewValidationError(
			"unknown outcome %q for market %s: valid outcomes are %q and %q",
			outcome, marketID, types.OutcomeYes, types.OutcomeNo)
	}

	market, err := c.GetMarket(marketID)
	if err != nil {
		return "", err
	}
	if market == nil {
		return "", nil
	}
	if len(market.ClobTokenIDs) < 2 {
		return "", perrors.Errorf("market %s does not expose two outcome tokens", marketID)
	}

	if normalized == types.OutcomeYes {
		return market.ClobTokenIDs[0], nil
	}
	return market.ClobTokenIDs[1], nil
}

// GetPrice returns the current YES/NO prices of a market as decimals in
// [0,1]. A missing market yields (nil, nil).
func (c *Client) GetPrice(marketID string) (*types.PricePair, error) {
	market, err := c.GetMarket(marketID)
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, nil
	}

	pair := &types.PricePair{}
	if len(market.OutcomePrices) > 0 {
		pair.Yes, err = strconv.ParseFloat(market.OutcomePrices[0], 64)
		if err != nil {
			return nil, perrors.Wrapf(err, "market %s: malformed yes price", marketID)
		}
	}
	if len(market.OutcomePrices) > 1 {
		pair.No, err = strconv.ParseFloat(market.OutcomePrices[1], 64)
		if err != nil {
			return nil, perrors.Wrapf(err, "market %s: malformed no price", marketID)
		}
	}
	return pair, nil
}

// GetMarketByToken reverse-resolves a CLOB token id to its market. Useful
// when positions or open orders only carry token ids. Results are cached per
// client. A token with no market yields (nil, nil).
func (c *Client) GetMarketByToken(tokenID string) (*types.TokenLookup, error) {
	if cached, ok := c.tokenCache[tokenID]; ok {
		return cached, nil
	}

	var markets []types.Market
	err := c.http.Get(c.gammaHost+types.GammaMarkets, map[string]string{"clob_token_ids": tokenID}, nil, &markets)
	if err != nil {
		return nil, err
	}
	if len(markets) == 0 {
		return nil, nil
	}

	market := markets[0]
	outcome := "NO"
	if len(market.ClobTokenIDs) > 0 && market.ClobTokenIDs[0] == tokenID {
		outcome = "YES"
	}

	lookup := &types.TokenLookup{
		Question: market.Question,
		Outcome:  outcome,
		Slug:     market.Slug,
		MarketID: market.ID,
		EndDate:  market.EndDate,
	}
	c.tokenCache[tokenID] = lookup
	return lookup, nil
}
