package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clienterr "github.com/exhuman777/polymarket-go/pkg/errors"
)

const (
	fixtureMarketID = "1230810"
	fixtureYesToken = "71321045679252212594626385532706912750332728571942532289631379312455583992563"
	fixtureNoToken  = "52114319501245915516055106046884209969926127482827954674443846427813813222426"
)

// fixtureMarketJSON mirrors the catalog wire format, including the
// string-encoded array fields.
const fixtureMarketJSON = `{
	"id": "1230810",
	"question": "Will Bitcoin close above $100k this year?",
	"slug": "bitcoin-100k",
	"conditionId": "0x178a8e5e7a4bbf0b7ae16ee4a0b49f33b5b9fbbbab6aa4927a1b3f4c23d1a001",
	"clobTokenIds": "[\"71321045679252212594626385532706912750332728571942532289631379312455583992563\", \"52114319501245915516055106046884209969926127482827954674443846427813813222426\"]",
	"outcomes": "[\"Yes\", \"No\"]",
	"outcomePrices": "[\"0.65\", \"0.35\"]",
	"endDate": "2026-12-31T00:00:00Z",
	"active": true,
	"closed": false
}`

// newGammaTestClient serves the single fixture market: present under its id,
// absent for every other id.
func newGammaTestClient(t *testing.T) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/markets", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Query().Get("id") == fixtureMarketID:
			w.Write([]byte("[" + fixtureMarketJSON + "]"))
		case r.URL.Query().Get("clob_token_ids") == fixtureYesToken:
			w.Write([]byte("[" + fixtureMarketJSON + "]"))
		case r.URL.Query().Get("id") == "" && r.URL.Query().Get("clob_token_ids") == "":
			w.Write([]byte("[" + fixtureMarketJSON + "]"))
		default:
			w.Write([]byte("[]"))
		}
	})
	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("slug") == "bitcoin-100k-event" {
			w.Write([]byte(`[{"id": "900", "slug": "bitcoin-100k-event", "title": "Bitcoin $100k", "markets": [` + fixtureMarketJSON + `]}]`))
			return
		}
		w.Write([]byte("[]"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(WithGammaHost(srv.URL))
}

func TestGetMarket(t *testing.T) {
	c := newGammaTestClient(t)

	market, err := c.GetMarket(fixtureMarketID)
	require.NoError(t, err)
	require.NotNil(t, market)

	assert.Equal(t, fixtureMarketID, market.ID)
	assert.Equal(t, "Will Bitcoin close above $100k this year?", market.Question)
	assert.Equal(t, []string{fixtureYesToken, fixtureNoToken}, []string(market.ClobTokenIDs))
	assert.Equal(t, []string{"Yes", "No"}, []string(market.Outcomes))
	assert.True(t, market.Active)
}

func TestGetMarketNotFound(t *testing.T) {
	c := newGammaTestClient(t)

	market, err := c.GetMarket("999999999")
	require.NoError(t, err)
	assert.Nil(t, market)
}

func TestGetEvent(t *testing.T) {
	c := newGammaTestClient(t)

	event, err := c.GetEvent("bitcoin-100k-event")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Bitcoin $100k", event.Title)
	require.Len(t, event.Markets, 1)
	assert.Equal(t, fixtureMarketID, event.Markets[0].ID)

	missing, err := c.GetEvent("no-such-event")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetTokenID(t *testing.T) {
	c := newGammaTestClient(t)

	yes, err := c.GetTokenID(fixtureMarketID, "yes")
	require.NoError(t, err)
	assert.Equal(t, fixtureYesToken, yes)

	no, err := c.GetTokenID(fixtureMarketID, "No")
	require.NoError(t, err)
	assert.Equal(t, fixtureNoToken, no)

	assert.NotEmpty(t, yes)
	assert.NotEmpty(t, no)
	assert.NotEqual(t, yes, no)
}

func TestGetTokenIDUnknownOutcome(t *testing.T) {
	c := newGammaTestClient(t)

	_, err := c.GetTokenID(fixtureMarketID, "maybe")
	require.Error(t, err)
	assert.True(t, clienterr.IsValidation(err))
	assert.Contains(t, err.Error(), "maybe")
}

func TestGetTokenIDMissingMarket(t *testing.T) {
	c := newGammaTestClient(t)

	tokenID, err := c.GetTokenID("999999999", "yes")
	require.NoError(t, err)
	assert.Empty(t, tokenID)
}

func TestGetPrice(t *testing.T) {
	c := newGammaTestClient(t)

	pair, err := c.GetPrice(fixtureMarketID)
	require.NoError(t, err)
	require.NotNil(t, pair)

	assert.Equal(t, 0.65, pair.Yes)
	assert.Equal(t, 0.35, pair.No)
	assert.GreaterOrEqual(t, pair.Yes, 0.0)
	assert.LessOrEqual(t, pair.Yes, 1.0)
	assert.InDelta(t, 1.0, pair.Yes+pair.No, 0.02)
}

func TestGetPriceMissingMarket(t *testing.T) {
	c := newGammaTestClient(t)

	pair, err := c.GetPrice("999999999")
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestSearchMarkets(t *testing.T) {
	c := newGammaTestClient(t)

	matches, err := c.SearchMarkets("bitcoin", 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, fixtureMarketID, matches[0].ID)

	none, err := c.SearchMarkets("curling", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetTrending(t *testing.T) {
	c := newGammaTestClient(t)

	markets, err := c.GetTrending(5)
	require.NoError(t, err)
	require.Len(t, markets, 1)
	assert.Equal(t, fixtureMarketID, markets[0].ID)
}

func TestGetMarketByToken(t *testing.T) {
	c := newGammaTestClient(t)

	lookup, err := c.GetMarketByToken(fixtureYesToken)
	require.NoError(t, err)
	require.NotNil(t, lookup)
	assert.Equal(t, "YES", lookup.Outcome)
	assert.Equal(t, fixtureMarketID, lookup.MarketID)

	// Second lookup is served from the cache.
	again, err := c.GetMarketByToken(fixtureYesToken)
	require.NoError(t, err)
	assert.Same(t, lookup, again)
}

func TestGetMarketByTokenNotFound(t *testing.T) {
	c := newGammaTestClient(t)

	lookup, err := c.GetMarketByToken("12345")
	require.NoError(t, err)
	assert.Nil(t, lookup)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "upstream unavailable"}`))
	}))
	t.Cleanup(srv.Close)

	c := New(WithGammaHost(srv.URL))
	_, err := c.GetMarket(fixtureMarketID)
	require.Error(t, err)
	require.True(t, clienterr.IsTransport(err))

	var te *clienterr.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
	assert.Equal(t, "upstream unavailable", te.Body)
}
