package types

// ApiCreds holds the Level 2 API credentials issued by the CLOB.
type ApiCreds struct {
	ApiKey        string `json:"api_key"`
	ApiSecret     string `json:"api_secret"`
	ApiPassphrase string `json:"api_passphrase"`
}

// RequestArgs describes a request for L2 header signing.
type RequestArgs struct {
	Method      string      `json:"method"`
	RequestPath string      `json:"request_path"`
	Body        interface{} `json:"body,omitempty"`
}

// Market is a binary market from the Gamma catalog. The ClobTokenIDs,
// Outcomes and OutcomePrices fields arrive as JSON-encoded strings and are
// decoded through StringSlice.
type Market struct {
	ID            string      `json:"id"`
	Question      string      `json:"question"`
	Slug          string      `json:"slug"`
	ConditionID   string      `json:"conditionId"`
	ClobTokenIDs  StringSlice `json:"clobTokenIds"`
	Outcomes      StringSlice `json:"outcomes"`
	OutcomePrices StringSlice `json:"outcomePrices"`
	StartDate     string      `json:"startDate"`
	EndDate       string      `json:"endDate"`
	Category      string      `json:"category"`
	Volume        string      `json:"volume"`
	Liquidity     string      `json:"liquidity"`
	Active        bool        `json:"active"`
	Closed        bool        `json:"closed"`
}

// Event groups the markets listed under one Polymarket event page.
type Event struct {
	ID      string   `json:"id"`
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// PricePair holds the current YES/NO outcome prices as decimals in [0,1].
type PricePair struct {
	Yes float64 `json:"yes"`
	No  float64 `json:"no"`
}

// Level is one price level of an order book.
type Level struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}

// OrderBook is the book snapshot for one outcome token. Bids are sorted
// highest price first, asks lowest price first.
type OrderBook struct {
	Market    string  `json:"market"`
	AssetID   string  `json:"asset_id"`
	Timestamp string  `json:"timestamp"`
	Bids      []Level `json:"bids"`
	Asks      []Level `json:"asks"`
}

// LastTrade is the most recent fill for an outcome token.
type LastTrade struct {
	Price float64 `json:"price"`
	Side  string  `json:"side"`
}

// Spread is the best bid/ask of a book and their difference.
type Spread struct {
	Bid    float64 `json:"bid"`
	Ask    float64 `json:"ask"`
	Spread float64 `json:"spread"`
}

// TokenLookup is the reverse token-id -> market projection.
type TokenLookup struct {
	Question string `json:"question"`
	Outcome  string `json:"outcome"`
	Slug     string `json:"slug"`
	MarketID string `json:"market_id"`
	EndDate  string `json:"endDate"`
}

// Trade is one fill from the Data API, keyed by the outcome token.
type Trade struct {
	ProxyWallet     string  `json:"proxyWallet"`
	Side            string  `json:"side"`
	Asset           string  `json:"asset"`
	ConditionID     string  `json:"conditionId"`
	Price           float64 `json:"price"`
	Size            float64 `json:"size"`
	Timestamp       int64   `json:"timestamp"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Outcome         string  `json:"outcome"`
	TransactionHash string  `json:"transactionHash"`
}

// Position is one wallet position from the Data API.
type Position struct {
	ProxyWallet  string  `json:"proxyWallet"`
	Asset        string  `json:"asset"`
	ConditionID  string  `json:"conditionId"`
	Size         float64 `json:"size"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentValue float64 `json:"currentValue"`
	CashPnL      float64 `json:"cashPnl"`
	PercentPnL   float64 `json:"percentPnl"`
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Outcome      string  `json:"outcome"`
	Redeemable   bool    `json:"redeemable"`
	EndDate      string  `json:"endDate"`
}

// LeaderboardEntry is one row of the trader leaderboard.
type LeaderboardEntry struct {
	ProxyWallet string  `json:"proxyWallet"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
}

// OrderArgs are the caller-facing arguments for a limit order.
type OrderArgs struct {
	TokenID    string  `json:"token_id"`
	Price      float64 `json:"price"`
	Size       float64 `json:"size"`
	Side       string  `json:"side"`
	FeeRateBps int     `json:"fee_rate_bps"`
	Nonce      int     `json:"nonce"`
	Expiration int64   `json:"expiration"`
	Taker      string  `json:"taker"`
}

// OpenOrder is one resting order returned by the CLOB.
type OpenOrder struct {
	ID           string `json:"id"`
	Market       string `json:"market"`
	AssetID      string `json:"asset_id"`
	Side         string `json:"side"`
	Price        string `json:"price"`
	OriginalSize string `json:"original_size"`
	SizeMatched  string `json:"size_matched"`
	Status       string `json:"status"`
	Outcome      string `json:"outcome"`
	CreatedAt    int64  `json:"created_at"`
}

// OrderType is the CLOB time-in-force.
type OrderType string

const (
	OrderTypeGTC OrderType = "GTC"
	OrderTypeFOK OrderType = "FOK"
	OrderTypeGTD OrderType = "GTD"
	OrderTypeFAK OrderType = "FAK"
)

// TickSize is the minimum price increment of a market.
type TickSize string

const (
	TickSize01    TickSize = "0.1"
	TickSize001   TickSize = "0.01"
	TickSize0001  TickSize = "0.001"
	TickSize00001 TickSize = "0.0001"
)

// RoundConfig holds decimal-place budgets per tick size.
type RoundConfig struct {
	Price  int
	Size   int
	Amount int
}

// ContractConfig holds the exchange contract addresses for one chain.
type ContractConfig struct {
	Exchange          string `json:"exchange"`
	Collateral        string `json:"collateral"`
	ConditionalTokens string `json:"conditional_tokens"`
}
