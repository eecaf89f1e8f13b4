package types

// Default service hosts.
const (
	GammaHost = "https://gamma-api.polymarket.com"
	ClobHost  = "https://clob.polymarket.com"
	DataHost  = "https://data-api.polymarket.com"
)

// Gamma catalog endpoints.
const (
	GammaMarkets = "/markets"
	GammaEvents  = "/events"
)

// CLOB endpoints.
const (
	GetOrderBookPath     = "/book"
	MidpointPath         = "/midpoint"
	LastTradePricePath   = "/last-trade-price"
	GetTickSizePath      = "/tick-size"
	GetNegRiskPath       = "/neg-risk"
	PostOrderPath        = "/order"
	CancelPath           = "/order"
	CancelAllPath        = "/cancel-all"
	OrdersPath           = "/data/orders"
	BalanceAllowancePath = "/balance-allowance"
)

// Data API endpoints.
const (
	DataTrades      = "/trades"
	DataPositions   = "/positions"
	DataLeaderboard = "/leaderboard"
)
