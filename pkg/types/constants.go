package types

const (
	// ZeroAddress is the public taker for open orders.
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	// Order sides.
	BUY  = "BUY"
	SELL = "SELL"

	// Outcome labels of a binary market. Token order on Gamma is yes first.
	OutcomeYes = "yes"
	OutcomeNo  = "no"

	// PolygonChainID is the mainnet chain Polymarket settles on.
	PolygonChainID = 137

	// AmoyChainID is the testnet chain.
	AmoyChainID = 80002

	// EndCursor terminates cursor pagination on the CLOB.
	EndCursor = "LTE="

	// InitialCursor is base64 "0".
	InitialCursor = "MA=="
)

// AssetType selects the balance being queried.
type AssetType string

const (
	AssetTypeCollateral  AssetType = "COLLATERAL"
	AssetTypeConditional AssetType = "CONDITIONAL"
)

// TokenDecimals is the collateral token (USDC) decimal count.
const TokenDecimals = 6
