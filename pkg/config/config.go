// Package config maps chain ids to the exchange contract set orders are
// signed against.
package config

import (
	clienterr "github.com/exhuman777/polymarket-go/pkg/errors"
	"github.com/exhuman777/polymarket-go/pkg/types"
)

var contractConfigs = map[int]*types.ContractConfig{
	types.PolygonChainID: {
		Exchange:          "0x4bFb41d5B3570DeFd03C39a9A4D8dE6Bd8B8982E",
		Collateral:        "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
		ConditionalTokens: "0x4D97DCd97eC945f40cF65F87097ACe5EA0476045",
	},
	types.AmoyChainID: {
		Exchange:          "0xdFE02Eb6733538f8Ea35D585af8DE5958AD99E40",
		Collateral:        "0x9c4e1703476e875070ee25b56a58b008cfb8fa78",
		ConditionalTokens: "0x69308FB512518e39F9b16112fA8d994F4e2Bf8bB",
	},
}

var negRiskContractConfigs = map[int]*types.ContractConfig{
	types.PolygonChainID: {
		Exchange:          "0xC5d563A36AE78145C45a50134d48A1215220f80a",
		Collateral:        "0x2791bca1f2de4661ed88a30c99a7a9449aa84174",
		ConditionalTokens: "0x4D97DCd97eC945f40cF65F87097ACe5EA0476045",
	},
	types.AmoyChainID: {
		Exchange:          "0xd91E80cF2E7be2e162c6513ceD06f1dD0dA35296",
		Collateral:        "0x9c4e1703476e875070ee25b56a58b008cfb8fa78",
		ConditionalTokens: "0x69308FB512518e39F9b16112fA8d994F4e2Bf8bB",
	},
}

// GetContractConfig returns the contract set for a chain, selecting the
// neg-risk variant when requested.
func GetContractConfig(chainID int, negRisk bool) (*types.ContractConfig, error) {
	var cfg *types.ContractConfig
	if negRisk {
		cfg = negRiskContractConfigs[chainID]
	} else {
		cfg = contractConfigs[chainID]
	}
	if cfg == nil {
		return nil, clienterr.NewValidationError("unsupported chain id: %d", chainID)
	}
	return cfg, nil
}
