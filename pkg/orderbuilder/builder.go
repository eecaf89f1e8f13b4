// Package orderbuilder converts caller-facing price/size arguments into the
// 6-decimal token amounts the exchange contract expects and produces signed
// orders through go-order-utils.
package orderbuilder

import (
	"fmt"
	"math/big"

	"github.com/polymarket/go-order-utils/pkg/builder"
	"github.com/polymarket/go-order-utils/pkg/model"

	"github.com/exhuman777/polymarket-go/pkg/config"
	clienterr "github.com/exhuman777/polymarket-go/pkg/errors"
	"github.com/exhuman777/polymarket-go/pkg/signer"
	"github.com/exhuman777/polymarket-go/pkg/types"
)

// RoundingConfig maps tick sizes to the decimal budgets used when converting
// float arguments into token amounts.
var RoundingConfig = map[types.TickSize]types.RoundConfig{
	types.TickSize01:    {Price: 1, Size: 2, Amount: 3},
	types.TickSize001:   {Price: 2, Size: 2, Amount: 4},
	types.TickSize0001:  {Price: 3, Size: 2, Amount: 5},
	types.TickSize00001: {Price: 4, Size: 2, Amount: 6},
}

// OrderBuilder signs orders on behalf of a funder wallet.
type OrderBuilder struct {
	signer  *signer.Signer
	sigType model.SignatureType
	funder  string
}

// New creates an order builder. sigType defaults to EOA and funder to the
// signer address when not provided.
func New(s *signer.Signer, sigType *model.SignatureType, funder *string) *OrderBuilder {
	st := model.EOA
	if sigType != nil {
		st = *sigType
	}

	f := s.Address()
	if funder != nil && *funder != "" {
		f = *funder
	}

	return &OrderBuilder{
		signer:  s,
		sigType: st,
		funder:  f,
	}
}

// SignatureType returns the wallet signature scheme in use.
func (ob *OrderBuilder) SignatureType() int {
	return int(ob.sigType)
}

// OrderAmounts converts side/size/price into maker and taker token amounts.
// For a BUY the maker amount is collateral spent; for a SELL it is shares
// offered.
func (ob *OrderBuilder) OrderAmounts(side string, size, price float64, rc types.RoundConfig) (model.Side, *big.Int, *big.Int, error) {
	rawPrice := roundNormal(price, rc.Price)

	switch side {
	case types.BUY:
		rawTakerAmt := roundDown(size, rc.Size)
		rawMakerAmt := rawTakerAmt * rawPrice
		if decimalPlaces(rawMakerAmt) > rc.Amount {
			rawMakerAmt = roundUp(rawMakerAmt, rc.Amount+4)
			if decimalPlaces(rawMakerAmt) > rc.Amount {
				rawMakerAmt = roundDown(rawMakerAmt, rc.Amount)
			}
		}
		return model.BUY, toTokenUnits(rawMakerAmt), toTokenUnits(rawTakerAmt), nil

	case types.SELL:
		rawMakerAmt := roundDown(size, rc.Size)
		rawTakerAmt := rawMakerAmt * rawPrice
		if decimalPlaces(rawTakerAmt) > rc.Amount {
			rawTakerAmt = roundUp(rawTakerAmt, rc.Amount+4)
			if decimalPlaces(rawTakerAmt) > rc.Amount {
				rawTakerAmt = roundDown(rawTakerAmt, rc.Amount)
			}
		}
		return model.SELL, toTokenUnits(rawMakerAmt), toTokenUnits(rawTakerAmt), nil
	}

	return 0, nil, nil, clienterr.NewValidationError("side must be %q or %q, got %q", types.BUY, types.SELL, side)
}

// CreateOrder builds and signs a limit order for the configured chain.
func (ob *OrderBuilder) CreateOrder(args *types.OrderArgs, tickSize types.TickSize, negRisk bool) (*model.SignedOrder, error) {
	side, makerAmount, takerAmount, err := ob.OrderAmounts(args.Side, args.Size, args.Price, RoundingConfig[tickSize])
	if err != nil {
		return nil, err
	}

	taker := args.Taker
	if taker == "" {
		taker = types.ZeroAddress
	}

	orderData := &model.OrderData{
		Maker:         ob.funder,
		Taker:         taker,
		TokenId:       args.TokenID,
		MakerAmount:   makerAmount.String(),
		TakerAmount:   takerAmount.String(),
		Side:          side,
		FeeRateBps:    fmt.Sprintf("%d", args.FeeRateBps),
		Nonce:         fmt.Sprintf("%d", args.Nonce),
		Signer:        ob.signer.Address(),
		Expiration:    fmt.Sprintf("%d", args.Expiration),
		SignatureType: ob.sigType,
	}

	// Reject unsupported chains before signing.
	if _, err := config.GetContractConfig(ob.signer.ChainID(), negRisk); err != nil {
		return nil, err
	}

	chainID := big.NewInt(int64(ob.signer.ChainID()))
	exchangeBuilder := builder.NewExchangeOrderBuilderImpl(chainID, nil)

	verifyingContract := model.CTFExchange
	if negRisk {
		verifyingContract = model.NegRiskCTFExchange
	}

	return exchangeBuilder.BuildSignedOrder(ob.signer.PrivateKey(), orderData, verifyingContract)
}

// ValidTickSize reports whether tick is at least the market minimum.
func ValidTickSize(tick, minTick types.TickSize) bool {
	return !tickLess(tick, minTick)
}

func tickLess(a, b types.TickSize) bool {
	order := map[types.TickSize]int{
		types.TickSize01:    4,
		types.TickSize001:   3,
		types.TickSize0001:  2,
		types.TickSize00001: 1,
	}
	return order[a] < order[b]
}

// PriceValid reports whether price sits on the tick grid inside
// [tick, 1-tick].
func PriceValid(price float64, tickSize types.TickSize) bool {
	tick := map[types.TickSize]float64{
		types.TickSize01:    0.1,
		types.TickSize001:   0.01,
		types.TickSize0001:  0.001,
		types.TickSize00001: 0.0001,
	}[tickSize]
	if tick == 0 {
		return false
	}
	return price >= tick && price <= 1-tick
}
