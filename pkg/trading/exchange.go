package trading

import (
	"fmt"

	"github.com/polymarket/go-order-utils/pkg/model"

	clienterr "github.com/exhuman777/polymarket-go/pkg/errors"
	"github.com/exhuman777/polymarket-go/pkg/headers"
	"github.com/exhuman777/polymarket-go/pkg/httpclient"
	"github.com/exhuman777/polymarket-go/pkg/orderbuilder"
	"github.com/exhuman777/polymarket-go/pkg/signer"
	"github.com/exhuman777/polymarket-go/pkg/types"
)

// Exchange is the capability set the facade needs from the signing/trading
// delegate: sign-and-submit an order, cancel, and query account state. Tests
// substitute a fake.
type Exchange interface {
	PostOrder(args *types.OrderArgs, orderType types.OrderType) (map[string]interface{}, error)
	CancelOrder(orderID string) (map[string]interface{}, error)
	CancelAll() (map[string]interface{}, error)
	OpenOrders() ([]types.OpenOrder, error)
	Balance() (map[string]interface{}, error)
}

// clobExchange is the concrete delegate: it signs orders through
// go-order-utils and authenticates requests with L2 POLY_* headers.
type clobExchange struct {
	host    string
	signer  *signer.Signer
	creds   *types.ApiCreds
	builder *orderbuilder.OrderBuilder
	http    *httpclient.Client

	tickSizes map[string]types.TickSize
	negRisk   map[string]bool
}

func newClobExchange(host string, s *signer.Signer, creds *types.ApiCreds, b *orderbuilder.OrderBuilder) *clobExchange {
	return &clobExchange{
		host:      host,
		signer:    s,
		creds:     creds,
		builder:   b,
		http:      httpclient.New(),
		tickSizes: make(map[string]types.TickSize),
		negRisk:   make(map[string]bool),
	}
}

// tickSize resolves and caches the minimum price increment of a token.
func (e *clobExchange) tickSize(tokenID string) (types.TickSize, error) {
	if ts, ok := e.tickSizes[tokenID]; ok {
		return ts, nil
	}

	var out struct {
		MinimumTickSize interface{} `json:"minimum_tick_size"`
	}
	err := e.http.Get(e.host+types.GetTickSizePath, map[string]string{"token_id": tokenID}, nil, &out)
	if err != nil {
		return "", err
	}

	var ts types.TickSize
	switch v := out.MinimumTickSize.(type) {
	case string:
		ts = types.TickSize(v)
	case float64:
		ts = types.TickSize(fmt.Sprintf("%g", v))
	default:
		return "", clienterr.NewValidationError("token %s: no tick size in response", tokenID)
	}

	e.tickSizes[tokenID] = ts
	return ts, nil
}

// isNegRisk resolves and caches whether a token trades on the neg-risk
// exchange contract.
func (e *clobExchange) isNegRisk(tokenID string) (bool, error) {
	if nr, ok := e.negRisk[tokenID]; ok {
		return nr, nil
	}

	var out struct {
		NegRisk bool `json:"neg_risk"`
	}
	err := e.http.Get(e.host+types.GetNegRiskPath, map[string]string{"token_id": tokenID}, nil, &out)
	if err != nil {
		return false, err
	}

	e.negRisk[tokenID] = out.NegRisk
	return out.NegRisk, nil
}

// PostOrder signs the order and submits it. Remote rejections come back in
// the response map (or transport error body) verbatim.
func (e *clobExchange) PostOrder(args *types.OrderArgs, orderType types.OrderType) (map[string]interface{}, error) {
	tickSize, err := e.tickSize(args.TokenID)
	if err != nil {
		return nil, err
	}
	if !orderbuilder.PriceValid(args.Price, tickSize) {
		return nil, clienterr.NewValidationError(
			"price %v off the %s tick grid for token %s", args.Price, tickSize, args.TokenID)
	}

	negRisk, err := e.isNegRisk(args.TokenID)
	if err != nil {
		return nil, err
	}

	signed, err := e.builder.CreateOrder(args, tickSize, negRisk)
	if err != nil {
		return nil, err
	}

	body := e.orderToJSON(signed, orderType)
	requestArgs := &types.RequestArgs{
		Method:      "POST",
		RequestPath: types.PostOrderPath,
		Body:        body,
	}
	h, err := headers.CreateLevel2Headers(e.signer, e.creds, requestArgs)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := e.http.Post(e.host+types.PostOrderPath, h, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelOrder cancels a single resting order by id.
func (e *clobExchange) CancelOrder(orderID string) (map[string]interface{}, error) {
	body := map[string]string{"orderID": orderID}
	requestArgs := &types.RequestArgs{
		Method:      "DELETE",
		RequestPath: types.CancelPath,
		Body:        body,
	}
	h, err := headers.CreateLevel2Headers(e.signer, e.creds, requestArgs)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := e.http.Delete(e.host+types.CancelPath, h, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelAll cancels every resting order of the account.
func (e *clobExchange) CancelAll() (map[string]interface{}, error) {
	requestArgs := &types.RequestArgs{
		Method:      "DELETE",
		RequestPath: types.CancelAllPath,
	}
	h, err := headers.CreateLevel2Headers(e.signer, e.creds, requestArgs)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := e.http.Delete(e.host+types.CancelAllPath, h, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OpenOrders walks the cursor pagination of /data/orders and returns the
// full set.
func (e *clobExchange) OpenOrders() ([]types.OpenOrder, error) {
	requestArgs := &types.RequestArgs{
		Method:      "GET",
		RequestPath: types.OrdersPath,
	}
	h, err := headers.CreateLevel2Headers(e.signer, e.creds, requestArgs)
	if err != nil {
		return nil, err
	}

	var results []types.OpenOrder
	cursor := types.InitialCursor
	for cursor != types.EndCursor {
		var page struct {
			NextCursor string            `json:"next_cursor"`
			Data       []types.OpenOrder `json:"data"`
		}
		err := e.http.Get(e.host+types.OrdersPath, map[string]string{"next_cursor": cursor}, h, &page)
		if err != nil {
			return nil, err
		}
		results = append(results, page.Data...)
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}
	return results, nil
}

// Balance queries the collateral balance and allowance of the funder.
func (e *clobExchange) Balance() (map[string]interface{}, error) {
	requestArgs := &types.RequestArgs{
		Method:      "GET",
		RequestPath: types.BalanceAllowancePath,
	}
	h, err := headers.CreateLevel2Headers(e.signer, e.creds, requestArgs)
	if err != nil {
		return nil, err
	}

	query := map[string]string{
		"asset_type":     string(types.AssetTypeCollateral),
		"signature_type": fmt.Sprintf("%d", e.builder.SignatureType()),
	}
	var out map[string]interface{}
	if err := e.http.Get(e.host+types.BalanceAllowancePath, query, h, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// orderToJSON flattens a signed order into the CLOB wire format. Salt and
// signatureType go out as numbers, addresses keep their checksum casing.
func (e *clobExchange) orderToJSON(order *model.SignedOrder, orderType types.OrderType) map[string]interface{} {
	side := types.BUY
	if order.Side.Int64() == 1 {
		side = types.SELL
	}

	orderData := map[string]interface{}{
		"salt":          order.Salt.Int64(),
		"maker":         order.Maker.Hex(),
		"signer":        order.Signer.Hex(),
		"taker":         order.Taker.Hex(),
		"tokenId":       order.TokenId.String(),
		"makerAmount":   order.MakerAmount.String(),
		"takerAmount":   order.TakerAmount.String(),
		"expiration":    order.Expiration.String(),
		"nonce":         order.Nonce.String(),
		"feeRateBps":    order.FeeRateBps.String(),
		"side":          side,
		"signatureType": order.SignatureType.Int64(),
		"signature":     "0x" + fmt.Sprintf("%x", order.Signature),
	}

	return map[string]interface{}{
		"order":     orderData,
		"owner":     e.creds.ApiKey,
		"orderType": string(orderType),
	}
}
