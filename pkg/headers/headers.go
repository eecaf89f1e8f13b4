// Package headers builds the POLY_* authentication headers expected by the
// CLOB. Level 1 attests key ownership via EIP-712; Level 2 adds the HMAC
// request signature derived from the API credentials.
package headers

import (
	"fmt"
	"time"

	"github.com/exhuman777/polymarket-go/pkg/signer"
	"github.com/exhuman777/polymarket-go/pkg/signing"
	"github.com/exhuman777/polymarket-go/pkg/types"
)

const (
	PolyAddress    = "POLY_ADDRESS"
	PolySignature  = "POLY_SIGNATURE"
	PolyTimestamp  = "POLY_TIMESTAMP"
	PolyNonce      = "POLY_NONCE"
	PolyAPIKey     = "POLY_API_KEY"
	PolyPassphrase = "POLY_PASSPHRASE"
)

// CreateLevel1Headers signs the wallet attestation for endpoints that only
// require key ownership.
func CreateLevel1Headers(s *signer.Signer, nonce *int) (map[string]string, error) {
	timestamp := time.Now().Unix()

	n := 0
	if nonce != nil {
		n = *nonce
	}

	signature, err := signing.SignClobAuthMessage(s, timestamp, n)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		PolyAddress:   s.Address(),
		PolySignature: signature,
		PolyTimestamp: fmt.Sprintf("%d", timestamp),
		PolyNonce:     fmt.Sprintf("%d", n),
	}, nil
}

// CreateLevel2Headers signs a single request with the API credentials.
func CreateLevel2Headers(s *signer.Signer, creds *types.ApiCreds, args *types.RequestArgs) (map[string]string, error) {
	timestamp := time.Now().Unix()

	hmacSig, err := signing.BuildHMACSignature(
		creds.ApiSecret,
		timestamp,
		args.Method,
		args.RequestPath,
		args.Body,
	)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		PolyAddress:    s.Address(),
		PolySignature:  hmacSig,
		PolyTimestamp:  fmt.Sprintf("%d", timestamp),
		PolyAPIKey:     creds.ApiKey,
		PolyPassphrase: creds.ApiPassphrase,
	}, nil
}
