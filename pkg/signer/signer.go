// Package signer wraps the wallet private key used for CLOB authentication
// and order signing.
package signer

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	clienterr "github.com/exhuman777/polymarket-go/pkg/errors"
)

// Signer holds a parsed private key, its derived address, and the chain it
// signs for.
type Signer struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainID    int
}

// New parses a hex-encoded private key (with or without 0x prefix). A key
// that does not decode is a validation error, reported before any network
// activity.
func New(privateKeyHex string, chainID int) (*Signer, error) {
	if privateKeyHex == "" {
		return nil, clienterr.NewValidationError("private key is required")
	}
	if chainID == 0 {
		return nil, clienterr.NewValidationError("chain id is required")
	}

	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")
	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, clienterr.NewValidationError("private key is not valid hex: %v", err)
	}

	return &Signer{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		chainID:    chainID,
	}, nil
}

// Address returns the checksummed signer address.
func (s *Signer) Address() string {
	return s.address.Hex()
}

// ChainID returns the chain the signer is bound to.
func (s *Signer) ChainID() int {
	return s.chainID
}

// PrivateKey exposes the key for the order builder.
func (s *Signer) PrivateKey() *ecdsa.PrivateKey {
	return s.privateKey
}

// Sign signs a 32-byte message hash and returns a 0x-prefixed hex signature
// with V in the 27/28 Ethereum convention.
func (s *Signer) Sign(messageHash []byte) (string, error) {
	if len(messageHash) != 32 {
		return "", clienterr.NewValidationError("invalid message hash length: expected 32, got %d", len(messageHash))
	}

	signature, err := crypto.Sign(messageHash, s.privateKey)
	if err != nil {
		return "", err
	}
	signature[64] += 27

	return "0x" + common.Bytes2Hex(signature), nil
}
