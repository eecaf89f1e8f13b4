package signing

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/exhuman777/polymarket-go/pkg/signer"
)

// ClobAuthDomain parameters for the key attestation message.
const (
	clobDomainName = "ClobAuthDomain"
	clobVersion    = "1"
	msgToSign      = "This message attests that I control the given wallet"
)

var (
	domainTypeHash   = crypto.Keccak256Hash([]byte("EIP712Domain(string name,string version,uint256 chainId)"))
	clobAuthTypeHash = crypto.Keccak256Hash([]byte("ClobAuth(address address,string timestamp,uint256 nonce,string message)"))
)

// SignClobAuthMessage signs the EIP-712 wallet attestation used for Level 1
// authentication headers.
func SignClobAuthMessage(s *signer.Signer, timestamp int64, nonce int) (string, error) {
	domainSeparator := domainSeparatorHash(big.NewInt(int64(s.ChainID())))
	messageHash := clobAuthHash(s.Address(), fmt.Sprintf("%d", timestamp), nonce)

	rawData := append([]byte("\x19\x01"), domainSeparator.Bytes()...)
	rawData = append(rawData, messageHash.Bytes()...)
	finalHash := crypto.Keccak256Hash(rawData)

	return s.Sign(finalHash.Bytes())
}

func domainSeparatorHash(chainID *big.Int) common.Hash {
	encoded := make([]byte, 0, 128)
	encoded = append(encoded, domainTypeHash.Bytes()...)
	encoded = append(encoded, crypto.Keccak256Hash([]byte(clobDomainName)).Bytes()...)
	encoded = append(encoded, crypto.Keccak256Hash([]byte(clobVersion)).Bytes()...)
	encoded = append(encoded, common.LeftPadBytes(chainID.Bytes(), 32)...)
	return crypto.Keccak256Hash(encoded)
}

func clobAuthHash(address, timestamp string, nonce int) common.Hash {
	encoded := make([]byte, 0, 160)
	encoded = append(encoded, clobAuthTypeHash.Bytes()...)
	encoded = append(encoded, common.LeftPadBytes(common.HexToAddress(address).Bytes(), 32)...)
	encoded = append(encoded, crypto.Keccak256Hash([]byte(timestamp)).Bytes()...)
	encoded = append(encoded, common.LeftPadBytes(big.NewInt(int64(nonce)).Bytes(), 32)...)
	encoded = append(encoded, crypto.Keccak256Hash([]byte(msgToSign)).Bytes()...)
	return crypto.Keccak256Hash(encoded)
}
