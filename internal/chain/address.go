package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tokengate/ticketing-service/internal/domain"
)

// NormalizeAddress validates a hex wallet address and returns its canonical
// lower-case form. Every wallet stored or compared by the engine goes
// through here.
func NormalizeAddress(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if !common.IsHexAddress(trimmed) {
		return "", domain.ErrInvalidWallet
	}
	return strings.ToLower(common.HexToAddress(trimmed).Hex()), nil
}

// ValidTxHash reports whether the string looks like a 32-byte hex
// transaction hash.
func ValidTxHash(hash string) bool {
	trimmed := strings.TrimSpace(hash)
	if len(trimmed) != 2+2*common.HashLength || !strings.HasPrefix(trimmed, "0x") {
		return false
	}
	for _, r := range trimmed[2:] {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
