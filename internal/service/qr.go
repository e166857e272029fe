package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// newQRHash derives the admission credential minted with a ticket: a sha256
// digest over the token, event and a mint-time nonce. The nonce mixes
// wall-clock nanos with random bytes so retried mints of logically similar
// tickets and same-instant mints of different tokens never collide.
func newQRHash(tokenID, eventID string, at time.Time) string {
	nonce := make([]byte, 8)
	_, _ = rand.Read(nonce)
	payload := fmt.Sprintf("%s|%s|%d|%s", tokenID, eventID, at.UnixNano(), hex.EncodeToString(nonce))
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
