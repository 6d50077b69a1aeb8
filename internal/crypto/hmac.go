package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

type Signer struct {
	key []byte
}

func NewSigner(key []byte) *Signer {
	return &Signer{key: key}
}

// Sign returns the hex encoded HMAC-SHA256 of message.
func (s *Signer) Sign(message string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Verify(message, signature string) bool {
	return hmac.Equal([]byte(signature), []byte(s.Sign(message)))
}
