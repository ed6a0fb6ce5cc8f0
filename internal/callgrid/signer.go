package callgrid

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Signer computes the per-request signature the Callgrid API expects.
//
// The canonical string is the HTTP method, the URL path, the timestamp, and
// the JSON payload that will actually be transmitted, joined by single
// newlines in that order. When a request carries neither a body nor query
// parameters the payload segment is empty.
type Signer struct {
	secret []byte
}

// NewSigner returns a Signer keyed with the account's access secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the standard-base64 HMAC-SHA256 digest of the canonical
// request string. Identical inputs always produce an identical signature.
func (s *Signer) Sign(method, path, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(method))
	mac.Write([]byte{'\n'})
	mac.Write([]byte(path))
	mac.Write([]byte{'\n'})
	mac.Write([]byte(timestamp))
	mac.Write([]byte{'\n'})
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
