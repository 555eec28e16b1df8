package adminkey

import "crypto/subtle"

// Guard holds the process-wide admin secret. A single shared key gates
// every mutating operation; there are no per-user credentials.
type Guard struct{ secret string }

func New(secret string) *Guard { return &Guard{secret: secret} }

// Authorize reports whether the supplied key matches the configured
// secret. The comparison is constant-time and an empty supplied key
// never authorizes.
func (g *Guard) Authorize(supplied string) bool {
	if supplied == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(g.secret)) == 1
}
