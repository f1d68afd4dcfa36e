package session

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TTL is the fixed lifetime the boundary gives freshly minted session
// cookies. Expiry is enforced client-side only; the server never stores
// session tokens.
const TTL = 7 * 24 * time.Hour

// EnsureToken returns the caller's token unchanged when it is non-empty and
// mints a fresh one otherwise. Tokens are opaque: any non-empty string is
// accepted as-is, without a lookup anywhere. The boolean tells the boundary
// whether a cookie needs to be (re)issued.
func EnsureToken(existing string) (string, bool) {
	token := strings.TrimSpace(existing)
	if token != "" {
		return token, false
	}
	return uuid.NewString(), true
}
