package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity embedded in a credential. ExpiresAt is nil when the
// token carries no exp claim.
type Claims struct {
	Username  string
	ExpiresAt *time.Time
}

// Expired reports whether the claims carry an expiry at or before now.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

var parser = jwt.NewParser()

// Decode reads the claims of c. It never touches the network and does not
// check the signature.
func Decode(c Credential) (Claims, error) {
	raw := strings.TrimSpace(c.RawToken)
	if raw == "" {
		return Claims{}, ErrMalformedToken
	}

	mc := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, mc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	username, _ := mc["username"].(string)
	if username == "" {
		return Claims{}, ErrMissingUsername
	}

	claims := Claims{Username: username}

	exp, err := mc.GetExpirationTime()
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if exp != nil {
		t := exp.Time
		claims.ExpiresAt = &t
	}
	return claims, nil
}
