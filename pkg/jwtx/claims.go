package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime used when no explicit TTL is configured.
const DefaultTokenTTL = time.Hour

// Claims is the exact claim set carried by an access token:
//
//	{"iat": int, "exp": int, "uuid": string, "id": int, "roles": [string, ...]}
//
// Every field is required. Decoding rejects tokens missing any of them, so
// downstream code never has to re-check the shape (see Codec.Verify).
type Claims struct {
	// IssuedAt is the whole-second Unix timestamp the token was minted at.
	IssuedAt int64 `json:"iat"`

	// ExpiresAt is IssuedAt plus the TTL. Expiry is inclusive: the token is
	// expired once the current time reaches this value.
	ExpiresAt int64 `json:"exp"`

	// UUID is the stable external identifier of the user, used to re-resolve
	// the principal from storage on every request.
	UUID string `json:"uuid"`

	// UserID is the database row id of the user at issuance, informational only.
	UserID int64 `json:"id"`

	// Roles is a snapshot of the user's roles at issuance. Authorization
	// decisions always re-read the store; this claim is advisory.
	Roles []string `json:"roles"`
}

// NewClaims builds the claim set for a user. Roles are copied so later
// mutation of the caller's slice does not leak into the token.
func NewClaims(uuid string, userID int64, roles []string, ttl time.Duration, now time.Time) Claims {
	rs := make([]string, len(roles))
	copy(rs, roles)

	return Claims{
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
		UUID:      uuid,
		UserID:    userID,
		Roles:     rs,
	}
}

// validate enforces the required-field contract on both sign and verify.
func (c Claims) validate() error {
	if c.UUID == "" || c.UserID <= 0 || c.IssuedAt <= 0 || c.ExpiresAt <= 0 || len(c.Roles) == 0 {
		return ErrInvalidClaim
	}
	return nil
}

/* jwt.Claims implementation so the library validator can check expiry. */

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

func (c Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	if c.IssuedAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

func (c Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c Claims) GetIssuer() (string, error)              { return "", nil }
func (c Claims) GetSubject() (string, error)             { return c.UUID, nil }
func (c Claims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }
