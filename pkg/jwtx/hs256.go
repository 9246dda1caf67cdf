package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed        = errors.New("jwtx: malformed token")
	ErrInvalidSignature = errors.New("jwtx: invalid signature")
	ErrExpired          = errors.New("jwtx: token expired")
	ErrInvalidClaim     = errors.New("jwtx: invalid claims")
)

// Verifier validates a compact token and gives back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Codec signs and verifies HS256 bearer tokens with a single shared secret.
// The secret is injected at construction and never changes; Sign and Verify
// are pure and safe for concurrent use.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// Option customises a Codec at construction.
type Option func(*Codec)

// WithClock overrides the clock used for expiry checks. Tests use this to pin
// "now" at exact boundaries.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// NewCodec builds an HS256 codec around the shared signing secret.
func NewCodec(secret []byte, opts ...Option) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}

	c := &Codec{secret: secret, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Sign produces a signed compact JWT for the given claims. Two calls for the
// same user at different seconds yield different tokens (different iat).
func (c *Codec) Sign(claims Claims) (string, error) {
	if err := claims.validate(); err != nil {
		return "", err
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a compact token against the configured secret.
//
// Failure taxonomy:
//   - ErrMalformed: not three structurally valid dot-separated segments
//   - ErrInvalidSignature: signature does not verify under the secret
//   - ErrExpired: now >= exp (the boundary second counts as expired)
//   - ErrInvalidClaim: a required claim is absent or zero-valued
func (c *Codec) Verify(token string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return Claims{}, ErrMalformed
	default:
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := claims.validate(); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
