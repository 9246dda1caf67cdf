package jwtx_test

import (
	"testing"
	"time"

	"github.com/atelierlivre/biblio/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// signRaw signs an arbitrary claim struct directly with the library,
// bypassing Codec.Sign's validation. Used to craft tokens with holes.
func signRaw(t *testing.T, claims jwtx.Claims, secret []byte) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestNewClaims(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	claims := jwtx.NewClaims("alice", 7, []string{"ROLE_USER"}, 3600*time.Second, now)

	require.Equal(t, int64(1000), claims.IssuedAt)
	require.Equal(t, int64(4600), claims.ExpiresAt)
	require.Equal(t, "alice", claims.UUID)
	require.Equal(t, int64(7), claims.UserID)
	require.Equal(t, []string{"ROLE_USER"}, claims.Roles)
}

func TestNewClaimsCopiesRoles(t *testing.T) {
	t.Parallel()

	roles := []string{"ROLE_USER", "ROLE_ADMIN"}
	claims := jwtx.NewClaims("alice", 1, roles, time.Hour, time.Now())

	roles[1] = "ROLE_MUTATED"
	require.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, claims.Roles)
}

func TestClaimsSubjectIsUUID(t *testing.T) {
	t.Parallel()

	claims := jwtx.NewClaims("alice", 1, []string{"ROLE_USER"}, time.Hour, time.Now())
	sub, err := claims.GetSubject()
	require.NoError(t, err)
	require.Equal(t, "alice", sub)
}
