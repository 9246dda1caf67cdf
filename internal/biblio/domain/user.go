package domain

import (
	"slices"
	"time"
)

// Role tags. There is no hierarchy between them: an admin is granted both
// tags explicitly, and every user carries RoleUser.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User is a registered account. UUID is the login identifier chosen at
// registration, distinct from the numeric row ID.
type User struct {
	ID           int64
	UUID         string
	PasswordHash string
	Roles        []string
	LastToken    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports exact membership of the role tag.
func (u User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// NormalizeRoles deduplicates the requested roles and guarantees RoleUser is
// always present, preserving first-seen order after the leading RoleUser.
func NormalizeRoles(roles []string) []string {
	out := []string{RoleUser}
	seen := map[string]bool{RoleUser: true}

	for _, r := range roles {
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}

	return out
}
