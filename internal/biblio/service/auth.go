package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/atelierlivre/biblio/internal/biblio/domain"
	"github.com/atelierlivre/biblio/internal/biblio/store"
	"github.com/atelierlivre/biblio/pkg/cryptox"
	"github.com/atelierlivre/biblio/pkg/jwtx"
	"github.com/atelierlivre/biblio/pkg/slogx"
)

var (
	ErrUserNotFound = errors.New("user_not_found")
	ErrBadPassword  = errors.New("bad_password")
	ErrUUIDTaken    = errors.New("uuid_taken")
	ErrValidation   = errors.New("validation_failed")
)

// AuthService handles registration and credential exchange. Tokens are
// stateless HS256 JWTs; the only write on login is recording the issued
// token on the user row.
type AuthService struct {
	Store    store.Store
	Codec    *jwtx.Codec
	TokenTTL time.Duration
}

// TokenResult is what a successful login or registration hands back.
type TokenResult struct {
	User      domain.User
	Token     string
	ExpiresIn int64
}

func (s *AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return jwtx.DefaultTokenTTL
}

func (s *AuthService) issueToken(u domain.User, now time.Time) (string, int64, error) {
	claims := jwtx.NewClaims(u.UUID, u.ID, u.Roles, s.ttl(), now)
	token, err := s.Codec.Sign(claims)
	if err != nil {
		return "", 0, err
	}
	return token, int64(s.ttl().Seconds()), nil
}

// Login verifies credentials and mints a fresh token. The issued token is
// persisted on the user row so the most recent login is always inspectable.
func (s *AuthService) Login(ctx context.Context, uuid, password string) (TokenResult, error) {
	l := slogx.FromContext(ctx)

	uuid = strings.TrimSpace(uuid)
	if uuid == "" || password == "" {
		return TokenResult{}, ErrValidation
	}

	user, err := s.Store.Users().GetUserByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenResult{}, ErrUserNotFound
		}
		return TokenResult{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			l.Info("login failed", slog.String("uuid", uuid))
			return TokenResult{}, ErrBadPassword
		}
		return TokenResult{}, err
	}

	token, expiresIn, err := s.issueToken(user, time.Now())
	if err != nil {
		return TokenResult{}, err
	}

	if err := s.Store.Users().UpdateLastToken(ctx, user.ID, token); err != nil {
		return TokenResult{}, err
	}

	l.Info("login succeeded", slog.String("uuid", uuid), slog.Int64("user_id", user.ID))

	return TokenResult{User: user, Token: token, ExpiresIn: expiresIn}, nil
}

// Register creates a new account. Roles are normalized so every account
// carries ROLE_USER; granting anything beyond that is the caller's decision
// to gate. The user row and its first token are written atomically.
func (s *AuthService) Register(ctx context.Context, uuid, password string, roles []string) (TokenResult, error) {
	l := slogx.FromContext(ctx)

	uuid = strings.TrimSpace(uuid)
	if uuid == "" || password == "" {
		return TokenResult{}, ErrValidation
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return TokenResult{}, err
	}

	user := domain.User{
		UUID:         uuid,
		PasswordHash: hash,
		Roles:        domain.NormalizeRoles(roles),
	}

	var result TokenResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Users().CreateUser(ctx, user)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUUIDTaken
			}
			return err
		}
		user.ID = id

		token, expiresIn, err := s.issueToken(user, time.Now())
		if err != nil {
			return err
		}

		if err := tx.Users().UpdateLastToken(ctx, id, token); err != nil {
			return err
		}

		result = TokenResult{User: user, Token: token, ExpiresIn: expiresIn}
		return nil
	})
	if err != nil {
		return TokenResult{}, err
	}

	l.Info("user registered", slog.String("uuid", uuid), slog.Int64("user_id", result.User.ID))

	return result, nil
}

// GetUserByUUID fetches a user for principal resolution.
func (s *AuthService) GetUserByUUID(ctx context.Context, uuid string) (domain.User, error) {
	return s.Store.Users().GetUserByUUID(ctx, uuid)
}
