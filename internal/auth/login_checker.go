package auth

import (
	"context"
	"fmt"
	"time"
)

// LoginChecker resolves a bearer token into the id of a logged-in user.
type LoginChecker struct {
	tokens   *TokenIssuer
	sessions *SessionStore
	now      func() time.Time
}

func NewLoginChecker(tokens *TokenIssuer, sessions *SessionStore) *LoginChecker {
	return &LoginChecker{
		tokens:   tokens,
		sessions: sessions,
		now:      time.Now,
	}
}

func (lc *LoginChecker) UserID(ctx context.Context, token string) (int, error) {
	claims, err := lc.tokens.Parse(token)
	if err != nil {
		return 0, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return 0, err
	}

	active, err := lc.sessions.IsActive(ctx, claims.ID, lc.now())
	if err != nil {
		return 0, fmt.Errorf("check session: %w", err)
	}
	if !active {
		return 0, ErrSessionNotFound
	}

	return userID, nil
}
