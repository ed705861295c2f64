package port

import "context"

// TokenStore holds issued bearer tokens. Tokens expire on their own after
// the store's TTL; Revoke removes one eagerly on logout.
type TokenStore interface {
	// Save associates a token with the authenticated user's id.
	Save(ctx context.Context, token string, userID int64) error

	// UserID resolves a token to the user it was issued for, returning
	// domain.ErrTokenNotFound for unknown or expired tokens.
	UserID(ctx context.Context, token string) (int64, error)

	Revoke(ctx context.Context, token string) error
}
