package repository

import (
	"context"
	"time"
)

// RevocationRepository tracks token IDs invalidated before their expiry.
// Entries only need to live as long as the token itself.
type RevocationRepository interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
