package auth

import (
	"context"
	"time"

	"recipehub/internal/cache"
)

const accessTokenKeyPrefix = "blacklist:access_token:"

// TokenStoreInterface defines the interface for revoked access token tracking.
type TokenStoreInterface interface {
	BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration)
	IsAccessTokenBlacklisted(ctx context.Context, tokenID string) bool
}

// TokenStore keeps revoked access token ids in Redis until they expire.
// Refresh tokens live on the user row, so an unavailable Redis only delays
// access token revocation until expiry.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// BlacklistAccessToken adds an access token to the blacklist until it expires.
func (s *TokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) {
	if tokenID == "" {
		return
	}
	s.cache.Set(ctx, accessTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsAccessTokenBlacklisted checks if an access token is blacklisted.
func (s *TokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) bool {
	return s.cache.Exists(ctx, accessTokenKeyPrefix+tokenID)
}
