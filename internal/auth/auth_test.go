package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	access, err := svc.GenerateAccessToken(1, "123syihyun123")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(1, "123syihyun123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "123syihyun123", claims.LoginID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)

	refreshClaims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
	assert.NotEqual(t, claims.ID, refreshClaims.ID)
}

func TestJWTService_ValidateRefreshTokenRejectsAccess(t *testing.T) {
	svc := NewJWTService("test-secret")
	access, err := svc.GenerateAccessToken(1, "123syihyun123")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, errWrongTokenType)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTServiceWithTTL("test-secret", time.Minute, time.Hour)
	other := NewJWTService("other-secret")

	foreign, err := other.GenerateAccessToken(1, "123syihyun123")
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err)

	svc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	expired, err := svc.GenerateAccessToken(1, "123syihyun123")
	require.NoError(t, err)
	svc.now = time.Now
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTService_RemainingTTL(t *testing.T) {
	svc := NewJWTServiceWithTTL("test-secret", 10*time.Minute, time.Hour)
	token, err := svc.GenerateAccessToken(1, "123syihyun123")
	require.NoError(t, err)
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	ttl := svc.RemainingTTL(claims)
	assert.Greater(t, ttl, 9*time.Minute)
	assert.LessOrEqual(t, ttl, 10*time.Minute)
	assert.Zero(t, svc.RemainingTTL(nil))
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("Qkrtlgus11!")
	require.NoError(t, err)

	assert.NotEqual(t, "Qkrtlgus11!", hash)
	assert.True(t, h.Matches("Qkrtlgus11!", hash))
	assert.False(t, h.Matches("Qqkrtlgus11!", hash))
	assert.False(t, h.Matches("Qkrtlgus11!", "not-a-hash"))
}

func TestTokenStore_NoRedis(t *testing.T) {
	store := NewTokenStore(nil)
	ctx := context.Background()

	store.BlacklistAccessToken(ctx, "jti", time.Minute)
	assert.False(t, store.IsAccessTokenBlacklisted(ctx, "jti"))
}
