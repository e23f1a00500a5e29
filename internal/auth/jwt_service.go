package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AccessTokenExpiry is the default duration for which access tokens are valid.
	AccessTokenExpiry = 15 * time.Minute
	// RefreshTokenExpiry is the default duration for which refresh tokens are valid.
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

// Token types carried in the "typ" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	errUnexpectedSigningMethod = errors.New("unexpected signing method")
	errInvalidToken            = errors.New("invalid token")
	errWrongTokenType          = errors.New("wrong token type")
)

// Claims represents JWT claims.
type Claims struct {
	UserID    uint   `json:"uid"`
	LoginID   string `json:"login_id"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTService creates a JWT service with the default token lifetimes.
func NewJWTService(secret string) *JWTService {
	return NewJWTServiceWithTTL(secret, AccessTokenExpiry, RefreshTokenExpiry)
}

// NewJWTServiceWithTTL creates a JWT service with explicit token lifetimes.
func NewJWTServiceWithTTL(secret string, accessTTL, refreshTTL time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// SigningKey returns the HMAC key for the echo-jwt middleware.
func (s *JWTService) SigningKey() []byte {
	return s.secret
}

// GenerateAccessToken generates a new access token for the user.
func (s *JWTService) GenerateAccessToken(userID uint, loginID string) (string, error) {
	return s.sign(userID, loginID, TokenTypeAccess, s.accessTTL)
}

// GenerateRefreshToken generates a new refresh token for the user.
func (s *JWTService) GenerateRefreshToken(userID uint, loginID string) (string, error) {
	return s.sign(userID, loginID, TokenTypeRefresh, s.refreshTTL)
}

func (s *JWTService) sign(userID uint, loginID, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID:    userID,
		LoginID:   loginID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a JWT token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

// ValidateRefreshToken validates tokenString and requires the refresh type.
func (s *JWTService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, errWrongTokenType
	}
	return claims, nil
}

// RemainingTTL is how long the token stays valid, zero when already expired.
func (s *JWTService) RemainingTTL(claims *Claims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	if ttl := claims.ExpiresAt.Sub(s.now()); ttl > 0 {
		return ttl
	}
	return 0
}
