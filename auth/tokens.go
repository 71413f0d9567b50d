package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/repository"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

var (
	ErrInvalidToken   = errors.New("token is invalid or expired")
	ErrWrongTokenType = errors.New("token has wrong type")
	ErrTokenRevoked   = errors.New("token is blacklisted")
	ErrUserInactive   = errors.New("user account is disabled or no longer exists")
)

// Claims are the JWT claims carried by both access and refresh tokens.
type Claims struct {
	UserID    uint      `json:"user_id"`
	Role      string    `json:"role"`
	Username  string    `json:"username"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// BuildClaims produces the fixed claim set for a user: the custom role and
// username claims plus subject, jti, iat and exp.
func BuildClaims(u *models.User, typ TokenType, ttl time.Duration, now time.Time) Claims {
	return Claims{
		UserID:    u.ID,
		Role:      u.Role,
		Username:  u.Username,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	blacklist  Blacklist
	now        func() time.Time
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, blacklist Blacklist) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		blacklist:  blacklist,
		now:        time.Now,
	}
}

func (s *TokenService) sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}
	return signed, nil
}

// IssuePair signs a fresh access/refresh pair for u.
func (s *TokenService) IssuePair(u *models.User) (TokenPair, error) {
	now := s.now()
	access, err := s.sign(BuildClaims(u, AccessToken, s.accessTTL, now))
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(BuildClaims(u, RefreshToken, s.refreshTTL, now))
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Parse verifies the signature, expiry and token type.
func (s *TokenService) Parse(tokenString string, want TokenType) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != want {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// Refresh exchanges a non-blacklisted refresh token for a new access token.
// The user is reloaded so the new token carries the current role and
// username, and disabled or deleted users are refused.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string, users repository.UserRepository) (string, error) {
	claims, err := s.Parse(refreshToken, RefreshToken)
	if err != nil {
		return "", err
	}
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("failed to check blacklist: %w", err)
	}
	if revoked {
		return "", ErrTokenRevoked
	}

	user, err := users.GetByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrUserInactive
	}
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return "", ErrUserInactive
	}
	return s.sign(BuildClaims(user, AccessToken, s.accessTTL, s.now()))
}

// Revoke blacklists a refresh token until it would have expired anyway.
func (s *TokenService) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := s.Parse(refreshToken, RefreshToken)
	if err != nil {
		return err
	}
	return s.blacklist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}
