package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"admin-system/pkg/config"
	apperrors "admin-system/pkg/errors"
)

// TokenStore is the slice of the key-value store the token service needs.
// Get returns an empty string (and no error) for an absent key.
type TokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// TokenPair is the result of a rotation: a fresh access/refresh pair.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_token_expire_time"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_token_expire_time"`
}

// TokenService issues and validates signed bearer tokens. A token is live only
// while its scoped key ("{prefix}:{sub}:{token}") is present in the store;
// signature validity alone never authenticates a request.
type TokenService interface {
	IssueAccessToken(ctx context.Context, sub string, multiLogin bool) (string, time.Time, error)
	IssueRefreshToken(ctx context.Context, sub string, multiLogin bool) (string, time.Time, error)
	RotateTokens(ctx context.Context, sub, accessToken, refreshToken string, multiLogin bool) (*TokenPair, error)
	Decode(token string) (string, error)
	Authenticate(ctx context.Context, token string) (string, error)
}

type tokenService struct {
	secret        []byte
	method        jwt.SigningMethod
	accessTTL     time.Duration
	refreshTTL    time.Duration
	accessPrefix  string
	refreshPrefix string
	store         TokenStore
	logger        *zap.Logger
}

func NewTokenService(cfg config.TokenConfig, store TokenStore, logger *zap.Logger) (TokenService, error) {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported token algorithm %q", cfg.Algorithm)
	}

	return &tokenService{
		secret:        []byte(cfg.Secret),
		method:        method,
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		accessPrefix:  cfg.AccessPrefix,
		refreshPrefix: cfg.RefreshPrefix,
		store:         store,
		logger:        logger,
	}, nil
}

func (s *tokenService) sign(sub string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperrors.WrapTokenError("Invalid token", err)
	}
	return token, expiresAt, nil
}

func (s *tokenService) issue(ctx context.Context, prefix, sub string, ttl time.Duration, multiLogin bool) (string, time.Time, error) {
	token, expiresAt, err := s.sign(sub, ttl)
	if err != nil {
		return "", time.Time{}, err
	}

	// Single-session policy: drop every live token of this subject first.
	// The prefix scan and the delete are not atomic; a concurrent login may
	// slip through, which is accepted as best-effort revocation.
	if !multiLogin {
		if err := s.store.DeletePrefix(ctx, fmt.Sprintf("%s:%s", prefix, sub)); err != nil {
			return "", time.Time{}, err
		}
	}

	key := fmt.Sprintf("%s:%s:%s", prefix, sub, token)
	if err := s.store.Set(ctx, key, token, ttl); err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *tokenService) IssueAccessToken(ctx context.Context, sub string, multiLogin bool) (string, time.Time, error) {
	return s.issue(ctx, s.accessPrefix, sub, s.accessTTL, multiLogin)
}

func (s *tokenService) IssueRefreshToken(ctx context.Context, sub string, multiLogin bool) (string, time.Time, error) {
	return s.issue(ctx, s.refreshPrefix, sub, s.refreshTTL, multiLogin)
}

// RotateTokens exchanges a live refresh token for a new access/refresh pair.
// A refresh token that is absent from the store, or does not match the stored
// value, was already rotated or revoked and must never succeed again.
func (s *tokenService) RotateTokens(ctx context.Context, sub, accessToken, refreshToken string, multiLogin bool) (*TokenPair, error) {
	refreshKey := fmt.Sprintf("%s:%s:%s", s.refreshPrefix, sub, refreshToken)
	stored, err := s.store.Get(ctx, refreshKey)
	if err != nil || stored == "" || stored != refreshToken {
		return nil, apperrors.NewTokenError("Refresh Token has expired")
	}

	newAccess, accessExpiresAt, err := s.IssueAccessToken(ctx, sub, multiLogin)
	if err != nil {
		return nil, err
	}
	newRefresh, refreshExpiresAt, err := s.IssueRefreshToken(ctx, sub, multiLogin)
	if err != nil {
		return nil, err
	}

	accessKey := fmt.Sprintf("%s:%s:%s", s.accessPrefix, sub, accessToken)
	if err := s.store.Del(ctx, accessKey, refreshKey); err != nil {
		s.logger.Warn("failed to delete rotated token keys", zap.Error(err))
	}

	return &TokenPair{
		AccessToken:      newAccess,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     newRefresh,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// Decode verifies signature and expiry and returns the subject. Failures
// collapse to a generic invalid/expired distinction so callers cannot tell
// a bad signature from a parse error.
func (s *tokenService) Decode(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.NewTokenError("Token has expired")
		}
		return "", apperrors.NewTokenError("Invalid token")
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return "", apperrors.NewTokenError("Invalid token")
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return "", apperrors.NewTokenError("Invalid token")
	}
	return claims.Subject, nil
}

// Authenticate adds the revocation check on top of Decode: the scoped key must
// still be present in the store. A deleted key invalidates an otherwise valid
// token immediately.
func (s *tokenService) Authenticate(ctx context.Context, token string) (string, error) {
	sub, err := s.Decode(token)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s:%s:%s", s.accessPrefix, sub, token)
	stored, err := s.store.Get(ctx, key)
	if err != nil {
		return "", apperrors.WrapTokenError("Invalid token", err)
	}
	if stored == "" {
		return "", apperrors.NewTokenError("Token has expired")
	}
	return sub, nil
}
