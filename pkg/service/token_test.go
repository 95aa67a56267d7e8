package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"admin-system/pkg/config"
	apperrors "admin-system/pkg/errors"
)

type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (s *memStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *memStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = fmt.Sprint(value)
	return nil
}

func (s *memStore) Del(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}

func (s *memStore) DeletePrefix(ctx context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			delete(s.data, key)
		}
	}
	return nil
}

func (s *memStore) keys(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			out = append(out, key)
		}
	}
	return out
}

func testTokenConfig() config.TokenConfig {
	return config.TokenConfig{
		Secret:        "test-secret-key",
		Algorithm:     "HS256",
		AccessTTL:     time.Hour,
		RefreshTTL:    24 * time.Hour,
		AccessPrefix:  "test:token",
		RefreshPrefix: "test:refresh_token",
	}
}

func newTestService(t *testing.T, store TokenStore) TokenService {
	t.Helper()
	svc, err := NewTokenService(testTokenConfig(), store, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestNewTokenServiceRejectsNonHMACAlgorithm(t *testing.T) {
	cfg := testTokenConfig()
	cfg.Algorithm = "RS256"
	_, err := NewTokenService(cfg, newMemStore(), zap.NewNop())
	assert.Error(t, err)

	cfg.Algorithm = "nonsense"
	_, err = NewTokenService(cfg, newMemStore(), zap.NewNop())
	assert.Error(t, err)
}

func TestIssueAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(t, store)

	token, expiresAt, err := svc.IssueAccessToken(ctx, "7", true)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	sub, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "7", sub)

	// The scoped key encodes prefix, subject and the token itself.
	assert.Len(t, store.keys("test:token:7:"), 1)
}

func TestIssuedTokensAreDistinct(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemStore())

	first, _, err := svc.IssueAccessToken(ctx, "7", true)
	require.NoError(t, err)
	second, _, err := svc.IssueAccessToken(ctx, "7", true)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSingleSessionEvictsPriorTokens(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(t, store)

	first, _, err := svc.IssueAccessToken(ctx, "7", false)
	require.NoError(t, err)
	second, _, err := svc.IssueAccessToken(ctx, "7", false)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, first)
	var tokenErr *apperrors.TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "Token has expired", tokenErr.Msg)

	sub, err := svc.Authenticate(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "7", sub)
	assert.Len(t, store.keys("test:token:7:"), 1)
}

func TestMultiLoginKeepsConcurrentSessions(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(t, store)

	first, _, err := svc.IssueAccessToken(ctx, "7", true)
	require.NoError(t, err)
	second, _, err := svc.IssueAccessToken(ctx, "7", true)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, first)
	assert.NoError(t, err)
	_, err = svc.Authenticate(ctx, second)
	assert.NoError(t, err)
}

func TestAuthenticateAfterRevocation(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(t, store)

	token, _, err := svc.IssueAccessToken(ctx, "7", true)
	require.NoError(t, err)

	require.NoError(t, store.DeletePrefix(ctx, "test:token:7"))

	_, err = svc.Authenticate(ctx, token)
	var tokenErr *apperrors.TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "Token has expired", tokenErr.Msg)
}

func TestRotateTokens(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestService(t, store)

	access, _, err := svc.IssueAccessToken(ctx, "7", true)
	require.NoError(t, err)
	refresh, _, err := svc.IssueRefreshToken(ctx, "7", true)
	require.NoError(t, err)

	pair, err := svc.RotateTokens(ctx, "7", access, refresh, true)
	require.NoError(t, err)
	assert.NotEqual(t, access, pair.AccessToken)
	assert.NotEqual(t, refresh, pair.RefreshToken)

	// The old pair is dead: access no longer authenticates, and the used
	// refresh token can never rotate again.
	_, err = svc.Authenticate(ctx, access)
	assert.Error(t, err)
	_, err = svc.RotateTokens(ctx, "7", pair.AccessToken, refresh, true)
	var tokenErr *apperrors.TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "Refresh Token has expired", tokenErr.Msg)

	sub, err := svc.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "7", sub)
}

func TestRotateWithUnknownRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemStore())

	access, _, err := svc.IssueAccessToken(ctx, "7", true)
	require.NoError(t, err)
	// Signed by someone with our key but never stored.
	other := newTestService(t, newMemStore())
	foreign, _, err := other.IssueRefreshToken(ctx, "7", true)
	require.NoError(t, err)

	_, err = svc.RotateTokens(ctx, "7", access, foreign, true)
	var tokenErr *apperrors.TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "Refresh Token has expired", tokenErr.Msg)
}

func TestDecode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemStore())

	token, _, err := svc.IssueAccessToken(ctx, "42", true)
	require.NoError(t, err)

	sub, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "42", sub)

	_, err = svc.Decode("not-a-token")
	var tokenErr *apperrors.TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "Invalid token", tokenErr.Msg)
}

func TestDecodeExpiredToken(t *testing.T) {
	ctx := context.Background()
	cfg := testTokenConfig()
	cfg.AccessTTL = -time.Minute
	svc, err := NewTokenService(cfg, newMemStore(), zap.NewNop())
	require.NoError(t, err)

	token, _, err := svc.IssueAccessToken(ctx, "7", true)
	require.NoError(t, err)

	_, err = svc.Decode(token)
	var tokenErr *apperrors.TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "Token has expired", tokenErr.Msg)
}

func TestDecodeRejectsWrongKey(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemStore())

	otherCfg := testTokenConfig()
	otherCfg.Secret = "a-different-secret"
	other, err := NewTokenService(otherCfg, newMemStore(), zap.NewNop())
	require.NoError(t, err)

	token, _, err := other.IssueAccessToken(ctx, "7", true)
	require.NoError(t, err)

	_, err = svc.Decode(token)
	var tokenErr *apperrors.TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "Invalid token", tokenErr.Msg)
}
