package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"admin-system/internal/dto"
	"admin-system/internal/entities"
	"admin-system/pkg/config"
	apperrors "admin-system/pkg/errors"
	"admin-system/pkg/service"
	"admin-system/pkg/utils"
)

type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.data[key] = key
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeCache) DeletePrefix(ctx context.Context, prefix string) error {
	for key := range f.data {
		if strings.HasPrefix(key, prefix) {
			delete(f.data, key)
		}
	}
	return nil
}

// stubTokenService returns canned tokens and records nothing.
type stubTokenService struct{}

func (stubTokenService) IssueAccessToken(ctx context.Context, sub string, multiLogin bool) (string, time.Time, error) {
	return "access-" + sub, time.Now().Add(time.Hour), nil
}

func (stubTokenService) IssueRefreshToken(ctx context.Context, sub string, multiLogin bool) (string, time.Time, error) {
	return "refresh-" + sub, time.Now().Add(24 * time.Hour), nil
}

func (stubTokenService) RotateTokens(ctx context.Context, sub, accessToken, refreshToken string, multiLogin bool) (*service.TokenPair, error) {
	if refreshToken != "refresh-"+sub {
		return nil, apperrors.NewTokenError("Refresh Token has expired")
	}
	return &service.TokenPair{
		AccessToken:  "access-" + sub + "-rotated",
		RefreshToken: "refresh-" + sub + "-rotated",
	}, nil
}

func (stubTokenService) Decode(token string) (string, error) {
	if !strings.HasPrefix(token, "refresh-") && !strings.HasPrefix(token, "access-") {
		return "", apperrors.NewTokenError("Invalid token")
	}
	return strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(token, "refresh-"), "access-"), "-rotated"), nil
}

func (stubTokenService) Authenticate(ctx context.Context, token string) (string, error) {
	return stubTokenService{}.Decode(token)
}

func authTestConfig() config.TokenConfig {
	return config.TokenConfig{
		AccessPrefix:  "test:token",
		RefreshPrefix: "test:refresh_token",
		MultiLogin:    false,
	}
}

func newAuthTestService(t *testing.T, users map[uint64]*entities.User, cache *fakeCache) AuthServiceInterface {
	t.Helper()
	return NewAuthService(&fakeUserRepo{users: users}, cache, stubTokenService{}, authTestConfig(), zap.NewNop())
}

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := utils.HashPassword(plain)
	require.NoError(t, err)
	return hashed
}

func TestLoginSuccess(t *testing.T) {
	users := map[uint64]*entities.User{
		7: {ID: 7, Username: "alice", Password: hashedPassword(t, "s3cretpass"), Status: entities.StatusEnabled},
	}
	svc := newAuthTestService(t, users, newFakeCache())

	res, err := svc.Login(context.Background(), dto.LoginDTO{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, "access-7", res.AccessToken)
	assert.Equal(t, "refresh-7", res.RefreshToken)
	assert.Equal(t, "alice", res.User.Username)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthTestService(t, map[uint64]*entities.User{}, newFakeCache())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "ghost", Password: "whatever1"})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Incorrect username or password", httpErr.Message)
}

// Wrong password and unknown user yield the same message; the response must
// not reveal which part was wrong.
func TestLoginWrongPassword(t *testing.T) {
	users := map[uint64]*entities.User{
		7: {ID: 7, Username: "alice", Password: hashedPassword(t, "s3cretpass"), Status: entities.StatusEnabled},
	}
	svc := newAuthTestService(t, users, newFakeCache())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "alice", Password: "wrongpass"})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Incorrect username or password", httpErr.Message)
}

func TestLoginDisabledUser(t *testing.T) {
	users := map[uint64]*entities.User{
		7: {ID: 7, Username: "alice", Password: hashedPassword(t, "s3cretpass"), Status: entities.StatusDisabled},
	}
	svc := newAuthTestService(t, users, newFakeCache())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "alice", Password: "s3cretpass"})
	var authzErr *apperrors.AuthorizationError
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, "User has been locked, please contact the system administrator", authzErr.Msg)
}

func TestLogoutRevokesTokens(t *testing.T) {
	cache := newFakeCache()
	cache.data["test:token:7:access-7"] = "access-7"
	cache.data["test:refresh_token:7:refresh-7"] = "refresh-7"
	svc := newAuthTestService(t, map[uint64]*entities.User{}, cache)

	require.NoError(t, svc.Logout(context.Background(), "7", "access-7"))

	assert.Empty(t, cache.data)
}

func TestRefreshTokens(t *testing.T) {
	svc := newAuthTestService(t, map[uint64]*entities.User{}, newFakeCache())

	res, err := svc.RefreshTokens(context.Background(), "access-7", "refresh-7")
	require.NoError(t, err)
	assert.Equal(t, "access-7-rotated", res.AccessToken)
	assert.Equal(t, "refresh-7-rotated", res.RefreshToken)
}

func TestRefreshTokensRejectsGarbage(t *testing.T) {
	svc := newAuthTestService(t, map[uint64]*entities.User{}, newFakeCache())

	_, err := svc.RefreshTokens(context.Background(), "access-7", "garbage")
	var tokenErr *apperrors.TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "Invalid token", tokenErr.Msg)
}
