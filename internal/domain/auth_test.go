package domain

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quotelane/backend/internal/common"
	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/internal/model"
	"github.com/quotelane/backend/internal/repository"
	"github.com/quotelane/backend/pkg/crypto"
	"github.com/quotelane/backend/pkg/testutil"
	"github.com/quotelane/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestAuthDomain(redisClient *testutil.MockRedisClient) *authDomain {
	if redisClient == nil {
		redisClient = &testutil.MockRedisClient{}
	}

	return NewAuthDomain(
		repository.NewUserRepository(),
		repository.NewRefreshTokenRepository(),
		redisClient,
	)
}

func Test_authDomain_Register(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestAuthDomain(nil)

	resp, err := domain.Register(ctx, &model.RegisterRequest{
		Username: "dave",
		Name:     "Dave Davis",
		Email:    "dave@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	require.Equal(t, "dave", resp.User.Username)
	require.Equal(t, "dave@example.com", resp.User.Email)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	accessToken, err := xcontext.TokenEngine(ctx).Verify(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, accessToken.ID)
	require.Equal(t, "dave", accessToken.Username)

	// The stored password must never be the plaintext.
	user, err := repository.NewUserRepository().GetByUsername(ctx, "dave")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2hunter2", user.Password)
	require.True(t, crypto.ComparePassword(user.Password, "hunter2hunter2"))
}

func Test_authDomain_Register_AlreadyExists(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestAuthDomain(nil)

	_, err := domain.Register(ctx, &model.RegisterRequest{
		Username: testutil.User1.Username,
		Email:    "other@example.com",
		Password: "hunter2hunter2",
	})
	require.Error(t, err)
	require.Equal(t, "User already exists", err.Error())

	_, err = domain.Register(ctx, &model.RegisterRequest{
		Username: "other",
		Email:    testutil.User1.Email,
		Password: "hunter2hunter2",
	})
	require.Error(t, err)
	require.Equal(t, "User already exists", err.Error())
}

func Test_authDomain_Login(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestAuthDomain(nil)

	resp, err := domain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User1.Email,
		Password: testutil.PlainPassword,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Username, resp.User.Username)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    testutil.User1.Email,
		Password: "wrong password",
	})
	require.Error(t, err)
	require.Equal(t, "Invalid email or password", err.Error())

	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: testutil.PlainPassword,
	})
	require.Error(t, err)
	require.Equal(t, "Invalid email or password", err.Error())
}

func Test_authDomain_Refresh(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestAuthDomain(nil)

	refreshTokenObj := model.RefreshToken{Family: "foo", Counter: 0}
	err := domain.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     testutil.User1.ID,
		Family:     crypto.SHA256([]byte(refreshTokenObj.Family)),
		Counter:    0,
		Expiration: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)

	refreshToken, err := xcontext.RefreshTokenEngine(ctx).Generate(testutil.User1.ID, refreshTokenObj)
	require.NoError(t, err)

	// Successfully for the first refresh.
	resp, err := domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	accessToken, err := xcontext.TokenEngine(ctx).Verify(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, accessToken.ID)

	// Detect stolen for the second refresh, the refresh token will be deleted
	// after this call.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.Error(t, err)
	require.Equal(t, "Your refresh token will be revoked because it is detected as stolen", err.Error())

	// Not found refresh token for the third refresh.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.Error(t, err)
	require.Equal(t, "Invalid refresh token", err.Error())
}

func Test_authDomain_Refresh_Expired(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestAuthDomain(nil)

	refreshTokenObj := model.RefreshToken{Family: "bar", Counter: 0}
	err := domain.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     testutil.User1.ID,
		Family:     crypto.SHA256([]byte(refreshTokenObj.Family)),
		Counter:    0,
		Expiration: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	refreshToken, err := xcontext.RefreshTokenEngine(ctx).Generate(testutil.User1.ID, refreshTokenObj)
	require.NoError(t, err)

	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.Error(t, err)
	require.Equal(t, "Your refresh token is expired", err.Error())
}

func Test_authDomain_Logout(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	var blacklistedKey string
	var blacklistedTTL time.Duration
	domain := newTestAuthDomain(&testutil.MockRedisClient{
		SetFunc: func(ctx context.Context, key, value string, ttl time.Duration) error {
			blacklistedKey = key
			blacklistedTTL = ttl
			return nil
		},
	})

	r := httptest.NewRequest("POST", "/logout", nil)
	r.Header.Set("Authorization", "Bearer some-access-token")
	ctx = xcontext.WithHTTPRequest(ctx, r)

	_, err := domain.Logout(ctx, &model.LogoutRequest{})
	require.NoError(t, err)
	require.Equal(t, common.RedisKeyTokenBlacklist("some-access-token"), blacklistedKey)
	require.Equal(t, xcontext.Configs(ctx).Auth.AccessToken.Expiration, blacklistedTTL)
}
