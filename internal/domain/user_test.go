package domain

import (
	"testing"

	"github.com/quotelane/backend/internal/model"
	"github.com/quotelane/backend/internal/repository"
	"github.com/quotelane/backend/pkg/testutil"
	"github.com/quotelane/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestUserDomain() *userDomain {
	return NewUserDomain(
		repository.NewUserRepository(),
		repository.NewFollowerRepository(),
	)
}

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestUserDomain()

	resp, err := domain.GetMe(ctx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Username, resp.User.Username)
	require.Equal(t, testutil.User1.Email, resp.User.Email)
	require.Equal(t, int64(1), resp.User.FollowersCount)
	require.Equal(t, int64(0), resp.User.FollowingCount)
}

func Test_userDomain_GetUser(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestUserDomain()

	// The email is never exposed on someone else's profile.
	ctx = xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	resp, err := domain.GetUser(ctx, &model.GetUserRequest{Username: testutil.User1.Username})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Username, resp.User.Username)
	require.Empty(t, resp.User.Email)
	require.Equal(t, int64(1), resp.User.FollowersCount)
	require.True(t, resp.User.IsFollowing)

	resp, err = domain.GetUser(ctx, &model.GetUserRequest{Username: testutil.User2.Username})
	require.NoError(t, err)
	require.False(t, resp.User.IsFollowing)

	_, err = domain.GetUser(ctx, &model.GetUserRequest{Username: "nobody"})
	require.Error(t, err)
	require.Equal(t, "Not found user", err.Error())
}
