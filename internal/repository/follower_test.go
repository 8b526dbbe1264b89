package repository_test

import (
	"testing"

	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/internal/repository"
	"github.com/quotelane/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func TestFollowerRepository_CreateIsIdempotent(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	followerRepo := repository.NewFollowerRepository()

	inserted, err := followerRepo.Create(ctx, &entity.Follower{
		FollowerID:  testutil.User1.ID,
		FollowingID: testutil.User2.ID,
	})
	require.NoError(t, err)
	require.True(t, inserted)

	// A duplicate insert must not create a second edge.
	inserted, err = followerRepo.Create(ctx, &entity.Follower{
		FollowerID:  testutil.User1.ID,
		FollowingID: testutil.User2.ID,
	})
	require.NoError(t, err)
	require.False(t, inserted)

	count, err := followerRepo.CountFollowers(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	removed, err := followerRepo.Delete(ctx, testutil.User1.ID, testutil.User2.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = followerRepo.Delete(ctx, testutil.User1.ID, testutil.User2.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestLikeRepository_CreateIsIdempotent(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	likeRepo := repository.NewLikeRepository()

	inserted, err := likeRepo.Create(ctx, &entity.Like{
		UserID:  testutil.User1.ID,
		QuoteID: testutil.Quote2.ID,
	})
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = likeRepo.Create(ctx, &entity.Like{
		UserID:  testutil.User1.ID,
		QuoteID: testutil.Quote2.ID,
	})
	require.NoError(t, err)
	require.False(t, inserted)

	count, err := likeRepo.Count(ctx, testutil.Quote2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}
