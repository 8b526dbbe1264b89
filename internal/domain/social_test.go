package domain

import (
	"testing"

	"github.com/quotelane/backend/internal/model"
	"github.com/quotelane/backend/internal/repository"
	"github.com/quotelane/backend/pkg/testutil"
	"github.com/quotelane/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestSocialDomain() *socialDomain {
	return NewSocialDomain(
		repository.NewUserRepository(),
		repository.NewQuoteRepository(),
		repository.NewLikeRepository(),
		repository.NewCommentRepository(),
		repository.NewFollowerRepository(),
	)
}

func Test_socialDomain_ToggleLike(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestSocialDomain()

	// The first toggle of alice creates the like.
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := domain.ToggleLike(ctx, &model.ToggleLikeRequest{QuoteID: testutil.Quote2.ID})
	require.NoError(t, err)
	require.True(t, resp.Liked)
	require.Equal(t, int64(1), resp.LikesCount)

	// Another user's like is counted independently.
	ctx = xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	resp, err = domain.ToggleLike(ctx, &model.ToggleLikeRequest{QuoteID: testutil.Quote2.ID})
	require.NoError(t, err)
	require.True(t, resp.Liked)
	require.Equal(t, int64(2), resp.LikesCount)

	// The second toggle of alice removes only her like.
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err = domain.ToggleLike(ctx, &model.ToggleLikeRequest{QuoteID: testutil.Quote2.ID})
	require.NoError(t, err)
	require.False(t, resp.Liked)
	require.Equal(t, int64(1), resp.LikesCount)
}

func Test_socialDomain_ToggleLike_NotFoundQuote(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSocialDomain()

	_, err := domain.ToggleLike(ctx, &model.ToggleLikeRequest{QuoteID: "invalid-quote"})
	require.Error(t, err)
	require.Equal(t, "Not found quote", err.Error())
}

func Test_socialDomain_CreateComment(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSocialDomain()

	resp, err := domain.CreateComment(ctx, &model.CreateCommentRequest{
		QuoteID: testutil.Quote2.ID,
		Text:    "  <b>Nice</b> quote  ",
	})
	require.NoError(t, err)
	require.Equal(t, "Nice quote", resp.Comment.Text)
	require.Equal(t, testutil.User3.Username, resp.Comment.User.Username)

	comment, err := repository.NewCommentRepository().GetByID(ctx, resp.Comment.ID)
	require.NoError(t, err)
	require.Equal(t, "Nice quote", comment.Text)
}

func Test_socialDomain_CreateComment_Invalid(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSocialDomain()

	// A comment cannot become empty after sanitization.
	_, err := domain.CreateComment(ctx, &model.CreateCommentRequest{
		QuoteID: testutil.Quote2.ID,
		Text:    "   ",
	})
	require.Error(t, err)
	require.Equal(t, "Not allow empty comment text", err.Error())

	_, err = domain.CreateComment(ctx, &model.CreateCommentRequest{
		QuoteID: "invalid-quote",
		Text:    "hello",
	})
	require.Error(t, err)
	require.Equal(t, "Not found quote", err.Error())
}

func Test_socialDomain_EditComment(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestSocialDomain()

	// Only the author can edit.
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err := domain.EditComment(ctx, &model.EditCommentRequest{
		QuoteID:   testutil.Quote1.ID,
		CommentID: testutil.Comment1.ID,
		Text:      "hijacked",
	})
	require.Error(t, err)
	require.Equal(t, "Only the author can edit this comment", err.Error())

	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	resp, err := domain.EditComment(ctx, &model.EditCommentRequest{
		QuoteID:   testutil.Quote1.ID,
		CommentID: testutil.Comment1.ID,
		Text:      "An all-time favorite.",
	})
	require.NoError(t, err)
	require.Equal(t, "An all-time favorite.", resp.Comment.Text)

	// The comment must belong to the given quote.
	_, err = domain.EditComment(ctx, &model.EditCommentRequest{
		QuoteID:   testutil.Quote2.ID,
		CommentID: testutil.Comment1.ID,
		Text:      "misplaced",
	})
	require.Error(t, err)
	require.Equal(t, "Not found comment", err.Error())
}

func Test_socialDomain_DeleteComment(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestSocialDomain()
	commentRepo := repository.NewCommentRepository()

	// A denied delete must leave the comment untouched.
	ctx = xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err := domain.DeleteComment(ctx, &model.DeleteCommentRequest{
		QuoteID:   testutil.Quote1.ID,
		CommentID: testutil.Comment1.ID,
	})
	require.Error(t, err)
	require.Equal(t, "Only the author can delete this comment", err.Error())

	_, err = commentRepo.GetByID(ctx, testutil.Comment1.ID)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err = domain.DeleteComment(ctx, &model.DeleteCommentRequest{
		QuoteID:   testutil.Quote1.ID,
		CommentID: testutil.Comment1.ID,
	})
	require.NoError(t, err)

	_, err = commentRepo.GetByID(ctx, testutil.Comment1.ID)
	require.Error(t, err)
}

func Test_socialDomain_ToggleFollow(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSocialDomain()

	// Alice follows bob.
	resp, err := domain.ToggleFollow(ctx, &model.ToggleFollowRequest{
		Username: testutil.User2.Username,
	})
	require.NoError(t, err)
	require.True(t, resp.Following)
	require.Equal(t, int64(1), resp.FollowersCount)
	require.Equal(t, int64(1), resp.FollowingCount)

	followerRepo := repository.NewFollowerRepository()
	_, err = followerRepo.Get(ctx, testutil.User1.ID, testutil.User2.ID)
	require.NoError(t, err)

	// The second toggle removes the edge entirely.
	resp, err = domain.ToggleFollow(ctx, &model.ToggleFollowRequest{
		Username: testutil.User2.Username,
	})
	require.NoError(t, err)
	require.False(t, resp.Following)
	require.Equal(t, int64(0), resp.FollowersCount)
	require.Equal(t, int64(0), resp.FollowingCount)

	_, err = followerRepo.Get(ctx, testutil.User1.ID, testutil.User2.ID)
	require.Error(t, err)
}

func Test_socialDomain_ToggleFollow_Invalid(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSocialDomain()

	_, err := domain.ToggleFollow(ctx, &model.ToggleFollowRequest{
		Username: testutil.User1.Username,
	})
	require.Error(t, err)
	require.Equal(t, "You cannot follow yourself", err.Error())

	_, err = domain.ToggleFollow(ctx, &model.ToggleFollowRequest{Username: "nobody"})
	require.Error(t, err)
	require.Equal(t, "Not found user", err.Error())
}

func Test_socialDomain_GetFollowStatus(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestSocialDomain()

	// Anonymous requests still get the counts.
	resp, err := domain.GetFollowStatus(ctx, &model.GetFollowStatusRequest{
		Username: testutil.User1.Username,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.FollowersCount)
	require.Equal(t, int64(0), resp.FollowingCount)
	require.False(t, resp.IsFollowing)

	// Carol already follows alice in the fixture.
	ctx = xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	resp, err = domain.GetFollowStatus(ctx, &model.GetFollowStatusRequest{
		Username: testutil.User1.Username,
	})
	require.NoError(t, err)
	require.True(t, resp.IsFollowing)

	_, err = domain.GetFollowStatus(ctx, &model.GetFollowStatusRequest{Username: "nobody"})
	require.Error(t, err)
	require.Equal(t, "Not found user", err.Error())
}
