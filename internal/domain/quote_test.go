package domain

import (
	"testing"

	"github.com/quotelane/backend/internal/model"
	"github.com/quotelane/backend/internal/repository"
	"github.com/quotelane/backend/pkg/testutil"
	"github.com/quotelane/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestQuoteDomain() *quoteDomain {
	return NewQuoteDomain(
		repository.NewUserRepository(),
		repository.NewQuoteRepository(),
		repository.NewLikeRepository(),
		repository.NewCommentRepository(),
	)
}

func Test_quoteDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestQuoteDomain()

	resp, err := domain.Create(ctx, &model.CreateQuoteRequest{
		Text: "<i>Stay</i> hungry, stay foolish.",
		Tags: []string{"life"},
	})
	require.NoError(t, err)
	require.Equal(t, "Stay hungry, stay foolish.", resp.Quote.Text)
	require.Equal(t, "Anonymous", resp.Quote.Author)
	require.Equal(t, testutil.User1.Username, resp.Quote.User.Username)
	require.Equal(t, int64(0), resp.Quote.LikesCount)

	quote, err := repository.NewQuoteRepository().GetByID(ctx, resp.Quote.ID)
	require.NoError(t, err)
	require.Equal(t, "Stay hungry, stay foolish.", quote.Text)
}

func Test_quoteDomain_Create_Invalid(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestQuoteDomain()

	_, err := domain.Create(ctx, &model.CreateQuoteRequest{Text: "   "})
	require.Error(t, err)
	require.Equal(t, "Not allow empty quote text", err.Error())

	// The same text cannot be shared twice, even by another user.
	_, err = domain.Create(ctx, &model.CreateQuoteRequest{
		Text:   testutil.Quote2.Text,
		Author: "Someone Else",
	})
	require.Error(t, err)
	require.Equal(t, "Quote already exists", err.Error())
}

func Test_quoteDomain_Get(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestQuoteDomain()

	// Anonymous requests see the counts but never a liked flag.
	resp, err := domain.Get(ctx, &model.GetQuoteRequest{QuoteID: testutil.Quote1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.Quote1.Text, resp.Quote.Text)
	require.Equal(t, testutil.User1.Username, resp.Quote.User.Username)
	require.Equal(t, int64(1), resp.Quote.LikesCount)
	require.False(t, resp.Quote.Liked)
	require.Len(t, resp.Quote.Comments, 1)
	require.Equal(t, testutil.Comment1.Text, resp.Quote.Comments[0].Text)
	require.Equal(t, testutil.User2.Username, resp.Quote.Comments[0].User.Username)

	// Carol likes this quote in the fixture.
	ctx = xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	resp, err = domain.Get(ctx, &model.GetQuoteRequest{QuoteID: testutil.Quote1.ID})
	require.NoError(t, err)
	require.True(t, resp.Quote.Liked)

	_, err = domain.Get(ctx, &model.GetQuoteRequest{QuoteID: "invalid-quote"})
	require.Error(t, err)
	require.Equal(t, "Not found quote", err.Error())
}

func Test_quoteDomain_GetList(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User3.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestQuoteDomain()

	resp, err := domain.GetList(ctx, &model.GetQuotesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Quotes, 2)

	byID := map[string]model.Quote{}
	for _, quote := range resp.Quotes {
		byID[quote.ID] = quote
	}

	require.Equal(t, int64(1), byID[testutil.Quote1.ID].LikesCount)
	require.True(t, byID[testutil.Quote1.ID].Liked)
	require.Equal(t, testutil.User1.Username, byID[testutil.Quote1.ID].User.Username)

	require.Equal(t, int64(0), byID[testutil.Quote2.ID].LikesCount)
	require.False(t, byID[testutil.Quote2.ID].Liked)
}

func Test_quoteDomain_Update(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestQuoteDomain()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err := domain.Update(ctx, &model.UpdateQuoteRequest{
		QuoteID: testutil.Quote1.ID,
		Text:    "hijacked",
	})
	require.Error(t, err)
	require.Equal(t, "Only the owner can update this quote", err.Error())

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	resp, err := domain.Update(ctx, &model.UpdateQuoteRequest{
		QuoteID: testutil.Quote1.ID,
		Text:    "The unexamined life is not worth living.",
		Tags:    []string{"philosophy"},
	})
	require.NoError(t, err)
	require.Equal(t, "The unexamined life is not worth living.", resp.Quote.Text)
	require.Equal(t, []string{"philosophy"}, resp.Quote.Tags)

	// The author attribution is kept when the request leaves it out.
	require.Equal(t, testutil.Quote1.Author, resp.Quote.Author)
}

func Test_quoteDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestQuoteDomain()
	quoteRepo := repository.NewQuoteRepository()

	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err := domain.Delete(ctx, &model.DeleteQuoteRequest{QuoteID: testutil.Quote1.ID})
	require.Error(t, err)
	require.Equal(t, "Only the owner can delete this quote", err.Error())

	_, err = quoteRepo.GetByID(ctx, testutil.Quote1.ID)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = domain.Delete(ctx, &model.DeleteQuoteRequest{QuoteID: testutil.Quote1.ID})
	require.NoError(t, err)

	_, err = quoteRepo.GetByID(ctx, testutil.Quote1.ID)
	require.Error(t, err)
}
