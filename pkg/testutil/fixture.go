package testutil

import (
	"context"

	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/internal/repository"
	"github.com/quotelane/backend/pkg/crypto"
)

// PlainPassword is the plaintext behind every fixture user's password hash.
const PlainPassword = "open sesame"

var (
	User1 = entity.User{
		Base:     entity.Base{ID: "user1"},
		Username: "alice",
		Name:     "Alice Adams",
		Email:    "alice@example.com",
	}

	User2 = entity.User{
		Base:     entity.Base{ID: "user2"},
		Username: "bob",
		Name:     "Bob Brown",
		Email:    "bob@example.com",
	}

	User3 = entity.User{
		Base:     entity.Base{ID: "user3"},
		Username: "carol",
		Name:     "Carol Clark",
		Email:    "carol@example.com",
	}

	Quote1 = entity.Quote{
		Base:   entity.Base{ID: "quote1"},
		UserID: User1.ID,
		Text:   "The only true wisdom is in knowing you know nothing.",
		Author: "Socrates",
		Tags:   entity.Array[string]{"wisdom"},
	}

	Quote2 = entity.Quote{
		Base:   entity.Base{ID: "quote2"},
		UserID: User2.ID,
		Text:   "Well begun is half done.",
		Author: "Aristotle",
		Tags:   entity.Array[string]{"work"},
	}

	Comment1 = entity.Comment{
		Base:    entity.Base{ID: "comment1"},
		QuoteID: Quote1.ID,
		UserID:  User2.ID,
		Text:    "One of my favorites.",
	}

	// Carol follows Alice.
	Follower1 = entity.Follower{
		FollowerID:  User3.ID,
		FollowingID: User1.ID,
	}

	// Carol likes Alice's quote. Quote2 stays without likes so toggle tests
	// start from a clean state.
	Like1 = entity.Like{
		UserID:  User3.ID,
		QuoteID: Quote1.ID,
	}
)

// CreateFixtureDb seeds the database behind ctx with a small social graph.
func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertQuotes(ctx)
	insertEngagements(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	hashedPassword, err := crypto.HashPassword(PlainPassword)
	if err != nil {
		panic(err)
	}

	for _, user := range []entity.User{User1, User2, User3} {
		user.Password = hashedPassword
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func insertQuotes(ctx context.Context) {
	quoteRepo := repository.NewQuoteRepository()

	for _, quote := range []entity.Quote{Quote1, Quote2} {
		quote := quote
		if err := quoteRepo.Create(ctx, &quote); err != nil {
			panic(err)
		}
	}
}

func insertEngagements(ctx context.Context) {
	commentRepo := repository.NewCommentRepository()
	comment := Comment1
	if err := commentRepo.Create(ctx, &comment); err != nil {
		panic(err)
	}

	followerRepo := repository.NewFollowerRepository()
	if _, err := followerRepo.Create(ctx, &entity.Follower{
		FollowerID:  Follower1.FollowerID,
		FollowingID: Follower1.FollowingID,
	}); err != nil {
		panic(err)
	}

	likeRepo := repository.NewLikeRepository()
	if _, err := likeRepo.Create(ctx, &entity.Like{
		UserID:  Like1.UserID,
		QuoteID: Like1.QuoteID,
	}); err != nil {
		panic(err)
	}
}
