package model

import (
	"time"

	"github.com/quotelane/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertUser(user *entity.User, includeSensitive bool) User {
	if user == nil {
		return User{}
	}

	result := User{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(DefaultTimeLayout),
	}

	if includeSensitive {
		result.Email = user.Email
	}

	return result
}

func ConvertShortUser(user *entity.User) ShortUser {
	if user == nil {
		return ShortUser{}
	}

	return ShortUser{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	}
}

func ConvertComment(comment *entity.Comment, user *entity.User) Comment {
	if comment == nil {
		return Comment{}
	}

	return Comment{
		ID:        comment.ID,
		User:      ConvertShortUser(user),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertQuote(
	quote *entity.Quote,
	owner *entity.User,
	likesCount int64,
	liked bool,
	comments []Comment,
) Quote {
	if quote == nil {
		return Quote{}
	}

	return Quote{
		ID:         quote.ID,
		User:       ConvertShortUser(owner),
		Text:       quote.Text,
		Author:     quote.Author,
		Tags:       quote.Tags,
		LikesCount: likesCount,
		Liked:      liked,
		Comments:   comments,
		CreatedAt:  quote.CreatedAt.Format(DefaultTimeLayout),
	}
}
