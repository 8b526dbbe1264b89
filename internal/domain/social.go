package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quotelane/backend/internal/common"
	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/internal/model"
	"github.com/quotelane/backend/internal/repository"
	"github.com/quotelane/backend/pkg/errorx"
	"github.com/quotelane/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type SocialDomain interface {
	ToggleLike(context.Context, *model.ToggleLikeRequest) (*model.ToggleLikeResponse, error)
	CreateComment(context.Context, *model.CreateCommentRequest) (*model.CreateCommentResponse, error)
	EditComment(context.Context, *model.EditCommentRequest) (*model.EditCommentResponse, error)
	DeleteComment(context.Context, *model.DeleteCommentRequest) (*model.DeleteCommentResponse, error)
	ToggleFollow(context.Context, *model.ToggleFollowRequest) (*model.ToggleFollowResponse, error)
	GetFollowStatus(context.Context, *model.GetFollowStatusRequest) (*model.GetFollowStatusResponse, error)
}

type socialDomain struct {
	userRepo     repository.UserRepository
	quoteRepo    repository.QuoteRepository
	likeRepo     repository.LikeRepository
	commentRepo  repository.CommentRepository
	followerRepo repository.FollowerRepository
}

func NewSocialDomain(
	userRepo repository.UserRepository,
	quoteRepo repository.QuoteRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	followerRepo repository.FollowerRepository,
) *socialDomain {
	return &socialDomain{
		userRepo:     userRepo,
		quoteRepo:    quoteRepo,
		likeRepo:     likeRepo,
		commentRepo:  commentRepo,
		followerRepo: followerRepo,
	}
}

func (d *socialDomain) ToggleLike(
	ctx context.Context, req *model.ToggleLikeRequest,
) (*model.ToggleLikeResponse, error) {
	requestUserID := xcontext.RequestUserID(ctx)

	quote, err := d.quoteRepo.GetByID(ctx, req.QuoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quote")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quote: %v", err)
		return nil, errorx.Unknown
	}

	// The write itself decides the direction. Delete affects zero rows if
	// another toggle raced ahead, and the insert hits the conflict clause,
	// so concurrent double-clicks cannot produce a duplicated or lost like.
	var liked bool
	_, err = d.likeRepo.Get(ctx, requestUserID, quote.ID)
	switch {
	case err == nil:
		if _, err := d.likeRepo.Delete(ctx, requestUserID, quote.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete like: %v", err)
			return nil, errorx.Unknown
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		liked = true
		_, err := d.likeRepo.Create(ctx, &entity.Like{
			UserID:  requestUserID,
			QuoteID: quote.ID,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create like: %v", err)
			return nil, errorx.Unknown
		}

	default:
		xcontext.Logger(ctx).Errorf("Cannot get like: %v", err)
		return nil, errorx.Unknown
	}

	likesCount, err := d.likeRepo.Count(ctx, quote.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ToggleLikeResponse{Liked: liked, LikesCount: likesCount}, nil
}

func (d *socialDomain) CreateComment(
	ctx context.Context, req *model.CreateCommentRequest,
) (*model.CreateCommentResponse, error) {
	text := common.SanitizeText(req.Text)
	if text == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty comment text")
	}

	quote, err := d.quoteRepo.GetByID(ctx, req.QuoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quote")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quote: %v", err)
		return nil, errorx.Unknown
	}

	requestUserID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	comment := &entity.Comment{
		Base:    entity.Base{ID: uuid.NewString()},
		QuoteID: quote.ID,
		UserID:  user.ID,
		Text:    text,
	}

	if err := d.commentRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCommentResponse{Comment: model.ConvertComment(comment, user)}, nil
}

func (d *socialDomain) EditComment(
	ctx context.Context, req *model.EditCommentRequest,
) (*model.EditCommentResponse, error) {
	text := common.SanitizeText(req.Text)
	if text == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty comment text")
	}

	comment, err := d.getQuoteComment(ctx, req.QuoteID, req.CommentID)
	if err != nil {
		return nil, err
	}

	// Only the comment author can edit, no matter who owns the quote.
	requestUserID := xcontext.RequestUserID(ctx)
	if comment.UserID != requestUserID {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can edit this comment")
	}

	if err := d.commentRepo.UpdateText(ctx, comment.ID, text); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update comment: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	comment.Text = text
	return &model.EditCommentResponse{Comment: model.ConvertComment(comment, user)}, nil
}

func (d *socialDomain) DeleteComment(
	ctx context.Context, req *model.DeleteCommentRequest,
) (*model.DeleteCommentResponse, error) {
	comment, err := d.getQuoteComment(ctx, req.QuoteID, req.CommentID)
	if err != nil {
		return nil, err
	}

	// Only the comment author can delete, no matter who owns the quote.
	if comment.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can delete this comment")
	}

	if err := d.commentRepo.Delete(ctx, comment.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCommentResponse{}, nil
}

func (d *socialDomain) getQuoteComment(
	ctx context.Context, quoteID, commentID string,
) (*entity.Comment, error) {
	if _, err := d.quoteRepo.GetByID(ctx, quoteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quote")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quote: %v", err)
		return nil, errorx.Unknown
	}

	comment, err := d.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot get comment: %v", err)
		return nil, errorx.Unknown
	}

	if comment.QuoteID != quoteID {
		return nil, errorx.New(errorx.NotFound, "Not found comment")
	}

	return comment, nil
}

func (d *socialDomain) ToggleFollow(
	ctx context.Context, req *model.ToggleFollowRequest,
) (*model.ToggleFollowResponse, error) {
	target, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	// Compared by id, not by username, so a differently-cased username
	// cannot slip a self edge through.
	requestUserID := xcontext.RequestUserID(ctx)
	if target.ID == requestUserID {
		return nil, errorx.New(errorx.BadRequest, "You cannot follow yourself")
	}

	var following bool
	_, err = d.followerRepo.Get(ctx, requestUserID, target.ID)
	switch {
	case err == nil:
		if _, err := d.followerRepo.Delete(ctx, requestUserID, target.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete follower: %v", err)
			return nil, errorx.Unknown
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		following = true
		_, err := d.followerRepo.Create(ctx, &entity.Follower{
			FollowerID:  requestUserID,
			FollowingID: target.ID,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create follower: %v", err)
			return nil, errorx.Unknown
		}

	default:
		xcontext.Logger(ctx).Errorf("Cannot get follower: %v", err)
		return nil, errorx.Unknown
	}

	followersCount, err := d.followerRepo.CountFollowers(ctx, target.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers: %v", err)
		return nil, errorx.Unknown
	}

	followingCount, err := d.followerRepo.CountFollowing(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count following: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ToggleFollowResponse{
		Following:      following,
		FollowersCount: followersCount,
		FollowingCount: followingCount,
	}, nil
}

func (d *socialDomain) GetFollowStatus(
	ctx context.Context, req *model.GetFollowStatusRequest,
) (*model.GetFollowStatusResponse, error) {
	target, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	followersCount, err := d.followerRepo.CountFollowers(ctx, target.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers: %v", err)
		return nil, errorx.Unknown
	}

	followingCount, err := d.followerRepo.CountFollowing(ctx, target.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count following: %v", err)
		return nil, errorx.Unknown
	}

	// Anonymous viewers never follow anyone.
	isFollowing := false
	if requestUserID := xcontext.RequestUserID(ctx); requestUserID != "" {
		_, err := d.followerRepo.Get(ctx, requestUserID, target.ID)
		switch {
		case err == nil:
			isFollowing = true
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			xcontext.Logger(ctx).Errorf("Cannot get follower: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.GetFollowStatusResponse{
		FollowersCount: followersCount,
		FollowingCount: followingCount,
		IsFollowing:    isFollowing,
	}, nil
}
