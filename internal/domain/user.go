package domain

import (
	"context"
	"errors"

	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/internal/model"
	"github.com/quotelane/backend/internal/repository"
	"github.com/quotelane/backend/pkg/errorx"
	"github.com/quotelane/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
}

type userDomain struct {
	userRepo     repository.UserRepository
	followerRepo repository.FollowerRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	followerRepo repository.FollowerRepository,
) *userDomain {
	return &userDomain{
		userRepo:     userRepo,
		followerRepo: followerRepo,
	}
}

func (d *userDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	clientUser, err := d.convertUserWithCounts(ctx, user, true)
	if err != nil {
		return nil, err
	}

	return &model.GetMeResponse{User: clientUser}, nil
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	user, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	clientUser, err := d.convertUserWithCounts(ctx, user, false)
	if err != nil {
		return nil, err
	}

	if requestUserID := xcontext.RequestUserID(ctx); requestUserID != "" && requestUserID != user.ID {
		_, err := d.followerRepo.Get(ctx, requestUserID, user.ID)
		switch {
		case err == nil:
			clientUser.IsFollowing = true
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			xcontext.Logger(ctx).Errorf("Cannot get follower: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.GetUserResponse{User: clientUser}, nil
}

func (d *userDomain) convertUserWithCounts(
	ctx context.Context, user *entity.User, includeSensitive bool,
) (model.User, error) {
	followersCount, err := d.followerRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers: %v", err)
		return model.User{}, errorx.Unknown
	}

	followingCount, err := d.followerRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count following: %v", err)
		return model.User{}, errorx.Unknown
	}

	clientUser := model.ConvertUser(user, includeSensitive)
	clientUser.FollowersCount = followersCount
	clientUser.FollowingCount = followingCount
	return clientUser, nil
}
