package repository

import (
	"context"

	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type FollowerRepository interface {
	// Create adds the follow edge if it is absent. Both sides of the
	// relation live in this single row, so a partial follow cannot exist.
	// It reports whether a row was actually inserted.
	Create(ctx context.Context, follower *entity.Follower) (bool, error)

	// Delete removes the follow edge and reports whether a row was
	// actually removed.
	Delete(ctx context.Context, followerID, followingID string) (bool, error)

	Get(ctx context.Context, followerID, followingID string) (*entity.Follower, error)
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
	GetFollowers(ctx context.Context, userID string) ([]entity.Follower, error)
	GetFollowing(ctx context.Context, userID string) ([]entity.Follower, error)
}

type followerRepository struct{}

func NewFollowerRepository() *followerRepository {
	return &followerRepository{}
}

func (r *followerRepository) Create(ctx context.Context, follower *entity.Follower) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follower)
	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *followerRepository) Delete(ctx context.Context, followerID, followingID string) (bool, error) {
	tx := xcontext.DB(ctx).
		Where("follower_id=? AND following_id=?", followerID, followingID).
		Delete(&entity.Follower{})
	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *followerRepository) Get(ctx context.Context, followerID, followingID string) (*entity.Follower, error) {
	var result entity.Follower
	err := xcontext.DB(ctx).
		Take(&result, "follower_id=? AND following_id=?", followerID, followingID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *followerRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Follower{}).
		Where("following_id=?", userID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *followerRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Follower{}).
		Where("follower_id=?", userID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *followerRepository) GetFollowers(ctx context.Context, userID string) ([]entity.Follower, error) {
	var result []entity.Follower
	err := xcontext.DB(ctx).
		Order("created_at ASC").
		Find(&result, "following_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followerRepository) GetFollowing(ctx context.Context, userID string) ([]entity.Follower, error) {
	var result []entity.Follower
	err := xcontext.DB(ctx).
		Order("created_at ASC").
		Find(&result, "follower_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
