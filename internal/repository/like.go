package repository

import (
	"context"

	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	// Create adds the like if it is absent. It reports whether a row was
	// actually inserted, so a racing duplicate like is detected instead of
	// applied twice.
	Create(ctx context.Context, like *entity.Like) (bool, error)

	// Delete removes the like if it is present and reports whether a row
	// was actually removed.
	Delete(ctx context.Context, userID, quoteID string) (bool, error)

	Get(ctx context.Context, userID, quoteID string) (*entity.Like, error)
	Count(ctx context.Context, quoteID string) (int64, error)
	GetListByQuoteID(ctx context.Context, quoteID string) ([]entity.Like, error)
}

type likeRepository struct{}

func NewLikeRepository() *likeRepository {
	return &likeRepository{}
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like)
	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, quoteID string) (bool, error) {
	tx := xcontext.DB(ctx).
		Where("user_id=? AND quote_id=?", userID, quoteID).
		Delete(&entity.Like{})
	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *likeRepository) Get(ctx context.Context, userID, quoteID string) (*entity.Like, error) {
	var result entity.Like
	err := xcontext.DB(ctx).Take(&result, "user_id=? AND quote_id=?", userID, quoteID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *likeRepository) Count(ctx context.Context, quoteID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Like{}).
		Where("quote_id=?", quoteID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *likeRepository) GetListByQuoteID(ctx context.Context, quoteID string) ([]entity.Like, error) {
	var result []entity.Like
	err := xcontext.DB(ctx).
		Order("created_at ASC").
		Find(&result, "quote_id=?", quoteID).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
