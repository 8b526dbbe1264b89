package repository

import (
	"context"
	"errors"

	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	GetListByQuoteID(ctx context.Context, quoteID string) ([]entity.Comment, error)
	UpdateText(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
}

type commentRepository struct{}

func NewCommentRepository() *commentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return xcontext.DB(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var result entity.Comment
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *commentRepository) GetListByQuoteID(ctx context.Context, quoteID string) ([]entity.Comment, error) {
	var result []entity.Comment
	err := xcontext.DB(ctx).
		Order("created_at ASC").
		Find(&result, "quote_id=?", quoteID).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *commentRepository) UpdateText(ctx context.Context, id, text string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Comment{}).
		Where("id=?", id).
		Update("text", text)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Comment{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
