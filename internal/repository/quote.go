package repository

import (
	"context"
	"errors"

	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id string) (*entity.Quote, error)
	GetByText(ctx context.Context, text string) (*entity.Quote, error)
	GetList(ctx context.Context) ([]entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, id string) error
}

type quoteRepository struct{}

func NewQuoteRepository() *quoteRepository {
	return &quoteRepository{}
}

func (r *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	return xcontext.DB(ctx).Create(quote).Error
}

func (r *quoteRepository) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	var result entity.Quote
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *quoteRepository) GetByText(ctx context.Context, text string) (*entity.Quote, error) {
	var result entity.Quote
	if err := xcontext.DB(ctx).Take(&result, "text=?", text).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *quoteRepository) GetList(ctx context.Context) ([]entity.Quote, error) {
	var result []entity.Quote
	err := xcontext.DB(ctx).Order("created_at DESC").Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *quoteRepository) Update(ctx context.Context, quote *entity.Quote) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Quote{}).
		Where("id=?", quote.ID).
		Updates(map[string]any{
			"text":   quote.Text,
			"author": quote.Author,
			"tags":   quote.Tags,
		})

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

func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Quote{}, "id=?", id)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
