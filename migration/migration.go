package migration

import (
	"context"

	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/pkg/xcontext"
)

// AutoMigrate creates or updates every table of the latest schema version.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Quote{},
		&entity.Comment{},
		&entity.Like{},
		&entity.Follower{},
		&entity.RefreshToken{},
	)
}
