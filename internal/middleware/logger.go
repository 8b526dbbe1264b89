package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/quotelane/backend/pkg/errorx"
	"github.com/quotelane/backend/pkg/router"
	"github.com/quotelane/backend/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		r := xcontext.HTTPRequest(ctx)
		info := fmt.Sprintf("%s | %s", r.Method, r.URL.Path)
		if err := xcontext.Error(ctx); err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				xcontext.Logger(ctx).Warnf("%s | %d", info, errx.Code)
			} else {
				xcontext.Logger(ctx).Errorf("%s | %d", info, -1)
			}
		} else {
			xcontext.Logger(ctx).Infof(info)
		}
	}
}
