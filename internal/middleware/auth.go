package middleware

import (
	"context"
	"strings"

	"github.com/quotelane/backend/internal/common"
	"github.com/quotelane/backend/pkg/errorx"
	"github.com/quotelane/backend/pkg/router"
	"github.com/quotelane/backend/pkg/xcontext"
	"github.com/quotelane/backend/pkg/xredis"
)

type AuthVerifier struct {
	useAccessToken bool
	optional       bool
	blacklist      xredis.Client
}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

func (a *AuthVerifier) WithAccessToken() *AuthVerifier {
	a.useAccessToken = true
	return a
}

// WithBlacklist rejects tokens that were revoked by a logout.
func (a *AuthVerifier) WithBlacklist(client xredis.Client) *AuthVerifier {
	a.blacklist = client
	return a
}

// Optional resolves the caller when a valid credential is present but lets
// anonymous requests through. Used by public read endpoints that enrich
// their response for authenticated callers.
func (a *AuthVerifier) Optional() *AuthVerifier {
	a.optional = true
	return a
}

func (a *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if !a.useAccessToken {
			return nil, errorx.New(errorx.Internal, "No authentication method is available")
		}

		token := getAccessToken(ctx)
		if token == "" {
			if a.optional {
				return nil, nil
			}

			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		if a.blacklist != nil {
			revoked, err := a.blacklist.Exist(ctx, common.RedisKeyTokenBlacklist(token))
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot check the token blacklist: %v", err)
				return nil, errorx.Unknown
			}

			if revoked {
				return nil, errorx.New(errorx.Unauthenticated, "Token is revoked")
			}
		}

		info, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			if a.optional {
				return nil, nil
			}

			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, info.ID), nil
	}
}

func getAccessToken(ctx context.Context) string {
	r := xcontext.HTTPRequest(ctx)

	authorization := r.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}

		return ""
	}

	cookie, err := r.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
