package router

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/quotelane/backend/pkg/errorx"
	"github.com/quotelane/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithLogger(ctx, router.logger)
		ctx = xcontext.WithDB(ctx, router.db)
		ctx = xcontext.WithTokenEngine(ctx, router.accessTokenEngine)
		ctx = xcontext.WithRefreshTokenEngine(ctx, router.refreshTokenEngine)
		ctx = xcontext.WithSessionStore(ctx, router.sessionStore)
		ctx = xcontext.WithHTTPRequest(ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithStartTime(ctx, time.Now())

		resp, err := func() (*Response, error) {
			if r.Method != method {
				return nil, errorx.New(errorx.BadRequest, "Not supported method %s", r.Method)
			}

			var req Request
			var bindErr error
			switch method {
			case http.MethodGet:
				bindErr = bindQuery(r.URL.Query(), &req)
			default:
				if r.ContentLength > 0 {
					bindErr = json.NewDecoder(r.Body).Decode(&req)
				}
			}

			if bindErr != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", bindErr)
				return nil, errorx.New(errorx.BadRequest, "Cannot bind the request")
			}

			for _, middleware := range router.befores {
				newCtx, err := middleware(ctx)
				if err != nil {
					return nil, err
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			resp, err := handler(ctx, &req)
			if err != nil {
				return nil, err
			}

			ctx = xcontext.WithResponse(ctx, resp)
			for _, middleware := range router.afters {
				newCtx, err := middleware(ctx)
				if err != nil {
					return nil, err
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			return resp, nil
		}()

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			if writeErr := WriteJSON(w, newErrorResponse(err)); writeErr != nil {
				xcontext.Logger(ctx).Errorf("Cannot write the error response: %v", writeErr)
			}
		} else {
			ctx = xcontext.WithResponse(ctx, resp)
			if writeErr := WriteJSON(w, newResponse(resp)); writeErr != nil {
				xcontext.Logger(ctx).Errorf("Cannot write the response: %v", writeErr)
			}
		}

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}

// bindQuery decodes the query string into a request struct following the
// same json tags the body decoder uses.
func bindQuery(query url.Values, req any) error {
	values := map[string]any{}
	for key, value := range query {
		if len(value) > 0 {
			values[key] = value[0]
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           req,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}
