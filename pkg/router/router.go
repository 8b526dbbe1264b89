package router

import (
	"context"
	"net/http"

	"github.com/quotelane/backend/config"
	"github.com/quotelane/backend/internal/model"
	"github.com/quotelane/backend/pkg/authenticator"
	"github.com/quotelane/backend/pkg/logger"
	"github.com/quotelane/backend/pkg/session"
	"gorm.io/gorm"
)

// HandlerFunc is the business handler of one endpoint. The request is bound
// from the query string (GET) or the JSON body (POST) before it is called.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before or after a handler. It can derive a new
// context from the given one; returning a nil context keeps the current.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response has been written. It observes the
// final context, which carries the response or the error.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	cfg    config.Configs
	db     *gorm.DB
	logger logger.Logger

	accessTokenEngine  authenticator.TokenEngine[model.AccessToken]
	refreshTokenEngine authenticator.TokenEngine[model.RefreshToken]
	sessionStore       *session.Store

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		cfg:    cfg,
		db:     db,
		logger: logger,
		accessTokenEngine: authenticator.NewTokenEngine[model.AccessToken](
			cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration),
		refreshTokenEngine: authenticator.NewTokenEngine[model.RefreshToken](
			cfg.Auth.TokenSecret, cfg.Auth.RefreshToken.Expiration),
		sessionStore: session.NewCookieStore(cfg.Session.Name, []byte(cfg.Session.Secret)),
	}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain, so endpoint groups can differ in authentication.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.afters = append([]MiddlewareFunc{}, r.afters...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

// Handle mounts a plain http.Handler, bypassing request binding and the
// response envelope. Used for things like the metrics endpoint.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}
