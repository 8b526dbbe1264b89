package main

import (
	"context"
	"net/http"

	"github.com/quotelane/backend/config"
	"github.com/quotelane/backend/internal/domain"
	"github.com/quotelane/backend/internal/model"
	"github.com/quotelane/backend/internal/repository"
	"github.com/quotelane/backend/pkg/authenticator"
	"github.com/quotelane/backend/pkg/logger"
	"github.com/quotelane/backend/pkg/router"
	"github.com/quotelane/backend/pkg/session"
	"github.com/quotelane/backend/pkg/xcontext"
	"github.com/quotelane/backend/pkg/xredis"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	redisClient xredis.Client

	userRepo         repository.UserRepository
	quoteRepo        repository.QuoteRepository
	likeRepo         repository.LikeRepository
	commentRepo      repository.CommentRepository
	followerRepo     repository.FollowerRepository
	refreshTokenRepo repository.RefreshTokenRepository

	authDomain   domain.AuthDomain
	userDomain   domain.UserDomain
	quoteDomain  domain.QuoteDomain
	socialDomain domain.SocialDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadEngines() {
	s.ctx = xcontext.WithTokenEngine(s.ctx,
		authenticator.NewTokenEngine[model.AccessToken](
			s.configs.Auth.TokenSecret, s.configs.Auth.AccessToken.Expiration))
	s.ctx = xcontext.WithRefreshTokenEngine(s.ctx,
		authenticator.NewTokenEngine[model.RefreshToken](
			s.configs.Auth.TokenSecret, s.configs.Auth.RefreshToken.Expiration))
	s.ctx = xcontext.WithSessionStore(s.ctx,
		session.NewCookieStore(s.configs.Session.Name, []byte(s.configs.Session.Secret)))
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadRedis() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.quoteRepo = repository.NewQuoteRepository()
	s.likeRepo = repository.NewLikeRepository()
	s.commentRepo = repository.NewCommentRepository()
	s.followerRepo = repository.NewFollowerRepository()
	s.refreshTokenRepo = repository.NewRefreshTokenRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.refreshTokenRepo, s.redisClient)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.followerRepo)
	s.quoteDomain = domain.NewQuoteDomain(s.userRepo, s.quoteRepo, s.likeRepo, s.commentRepo)
	s.socialDomain = domain.NewSocialDomain(
		s.userRepo, s.quoteRepo, s.likeRepo, s.commentRepo, s.followerRepo)
}
