package main

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quotelane/backend/internal/common"
	"github.com/quotelane/backend/internal/middleware"
	"github.com/quotelane/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadEngines()
	s.loadDatabase()
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	log.Printf("Starting server on %s\n", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.Before(middleware.AllowCors())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	common.RegisterPrometheus()
	s.router.Handle("/metrics", promhttp.Handler())

	optionalAuthVerifier := middleware.NewAuthVerifier().
		WithAccessToken().WithBlacklist(s.redisClient).Optional()
	authVerifier := middleware.NewAuthVerifier().
		WithAccessToken().WithBlacklist(s.redisClient)

	// Auth API. The access token is mirrored into a cookie so browser
	// clients do not need to manage the header themselves.
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSetAccessToken())
	authRouter.After(middleware.HandleSaveSession())
	{
		router.POST(authRouter, "/register", s.authDomain.Register)
		router.POST(authRouter, "/login", s.authDomain.Login)
		router.POST(authRouter, "/refresh", s.authDomain.Refresh)
	}

	// Public API. An optional credential enriches responses with the
	// caller's liked and following flags.
	publicRouter := s.router.Branch()
	publicRouter.Before(optionalAuthVerifier.Middleware())
	{
		router.GET(publicRouter, "/getQuotes", s.quoteDomain.GetList)
		router.GET(publicRouter, "/getQuote", s.quoteDomain.Get)
		router.GET(publicRouter, "/getUser", s.userDomain.GetUser)
		router.GET(publicRouter, "/getFollowStatus", s.socialDomain.GetFollowStatus)
	}

	// These following APIs need authentication with an access token.
	onlyTokenAuthRouter := s.router.Branch()
	onlyTokenAuthRouter.Before(authVerifier.Middleware())
	{
		router.POST(onlyTokenAuthRouter, "/logout", s.authDomain.Logout)

		// User API
		router.GET(onlyTokenAuthRouter, "/getMe", s.userDomain.GetMe)

		// Quote API
		router.POST(onlyTokenAuthRouter, "/createQuote", s.quoteDomain.Create)
		router.POST(onlyTokenAuthRouter, "/updateQuote", s.quoteDomain.Update)
		router.POST(onlyTokenAuthRouter, "/deleteQuote", s.quoteDomain.Delete)

		// Engagement API
		router.POST(onlyTokenAuthRouter, "/toggleLike", s.socialDomain.ToggleLike)
		router.POST(onlyTokenAuthRouter, "/createComment", s.socialDomain.CreateComment)
		router.POST(onlyTokenAuthRouter, "/editComment", s.socialDomain.EditComment)
		router.POST(onlyTokenAuthRouter, "/deleteComment", s.socialDomain.DeleteComment)
		router.POST(onlyTokenAuthRouter, "/toggleFollow", s.socialDomain.ToggleFollow)
	}
}
