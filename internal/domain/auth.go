package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quotelane/backend/internal/common"
	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/internal/model"
	"github.com/quotelane/backend/internal/repository"
	"github.com/quotelane/backend/pkg/crypto"
	"github.com/quotelane/backend/pkg/errorx"
	"github.com/quotelane/backend/pkg/xcontext"
	"github.com/quotelane/backend/pkg/xredis"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
	Refresh(context.Context, *model.RefreshTokenRequest) (*model.RefreshTokenResponse, error)
	Logout(context.Context, *model.LogoutRequest) (*model.LogoutResponse, error)
}

type authDomain struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	redisClient      xredis.Client
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	redisClient xredis.Client,
) *authDomain {
	return &authDomain{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		redisClient:      redisClient,
	}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Email == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty username, email, or password")
	}

	if err := d.checkNotExisted(ctx, username, req.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:     entity.Base{ID: uuid.NewString()},
		Username: username,
		Name:     common.SanitizeText(req.Name),
		Email:    req.Email,
		Password: hashedPassword,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	accessToken, refreshToken, err := d.generateTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	return &model.RegisterResponse{
		User:         model.ConvertUser(user, true),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(user.Password, req.Password) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
	}

	accessToken, refreshToken, err := d.generateTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		User:         model.ConvertUser(user, true),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (d *authDomain) Refresh(
	ctx context.Context, req *model.RefreshTokenRequest,
) (*model.RefreshTokenResponse, error) {
	refreshToken, err := xcontext.RefreshTokenEngine(ctx).Verify(req.RefreshToken)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Failed to verify refresh token: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Invalid refresh token")
	}

	hashedFamily := crypto.SHA256([]byte(refreshToken.Family))
	storageToken, err := d.refreshTokenRepo.Get(ctx, hashedFamily)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid refresh token")
		}

		xcontext.Logger(ctx).Errorf("Cannot get refresh token family: %v", err)
		return nil, errorx.Unknown
	}

	if storageToken.Expiration.Before(time.Now()) {
		return nil, errorx.New(errorx.TokenExpired, "Your refresh token is expired")
	}

	// A counter mismatch means an old token of this family was replayed.
	// NOTE: DO NOT create transaction here. The delete and rotate query is
	// independent.
	if refreshToken.Counter != storageToken.Counter {
		if err := d.refreshTokenRepo.Delete(ctx, hashedFamily); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete refresh token: %v", err)
			return nil, errorx.Unknown
		}

		return nil, errorx.New(errorx.StolenDetected,
			"Your refresh token will be revoked because it is detected as stolen")
	}

	if err := d.refreshTokenRepo.Rotate(ctx, hashedFamily); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot rotate the refresh token: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, storageToken.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	newRefreshToken, err := xcontext.RefreshTokenEngine(ctx).Generate(user.ID, model.RefreshToken{
		Family:  refreshToken.Family,
		Counter: refreshToken.Counter + 1,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate refresh token: %v", err)
		return nil, errorx.Unknown
	}

	newAccessToken, err := xcontext.TokenEngine(ctx).Generate(user.ID, model.AccessToken{
		ID:       user.ID,
		Username: user.Username,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RefreshTokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (d *authDomain) Logout(
	ctx context.Context, req *model.LogoutRequest,
) (*model.LogoutResponse, error) {
	token := accessTokenFromRequest(ctx)
	if token == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	// Keep the token in the blacklist until it would expire anyway.
	ttl := xcontext.Configs(ctx).Auth.AccessToken.Expiration
	err := d.redisClient.Set(ctx, common.RedisKeyTokenBlacklist(token), "revoked", ttl)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot blacklist the access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LogoutResponse{}, nil
}

func (d *authDomain) checkNotExisted(ctx context.Context, username, email string) error {
	_, err := d.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return errorx.New(errorx.AlreadyExists, "User already exists")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by username: %v", err)
		return errorx.Unknown
	}

	_, err = d.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return errorx.New(errorx.AlreadyExists, "User already exists")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *authDomain) generateTokens(ctx context.Context, user *entity.User) (string, string, error) {
	family, err := crypto.GenerateRandomString()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate refresh token family: %v", err)
		return "", "", errorx.Unknown
	}

	refreshToken, err := xcontext.RefreshTokenEngine(ctx).Generate(user.ID, model.RefreshToken{
		Family:  family,
		Counter: 0,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate refresh token: %v", err)
		return "", "", errorx.Unknown
	}

	err = d.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     user.ID,
		Family:     crypto.SHA256([]byte(family)),
		Counter:    0,
		Expiration: time.Now().Add(xcontext.Configs(ctx).Auth.RefreshToken.Expiration),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store refresh token: %v", err)
		return "", "", errorx.Unknown
	}

	accessToken, err := xcontext.TokenEngine(ctx).Generate(user.ID, model.AccessToken{
		ID:       user.ID,
		Username: user.Username,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return "", "", errorx.Unknown
	}

	return accessToken, refreshToken, nil
}

func accessTokenFromRequest(ctx context.Context) string {
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
