package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quotelane/backend/internal/common"
	"github.com/quotelane/backend/internal/entity"
	"github.com/quotelane/backend/internal/model"
	"github.com/quotelane/backend/internal/repository"
	"github.com/quotelane/backend/pkg/errorx"
	"github.com/quotelane/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const defaultQuoteAuthor = "Anonymous"

type QuoteDomain interface {
	Create(context.Context, *model.CreateQuoteRequest) (*model.CreateQuoteResponse, error)
	Get(context.Context, *model.GetQuoteRequest) (*model.GetQuoteResponse, error)
	GetList(context.Context, *model.GetQuotesRequest) (*model.GetQuotesResponse, error)
	Update(context.Context, *model.UpdateQuoteRequest) (*model.UpdateQuoteResponse, error)
	Delete(context.Context, *model.DeleteQuoteRequest) (*model.DeleteQuoteResponse, error)
}

type quoteDomain struct {
	userRepo    repository.UserRepository
	quoteRepo   repository.QuoteRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
}

func NewQuoteDomain(
	userRepo repository.UserRepository,
	quoteRepo repository.QuoteRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
) *quoteDomain {
	return &quoteDomain{
		userRepo:    userRepo,
		quoteRepo:   quoteRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

func (d *quoteDomain) Create(
	ctx context.Context, req *model.CreateQuoteRequest,
) (*model.CreateQuoteResponse, error) {
	text := common.SanitizeText(req.Text)
	if text == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty quote text")
	}

	author := common.SanitizeText(req.Author)
	if author == "" {
		author = defaultQuoteAuthor
	}

	_, err := d.quoteRepo.GetByText(ctx, text)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Quote already exists")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get quote by text: %v", err)
		return nil, errorx.Unknown
	}

	requestUserID := xcontext.RequestUserID(ctx)
	owner, err := d.userRepo.GetByID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	quote := &entity.Quote{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: owner.ID,
		Text:   text,
		Author: author,
		Tags:   req.Tags,
	}

	if err := d.quoteRepo.Create(ctx, quote); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create quote: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateQuoteResponse{
		Quote: model.ConvertQuote(quote, owner, 0, false, nil),
	}, nil
}

func (d *quoteDomain) Get(
	ctx context.Context, req *model.GetQuoteRequest,
) (*model.GetQuoteResponse, error) {
	quote, err := d.quoteRepo.GetByID(ctx, req.QuoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quote")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quote: %v", err)
		return nil, errorx.Unknown
	}

	owner, err := d.userRepo.GetByID(ctx, quote.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quote owner: %v", err)
		return nil, errorx.Unknown
	}

	likesCount, err := d.likeRepo.Count(ctx, quote.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes: %v", err)
		return nil, errorx.Unknown
	}

	liked := false
	if requestUserID := xcontext.RequestUserID(ctx); requestUserID != "" {
		_, err := d.likeRepo.Get(ctx, requestUserID, quote.ID)
		switch {
		case err == nil:
			liked = true
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			xcontext.Logger(ctx).Errorf("Cannot get like: %v", err)
			return nil, errorx.Unknown
		}
	}

	comments, err := d.convertComments(ctx, quote.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetQuoteResponse{
		Quote: model.ConvertQuote(quote, owner, likesCount, liked, comments),
	}, nil
}

func (d *quoteDomain) GetList(
	ctx context.Context, req *model.GetQuotesRequest,
) (*model.GetQuotesResponse, error) {
	quotes, err := d.quoteRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quotes: %v", err)
		return nil, errorx.Unknown
	}

	ownerIDs := []string{}
	for i := range quotes {
		ownerIDs = append(ownerIDs, quotes[i].UserID)
	}

	owners, err := d.userRepo.GetByIDs(ctx, ownerIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quote owners: %v", err)
		return nil, errorx.Unknown
	}

	ownerMap := map[string]*entity.User{}
	for i := range owners {
		ownerMap[owners[i].ID] = &owners[i]
	}

	requestUserID := xcontext.RequestUserID(ctx)
	clientQuotes := []model.Quote{}
	for i := range quotes {
		likesCount, err := d.likeRepo.Count(ctx, quotes[i].ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count likes: %v", err)
			return nil, errorx.Unknown
		}

		liked := false
		if requestUserID != "" {
			if _, err := d.likeRepo.Get(ctx, requestUserID, quotes[i].ID); err == nil {
				liked = true
			}
		}

		clientQuotes = append(clientQuotes,
			model.ConvertQuote(&quotes[i], ownerMap[quotes[i].UserID], likesCount, liked, nil))
	}

	return &model.GetQuotesResponse{Quotes: clientQuotes}, nil
}

func (d *quoteDomain) Update(
	ctx context.Context, req *model.UpdateQuoteRequest,
) (*model.UpdateQuoteResponse, error) {
	quote, err := d.quoteRepo.GetByID(ctx, req.QuoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quote")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quote: %v", err)
		return nil, errorx.Unknown
	}

	// Only the owning user can edit, even though anyone can engage.
	requestUserID := xcontext.RequestUserID(ctx)
	if quote.UserID != requestUserID {
		return nil, errorx.New(errorx.PermissionDenied, "Only the owner can update this quote")
	}

	text := common.SanitizeText(req.Text)
	if text == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty quote text")
	}

	quote.Text = text
	if author := common.SanitizeText(req.Author); author != "" {
		quote.Author = author
	}
	if req.Tags != nil {
		quote.Tags = req.Tags
	}

	if err := d.quoteRepo.Update(ctx, quote); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update quote: %v", err)
		return nil, errorx.Unknown
	}

	owner, err := d.userRepo.GetByID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	likesCount, err := d.likeRepo.Count(ctx, quote.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateQuoteResponse{
		Quote: model.ConvertQuote(quote, owner, likesCount, false, nil),
	}, nil
}

func (d *quoteDomain) Delete(
	ctx context.Context, req *model.DeleteQuoteRequest,
) (*model.DeleteQuoteResponse, error) {
	quote, err := d.quoteRepo.GetByID(ctx, req.QuoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quote")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quote: %v", err)
		return nil, errorx.Unknown
	}

	if quote.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the owner can delete this quote")
	}

	if err := d.quoteRepo.Delete(ctx, quote.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete quote: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteQuoteResponse{}, nil
}

func (d *quoteDomain) convertComments(ctx context.Context, quoteID string) ([]model.Comment, error) {
	comments, err := d.commentRepo.GetListByQuoteID(ctx, quoteID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comments: %v", err)
		return nil, errorx.Unknown
	}

	authorIDs := []string{}
	for i := range comments {
		authorIDs = append(authorIDs, comments[i].UserID)
	}

	authors, err := d.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comment authors: %v", err)
		return nil, errorx.Unknown
	}

	authorMap := map[string]*entity.User{}
	for i := range authors {
		authorMap[authors[i].ID] = &authors[i]
	}

	clientComments := []model.Comment{}
	for i := range comments {
		clientComments = append(clientComments,
			model.ConvertComment(&comments[i], authorMap[comments[i].UserID]))
	}

	return clientComments, nil
}
