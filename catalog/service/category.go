package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/aryasetya/storefront/catalog/internal/otel"
	"github.com/aryasetya/storefront/catalog/pkg/request"
	"github.com/aryasetya/storefront/catalog/pkg/response"
	inErrors "github.com/aryasetya/storefront/internal/common/errors"
	"github.com/aryasetya/storefront/internal/log"
	inOtel "github.com/aryasetya/storefront/internal/otel"
	"github.com/aryasetya/storefront/internal/repository"
)

type CategoryService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
}

func NewCategoryService(pool *pgxpool.Pool, queries *repository.Queries) CategoryService {
	return CategoryService{pool: pool, queries: queries}
}

func (svc CategoryService) InsertCategory(
	c context.Context,
	param request.Category,
) (response.Category, error) {
	c, span := otel.Tracer.Start(c, "CategoryService InsertCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CategoryService InsertCategory").
		Str(log.KeyCategorySlug, param.Slug).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "inserting category to database").Logger()
	logger.Trace().Msg("inserting category to database")
	category, err := svc.queries.InsertCategory(c, repository.InsertCategoryParams{
		ID:          uuid.New(),
		Name:        param.Name,
		Slug:        param.Slug,
		Description: pgtype.Text{String: param.Description, Valid: param.Description != ""},
		ImageUrl:    pgtype.Text{String: param.ImageUrl, Valid: param.ImageUrl != ""},
	})
	if err != nil {
		err = fmt.Errorf("failed inserting category to database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Category{}, err
	}
	logger.Info().Str(log.KeyCategoryID, category.ID.String()).Msg("inserted category to database")

	return category.Response(), nil
}

func (svc CategoryService) FindCategories(c context.Context) ([]response.Category, error) {
	c, span := otel.Tracer.Start(c, "CategoryService FindCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CategoryService FindCategories").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding categories in database").Logger()
	logger.Trace().Msg("finding categories in database")
	categories, err := svc.queries.FindCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Int(log.KeyCategories, len(categories)).Msg("found categories in database")

	res := make([]response.Category, len(categories))
	for i, category := range categories {
		res[i] = category.Response()
	}
	return res, nil
}

func (svc CategoryService) FindCategoryBySlug(
	c context.Context,
	slug string,
) (response.Category, error) {
	c, span := otel.Tracer.Start(c, "CategoryService FindCategoryBySlug")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CategoryService FindCategoryBySlug").
		Str(log.KeyCategorySlug, slug).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding category in database").Logger()
	logger.Trace().Msg("finding category in database")
	category, err := svc.queries.FindCategoryBySlug(c, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrCategoryNotFound
			inOtel.RecordError(err, span)
			logger.Info().Err(err).Msg(err.Error())
			return response.Category{}, err
		}
		err = fmt.Errorf("failed finding category with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Category{}, err
	}
	logger.Info().Msg("found category in database")

	return category.Response(), nil
}
