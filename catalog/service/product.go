package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/aryasetya/storefront/catalog/internal/cache"
	"github.com/aryasetya/storefront/catalog/internal/otel"
	"github.com/aryasetya/storefront/catalog/pkg/request"
	"github.com/aryasetya/storefront/catalog/pkg/response"
	inErrors "github.com/aryasetya/storefront/internal/common/errors"
	"github.com/aryasetya/storefront/internal/log"
	inOtel "github.com/aryasetya/storefront/internal/otel"
	"github.com/aryasetya/storefront/internal/repository"
)

type ProductService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewProductService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) ProductService {
	return ProductService{pool: pool, queries: queries, cache: cache}
}

func numericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:              d.Coefficient(),
		Exp:              d.Exponent(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}

// InsertProduct stores a new product and fills the by-id cache so a follow-up
// read is served from it.
func (svc ProductService) InsertProduct(
	c context.Context,
	param request.Product,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService InsertProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "inserting product to database").Logger()
	logger.Trace().Msg("inserting product to database")
	insertParam := repository.InsertProductParams{
		ID:          uuid.New(),
		Name:        param.Name,
		Description: pgtype.Text{String: param.Description, Valid: param.Description != ""},
		Price:       numericFromDecimal(param.Price),
		ImageUrl:    param.ImageUrl,
		Stock:       param.Stock,
		IsFeatured:  param.IsFeatured,
		Rating:      numericFromDecimal(param.Rating),
		ReviewCount: param.ReviewCount,
	}
	if param.OriginalPrice != nil {
		insertParam.OriginalPrice = numericFromDecimal(*param.OriginalPrice)
	}
	if param.CategoryID.Valid {
		insertParam.CategoryID = pgtype.UUID{Bytes: param.CategoryID.UUID, Valid: true}
	}
	product, err := svc.queries.InsertProduct(c, insertParam)
	if err != nil {
		err = fmt.Errorf("failed inserting product to database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	res := product.Response()
	logger = logger.With().Str(log.KeyProductID, res.ID.String()).Logger()
	logger.Info().Msg("inserted product to database")

	cacheKey := cache.KeyProducts + res.ID.String()
	logger = logger.With().
		Str(log.KeyProcess, "inserting product to cache").
		Str(log.KeyCacheKey, cacheKey).
		Logger()
	logger.Trace().Msg("inserting product to cache")
	if err := svc.cache.JSONSet(c, cacheKey, "$", res).Err(); err != nil {
		err = fmt.Errorf("failed inserting product to cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return res, nil
	}
	logger.Info().Msg("inserted product to cache")

	return res, nil
}

// FindProducts lists active products. Featured takes precedence over search,
// search over category; with none of them set it pages through the whole
// active catalog, newest first.
func (svc ProductService) FindProducts(
	c context.Context,
	param request.FindProducts,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products in database").Logger()
	logger.Trace().Msg("finding products in database")

	var products []repository.Product
	var err error
	switch {
	case param.Featured:
		products, err = svc.queries.FindFeaturedProducts(c, param.Limit)
	case param.Search != "":
		logger = logger.With().Str(log.KeySearch, param.Search).Logger()
		products, err = svc.queries.SearchProducts(c, repository.SearchProductsParams{
			Query:  param.Search,
			Limit:  param.Limit,
			Offset: param.Offset,
		})
	case param.CategoryID.Valid:
		logger = logger.With().Str(log.KeyCategoryID, param.CategoryID.UUID.String()).Logger()
		products, err = svc.queries.FindProductsByCategoryId(
			c,
			repository.FindProductsByCategoryIdParams{
				CategoryID: pgtype.UUID{Bytes: param.CategoryID.UUID, Valid: true},
				Limit:      param.Limit,
				Offset:     param.Offset,
			},
		)
	default:
		products, err = svc.queries.FindProducts(c, repository.FindProductsParams{
			Limit:  param.Limit,
			Offset: param.Offset,
		})
	}
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Int(log.KeyProducts, len(products)).Msg("found products in database")

	res := make([]response.Product, len(products))
	for i, product := range products {
		res[i] = product.Response()
	}
	return res, nil
}

// FindProductById checks the cache first and falls back to the database on a
// miss, filling the cache before returning. An inactive or missing product is
// ErrProductNotFound.
func (svc ProductService) FindProductById(
	c context.Context,
	id uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	cacheKey := cache.KeyProducts + id.String()
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProductById").
		Str(log.KeyProductID, id.String()).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in cache").Logger()
	logger.Trace().Msg("finding product in cache")
	jsonCache, err := svc.cache.JSONGet(c, cacheKey, "$").Result()
	if err == nil && jsonCache != "" {
		logger = logger.With().Str(log.KeyJsonCache, jsonCache).Logger()
		logger.Debug().Msg("found product in cache")

		products := []response.Product{}
		if err := json.Unmarshal([]byte(jsonCache), &products); err != nil {
			err = fmt.Errorf("failed unmarshalling jsonCache with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Product{}, err
		}
		if len(products) > 0 {
			logger.Info().Msg("found product in cache")
			return products[0], nil
		}
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Info().Err(err).Msg("failed finding product in cache")
	}

	logger = logger.With().Str(log.KeyProcess, "finding product in database").Logger()
	logger.Trace().Msg("finding product in database")
	product, err := svc.queries.FindProductById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrProductNotFound
			inOtel.RecordError(err, span)
			logger.Info().Err(err).Msg(err.Error())
			return response.Product{}, err
		}
		err = fmt.Errorf("failed finding product in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	res := product.Response()
	logger = logger.With().Any(log.KeyProduct, res).Logger()
	logger.Info().Msg("found product in database")

	logger = logger.With().Str(log.KeyProcess, "inserting product to cache").Logger()
	logger.Trace().Msg("inserting product to cache")
	if err := svc.cache.JSONSet(c, cacheKey, "$", res).Err(); err != nil {
		err = fmt.Errorf("failed inserting product to cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return res, nil
	}
	logger.Info().Msg("inserted product to cache")

	return res, nil
}
