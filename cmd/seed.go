package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/aryasetya/storefront/internal/common/constants"
	"github.com/aryasetya/storefront/internal/config"
	"github.com/aryasetya/storefront/internal/infra"
	"github.com/aryasetya/storefront/internal/log"
	"github.com/aryasetya/storefront/internal/repository"
)

type seedCategory struct {
	name        string
	slug        string
	description string
	imageUrl    string
}

type seedProduct struct {
	name          string
	description   string
	price         string
	originalPrice string
	imageUrl      string
	categorySlug  string
	stock         int32
	isFeatured    bool
	rating        string
	reviewCount   int32
}

var seedCategories = []seedCategory{
	{
		name:        "Electronics",
		slug:        "electronics",
		description: "Latest electronic devices and gadgets",
		imageUrl:    "https://images.unsplash.com/photo-1498049794561-7780e7231661?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		name:        "Fashion",
		slug:        "fashion",
		description: "Trendy clothing and accessories",
		imageUrl:    "https://images.unsplash.com/photo-1445205170230-053b83016050?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		name:        "Home & Garden",
		slug:        "home-garden",
		description: "Everything for your home and garden",
		imageUrl:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		name:        "Sports",
		slug:        "sports",
		description: "Sports and fitness equipment",
		imageUrl:    "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		name:        "Books",
		slug:        "books",
		description: "Books and literature",
		imageUrl:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
	{
		name:        "Beauty",
		slug:        "beauty",
		description: "Beauty and cosmetics",
		imageUrl:    "https://images.unsplash.com/photo-1596462502278-27bfdc403348?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
	},
}

var seedProducts = []seedProduct{
	{
		name:          "Premium Wireless Headphones",
		description:   "High-quality sound with active noise cancellation",
		price:         "199.99",
		originalPrice: "249.99",
		imageUrl:      "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		categorySlug:  "electronics",
		stock:         50,
		isFeatured:    true,
		rating:        "4.8",
		reviewCount:   156,
	},
	{
		name:         "Latest Smartphone Pro",
		description:  "Advanced camera system and lightning-fast performance",
		price:        "899.00",
		imageUrl:     "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		categorySlug: "electronics",
		stock:        30,
		isFeatured:   true,
		rating:       "4.5",
		reviewCount:  89,
	},
	{
		name:          "Professional Laptop Pro",
		description:   "High-performance laptop for creative professionals",
		price:         "1299.00",
		originalPrice: "1499.00",
		imageUrl:      "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		categorySlug:  "electronics",
		stock:         25,
		isFeatured:    true,
		rating:        "4.9",
		reviewCount:   234,
	},
	{
		name:         "Smart Fitness Watch",
		description:  "Track your health and stay connected",
		price:        "299.99",
		imageUrl:     "https://images.unsplash.com/photo-1523275335684-37898b6baf30?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		categorySlug: "electronics",
		stock:        75,
		isFeatured:   true,
		rating:       "4.3",
		reviewCount:  127,
	},
	{
		name:         "Wireless Gaming Mouse",
		description:  "High-precision gaming mouse with RGB lighting",
		price:        "79.99",
		imageUrl:     "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		categorySlug: "electronics",
		stock:        100,
		rating:       "4.6",
		reviewCount:  92,
	},
	{
		name:         "Designer T-Shirt",
		description:  "Premium cotton t-shirt with modern design",
		price:        "39.99",
		imageUrl:     "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		categorySlug: "fashion",
		stock:        200,
		rating:       "4.2",
		reviewCount:  45,
	},
	{
		name:         "Yoga Mat Pro",
		description:  "Non-slip yoga mat for all skill levels",
		price:        "49.99",
		imageUrl:     "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		categorySlug: "sports",
		stock:        80,
		rating:       "4.7",
		reviewCount:  73,
	},
	{
		name:         "The Great Novel",
		description:  "Bestselling fiction novel of the year",
		price:        "19.99",
		imageUrl:     "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400",
		categorySlug: "books",
		stock:        150,
		rating:       "4.8",
		reviewCount:  312,
	},
}

// RunSeeder fills an empty catalog with sample categories and products. It is a
// no-op when categories already exist, so rerunning it is safe.
func RunSeeder(c context.Context) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, constants.AppSeeder).
		Str(log.KeyTag, "main RunSeeder").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "init config").Logger()
	logger.Info().Msg("initializing config")
	c = logger.WithContext(c)
	cfg := config.InitConfig(c, constants.AppStorefront)
	logger.Info().Msg("initialized config")

	logger = logger.With().Str(log.KeyProcess, "initializing database").Logger()
	logger.Info().Msg("initializing database")
	c = logger.WithContext(c)
	db := infra.NewDatabaseClient(c, cfg.Database)
	defer db.Close()
	logger.Info().Msg("initialized database")

	queries := repository.New(db)

	logger = logger.With().Str(log.KeyProcess, "checking existing categories").Logger()
	existing, err := queries.FindCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		logger.Fatal().Err(err).Msg(err.Error())
	}
	if len(existing) > 0 {
		logger.Info().
			Int(log.KeyCategories, len(existing)).
			Msg("categories already exist, skipping seed")
		return
	}

	logger = logger.With().Str(log.KeyProcess, "seeding categories").Logger()
	categoryIds := map[string]uuid.UUID{}
	for _, sc := range seedCategories {
		category, err := queries.InsertCategory(c, repository.InsertCategoryParams{
			ID:          uuid.New(),
			Name:        sc.name,
			Slug:        sc.slug,
			Description: pgtype.Text{String: sc.description, Valid: true},
			ImageUrl:    pgtype.Text{String: sc.imageUrl, Valid: true},
		})
		if err != nil {
			err = fmt.Errorf("failed inserting category=%s with error=%w", sc.slug, err)
			logger.Fatal().Err(err).Msg(err.Error())
		}
		categoryIds[sc.slug] = category.ID
		logger.Info().Str(log.KeyCategorySlug, sc.slug).Msg("inserted category")
	}

	logger = logger.With().Str(log.KeyProcess, "seeding products").Logger()
	for _, sp := range seedProducts {
		price := decimal.RequireFromString(sp.price)
		rating := decimal.RequireFromString(sp.rating)
		param := repository.InsertProductParams{
			ID:          uuid.New(),
			Name:        sp.name,
			Description: pgtype.Text{String: sp.description, Valid: true},
			Price:       numericFromDecimal(price),
			ImageUrl:    sp.imageUrl,
			CategoryID:  pgtype.UUID{Bytes: categoryIds[sp.categorySlug], Valid: true},
			Stock:       sp.stock,
			IsFeatured:  sp.isFeatured,
			Rating:      numericFromDecimal(rating),
			ReviewCount: sp.reviewCount,
		}
		if sp.originalPrice != "" {
			param.OriginalPrice = numericFromDecimal(decimal.RequireFromString(sp.originalPrice))
		}
		product, err := queries.InsertProduct(c, param)
		if err != nil {
			err = fmt.Errorf("failed inserting product=%s with error=%w", sp.name, err)
			logger.Fatal().Err(err).Msg(err.Error())
		}
		logger.Info().Str(log.KeyProductID, product.ID.String()).Msg("inserted product")
	}

	logger.Info().
		Int(log.KeyCategories, len(seedCategories)).
		Int(log.KeyProducts, len(seedProducts)).
		Msg("seeded sample data")
}

func numericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:              d.Coefficient(),
		Exp:              d.Exponent(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}
