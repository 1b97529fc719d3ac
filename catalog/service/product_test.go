package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryasetya/storefront/catalog/internal/cache"
	"github.com/aryasetya/storefront/catalog/pkg/request"
	inErrors "github.com/aryasetya/storefront/internal/common/errors"
)

var (
	headphonesID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	electronicsID   = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	retiredGadgetID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

func TestFindProductsExcludesInactive(t *testing.T) {
	c := context.Background()
	deps := setup(t, c)
	defer teardown(t, deps)

	products, err := deps.products.FindProducts(c, request.FindProducts{Limit: 20})
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, product := range products {
		assert.True(t, product.IsActive)
		assert.NotEqualValues(t, retiredGadgetID, product.ID)
	}
}

func TestFindProductsFeatured(t *testing.T) {
	c := context.Background()
	deps := setup(t, c)
	defer teardown(t, deps)

	products, err := deps.products.FindProducts(c, request.FindProducts{Featured: true, Limit: 20})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.EqualValues(t, headphonesID, products[0].ID)
}

func TestFindProductsSearch(t *testing.T) {
	c := context.Background()
	deps := setup(t, c)
	defer teardown(t, deps)

	products, err := deps.products.FindProducts(c, request.FindProducts{Search: "novel", Limit: 20})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.EqualValues(t, "The Great Novel", products[0].Name)
}

func TestFindProductsByCategory(t *testing.T) {
	c := context.Background()
	deps := setup(t, c)
	defer teardown(t, deps)

	products, err := deps.products.FindProducts(c, request.FindProducts{
		CategoryID: uuid.NullUUID{UUID: electronicsID, Valid: true},
		Limit:      20,
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, product := range products {
		require.NotNil(t, product.CategoryID)
		assert.EqualValues(t, electronicsID, *product.CategoryID)
	}
}

func TestFindProductByIdFillsCache(t *testing.T) {
	c := context.Background()
	deps := setup(t, c)
	defer teardown(t, deps)

	first, err := deps.products.FindProductById(c, headphonesID)
	require.NoError(t, err)
	assert.EqualValues(t, headphonesID, first.ID)

	cached, err := deps.cache.JSONGet(c, cache.KeyProducts+headphonesID.String(), "$").Result()
	require.NoError(t, err)
	assert.NotEmpty(t, cached)

	second, err := deps.products.FindProductById(c, headphonesID)
	require.NoError(t, err)
	assert.EqualValues(t, first.ID, second.ID)
	assert.True(t, first.Price.Equal(second.Price))
}

func TestFindProductByIdNotFound(t *testing.T) {
	c := context.Background()
	deps := setup(t, c)
	defer teardown(t, deps)

	_, err := deps.products.FindProductById(c, uuid.New())
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestFindProductByIdInactiveIsNotFound(t *testing.T) {
	c := context.Background()
	deps := setup(t, c)
	defer teardown(t, deps)

	_, err := deps.products.FindProductById(c, retiredGadgetID)
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestInsertProductFillsCache(t *testing.T) {
	c := context.Background()
	deps := setup(t, c)
	defer teardown(t, deps)

	created, err := deps.products.InsertProduct(c, request.Product{
		Name:        "Smart Fitness Watch",
		Description: "Track your health and stay connected",
		Price:       decimal.RequireFromString("299.99"),
		ImageUrl:    "https://example.com/watch.jpg",
		CategoryID:  uuid.NullUUID{UUID: electronicsID, Valid: true},
		Stock:       75,
		IsFeatured:  true,
		Rating:      decimal.RequireFromString("4.3"),
		ReviewCount: 127,
	})
	require.NoError(t, err)

	cached, err := deps.cache.JSONGet(c, cache.KeyProducts+created.ID.String(), "$").Result()
	require.NoError(t, err)
	assert.NotEmpty(t, cached)

	found, err := deps.products.FindProductById(c, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, created.ID, found.ID)
	assert.True(t, created.Price.Equal(found.Price))
}

func TestInsertCategory(t *testing.T) {
	c := context.Background()
	deps := setup(t, c)
	defer teardown(t, deps)

	created, err := deps.categories.InsertCategory(c, request.Category{
		Name:        "Beauty",
		Slug:        "beauty",
		Description: "Beauty and cosmetics",
		ImageUrl:    "https://example.com/beauty.jpg",
	})
	require.NoError(t, err)

	found, err := deps.categories.FindCategoryBySlug(c, "beauty")
	require.NoError(t, err)
	assert.EqualValues(t, created.ID, found.ID)
}

func TestFindCategories(t *testing.T) {
	c := context.Background()
	deps := setup(t, c)
	defer teardown(t, deps)

	categories, err := deps.categories.FindCategories(c)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.EqualValues(t, "Books", categories[0].Name)
	assert.EqualValues(t, "Electronics", categories[1].Name)
}

func TestFindCategoryBySlug(t *testing.T) {
	c := context.Background()
	deps := setup(t, c)
	defer teardown(t, deps)

	category, err := deps.categories.FindCategoryBySlug(c, "electronics")
	require.NoError(t, err)
	assert.EqualValues(t, electronicsID, category.ID)

	_, err = deps.categories.FindCategoryBySlug(c, "missing")
	assert.ErrorIs(t, err, inErrors.ErrCategoryNotFound)
}
