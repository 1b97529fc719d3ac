package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const productColumns = `id, name, description, price, original_price, image_url, category_id, stock, is_active, is_featured, rating, review_count, created_at`

func scanProduct(row interface{ Scan(dest ...interface{}) error }) (Product, error) {
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.OriginalPrice,
		&i.ImageUrl,
		&i.CategoryID,
		&i.Stock,
		&i.IsActive,
		&i.IsFeatured,
		&i.Rating,
		&i.ReviewCount,
		&i.CreatedAt,
	)
	return i, err
}

const findProducts = `-- name: FindProducts :many
SELECT ` + productColumns + `
FROM products
WHERE is_active = TRUE
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

type FindProductsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) FindProducts(ctx context.Context, arg FindProductsParams) ([]Product, error) {
	rows, err := q.db.Query(ctx, findProducts, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		i, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findProductById = `-- name: FindProductById :one
SELECT ` + productColumns + `
FROM products
WHERE id = $1 AND is_active = TRUE
`

func (q *Queries) FindProductById(ctx context.Context, id uuid.UUID) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, findProductById, id))
}

const findProductsByCategoryId = `-- name: FindProductsByCategoryId :many
SELECT ` + productColumns + `
FROM products
WHERE category_id = $1 AND is_active = TRUE
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type FindProductsByCategoryIdParams struct {
	CategoryID pgtype.UUID
	Limit      int32
	Offset     int32
}

func (q *Queries) FindProductsByCategoryId(
	ctx context.Context,
	arg FindProductsByCategoryIdParams,
) ([]Product, error) {
	rows, err := q.db.Query(ctx, findProductsByCategoryId, arg.CategoryID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		i, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findFeaturedProducts = `-- name: FindFeaturedProducts :many
SELECT ` + productColumns + `
FROM products
WHERE is_featured = TRUE AND is_active = TRUE
ORDER BY created_at DESC
LIMIT $1
`

func (q *Queries) FindFeaturedProducts(ctx context.Context, limit int32) ([]Product, error) {
	rows, err := q.db.Query(ctx, findFeaturedProducts, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		i, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const searchProducts = `-- name: SearchProducts :many
SELECT ` + productColumns + `
FROM products
WHERE is_active = TRUE
  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type SearchProductsParams struct {
	Query  string
	Limit  int32
	Offset int32
}

func (q *Queries) SearchProducts(ctx context.Context, arg SearchProductsParams) ([]Product, error) {
	rows, err := q.db.Query(ctx, searchProducts, arg.Query, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		i, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertProduct = `-- name: InsertProduct :one
INSERT INTO products (id, name, description, price, original_price, image_url, category_id, stock, is_featured, rating, review_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + productColumns + `
`

type InsertProductParams struct {
	ID            uuid.UUID
	Name          string
	Description   pgtype.Text
	Price         pgtype.Numeric
	OriginalPrice pgtype.Numeric
	ImageUrl      string
	CategoryID    pgtype.UUID
	Stock         int32
	IsFeatured    bool
	Rating        pgtype.Numeric
	ReviewCount   int32
}

func (q *Queries) InsertProduct(ctx context.Context, arg InsertProductParams) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, insertProduct,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.OriginalPrice,
		arg.ImageUrl,
		arg.CategoryID,
		arg.Stock,
		arg.IsFeatured,
		arg.Rating,
		arg.ReviewCount,
	))
}
