package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findCategories = `-- name: FindCategories :many
SELECT id, name, slug, description, image_url, created_at
FROM categories
ORDER BY name
`

func (q *Queries) FindCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.Query(ctx, findCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Category{}
	for rows.Next() {
		var i Category
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Slug,
			&i.Description,
			&i.ImageUrl,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findCategoryBySlug = `-- name: FindCategoryBySlug :one
SELECT id, name, slug, description, image_url, created_at
FROM categories
WHERE slug = $1
`

func (q *Queries) FindCategoryBySlug(ctx context.Context, slug string) (Category, error) {
	row := q.db.QueryRow(ctx, findCategoryBySlug, slug)
	var i Category
	err := row.Scan(&i.ID, &i.Name, &i.Slug, &i.Description, &i.ImageUrl, &i.CreatedAt)
	return i, err
}

const insertCategory = `-- name: InsertCategory :one
INSERT INTO categories (id, name, slug, description, image_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, slug, description, image_url, created_at
`

type InsertCategoryParams struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description pgtype.Text
	ImageUrl    pgtype.Text
}

func (q *Queries) InsertCategory(ctx context.Context, arg InsertCategoryParams) (Category, error) {
	row := q.db.QueryRow(ctx, insertCategory,
		arg.ID,
		arg.Name,
		arg.Slug,
		arg.Description,
		arg.ImageUrl,
	)
	var i Category
	err := row.Scan(&i.ID, &i.Name, &i.Slug, &i.Description, &i.ImageUrl, &i.CreatedAt)
	return i, err
}
