package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findCartItemsBySessionId = `-- name: FindCartItemsBySessionId :many
SELECT ci.id,
       ci.session_id,
       ci.product_id,
       ci.quantity,
       ci.created_at,
       p.id AS product_id_2,
       p.name,
       p.description,
       p.price,
       p.original_price,
       p.image_url,
       p.category_id,
       p.stock,
       p.is_active,
       p.is_featured,
       p.rating,
       p.review_count,
       p.created_at AS created_at_2
FROM cart_items ci
LEFT JOIN products p ON p.id = ci.product_id AND p.is_active = TRUE
WHERE ci.session_id = $1
ORDER BY ci.created_at, ci.id
`

type FindCartItemsBySessionIdRow struct {
	ID            uuid.UUID
	SessionID     string
	ProductID     uuid.UUID
	Quantity      int32
	CreatedAt     pgtype.Timestamptz
	ProductID_2   pgtype.UUID
	Name          pgtype.Text
	Description   pgtype.Text
	Price         pgtype.Numeric
	OriginalPrice pgtype.Numeric
	ImageUrl      pgtype.Text
	CategoryID    pgtype.UUID
	Stock         pgtype.Int4
	IsActive      pgtype.Bool
	IsFeatured    pgtype.Bool
	Rating        pgtype.Numeric
	ReviewCount   pgtype.Int4
	CreatedAt_2   pgtype.Timestamptz
}

func (q *Queries) FindCartItemsBySessionId(
	ctx context.Context,
	sessionID string,
) ([]FindCartItemsBySessionIdRow, error) {
	rows, err := q.db.Query(ctx, findCartItemsBySessionId, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []FindCartItemsBySessionIdRow{}
	for rows.Next() {
		var i FindCartItemsBySessionIdRow
		if err := rows.Scan(
			&i.ID,
			&i.SessionID,
			&i.ProductID,
			&i.Quantity,
			&i.CreatedAt,
			&i.ProductID_2,
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
			&i.CreatedAt_2,
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

const upsertCartItem = `-- name: UpsertCartItem :one
INSERT INTO cart_items (id, session_id, product_id, quantity)
VALUES ($1, $2, $3, $4)
ON CONFLICT (session_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
RETURNING id, session_id, product_id, quantity, created_at
`

type UpsertCartItemParams struct {
	ID        uuid.UUID
	SessionID string
	ProductID uuid.UUID
	Quantity  int32
}

// UpsertCartItem merges quantity atomically: a repeat add for the same
// (session_id, product_id) pair accumulates onto the existing row instead of
// creating a second one, even under concurrent adds.
func (q *Queries) UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, upsertCartItem,
		arg.ID,
		arg.SessionID,
		arg.ProductID,
		arg.Quantity,
	)
	var i CartItem
	err := row.Scan(&i.ID, &i.SessionID, &i.ProductID, &i.Quantity, &i.CreatedAt)
	return i, err
}

const updateCartItemQuantity = `-- name: UpdateCartItemQuantity :one
UPDATE cart_items
SET quantity = $3
WHERE session_id = $1 AND product_id = $2
RETURNING id, session_id, product_id, quantity, created_at
`

type UpdateCartItemQuantityParams struct {
	SessionID string
	ProductID uuid.UUID
	Quantity  int32
}

func (q *Queries) UpdateCartItemQuantity(
	ctx context.Context,
	arg UpdateCartItemQuantityParams,
) (CartItem, error) {
	row := q.db.QueryRow(ctx, updateCartItemQuantity, arg.SessionID, arg.ProductID, arg.Quantity)
	var i CartItem
	err := row.Scan(&i.ID, &i.SessionID, &i.ProductID, &i.Quantity, &i.CreatedAt)
	return i, err
}

const deleteCartItem = `-- name: DeleteCartItem :exec
DELETE FROM cart_items
WHERE session_id = $1 AND product_id = $2
`

type DeleteCartItemParams struct {
	SessionID string
	ProductID uuid.UUID
}

func (q *Queries) DeleteCartItem(ctx context.Context, arg DeleteCartItemParams) error {
	_, err := q.db.Exec(ctx, deleteCartItem, arg.SessionID, arg.ProductID)
	return err
}

const deleteCartItemsBySessionId = `-- name: DeleteCartItemsBySessionId :exec
DELETE FROM cart_items
WHERE session_id = $1
`

func (q *Queries) DeleteCartItemsBySessionId(ctx context.Context, sessionID string) error {
	_, err := q.db.Exec(ctx, deleteCartItemsBySessionId, sessionID)
	return err
}
