package repository

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Password  string
	FirstName pgtype.Text
	LastName  pgtype.Text
	CreatedAt pgtype.Timestamptz
}

type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description pgtype.Text
	ImageUrl    pgtype.Text
	CreatedAt   pgtype.Timestamptz
}

type Product struct {
	ID            uuid.UUID
	Name          string
	Description   pgtype.Text
	Price         pgtype.Numeric
	OriginalPrice pgtype.Numeric
	ImageUrl      string
	CategoryID    pgtype.UUID
	Stock         int32
	IsActive      bool
	IsFeatured    bool
	Rating        pgtype.Numeric
	ReviewCount   int32
	CreatedAt     pgtype.Timestamptz
}

type CartItem struct {
	ID        uuid.UUID
	SessionID string
	ProductID uuid.UUID
	Quantity  int32
	CreatedAt pgtype.Timestamptz
}
