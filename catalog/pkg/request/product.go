package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the admin-style creation payload.
type Product struct {
	Name          string           `validate:"required"                json:"name"`
	Description   string           `validate:"omitempty"               json:"description"`
	Price         decimal.Decimal  `validate:"required"                json:"price"`
	OriginalPrice *decimal.Decimal `validate:"omitempty"               json:"originalPrice"`
	ImageUrl      string           `validate:"required,url"            json:"imageUrl"`
	CategoryID    uuid.NullUUID    `validate:"-"                       json:"categoryId"`
	Stock         int32            `validate:"gte=0"                   json:"stock"`
	IsFeatured    bool             `validate:"-"                       json:"isFeatured"`
	Rating        decimal.Decimal  `validate:"-"                       json:"rating"`
	ReviewCount   int32            `validate:"gte=0"                   json:"reviewCount"`
}

type Category struct {
	Name        string `validate:"required" json:"name"`
	Slug        string `validate:"required" json:"slug"`
	Description string `validate:"omitempty" json:"description"`
	ImageUrl    string `validate:"omitempty,url" json:"imageUrl"`
}

// FindProducts narrows the product listing. At most one of CategoryID, Search
// and Featured is honored; they are checked in that order of precedence:
// featured first, then search, then category.
type FindProducts struct {
	CategoryID uuid.NullUUID `validate:"-"                json:"categoryId"`
	Search     string        `validate:"omitempty,max=100" json:"search"`
	Featured   bool          `validate:"-"                json:"featured"`
	Limit      int32         `validate:"gte=1,lte=100"     json:"limit"`
	Offset     int32         `validate:"gte=0"             json:"offset"`
}
