package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	ImageUrl      string           `json:"image_url"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	Stock         int32            `json:"stock"`
	IsActive      bool             `json:"is_active"`
	IsFeatured    bool             `json:"is_featured"`
	Rating        decimal.Decimal  `json:"rating"`
	ReviewCount   int32            `json:"review_count"`
	CreatedAt     time.Time        `json:"created_at"`
}
