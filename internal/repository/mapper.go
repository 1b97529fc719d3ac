package repository

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartResponse "github.com/aryasetya/storefront/cart/pkg/response"
	catalogResponse "github.com/aryasetya/storefront/catalog/pkg/response"
	userResponse "github.com/aryasetya/storefront/user/pkg/response"
)

func (p Product) Response() catalogResponse.Product {
	res := catalogResponse.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description.String,
		Price:       decimal.NewFromBigInt(p.Price.Int, p.Price.Exp),
		ImageUrl:    p.ImageUrl,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		IsFeatured:  p.IsFeatured,
		Rating:      decimal.NewFromBigInt(p.Rating.Int, p.Rating.Exp),
		ReviewCount: p.ReviewCount,
		CreatedAt:   p.CreatedAt.Time,
	}
	if p.OriginalPrice.Valid {
		originalPrice := decimal.NewFromBigInt(p.OriginalPrice.Int, p.OriginalPrice.Exp)
		res.OriginalPrice = &originalPrice
	}
	if p.CategoryID.Valid {
		categoryID := uuid.UUID(p.CategoryID.Bytes)
		res.CategoryID = &categoryID
	}
	return res
}

func (c Category) Response() catalogResponse.Category {
	return catalogResponse.Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description.String,
		ImageUrl:    c.ImageUrl.String,
		CreatedAt:   c.CreatedAt.Time,
	}
}

func (i CartItem) Response() cartResponse.CartItem {
	return cartResponse.CartItem{
		ID:        i.ID,
		SessionID: i.SessionID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		CreatedAt: i.CreatedAt.Time,
	}
}

func (r FindCartItemsBySessionIdRow) Response() cartResponse.CartItemWithProduct {
	item := cartResponse.CartItemWithProduct{
		CartItem: cartResponse.CartItem{
			ID:        r.ID,
			SessionID: r.SessionID,
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
			CreatedAt: r.CreatedAt.Time,
		},
	}
	if !r.ProductID_2.Valid {
		return item
	}
	product := catalogResponse.Product{
		ID:          uuid.UUID(r.ProductID_2.Bytes),
		Name:        r.Name.String,
		Description: r.Description.String,
		Price:       decimal.NewFromBigInt(r.Price.Int, r.Price.Exp),
		ImageUrl:    r.ImageUrl.String,
		Stock:       r.Stock.Int32,
		IsActive:    r.IsActive.Bool,
		IsFeatured:  r.IsFeatured.Bool,
		Rating:      decimal.NewFromBigInt(r.Rating.Int, r.Rating.Exp),
		ReviewCount: r.ReviewCount.Int32,
		CreatedAt:   r.CreatedAt_2.Time,
	}
	if r.OriginalPrice.Valid {
		originalPrice := decimal.NewFromBigInt(r.OriginalPrice.Int, r.OriginalPrice.Exp)
		product.OriginalPrice = &originalPrice
	}
	if r.CategoryID.Valid {
		categoryID := uuid.UUID(r.CategoryID.Bytes)
		product.CategoryID = &categoryID
	}
	item.Product = &product
	return item
}

func (u User) Response() userResponse.User {
	return userResponse.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName.String,
		LastName:  u.LastName.String,
		CreatedAt: u.CreatedAt.Time,
	}
}
