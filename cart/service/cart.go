package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/aryasetya/storefront/cart/internal/otel"
	"github.com/aryasetya/storefront/cart/pkg/request"
	"github.com/aryasetya/storefront/cart/pkg/response"
	inErrors "github.com/aryasetya/storefront/internal/common/errors"
	"github.com/aryasetya/storefront/internal/log"
	inOtel "github.com/aryasetya/storefront/internal/otel"
	"github.com/aryasetya/storefront/internal/repository"
)

// CartService aggregates cart rows with their products and owns the
// merge-on-add semantics. The session id is an opaque key; the service never
// inspects it.
type CartService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
}

func NewCartService(pool *pgxpool.Pool, queries *repository.Queries) CartService {
	return CartService{pool: pool, queries: queries}
}

// ListItems returns every cart row for the session left-joined with its
// product, in insertion order. Rows whose product has been deleted or
// deactivated come back with a nil product rather than failing the call.
func (svc CartService) ListItems(
	c context.Context,
	sessionID string,
) ([]response.CartItemWithProduct, error) {
	c, span := otel.Tracer.Start(c, "CartService ListItems")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ListItems").
		Str(log.KeySessionID, sessionID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart items in database").Logger()
	logger.Trace().Msg("finding cart items in database")
	rows, err := svc.queries.FindCartItemsBySessionId(c, sessionID)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Int(log.KeyCartItems, len(rows)).Msg("found cart items in database")

	items := make([]response.CartItemWithProduct, len(rows))
	for i, row := range rows {
		items[i] = row.Response()
	}
	return items, nil
}

// AddItem merges the given quantity into the session's cart. A repeat add for
// a product already in the cart accumulates onto the existing row; the
// underlying upsert is atomic, so concurrent adds for the same pair never lose
// an update. Quantity must already be validated to be >= 1 by the caller.
func (svc CartService) AddItem(
	c context.Context,
	sessionID string,
	param request.AddCartItem,
) (response.CartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddItem").
		Str(log.KeySessionID, sessionID).
		Str(log.KeyProductID, param.ProductId.String()).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "upserting cart item").Logger()
	logger.Trace().Msg("upserting cart item")
	item, err := svc.queries.UpsertCartItem(c, repository.UpsertCartItemParams{
		ID:        uuid.New(),
		SessionID: sessionID,
		ProductID: param.ProductId,
		Quantity:  param.Quantity,
	})
	if err != nil {
		err = fmt.Errorf("failed upserting cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger = logger.With().Any(log.KeyCartItem, item).Logger()
	logger.Info().Msg("upserted cart item")

	return item.Response(), nil
}

// UpdateQuantity overwrites the quantity of an existing row. Unlike AddItem it
// never creates a row: a missing (session, product) pair is
// ErrCartItemNotFound.
func (svc CartService) UpdateQuantity(
	c context.Context,
	sessionID string,
	productID uuid.UUID,
	quantity int32,
) (response.CartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService UpdateQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateQuantity").
		Str(log.KeySessionID, sessionID).
		Str(log.KeyProductID, productID.String()).
		Int32(log.KeyQuantity, quantity).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "updating cart item quantity").Logger()
	logger.Trace().Msg("updating cart item quantity")
	item, err := svc.queries.UpdateCartItemQuantity(c, repository.UpdateCartItemQuantityParams{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrCartItemNotFound
			inOtel.RecordError(err, span)
			logger.Info().Err(err).Msg(err.Error())
			return response.CartItem{}, err
		}
		err = fmt.Errorf("failed updating cart item quantity with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger = logger.With().Any(log.KeyCartItem, item).Logger()
	logger.Info().Msg("updated cart item quantity")

	return item.Response(), nil
}

// RemoveItem deletes the row for the pair; deleting an absent pair is not an
// error.
func (svc CartService) RemoveItem(
	c context.Context,
	sessionID string,
	productID uuid.UUID,
) error {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveItem").
		Str(log.KeySessionID, sessionID).
		Str(log.KeyProductID, productID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "deleting cart item").Logger()
	logger.Trace().Msg("deleting cart item")
	err := svc.queries.DeleteCartItem(c, repository.DeleteCartItemParams{
		SessionID: sessionID,
		ProductID: productID,
	})
	if err != nil {
		err = fmt.Errorf("failed deleting cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted cart item")

	return nil
}

// ClearCart deletes every row for the session; clearing an empty cart is a
// no-op.
func (svc CartService) ClearCart(c context.Context, sessionID string) error {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ClearCart").
		Str(log.KeySessionID, sessionID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "deleting cart items").Logger()
	logger.Trace().Msg("deleting cart items")
	err := svc.queries.DeleteCartItemsBySessionId(c, sessionID)
	if err != nil {
		err = fmt.Errorf("failed deleting cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted cart items")

	return nil
}
