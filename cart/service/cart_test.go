package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryasetya/storefront/cart/pkg/request"
	inErrors "github.com/aryasetya/storefront/internal/common/errors"
)

var (
	activeProductID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	cheapProductID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	inactiveProductID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func TestAddItemMergesQuantity(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, svc := setup(t, c)
	defer teardown(t, pool, pgContainer)

	sessionID := uuid.NewString()

	first, err := svc.AddItem(c, sessionID, request.AddCartItem{
		ProductId: activeProductID,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, first.Quantity)

	second, err := svc.AddItem(c, sessionID, request.AddCartItem{
		ProductId: activeProductID,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 5, second.Quantity)
	assert.EqualValues(t, first.ID, second.ID)

	items, err := svc.ListItems(c, sessionID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, 5, items[0].Quantity)
}

func TestAddItemConcurrentAddsNeverLoseUpdates(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, svc := setup(t, c)
	defer teardown(t, pool, pgContainer)

	sessionID := uuid.NewString()

	adders := 8
	var wg sync.WaitGroup
	errs := make(chan error, adders)
	for range adders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(c, sessionID, request.AddCartItem{
				ProductId: activeProductID,
				Quantity:  1,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	items, err := svc.ListItems(c, sessionID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, adders, items[0].Quantity)
}

func TestUpdateQuantityMissingItemDoesNotCreateRow(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, svc := setup(t, c)
	defer teardown(t, pool, pgContainer)

	sessionID := uuid.NewString()

	_, err := svc.UpdateQuantity(c, sessionID, activeProductID, 3)
	assert.ErrorIs(t, err, inErrors.ErrCartItemNotFound)

	items, err := svc.ListItems(c, sessionID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, svc := setup(t, c)
	defer teardown(t, pool, pgContainer)

	sessionID := uuid.NewString()

	_, err := svc.AddItem(c, sessionID, request.AddCartItem{
		ProductId: activeProductID,
		Quantity:  2,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(c, sessionID, activeProductID, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 7, updated.Quantity)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, svc := setup(t, c)
	defer teardown(t, pool, pgContainer)

	sessionID := uuid.NewString()

	_, err := svc.AddItem(c, sessionID, request.AddCartItem{
		ProductId: activeProductID,
		Quantity:  1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(c, sessionID, activeProductID))
	require.NoError(t, svc.RemoveItem(c, sessionID, activeProductID))

	items, err := svc.ListItems(c, sessionID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClearCartEmptiesOnlyOwnSession(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, svc := setup(t, c)
	defer teardown(t, pool, pgContainer)

	sessionID := uuid.NewString()
	otherSessionID := uuid.NewString()

	_, err := svc.AddItem(c, sessionID, request.AddCartItem{
		ProductId: activeProductID,
		Quantity:  1,
	})
	require.NoError(t, err)
	_, err = svc.AddItem(c, sessionID, request.AddCartItem{
		ProductId: cheapProductID,
		Quantity:  2,
	})
	require.NoError(t, err)
	_, err = svc.AddItem(c, otherSessionID, request.AddCartItem{
		ProductId: activeProductID,
		Quantity:  4,
	})
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(c, sessionID))
	require.NoError(t, svc.ClearCart(c, sessionID))

	items, err := svc.ListItems(c, sessionID)
	require.NoError(t, err)
	assert.Empty(t, items)

	otherItems, err := svc.ListItems(c, otherSessionID)
	require.NoError(t, err)
	require.Len(t, otherItems, 1)
	assert.EqualValues(t, 4, otherItems[0].Quantity)
}

func TestListItemsKeepsDanglingItemsWithNilProduct(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, svc := setup(t, c)
	defer teardown(t, pool, pgContainer)

	sessionID := uuid.NewString()

	_, err := svc.AddItem(c, sessionID, request.AddCartItem{
		ProductId: activeProductID,
		Quantity:  2,
	})
	require.NoError(t, err)
	_, err = svc.AddItem(c, sessionID, request.AddCartItem{
		ProductId: inactiveProductID,
		Quantity:  1,
	})
	require.NoError(t, err)
	_, err = svc.AddItem(c, sessionID, request.AddCartItem{
		ProductId: uuid.New(),
		Quantity:  3,
	})
	require.NoError(t, err)

	items, err := svc.ListItems(c, sessionID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	resolved := 0
	for _, item := range items {
		if item.Product != nil {
			resolved++
			assert.EqualValues(t, activeProductID, item.Product.ID)
		}
	}
	assert.EqualValues(t, 1, resolved)
}
