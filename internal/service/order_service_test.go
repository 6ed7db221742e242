package service

import (
	"context"
	"errors"
	"testing"

	"cats-shop/internal/model"
	"cats-shop/internal/order"
	"cats-shop/internal/pricing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDispatcher returns a deterministic link.
type stubDispatcher struct {
	err   error
	calls int
}

func (d *stubDispatcher) Dispatch(_ context.Context, intent *order.Intent) (string, error) {
	d.calls++
	if d.err != nil {
		return "", d.err
	}
	return "https://t.me/test_bot?start=" + intent.StartToken(), nil
}

func newOrderService(repo *MockProductRepository, dispatcher order.Dispatcher) OrderService {
	composer := order.NewComposer(dispatcher, zerolog.Nop())
	return NewOrderService(repo, composer, zerolog.Nop())
}

func TestOrderService_ComposeIntent(t *testing.T) {
	repo := new(MockProductRepository)
	dispatcher := &stubDispatcher{}
	svc := newOrderService(repo, dispatcher)
	ctx := context.Background()

	product := validProduct()
	repo.On("GetByID", ctx, "cats-fresh").Return(&product, nil)

	intent, link, err := svc.ComposeIntent(ctx, "cats-fresh", 8, "uk")
	require.NoError(t, err)

	assert.Equal(t, 8, intent.Quantity)
	assert.Equal(t, 250, intent.UnitPrice)
	assert.Equal(t, 2000, intent.TotalPrice)
	assert.Equal(t, pricing.TierMedium, intent.Tier)
	assert.Equal(t, model.LocaleUK, intent.Locale)
	assert.Equal(t, "https://t.me/test_bot?start=cats1-8-2000-ukshop", link)
	assert.Equal(t, 1, dispatcher.calls)
}

func TestOrderService_ComposeIntent_InvalidQuantity(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newOrderService(repo, &stubDispatcher{})

	_, _, err := svc.ComposeIntent(context.Background(), "cats-fresh", 0, "uk")
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
	repo.AssertNotCalled(t, "GetByID")
}

func TestOrderService_ComposeIntent_ProductNotFound(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newOrderService(repo, &stubDispatcher{})
	ctx := context.Background()

	repo.On("GetByID", ctx, "missing").Return(nil, nil)

	_, _, err := svc.ComposeIntent(ctx, "missing", 1, "uk")
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestOrderService_ComposeIntent_RepositoryError(t *testing.T) {
	repo := new(MockProductRepository)
	svc := newOrderService(repo, &stubDispatcher{})
	ctx := context.Background()

	repo.On("GetByID", ctx, "cats-fresh").Return(nil, errors.New("disk error"))

	_, _, err := svc.ComposeIntent(ctx, "cats-fresh", 1, "uk")
	assert.Error(t, err)
}

func TestOrderService_ComposeIntent_DispatchFailure(t *testing.T) {
	repo := new(MockProductRepository)
	dispatcher := &stubDispatcher{err: errors.New("channel unavailable")}
	svc := newOrderService(repo, dispatcher)
	ctx := context.Background()

	product := validProduct()
	repo.On("GetByID", ctx, "cats-fresh").Return(&product, nil)

	intent, link, err := svc.ComposeIntent(ctx, "cats-fresh", 1, "uk")
	assert.Error(t, err)
	assert.NotNil(t, intent)
	assert.Empty(t, link)

	// A failed dispatch does not block the next attempt.
	dispatcher.err = nil
	_, link, err = svc.ComposeIntent(ctx, "cats-fresh", 1, "uk")
	require.NoError(t, err)
	assert.NotEmpty(t, link)
}
