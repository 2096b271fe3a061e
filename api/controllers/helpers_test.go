package controllers

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/shopwave/shopwave-backend/internal/cart"
	"github.com/shopwave/shopwave-backend/internal/catalog"
	"github.com/shopwave/shopwave-backend/internal/notifier"
	"github.com/shopwave/shopwave-backend/pkg/config"
	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/kv"
	"github.com/shopwave/shopwave-backend/pkg/logger"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

type silentNotifier struct{}

func (silentNotifier) Notify(context.Context, enums.ToastLevel, string) {}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func testStore(t *testing.T) *kv.Store {
	t.Helper()
	store, err := kv.Open(context.Background(), config.StoreConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	}, nil)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testCatalog() *catalog.Service {
	sale := 80.0
	return catalog.NewServiceWithProducts(nil, []types.Product{
		{ID: "prod-1", Name: "Premium Headphones", Price: 100, Stock: 3},
		{ID: "prod-2", Name: "Modern Speaker", Price: 100, Stock: 5, IsSale: true, SalePrice: &sale},
		{ID: "prod-3", Name: "Sold Out Lamp", Price: 30, Stock: 0},
	})
}

func testCart(t *testing.T) (*cart.Service, *notifier.Feed) {
	t.Helper()
	feed := notifier.NewFeed(10, testLogger())
	return cart.NewService(cart.NewRepository(testStore(t)), feed, nil), feed
}
