package cart

import (
	"context"

	"github.com/shopwave/shopwave-backend/pkg/kv"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

const storeKey = "cart-items"

// Repository persists the cart line list.
type Repository interface {
	Load(ctx context.Context) []types.CartLine
	Save(ctx context.Context, lines []types.CartLine) error
	Mutate(ctx context.Context, fn func([]types.CartLine) []types.CartLine) ([]types.CartLine, error)
}

type kvRepository struct {
	store *kv.Store
}

// NewRepository returns a Repository backed by the key-value store.
func NewRepository(store *kv.Store) Repository {
	return &kvRepository{store: store}
}

func (r *kvRepository) Load(ctx context.Context) []types.CartLine {
	return kv.Get(ctx, r.store, storeKey, []types.CartLine{})
}

func (r *kvRepository) Save(ctx context.Context, lines []types.CartLine) error {
	return kv.Set(ctx, r.store, storeKey, lines)
}

func (r *kvRepository) Mutate(ctx context.Context, fn func([]types.CartLine) []types.CartLine) ([]types.CartLine, error) {
	return kv.Update(ctx, r.store, storeKey, []types.CartLine{}, fn)
}
