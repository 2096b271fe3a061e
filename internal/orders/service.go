package orders

import (
	"context"

	"github.com/shopwave/shopwave-backend/pkg/kv"
	"github.com/shopwave/shopwave-backend/pkg/logger"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

const storeKey = "orders"

// Service keeps the order history, newest first.
type Service struct {
	store *kv.Store
	logg  *logger.Logger
}

func NewService(store *kv.Store, logg *logger.Logger) *Service {
	return &Service{store: store, logg: logg}
}

// Record prepends the order to the stored history.
func (s *Service) Record(ctx context.Context, order types.Order) error {
	_, err := kv.Update(ctx, s.store, storeKey, []types.Order{}, func(history []types.Order) []types.Order {
		return append([]types.Order{order}, history...)
	})
	if err == nil && s.logg != nil {
		lctx := s.logg.WithField(ctx, "order_id", order.ID)
		s.logg.Info(lctx, "order recorded")
	}
	return err
}

// List returns the recorded orders, newest first.
func (s *Service) List(ctx context.Context) []types.Order {
	return kv.Get(ctx, s.store, storeKey, []types.Order{})
}
