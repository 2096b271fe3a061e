package catalog

import (
	"context"
	"strings"

	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/errors"
	"github.com/shopwave/shopwave-backend/pkg/logger"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

// ListFilters narrows the product listing. Zero value means no filtering.
type ListFilters struct {
	Query    string
	Category *enums.Category
	SaleOnly bool
}

// Service serves the in-memory catalog. The product slice is built once at
// construction and treated as immutable from then on, so reads need no lock.
type Service struct {
	logg     *logger.Logger
	products []types.Product
	byID     map[string]int
}

// NewService generates a fresh catalog.
func NewService(logg *logger.Logger) *Service {
	return NewServiceWithProducts(logg, Generate())
}

// NewServiceWithProducts wraps a pre-built product list. Used by tests that
// need deterministic stock and prices.
func NewServiceWithProducts(logg *logger.Logger, products []types.Product) *Service {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	s := &Service{logg: logg, products: products, byID: byID}
	if logg != nil {
		ctx := logg.WithField(context.Background(), "products", len(products))
		logg.Info(ctx, "catalog ready")
	}
	return s
}

// List returns products matching the filters, in catalog order.
func (s *Service) List(_ context.Context, filters ListFilters) []types.Product {
	query := strings.ToLower(strings.TrimSpace(filters.Query))

	out := make([]types.Product, 0, len(s.products))
	for _, p := range s.products {
		if filters.Category != nil && p.Category != *filters.Category {
			continue
		}
		if filters.SaleOnly && !p.IsSale {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get returns a single product by id.
func (s *Service) Get(_ context.Context, id string) (*types.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, errors.New(errors.CodeNotFound, "product not found")
	}
	p := s.products[i]
	return &p, nil
}

// Categories returns the fixed category list.
func (s *Service) Categories(_ context.Context) []enums.Category {
	return enums.Categories()
}
