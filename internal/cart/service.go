package cart

import (
	"context"
	"fmt"

	"github.com/shopwave/shopwave-backend/internal/notifier"
	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/logger"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

// AddOutcome describes what AddToCart did.
type AddOutcome string

const (
	// AddOutcomeAdded means a new line entered the cart.
	AddOutcomeAdded AddOutcome = "added"
	// AddOutcomeIncremented means an existing line grew by one.
	AddOutcomeIncremented AddOutcome = "incremented"
	// AddOutcomeRejected means stock was exhausted and the cart is unchanged.
	AddOutcomeRejected AddOutcome = "rejected"
)

// UpdateOutcome describes what UpdateQuantity did.
type UpdateOutcome string

const (
	UpdateOutcomeUpdated UpdateOutcome = "updated"
	UpdateOutcomeClamped UpdateOutcome = "clamped"
	UpdateOutcomeRemoved UpdateOutcome = "removed"
	UpdateOutcomeNoop    UpdateOutcome = "noop"
)

// Summary is the cart with its derived aggregates. Aggregates are recomputed
// from the lines on every read, never stored.
type Summary struct {
	Lines      []types.CartLine
	TotalItems int
	Subtotal   float64
}

// Service owns cart mutations. Every change goes through the repository's
// Mutate so concurrent requests serialize on the stored line list.
type Service struct {
	repo   Repository
	notify notifier.Notifier
	logg   *logger.Logger
}

func NewService(repo Repository, notify notifier.Notifier, logg *logger.Logger) *Service {
	return &Service{repo: repo, notify: notify, logg: logg}
}

// AddToCart puts one unit of the product in the cart. An existing line grows
// by one as long as its quantity stays below stock; at the cap the call is
// rejected and the cart is left untouched. Out-of-stock products are rejected
// the same way.
func (s *Service) AddToCart(ctx context.Context, product types.Product) (AddOutcome, error) {
	outcome := AddOutcomeRejected

	_, err := s.repo.Mutate(ctx, func(lines []types.CartLine) []types.CartLine {
		for i, line := range lines {
			if line.ID != product.ID {
				continue
			}
			if line.Quantity >= product.Stock {
				outcome = AddOutcomeRejected
				return lines
			}
			lines[i].Quantity++
			outcome = AddOutcomeIncremented
			return lines
		}
		if product.Stock <= 0 {
			outcome = AddOutcomeRejected
			return lines
		}
		outcome = AddOutcomeAdded
		return append(lines, types.CartLine{Product: product, Quantity: 1})
	})
	if err != nil {
		return AddOutcomeRejected, err
	}

	switch outcome {
	case AddOutcomeAdded:
		s.notify.Notify(ctx, enums.ToastLevelSuccess, fmt.Sprintf("Added %s to cart!", product.Name))
	case AddOutcomeIncremented:
		s.notify.Notify(ctx, enums.ToastLevelSuccess, fmt.Sprintf("Added another %s to cart!", product.Name))
	case AddOutcomeRejected:
		s.notify.Notify(ctx, enums.ToastLevelError, fmt.Sprintf("Max stock reached for %s", product.Name))
	}
	return outcome, nil
}

// UpdateQuantity sets an existing line to the requested quantity. Zero or
// negative removes the line. A request above stock clamps to stock and warns.
// Unknown product ids are a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) (UpdateOutcome, error) {
	outcome := UpdateOutcomeNoop
	var clampedTo int

	_, err := s.repo.Mutate(ctx, func(lines []types.CartLine) []types.CartLine {
		for i, line := range lines {
			if line.ID != productID {
				continue
			}
			if quantity <= 0 {
				outcome = UpdateOutcomeRemoved
				return append(lines[:i], lines[i+1:]...)
			}
			if quantity > line.Stock {
				clampedTo = line.Stock
				if clampedTo <= 0 {
					outcome = UpdateOutcomeRemoved
					return append(lines[:i], lines[i+1:]...)
				}
				lines[i].Quantity = clampedTo
				outcome = UpdateOutcomeClamped
				return lines
			}
			lines[i].Quantity = quantity
			outcome = UpdateOutcomeUpdated
			return lines
		}
		return lines
	})
	if err != nil {
		return UpdateOutcomeNoop, err
	}

	if outcome == UpdateOutcomeClamped {
		s.notify.Notify(ctx, enums.ToastLevelError, fmt.Sprintf("Sorry, only %d in stock!", clampedTo))
	}
	return outcome, nil
}

// RemoveFromCart drops the line for the product. Removing an absent product
// is a no-op.
func (s *Service) RemoveFromCart(ctx context.Context, productID string) error {
	_, err := s.repo.Mutate(ctx, func(lines []types.CartLine) []types.CartLine {
		for i, line := range lines {
			if line.ID == productID {
				return append(lines[:i], lines[i+1:]...)
			}
		}
		return lines
	})
	return err
}

// ClearCart empties the cart.
func (s *Service) ClearCart(ctx context.Context) error {
	return s.repo.Save(ctx, []types.CartLine{})
}

// Summary returns the lines plus aggregates derived from them.
func (s *Service) Summary(ctx context.Context) Summary {
	lines := s.repo.Load(ctx)
	return summarize(lines)
}

func summarize(lines []types.CartLine) Summary {
	out := Summary{Lines: lines}
	for _, line := range lines {
		out.TotalItems += line.Quantity
		out.Subtotal += line.LineTotal()
	}
	return out
}
