package cart

import (
	"context"
	"testing"

	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

type memoryRepo struct {
	lines []types.CartLine
}

func (r *memoryRepo) Load(_ context.Context) []types.CartLine {
	out := make([]types.CartLine, len(r.lines))
	copy(out, r.lines)
	return out
}

func (r *memoryRepo) Save(_ context.Context, lines []types.CartLine) error {
	r.lines = lines
	return nil
}

func (r *memoryRepo) Mutate(_ context.Context, fn func([]types.CartLine) []types.CartLine) ([]types.CartLine, error) {
	r.lines = fn(r.lines)
	return r.lines, nil
}

type recordedToast struct {
	level   enums.ToastLevel
	message string
}

type recorderNotifier struct {
	toasts []recordedToast
}

func (n *recorderNotifier) Notify(_ context.Context, level enums.ToastLevel, message string) {
	n.toasts = append(n.toasts, recordedToast{level: level, message: message})
}

func (n *recorderNotifier) last(t *testing.T) recordedToast {
	t.Helper()
	if len(n.toasts) == 0 {
		t.Fatal("expected a toast")
	}
	return n.toasts[len(n.toasts)-1]
}

func newTestService() (*Service, *memoryRepo, *recorderNotifier) {
	repo := &memoryRepo{}
	notify := &recorderNotifier{}
	return NewService(repo, notify, nil), repo, notify
}

func product(id string, price float64, stock int) types.Product {
	return types.Product{ID: id, Name: "Widget " + id, Price: price, Stock: stock}
}

func TestAddToCart(t *testing.T) {
	t.Parallel()

	svc, repo, notify := newTestService()
	ctx := context.Background()
	widget := product("prod-1", 50, 2)

	outcome, err := svc.AddToCart(ctx, widget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != AddOutcomeAdded {
		t.Fatalf("expected added, got %s", outcome)
	}
	if got := notify.last(t); got.level != enums.ToastLevelSuccess || got.message != "Added Widget prod-1 to cart!" {
		t.Fatalf("unexpected toast: %+v", got)
	}

	outcome, _ = svc.AddToCart(ctx, widget)
	if outcome != AddOutcomeIncremented {
		t.Fatalf("expected incremented, got %s", outcome)
	}
	if got := notify.last(t); got.message != "Added another Widget prod-1 to cart!" {
		t.Fatalf("unexpected toast: %+v", got)
	}

	// quantity has reached stock, the next add must bounce
	outcome, _ = svc.AddToCart(ctx, widget)
	if outcome != AddOutcomeRejected {
		t.Fatalf("expected rejected, got %s", outcome)
	}
	if got := notify.last(t); got.level != enums.ToastLevelError || got.message != "Max stock reached for Widget prod-1" {
		t.Fatalf("unexpected toast: %+v", got)
	}
	if len(repo.lines) != 1 || repo.lines[0].Quantity != 2 {
		t.Fatalf("cart should hold one line at quantity 2, got %+v", repo.lines)
	}
}

func TestAddToCartOutOfStock(t *testing.T) {
	t.Parallel()

	svc, repo, notify := newTestService()
	ctx := context.Background()

	outcome, err := svc.AddToCart(ctx, product("prod-1", 50, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != AddOutcomeRejected {
		t.Fatalf("expected rejected, got %s", outcome)
	}
	if len(repo.lines) != 0 {
		t.Fatalf("cart should stay empty, got %+v", repo.lines)
	}
	if got := notify.last(t); got.level != enums.ToastLevelError || got.message != "Max stock reached for Widget prod-1" {
		t.Fatalf("expected error toast, got %+v", got)
	}
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	svc, repo, notify := newTestService()
	ctx := context.Background()
	repo.lines = []types.CartLine{{Product: product("prod-1", 50, 5), Quantity: 2}}

	outcome, err := svc.UpdateQuantity(ctx, "prod-1", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != UpdateOutcomeUpdated || repo.lines[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got outcome %s lines %+v", outcome, repo.lines)
	}
	if len(notify.toasts) != 0 {
		t.Fatalf("plain update should not toast, got %+v", notify.toasts)
	}

	outcome, _ = svc.UpdateQuantity(ctx, "prod-1", 9)
	if outcome != UpdateOutcomeClamped || repo.lines[0].Quantity != 5 {
		t.Fatalf("expected clamp to 5, got outcome %s lines %+v", outcome, repo.lines)
	}
	if got := notify.last(t); got.level != enums.ToastLevelError || got.message != "Sorry, only 5 in stock!" {
		t.Fatalf("unexpected toast: %+v", got)
	}
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	t.Parallel()

	for _, quantity := range []int{0, -1} {
		svc, repo, _ := newTestService()
		repo.lines = []types.CartLine{{Product: product("prod-1", 50, 5), Quantity: 2}}

		outcome, err := svc.UpdateQuantity(context.Background(), "prod-1", quantity)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != UpdateOutcomeRemoved || len(repo.lines) != 0 {
			t.Fatalf("quantity %d should remove the line, got outcome %s lines %+v", quantity, outcome, repo.lines)
		}
	}
}

func TestUpdateQuantityUnknownProduct(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService()
	outcome, err := svc.UpdateQuantity(context.Background(), "prod-404", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != UpdateOutcomeNoop {
		t.Fatalf("expected noop, got %s", outcome)
	}
}

func TestRemoveFromCartIdempotent(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService()
	ctx := context.Background()
	repo.lines = []types.CartLine{{Product: product("prod-1", 50, 5), Quantity: 1}}

	if err := svc.RemoveFromCart(ctx, "prod-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", repo.lines)
	}
	// second remove is a no-op, not an error
	if err := svc.RemoveFromCart(ctx, "prod-1"); err != nil {
		t.Fatalf("unexpected error on repeat remove: %v", err)
	}
}

func TestSummaryDerivesAggregates(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService()
	sale := 40.0
	repo.lines = []types.CartLine{
		{Product: product("prod-1", 50, 5), Quantity: 2},
		{Product: types.Product{ID: "prod-2", Name: "Sale Widget", Price: 60, Stock: 3, IsSale: true, SalePrice: &sale}, Quantity: 3},
	}

	summary := svc.Summary(context.Background())
	if summary.TotalItems != 5 {
		t.Fatalf("expected 5 items, got %d", summary.TotalItems)
	}
	// 2*50 + 3*40, the sale price counts
	if summary.Subtotal != 220 {
		t.Fatalf("expected subtotal 220, got %.2f", summary.Subtotal)
	}

	if err := svc.ClearCart(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	summary = svc.Summary(context.Background())
	if summary.TotalItems != 0 || summary.Subtotal != 0 {
		t.Fatalf("cleared cart should be empty, got %+v", summary)
	}
}
