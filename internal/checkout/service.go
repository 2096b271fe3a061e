package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shopwave/shopwave-backend/internal/cart"
	"github.com/shopwave/shopwave-backend/internal/notifier"
	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/errors"
	"github.com/shopwave/shopwave-backend/pkg/logger"
	"github.com/shopwave/shopwave-backend/pkg/metrics"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

const taxRate = 0.08

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Tier describes one shipping option.
type Tier struct {
	ID       enums.ShippingTier `json:"id"`
	Label    string             `json:"label"`
	Cost     float64            `json:"cost"`
	Estimate string             `json:"estimate"`
}

var tiers = []Tier{
	{ID: enums.ShippingTierFree, Label: "Saver", Cost: 0, Estimate: "5-7 Business Days"},
	{ID: enums.ShippingTierStandard, Label: "Standard", Cost: 12, Estimate: "3-5 Business Days"},
	{ID: enums.ShippingTierExpress, Label: "Express", Cost: 25, Estimate: "1-2 Business Days"},
}

// Tiers returns the shipping options in display order.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

func tierByID(id enums.ShippingTier) (Tier, bool) {
	for _, t := range tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

// ShippingDetails is the address block collected on the shipping step.
type ShippingDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// Totals are the money aggregates for the current cart and tier. Values are
// unrounded floats; rounding happens in the response layer.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// State is a snapshot of the checkout session.
type State struct {
	Step            enums.CheckoutStep `json:"step"`
	ShippingDetails ShippingDetails    `json:"shipping_details"`
	ShippingTier    enums.ShippingTier `json:"shipping_tier"`
	Processing      bool               `json:"processing"`
	Totals          Totals             `json:"totals"`
	Order           *types.Order       `json:"order,omitempty"`
}

// Cart is the slice of the cart service checkout needs.
type Cart interface {
	Summary(ctx context.Context) cart.Summary
	ClearCart(ctx context.Context) error
}

// OrderRecorder persists completed orders. Recording is best-effort.
type OrderRecorder interface {
	Record(ctx context.Context, order types.Order) error
}

// Service drives the single in-memory checkout session. The session is
// ephemeral: it lives only in this struct and resets when a new checkout
// begins after a completed one.
type Service struct {
	cart    Cart
	orders  OrderRecorder
	notify  notifier.Notifier
	logg    *logger.Logger
	metrics *metrics.CheckoutMetrics
	delay   time.Duration

	mu         sync.Mutex
	step       enums.CheckoutStep
	details    ShippingDetails
	tier       enums.ShippingTier
	processing bool
	order      *types.Order
}

func NewService(cartSvc Cart, orders OrderRecorder, notify notifier.Notifier, logg *logger.Logger, m *metrics.CheckoutMetrics, delay time.Duration) *Service {
	return &Service{
		cart:    cartSvc,
		orders:  orders,
		notify:  notify,
		logg:    logg,
		metrics: m,
		delay:   delay,
		step:    enums.CheckoutStepShipping,
		tier:    enums.ShippingTierFree,
	}
}

func emptyCartErr() error {
	return errors.New(errors.CodeStateConflict, "cart is empty").
		WithDetails(map[string]string{"redirect": "/cart"})
}

// resetLocked starts a fresh session. Caller holds s.mu.
func (s *Service) resetLocked() {
	s.step = enums.CheckoutStepShipping
	s.details = ShippingDetails{}
	s.tier = enums.ShippingTierFree
	s.processing = false
	s.order = nil
}

// guardLocked enforces the empty-cart rule and rolls a completed session over
// to a fresh one once the cart has items again. Caller holds s.mu.
func (s *Service) guardLocked(summary cart.Summary) error {
	if s.step == enums.CheckoutStepSuccess {
		if len(summary.Lines) > 0 {
			s.resetLocked()
		}
		return nil
	}
	if len(summary.Lines) == 0 && !s.processing {
		s.resetLocked()
		return emptyCartErr()
	}
	return nil
}

func (s *Service) totals(summary cart.Summary) Totals {
	tier, _ := tierByID(s.tier)
	subtotal := summary.Subtotal
	tax := subtotal * taxRate
	return Totals{
		Subtotal: subtotal,
		Shipping: tier.Cost,
		Tax:      tax,
		Total:    subtotal + tier.Cost + tax,
	}
}

func (s *Service) stateLocked(summary cart.Summary) *State {
	return &State{
		Step:            s.step,
		ShippingDetails: s.details,
		ShippingTier:    s.tier,
		Processing:      s.processing,
		Totals:          s.totals(summary),
		Order:           s.order,
	}
}

// State returns the current session snapshot with totals recomputed from the
// cart.
func (s *Service) State(ctx context.Context) (*State, error) {
	summary := s.cart.Summary(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardLocked(summary); err != nil {
		return nil, err
	}
	return s.stateLocked(summary), nil
}

// SelectTier switches the shipping tier. Allowed on any non-terminal step.
func (s *Service) SelectTier(ctx context.Context, tier enums.ShippingTier) (*State, error) {
	if _, ok := tierByID(tier); !ok {
		return nil, errors.New(errors.CodeValidation, "unknown shipping tier")
	}
	summary := s.cart.Summary(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardLocked(summary); err != nil {
		return nil, err
	}
	if s.step == enums.CheckoutStepSuccess {
		return nil, errors.New(errors.CodeStateConflict, "checkout already completed")
	}
	s.tier = tier
	return s.stateLocked(summary), nil
}

// SubmitShipping records the address block and advances to payment. The flow
// is strictly forward; re-submitting on the payment step just overwrites the
// details.
func (s *Service) SubmitShipping(ctx context.Context, details ShippingDetails) (*State, error) {
	summary := s.cart.Summary(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardLocked(summary); err != nil {
		return nil, err
	}
	if s.step == enums.CheckoutStepSuccess {
		return nil, errors.New(errors.CodeStateConflict, "checkout already completed")
	}
	s.details = details
	s.step = enums.CheckoutStepPayment
	return s.stateLocked(summary), nil
}

// PlaceOrder completes the checkout: it simulates the payment call, snapshots
// the cart into an order, clears the cart, and moves to success. Shipping and
// payment share one screen, so placement is valid from either step. A second
// call while one is in flight is a duplicate no-op.
func (s *Service) PlaceOrder(ctx context.Context) (*types.Order, error) {
	summary := s.cart.Summary(ctx)

	s.mu.Lock()
	if err := s.guardLocked(summary); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.step == enums.CheckoutStepSuccess {
		s.mu.Unlock()
		return nil, errors.New(errors.CodeStateConflict, "checkout already completed")
	}
	if s.processing {
		s.mu.Unlock()
		s.metrics.IncDuplicate()
		return nil, errors.New(errors.CodeConflict, "order is already being processed")
	}
	s.processing = true
	tierID := s.tier
	s.mu.Unlock()

	started := time.Now()
	// simulated payment latency; placement has no cancel contract
	time.Sleep(s.delay)

	// re-read the cart: it may have changed while the payment was in flight
	summary = s.cart.Summary(ctx)
	tier, _ := tierByID(tierID)
	tax := summary.Subtotal * taxRate

	order := types.Order{
		ID:           generateOrderNumber(),
		Items:        summary.Lines,
		Subtotal:     summary.Subtotal,
		Tax:          tax,
		ShippingCost: tier.Cost,
		Total:        summary.Subtotal + tier.Cost + tax,
		ShippingTier: tierID,
		Date:         time.Now().UTC(),
	}

	if err := s.orders.Record(ctx, order); err != nil && s.logg != nil {
		s.logg.Error(ctx, "failed to record order", err)
	}
	if err := s.cart.ClearCart(ctx); err != nil && s.logg != nil {
		s.logg.Error(ctx, "failed to clear cart after placement", err)
	}

	s.mu.Lock()
	s.order = &order
	s.step = enums.CheckoutStepSuccess
	s.processing = false
	s.mu.Unlock()

	s.metrics.IncPlaced()
	s.metrics.ObservePlacement(time.Since(started))
	s.notify.Notify(ctx, enums.ToastLevelSuccess, fmt.Sprintf("Order %s placed successfully!", order.ID))
	if s.logg != nil {
		lctx := s.logg.WithFields(ctx, map[string]any{
			"order_id": order.ID,
			"total":    order.Total,
		})
		s.logg.Info(lctx, "order placed")
	}
	return &order, nil
}

func generateOrderNumber() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}
	return "ORD-" + string(suffix)
}
