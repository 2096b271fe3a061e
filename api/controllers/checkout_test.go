package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopwave/shopwave-backend/internal/checkout"
	"github.com/shopwave/shopwave-backend/internal/orders"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

func testCheckout(t *testing.T) (*checkout.Service, *orders.Service, func()) {
	t.Helper()
	cartSvc, feed := testCart(t)
	orderSvc := orders.NewService(testStore(t), nil)
	svc := checkout.NewService(cartSvc, orderSvc, feed, nil, nil, 0)

	seed := func() {
		if _, err := cartSvc.AddToCart(context.Background(), types.Product{ID: "prod-1", Name: "Premium Headphones", Price: 100, Stock: 3}); err != nil {
			t.Fatalf("failed to seed cart: %v", err)
		}
	}
	return svc, orderSvc, seed
}

func TestCheckoutStateEmptyCartRedirects(t *testing.T) {
	t.Parallel()

	svc, _, _ := testCheckout(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout", nil)
	resp := httptest.NewRecorder()
	CheckoutState(svc, testLogger())(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if envelope.Error.Details["redirect"] != "/cart" {
		t.Fatalf("expected cart redirect, got %+v", envelope.Error)
	}
}

func TestCheckoutFullFlow(t *testing.T) {
	t.Parallel()

	svc, orderSvc, seed := testCheckout(t)
	seed()
	logg := testLogger()

	// select the standard tier
	req := httptest.NewRequest(http.MethodPut, "/api/v1/checkout/shipping", strings.NewReader(`{"tier":"standard"}`))
	resp := httptest.NewRecorder()
	CheckoutSelectTier(svc, logg)(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("select tier failed: %d %s", resp.Code, resp.Body.String())
	}
	state := decodeEnvelope[checkoutStateView](t, resp.Body.Bytes())
	// subtotal 100, shipping 12, tax 8
	if state.Totals.Total != 120 {
		t.Fatalf("unexpected totals: %+v", state.Totals)
	}
	if len(state.Tiers) != 3 {
		t.Fatalf("expected 3 tiers, got %+v", state.Tiers)
	}

	// submit the address block
	body := `{"name":"Alex Johnson","email":"alex.j@example.com","address":"123 Market Street","city":"San Francisco","zip":"94103"}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/checkout/details", strings.NewReader(body))
	resp = httptest.NewRecorder()
	CheckoutSubmitDetails(svc, logg)(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("submit details failed: %d %s", resp.Code, resp.Body.String())
	}
	state = decodeEnvelope[checkoutStateView](t, resp.Body.Bytes())
	if state.Step != "payment" {
		t.Fatalf("expected payment step, got %s", state.Step)
	}

	// place the order
	req = httptest.NewRequest(http.MethodPost, "/api/v1/checkout/place-order", nil)
	resp = httptest.NewRecorder()
	CheckoutPlaceOrder(svc, logg)(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("place order failed: %d %s", resp.Code, resp.Body.String())
	}
	order := decodeEnvelope[orderView](t, resp.Body.Bytes())
	if !strings.HasPrefix(order.ID, "ORD-") {
		t.Fatalf("unexpected order id %q", order.ID)
	}
	if order.Total != 120 {
		t.Fatalf("unexpected order total %v", order.Total)
	}

	// the order lands in the history
	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	resp = httptest.NewRecorder()
	OrderList(orderSvc)(resp, req)
	history := decodeEnvelope[[]orderView](t, resp.Body.Bytes())
	if len(history) != 1 || history[0].ID != order.ID {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestCheckoutSubmitDetailsValidation(t *testing.T) {
	t.Parallel()

	svc, _, seed := testCheckout(t)
	seed()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/details", strings.NewReader(`{"name":"Alex"}`))
	resp := httptest.NewRecorder()
	CheckoutSubmitDetails(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCheckoutSelectTierRejectsUnknown(t *testing.T) {
	t.Parallel()

	svc, _, seed := testCheckout(t)
	seed()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/checkout/shipping", strings.NewReader(`{"tier":"overnight"}`))
	resp := httptest.NewRecorder()
	CheckoutSelectTier(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}
