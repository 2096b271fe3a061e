package controllers

import (
	"net/http"

	"github.com/shopwave/shopwave-backend/api/responses"
	"github.com/shopwave/shopwave-backend/api/validators"
	"github.com/shopwave/shopwave-backend/internal/checkout"
	"github.com/shopwave/shopwave-backend/pkg/enums"
	pkgerrors "github.com/shopwave/shopwave-backend/pkg/errors"
	"github.com/shopwave/shopwave-backend/pkg/logger"
	"github.com/shopwave/shopwave-backend/pkg/money"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

type totalsView struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type orderView struct {
	types.Order
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	ShippingCost float64 `json:"shipping_cost"`
	Total        float64 `json:"total"`
}

type checkoutStateView struct {
	Step            enums.CheckoutStep       `json:"step"`
	ShippingDetails checkout.ShippingDetails `json:"shipping_details"`
	ShippingTier    enums.ShippingTier       `json:"shipping_tier"`
	Processing      bool                     `json:"processing"`
	Totals          totalsView               `json:"totals"`
	Tiers           []checkout.Tier          `json:"tiers"`
	Order           *orderView               `json:"order,omitempty"`
}

func toTotalsView(t checkout.Totals) totalsView {
	return totalsView{
		Subtotal: money.Round2(t.Subtotal),
		Shipping: money.Round2(t.Shipping),
		Tax:      money.Round2(t.Tax),
		Total:    money.Round2(t.Total),
	}
}

func toOrderView(order types.Order) orderView {
	return orderView{
		Order:        order,
		Subtotal:     money.Round2(order.Subtotal),
		Tax:          money.Round2(order.Tax),
		ShippingCost: money.Round2(order.ShippingCost),
		Total:        money.Round2(order.Total),
	}
}

func toCheckoutStateView(state *checkout.State) checkoutStateView {
	view := checkoutStateView{
		Step:            state.Step,
		ShippingDetails: state.ShippingDetails,
		ShippingTier:    state.ShippingTier,
		Processing:      state.Processing,
		Totals:          toTotalsView(state.Totals),
		Tiers:           checkout.Tiers(),
	}
	if state.Order != nil {
		order := toOrderView(*state.Order)
		view.Order = &order
	}
	return view
}

func CheckoutState(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.State(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCheckoutStateView(state))
	}
}

type selectTierRequest struct {
	Tier string `json:"tier" validate:"required"`
}

func CheckoutSelectTier(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload selectTierRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tier, err := enums.ParseShippingTier(payload.Tier)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shipping tier"))
			return
		}

		state, err := svc.SelectTier(r.Context(), tier)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCheckoutStateView(state))
	}
}

type shippingDetailsRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
}

func CheckoutSubmitDetails(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload shippingDetailsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.SubmitShipping(r.Context(), checkout.ShippingDetails{
			Name:    payload.Name,
			Email:   payload.Email,
			Address: payload.Address,
			City:    payload.City,
			Zip:     payload.Zip,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCheckoutStateView(state))
	}
}

func CheckoutPlaceOrder(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := svc.PlaceOrder(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toOrderView(*order))
	}
}
