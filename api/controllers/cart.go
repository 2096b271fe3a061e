package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopwave/shopwave-backend/api/responses"
	"github.com/shopwave/shopwave-backend/api/validators"
	"github.com/shopwave/shopwave-backend/internal/cart"
	"github.com/shopwave/shopwave-backend/internal/catalog"
	pkgerrors "github.com/shopwave/shopwave-backend/pkg/errors"
	"github.com/shopwave/shopwave-backend/pkg/logger"
	"github.com/shopwave/shopwave-backend/pkg/money"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

type cartLineView struct {
	types.CartLine
	LineTotal float64 `json:"line_total"`
}

type cartView struct {
	Items      []cartLineView `json:"items"`
	TotalItems int            `json:"total_items"`
	Subtotal   float64        `json:"subtotal"`
}

type cartMutationView struct {
	Outcome string   `json:"outcome"`
	Cart    cartView `json:"cart"`
}

func toCartView(summary cart.Summary) cartView {
	items := make([]cartLineView, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		items = append(items, cartLineView{
			CartLine:  line,
			LineTotal: money.Round2(line.LineTotal()),
		})
	}
	return cartView{
		Items:      items,
		TotalItems: summary.TotalItems,
		Subtotal:   money.Round2(summary.Subtotal),
	}
}

func CartFetch(svc *cart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, toCartView(svc.Summary(r.Context())))
	}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// CartAddItem resolves the product and adds one unit of it to the cart.
func CartAddItem(svc *cart.Service, catalogSvc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.Get(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome, err := svc.AddToCart(r.Context(), *product)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart"))
			return
		}

		responses.WriteSuccess(w, cartMutationView{
			Outcome: string(outcome),
			Cart:    toCartView(svc.Summary(r.Context())),
		})
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func CartUpdateItem(svc *cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome, err := svc.UpdateQuantity(r.Context(), chi.URLParam(r, "productId"), payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart"))
			return
		}

		responses.WriteSuccess(w, cartMutationView{
			Outcome: string(outcome),
			Cart:    toCartView(svc.Summary(r.Context())),
		})
	}
}

func CartRemoveItem(svc *cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RemoveFromCart(r.Context(), chi.URLParam(r, "productId")); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart"))
			return
		}
		responses.WriteSuccess(w, toCartView(svc.Summary(r.Context())))
	}
}

func CartClear(svc *cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearCart(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart"))
			return
		}
		responses.WriteSuccess(w, toCartView(svc.Summary(r.Context())))
	}
}
