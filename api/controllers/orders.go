package controllers

import (
	"net/http"

	"github.com/shopwave/shopwave-backend/api/responses"
	"github.com/shopwave/shopwave-backend/internal/orders"
)

// OrderList returns the order history, newest first.
func OrderList(svc *orders.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history := svc.List(r.Context())
		views := make([]orderView, 0, len(history))
		for _, order := range history {
			views = append(views, toOrderView(order))
		}
		responses.WriteSuccess(w, views)
	}
}
