package controllers

import (
	"net/http"

	"github.com/shopwave/shopwave-backend/api/responses"
	"github.com/shopwave/shopwave-backend/api/validators"
	"github.com/shopwave/shopwave-backend/internal/profile"
	"github.com/shopwave/shopwave-backend/pkg/logger"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

func ProfileFetch(svc *profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Get(r.Context()))
	}
}

type updateProfileRequest struct {
	Name    string               `json:"name" validate:"required"`
	Email   string               `json:"email" validate:"required,email"`
	Phone   string               `json:"phone"`
	Address updateAddressRequest `json:"address"`
}

type updateAddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// ProfileUpdate replaces the whole stored profile with the request body.
func ProfileUpdate(svc *profile.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateProfileRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), types.UserProfile{
			Name:  payload.Name,
			Email: payload.Email,
			Phone: payload.Phone,
			Address: types.UserAddress{
				Street:  payload.Address.Street,
				City:    payload.Address.City,
				State:   payload.Address.State,
				Zip:     payload.Address.Zip,
				Country: payload.Address.Country,
			},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
