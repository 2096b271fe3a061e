package controllers

import (
	"net/http"

	"github.com/shopwave/shopwave-backend/api/responses"
	"github.com/shopwave/shopwave-backend/api/validators"
	"github.com/shopwave/shopwave-backend/internal/settings"
	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/logger"
)

type themeView struct {
	Theme enums.Theme `json:"theme"`
}

func ThemeFetch(svc *settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, themeView{Theme: svc.Theme(r.Context())})
	}
}

type updateThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

func ThemeUpdate(svc *settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateThemeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetTheme(r.Context(), enums.Theme(payload.Theme)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, themeView{Theme: enums.Theme(payload.Theme)})
	}
}
