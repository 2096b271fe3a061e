package settings

import (
	"context"

	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/errors"
	"github.com/shopwave/shopwave-backend/pkg/kv"
)

const themeKey = "theme"

// Service owns the persisted UI preferences. Today that is just the theme.
type Service struct {
	store *kv.Store
}

func NewService(store *kv.Store) *Service {
	return &Service{store: store}
}

// Theme returns the stored theme, defaulting to light. A malformed or unknown
// stored value also falls back to light.
func (s *Service) Theme(ctx context.Context) enums.Theme {
	theme := kv.Get(ctx, s.store, themeKey, enums.ThemeLight)
	if !theme.IsValid() {
		return enums.ThemeLight
	}
	return theme
}

// SetTheme validates and persists the theme.
func (s *Service) SetTheme(ctx context.Context, theme enums.Theme) error {
	if !theme.IsValid() {
		return errors.New(errors.CodeValidation, "unknown theme")
	}
	return kv.Set(ctx, s.store, themeKey, theme)
}
