package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopwave/shopwave-backend/pkg/config"
	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/errors"
	"github.com/shopwave/shopwave-backend/pkg/kv"
)

func newTestStore(t *testing.T) *kv.Store {
	t.Helper()
	store, err := kv.Open(context.Background(), config.StoreConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "settings.db"),
	}, nil)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestThemeDefaultsToLight(t *testing.T) {
	t.Parallel()

	svc := NewService(newTestStore(t))
	if got := svc.Theme(context.Background()); got != enums.ThemeLight {
		t.Fatalf("expected light, got %s", got)
	}
}

func TestSetThemePersists(t *testing.T) {
	t.Parallel()

	svc := NewService(newTestStore(t))
	ctx := context.Background()

	if err := svc.SetTheme(ctx, enums.ThemeDark); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := svc.Theme(ctx); got != enums.ThemeDark {
		t.Fatalf("expected dark, got %s", got)
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	t.Parallel()

	svc := NewService(newTestStore(t))
	err := svc.SetTheme(context.Background(), enums.Theme("sepia"))

	appErr := errors.As(err)
	if appErr == nil || appErr.Code() != errors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
