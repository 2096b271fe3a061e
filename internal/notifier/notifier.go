package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/logger"
)

// Notifier is the toast channel the core services emit user-facing messages
// through. Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, level enums.ToastLevel, message string)
}

// Toast is one emitted notification.
type Toast struct {
	ID        uuid.UUID        `json:"id"`
	Level     enums.ToastLevel `json:"level"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}

const defaultFeedSize = 50

// Feed logs every toast and retains a bounded in-memory history, newest
// first, for the UI to poll.
type Feed struct {
	logg *logger.Logger
	size int

	mu     sync.Mutex
	toasts []Toast
}

// NewFeed builds a feed retaining at most size entries.
func NewFeed(size int, logg *logger.Logger) *Feed {
	if size <= 0 {
		size = defaultFeedSize
	}
	return &Feed{logg: logg, size: size}
}

// Notify implements Notifier.
func (f *Feed) Notify(ctx context.Context, level enums.ToastLevel, message string) {
	if !level.IsValid() {
		level = enums.ToastLevelInfo
	}

	if f.logg != nil {
		ctx = f.logg.WithFields(ctx, map[string]any{
			"toast_level": level.String(),
		})
		f.logg.Info(ctx, message)
	}

	toast := Toast{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.toasts = append([]Toast{toast}, f.toasts...)
	if len(f.toasts) > f.size {
		f.toasts = f.toasts[:f.size]
	}
}

// Recent returns the retained toasts, newest first.
func (f *Feed) Recent() []Toast {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Toast, len(f.toasts))
	copy(out, f.toasts)
	return out
}
