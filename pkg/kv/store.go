package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shopwave/shopwave-backend/pkg/config"
	"github.com/shopwave/shopwave-backend/pkg/logger"
)

// Store is a persisted key-value store: one row per logical key, values
// serialized as JSON text. Each key is an independent unit of persistence;
// there are no cross-key transactions. A missing or malformed value always
// reads back as the caller's fallback, never as an error.
type Store struct {
	conn *gorm.DB

	// mu serializes read-modify-write cycles so Update sees a consistent
	// previous value even with concurrent HTTP handlers.
	mu sync.Mutex
}

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

type entry struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (entry) TableName() string {
	return "kv_entries"
}

// Open boots the store using the configured driver and ensures the backing
// table exists.
func Open(ctx context.Context, cfg config.StoreConfig, logg *logger.Logger) (*Store, error) {
	var dialector gorm.Dialector
	switch cfg.NormalizedDriver() {
	case config.StoreDriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		})
	case config.StoreDriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrating store: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "key-value store ready")
	}

	return &Store{conn: conn}, nil
}

// Ping verifies the datasource is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close shuts down the pooled connections.
func (s *Store) Close() error {
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Delete removes a key. Missing keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.conn.WithContext(ctx).Delete(&entry{}, "key = ?", key).Error
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	var row entry
	if err := s.conn.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		return "", false
	}
	return row.Value, true
}

func (s *Store) write(ctx context.Context, key, value string) error {
	row := entry{Key: key, Value: value}
	return s.conn.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

// Get returns the decoded value for key, or fallback when the key is missing
// or its payload does not decode into T.
func Get[T any](ctx context.Context, s *Store, key string, fallback T) T {
	raw, ok := s.read(ctx, key)
	if !ok {
		return fallback
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return fallback
	}
	return value
}

// Set serializes value and persists it under key.
func Set[T any](ctx context.Context, s *Store, key string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.write(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// Update applies fn to the current value (or fallback) and persists the
// result, holding the store lock across the whole read-modify-write so
// concurrent updaters never interleave.
func Update[T any](ctx context.Context, s *Store, key string, fallback T, fn func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := Get(ctx, s, key, fallback)
	next := fn(current)
	if err := Set(ctx, s, key, next); err != nil {
		return next, err
	}
	return next, nil
}
