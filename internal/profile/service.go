package profile

import (
	"context"

	"github.com/shopwave/shopwave-backend/internal/notifier"
	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/kv"
	"github.com/shopwave/shopwave-backend/pkg/logger"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

const storeKey = "user-profile"

// DefaultProfile is the profile served before any update is persisted.
func DefaultProfile() types.UserProfile {
	return types.UserProfile{
		ID:    "user-1",
		Name:  "Alex Johnson",
		Email: "alex.j@example.com",
		Phone: "(555) 123-4567",
		Address: types.UserAddress{
			Street:  "123 Market Street",
			City:    "San Francisco",
			State:   "CA",
			Zip:     "94103",
			Country: "USA",
		},
	}
}

// Repository persists the profile record.
type Repository interface {
	Load(ctx context.Context) types.UserProfile
	Save(ctx context.Context, profile types.UserProfile) error
}

type kvRepository struct {
	store *kv.Store
}

func NewRepository(store *kv.Store) Repository {
	return &kvRepository{store: store}
}

func (r *kvRepository) Load(ctx context.Context) types.UserProfile {
	return kv.Get(ctx, r.store, storeKey, DefaultProfile())
}

func (r *kvRepository) Save(ctx context.Context, profile types.UserProfile) error {
	return kv.Set(ctx, r.store, storeKey, profile)
}

// Service reads and replaces the single user profile.
type Service struct {
	repo   Repository
	notify notifier.Notifier
	logg   *logger.Logger
}

func NewService(repo Repository, notify notifier.Notifier, logg *logger.Logger) *Service {
	return &Service{repo: repo, notify: notify, logg: logg}
}

// Get returns the stored profile, or the default when nothing was saved yet.
func (s *Service) Get(ctx context.Context) types.UserProfile {
	return s.repo.Load(ctx)
}

// Update replaces the whole profile. There are no partial patches; callers
// send the full record.
func (s *Service) Update(ctx context.Context, profile types.UserProfile) (types.UserProfile, error) {
	if profile.ID == "" {
		profile.ID = DefaultProfile().ID
	}
	if err := s.repo.Save(ctx, profile); err != nil {
		return types.UserProfile{}, err
	}
	s.notify.Notify(ctx, enums.ToastLevelSuccess, "Profile updated successfully!")
	return profile, nil
}
