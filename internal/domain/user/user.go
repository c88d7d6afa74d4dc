package user

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the session identity asserted by the external identity
// provider. StackHunt never stores credentials.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Name  *string   `json:"name"`
	Email *string   `json:"email"`
	Image *string   `json:"image"`
}

// Preferences holds the per-user onboarding flag. One row per user,
// upserted, never duplicated.
type Preferences struct {
	UserID              uuid.UUID `json:"user_id"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
}

type PreferencesRepository interface {
	// GetByUserID returns the stored preferences, or the zero-value
	// default when the user has no row yet.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Preferences, error)
	Upsert(ctx context.Context, prefs *Preferences) error
}
