package preferences

import (
	"context"

	"github.com/google/uuid"
	"github.com/stackhunt/stackhunt/internal/domain/user"
)

// CompleteOnboardingUseCase marks onboarding done without a technology
// submission; the flag and the association count are independent signals.
type CompleteOnboardingUseCase struct {
	prefsRepo user.PreferencesRepository
}

func NewCompleteOnboardingUseCase(pr user.PreferencesRepository) *CompleteOnboardingUseCase {
	return &CompleteOnboardingUseCase{prefsRepo: pr}
}

func (uc *CompleteOnboardingUseCase) Execute(ctx context.Context, userID uuid.UUID) (*user.Preferences, error) {
	prefs := &user.Preferences{
		UserID:              userID,
		OnboardingCompleted: true,
	}
	if err := uc.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
