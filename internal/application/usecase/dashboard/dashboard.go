package dashboard

import (
	"context"
	"time"

	"github.com/stackhunt/stackhunt/internal/domain/dashboard"
	"github.com/stackhunt/stackhunt/internal/domain/discovery"
	"github.com/stackhunt/stackhunt/internal/domain/technology"
	"github.com/stackhunt/stackhunt/internal/domain/user"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

// GetDashboardUseCase is the dashboard state aggregator: it assembles the
// persisted facts into one snapshot. Read-only; it never returns a partially
// populated snapshot.
type GetDashboardUseCase struct {
	prefsRepo    user.PreferencesRepository
	userTechRepo technology.UserTechnologyRepository
	provider     discovery.Provider
	logger       logger.Logger
}

func NewGetDashboardUseCase(
	pr user.PreferencesRepository,
	utr technology.UserTechnologyRepository,
	dp discovery.Provider,
	log logger.Logger,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		prefsRepo:    pr,
		userTechRepo: utr,
		provider:     dp,
		logger:       log,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, identity user.Identity) (*dashboard.Snapshot, error) {
	prefs, err := uc.prefsRepo.GetByUserID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	selected, err := uc.userTechRepo.ListByUser(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	status, err := uc.provider.Status(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	// The flag and the association count are redundant-but-independent
	// signals; either one marks the user as onboarded.
	onboardingCompleted := prefs.OnboardingCompleted || len(selected) > 0
	technologiesSelected := len(selected) > 0

	var lastUpdated *time.Time
	for _, ut := range selected {
		if lastUpdated == nil || ut.UpdatedAt.After(*lastUpdated) {
			t := ut.UpdatedAt
			lastUpdated = &t
		}
	}

	state := dashboard.StateInitial
	discoveryStatus := discovery.StatusPending
	if technologiesSelected {
		if status.IssuesFound == 0 {
			state = dashboard.StateReady
			discoveryStatus = discovery.StatusReady
		} else {
			state = dashboard.StateActive
			discoveryStatus = discovery.StatusCompleted
		}
	}

	return &dashboard.Snapshot{
		User: dashboard.User{
			Identity:            identity,
			OnboardingCompleted: onboardingCompleted,
		},
		Technologies: dashboard.Technologies{
			Selected:    selected,
			Count:       len(selected),
			LastUpdated: lastUpdated,
		},
		GitHub: dashboard.GitHub{
			Connected:         status.GitHubConnected,
			Username:          status.GitHubUsername,
			RepositoriesFound: status.RepositoriesFound,
			SyncInProgress:    status.SyncInProgress,
		},
		Discovery: dashboard.Discovery{
			Status:            discoveryStatus,
			IssuesFound:       status.IssuesFound,
			RepositoriesFound: status.RepositoriesFound,
			CanTrigger:        technologiesSelected && discoveryStatus == discovery.StatusReady,
		},
		Issues: dashboard.Issues{
			Items:   []dashboard.Issue{},
			Total:   status.IssuesFound,
			HasMore: false,
		},
		State: state,
	}, nil
}
