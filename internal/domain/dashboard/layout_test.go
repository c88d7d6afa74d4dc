package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackhunt/stackhunt/internal/domain/technology"
	"github.com/stackhunt/stackhunt/internal/domain/user"
)

func snapshotWith(onboarded bool, techCount int, state State, issuesTotal int) *Snapshot {
	selected := make([]*technology.UserTechnology, techCount)
	now := time.Now().UTC()
	for i := range selected {
		selected[i] = &technology.UserTechnology{
			ID:           uuid.New(),
			UserID:       uuid.New(),
			TechnologyID: uuid.New(),
			SkillLevel:   technology.SkillBeginner,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	return &Snapshot{
		User: User{
			Identity:            user.Identity{ID: uuid.New()},
			OnboardingCompleted: onboarded,
		},
		Technologies: Technologies{Selected: selected, Count: techCount},
		Issues:       Issues{Items: []Issue{}, Total: issuesTotal},
		State:        state,
	}
}

func TestDeriveLayoutState(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *Snapshot
		want     LayoutState
	}{
		{
			name:     "no technologies forces onboarding regardless of flag",
			snapshot: snapshotWith(true, 0, StateReady, 0),
			want:     LayoutOnboardingIncomplete,
		},
		{
			name:     "onboarding flag false forces onboarding even with selections",
			snapshot: snapshotWith(false, 3, StateReady, 0),
			want:     LayoutOnboardingIncomplete,
		},
		{
			name:     "fresh user",
			snapshot: snapshotWith(false, 0, StateInitial, 0),
			want:     LayoutOnboardingIncomplete,
		},
		{
			name:     "discovering maps to github connecting",
			snapshot: snapshotWith(true, 2, StateDiscovering, 0),
			want:     LayoutGitHubConnecting,
		},
		{
			name:     "active with issues",
			snapshot: snapshotWith(true, 2, StateActive, 5),
			want:     LayoutActive,
		},
		{
			name:     "active without issues falls through to post onboarding",
			snapshot: snapshotWith(true, 2, StateActive, 0),
			want:     LayoutPostOnboarding,
		},
		{
			name:     "ready maps to post onboarding",
			snapshot: snapshotWith(true, 1, StateReady, 0),
			want:     LayoutPostOnboarding,
		},
		{
			name:     "unknown state falls back to post onboarding",
			snapshot: snapshotWith(true, 1, State("garbage"), 0),
			want:     LayoutPostOnboarding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveLayoutState(tt.snapshot))
		})
	}
}

func TestDeriveLayoutState_Deterministic(t *testing.T) {
	s := snapshotWith(true, 4, StateReady, 0)
	first := DeriveLayoutState(s)
	second := DeriveLayoutState(s)
	assert.Equal(t, first, second)

	bannerFirst := DeriveStatusBanner(s)
	bannerSecond := DeriveStatusBanner(s)
	assert.Equal(t, bannerFirst, bannerSecond)

	layoutFirst := DeriveLayout(s)
	layoutSecond := DeriveLayout(s)
	assert.Equal(t, layoutFirst, layoutSecond)
}

func TestDeriveStatusBanner_OnboardingIncomplete(t *testing.T) {
	banner := DeriveStatusBanner(snapshotWith(false, 0, StateInitial, 0))

	assert.Equal(t, LayoutOnboardingIncomplete, banner.State)
	assert.Equal(t, "Complete your setup to start discovering issues", banner.Message)
	assert.Nil(t, banner.Metrics)
	require.NotNil(t, banner.NextAction)
	assert.Equal(t, "Complete Setup", banner.NextAction.Label)
	assert.Equal(t, "/onboarding", banner.NextAction.Href)
}

func TestDeriveStatusBanner_PostOnboarding(t *testing.T) {
	banner := DeriveStatusBanner(snapshotWith(true, 3, StateReady, 0))

	assert.Equal(t, LayoutPostOnboarding, banner.State)
	assert.Equal(t, "Ready to Discover Issues", banner.Message)
	require.NotNil(t, banner.Metrics)
	require.NotNil(t, banner.Metrics.TechnologiesSelected)
	assert.Equal(t, 3, *banner.Metrics.TechnologiesSelected)
	assert.Nil(t, banner.Metrics.IssuesAvailable)
	require.NotNil(t, banner.NextAction)
	assert.Equal(t, "Discover My Issues", banner.NextAction.Label)
}

func TestDeriveStatusBanner_GitHubConnecting(t *testing.T) {
	s := snapshotWith(true, 2, StateDiscovering, 0)
	s.GitHub.RepositoriesFound = 7
	banner := DeriveStatusBanner(s)

	assert.Equal(t, LayoutGitHubConnecting, banner.State)
	require.NotNil(t, banner.Metrics)
	assert.Equal(t, 2, *banner.Metrics.TechnologiesSelected)
	assert.Equal(t, 7, *banner.Metrics.RepositoriesFound)
	assert.Nil(t, banner.NextAction, "operation in flight has no next action")
}

func TestDeriveStatusBanner_Active(t *testing.T) {
	s := snapshotWith(true, 2, StateActive, 12)
	s.GitHub.RepositoriesFound = 4
	banner := DeriveStatusBanner(s)

	assert.Equal(t, LayoutActive, banner.State)
	assert.Equal(t, "12 issues discovered, 4 repositories monitored", banner.Message)
	require.NotNil(t, banner.Metrics)
	assert.Equal(t, 2, *banner.Metrics.TechnologiesSelected)
	assert.Equal(t, 4, *banner.Metrics.RepositoriesFound)
	assert.Equal(t, 12, *banner.Metrics.IssuesAvailable)
	assert.Nil(t, banner.NextAction)
}

func TestDeriveLayout_WidgetTables(t *testing.T) {
	tests := []struct {
		name        string
		snapshot    *Snapshot
		mainContent []string
		sidebar     []string
	}{
		{
			name:        "onboarding incomplete",
			snapshot:    snapshotWith(false, 0, StateInitial, 0),
			mainContent: []string{"getting-started-card", "user-info-card"},
			sidebar:     []string{"progress-tracker"},
		},
		{
			name:        "post onboarding",
			snapshot:    snapshotWith(true, 1, StateReady, 0),
			mainContent: []string{"technology-profile-widget", "github-connection-widget"},
			sidebar:     []string{"user-info-card"},
		},
		{
			name:        "github connecting",
			snapshot:    snapshotWith(true, 1, StateDiscovering, 0),
			mainContent: []string{"repository-discovery-feed"},
			sidebar:     []string{"technologies-collapsed", "github-status"},
		},
		{
			name:        "active",
			snapshot:    snapshotWith(true, 1, StateActive, 3),
			mainContent: []string{"issues-feed"},
			sidebar:     []string{"technologies-widget", "stats-widget", "filters-widget"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := DeriveLayout(tt.snapshot)
			assert.Equal(t, tt.mainContent, layout.MainContent)
			assert.Equal(t, tt.sidebar, layout.Sidebar)
			assert.Equal(t, DeriveLayoutState(tt.snapshot), layout.StatusBanner.State)
		})
	}
}
