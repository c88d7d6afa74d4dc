package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackhunt/stackhunt/internal/domain/dashboard"
	"github.com/stackhunt/stackhunt/internal/domain/discovery"
	"github.com/stackhunt/stackhunt/internal/domain/technology"
	"github.com/stackhunt/stackhunt/internal/domain/user"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

type fakePrefsRepo struct {
	prefs map[uuid.UUID]*user.Preferences
	err   error
}

func (f *fakePrefsRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*user.Preferences, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.prefs[userID]; ok {
		return p, nil
	}
	return &user.Preferences{UserID: userID}, nil
}

func (f *fakePrefsRepo) Upsert(_ context.Context, p *user.Preferences) error {
	if f.prefs == nil {
		f.prefs = map[uuid.UUID]*user.Preferences{}
	}
	f.prefs[p.UserID] = p
	return nil
}

type fakeUserTechRepo struct {
	byUser map[uuid.UUID][]*technology.UserTechnology
	err    error
}

func (f *fakeUserTechRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*technology.UserTechnology, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

func (f *fakeUserTechRepo) ReplaceForUser(_ context.Context, userID uuid.UUID, selections []technology.Selection) error {
	return errors.New("not used in aggregator tests")
}

type fakeProvider struct {
	status discovery.Status
}

func (f *fakeProvider) Status(_ context.Context, _ uuid.UUID) (*discovery.Status, error) {
	s := f.status
	return &s, nil
}

func (f *fakeProvider) Trigger(_ context.Context, _ uuid.UUID) (*discovery.Status, error) {
	s := f.status
	return &s, nil
}

func newAggregator(prefs *fakePrefsRepo, uts *fakeUserTechRepo) *GetDashboardUseCase {
	return NewGetDashboardUseCase(prefs, uts, &fakeProvider{}, logger.NewZapLogger("development"))
}

func TestGetDashboard_FreshUser(t *testing.T) {
	identity := user.Identity{ID: uuid.New()}
	uc := newAggregator(&fakePrefsRepo{}, &fakeUserTechRepo{})

	snapshot, err := uc.Execute(context.Background(), identity)
	require.NoError(t, err)

	assert.Equal(t, dashboard.StateInitial, snapshot.State)
	assert.False(t, snapshot.User.OnboardingCompleted)
	assert.Equal(t, 0, snapshot.Technologies.Count)
	assert.Nil(t, snapshot.Technologies.LastUpdated)
	assert.False(t, snapshot.GitHub.Connected)
	assert.Empty(t, snapshot.Issues.Items)
	assert.Equal(t, discovery.StatusPending, snapshot.Discovery.Status)
	assert.False(t, snapshot.Discovery.CanTrigger)

	assert.Equal(t, dashboard.LayoutOnboardingIncomplete, dashboard.DeriveLayoutState(snapshot))
}

func TestGetDashboard_UserWithSelections(t *testing.T) {
	userID := uuid.New()
	earlier := time.Now().UTC().Add(-time.Hour)
	later := time.Now().UTC()

	uts := &fakeUserTechRepo{byUser: map[uuid.UUID][]*technology.UserTechnology{
		userID: {
			{ID: uuid.New(), UserID: userID, TechnologyID: uuid.New(), SkillLevel: technology.SkillIntermediate, UpdatedAt: earlier},
			{ID: uuid.New(), UserID: userID, TechnologyID: uuid.New(), SkillLevel: technology.SkillAdvanced, UpdatedAt: later},
		},
	}}
	uc := newAggregator(&fakePrefsRepo{}, uts)

	snapshot, err := uc.Execute(context.Background(), user.Identity{ID: userID})
	require.NoError(t, err)

	assert.Equal(t, dashboard.StateReady, snapshot.State)
	assert.True(t, snapshot.User.OnboardingCompleted, "selections alone mark the user onboarded")
	assert.Equal(t, 2, snapshot.Technologies.Count)
	require.NotNil(t, snapshot.Technologies.LastUpdated)
	assert.Equal(t, later, *snapshot.Technologies.LastUpdated)
	assert.Equal(t, discovery.StatusReady, snapshot.Discovery.Status)
	assert.True(t, snapshot.Discovery.CanTrigger)

	assert.Equal(t, dashboard.LayoutPostOnboarding, dashboard.DeriveLayoutState(snapshot))
}

func TestGetDashboard_FlagWithoutSelections(t *testing.T) {
	userID := uuid.New()
	prefs := &fakePrefsRepo{prefs: map[uuid.UUID]*user.Preferences{
		userID: {UserID: userID, OnboardingCompleted: true},
	}}
	uc := newAggregator(prefs, &fakeUserTechRepo{})

	snapshot, err := uc.Execute(context.Background(), user.Identity{ID: userID})
	require.NoError(t, err)

	// The flag keeps the user onboarded even after a full selection wipe,
	// but zero selections still means the initial state.
	assert.True(t, snapshot.User.OnboardingCompleted)
	assert.Equal(t, dashboard.StateInitial, snapshot.State)
	assert.Equal(t, dashboard.LayoutOnboardingIncomplete, dashboard.DeriveLayoutState(snapshot))
}

func TestGetDashboard_RepoErrorReturnsNoSnapshot(t *testing.T) {
	uc := newAggregator(&fakePrefsRepo{err: errors.New("connection reset")}, &fakeUserTechRepo{})

	snapshot, err := uc.Execute(context.Background(), user.Identity{ID: uuid.New()})
	assert.Error(t, err)
	assert.Nil(t, snapshot, "aggregator never returns a partial snapshot")
}
