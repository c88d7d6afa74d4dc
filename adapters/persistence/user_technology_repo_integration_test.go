package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/stackhunt/stackhunt/internal/domain/technology"
	"github.com/stackhunt/stackhunt/internal/domain/user"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

type UserTechnologyRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool       *pgxpool.Pool
	pgContainer  *postgres.PostgresContainer
	testLogger   logger.Logger
	techRepo     technology.Repository
	userTechRepo technology.UserTechnologyRepository
	prefsRepo    user.PreferencesRepository
	catalog      []*technology.Technology
}

func (s *UserTechnologyRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewZapLogger("development")
	s.techRepo = NewPostgresTechnologyRepo(s.dbPool, s.testLogger)
	s.userTechRepo = NewPostgresUserTechnologyRepo(s.dbPool, s.testLogger)
	s.prefsRepo = NewPostgresPreferencesRepo(s.dbPool, s.testLogger)

	seed := []struct {
		name     string
		category string
		score    int
	}{
		{"Go", technology.CategoryLanguage, 90},
		{"React", technology.CategoryFramework, 100},
		{"Docker", technology.CategoryTool, 92},
	}
	for _, entry := range seed {
		tech := &technology.Technology{
			ID:              uuid.New(),
			Name:            entry.name,
			Category:        entry.category,
			PopularityScore: entry.score,
		}
		query := `INSERT INTO technologies (id, name, category, popularity_score) VALUES ($1, $2, $3, $4)`
		if _, err := s.dbPool.Exec(ctx, query, tech.ID, tech.Name, tech.Category, tech.PopularityScore); err != nil {
			s.T().Fatalf("Failed to seed technology %s: %s", entry.name, err)
		}
		s.catalog = append(s.catalog, tech)
	}
}

func (s *UserTechnologyRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestUserTechnologyRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(UserTechnologyRepoIntegrationTestSuite))
}

func (s *UserTechnologyRepoIntegrationTestSuite) Test_ListAll_OrderedByPopularity() {
	ctx := context.Background()

	techs, err := s.techRepo.ListAll(ctx)

	s.NoError(err)
	s.Len(techs, 3)
	s.Equal("React", techs[0].Name)
	s.Equal("Docker", techs[1].Name)
	s.Equal("Go", techs[2].Name)
}

func (s *UserTechnologyRepoIntegrationTestSuite) Test_MissingIDs() {
	ctx := context.Background()

	unknown := uuid.New()
	missing, err := s.techRepo.MissingIDs(ctx, []uuid.UUID{s.catalog[0].ID, unknown})

	s.NoError(err)
	s.Len(missing, 1)
	s.Equal(unknown, missing[0])
}

func (s *UserTechnologyRepoIntegrationTestSuite) Test_ReplaceForUser_RoundTrip() {
	ctx := context.Background()
	userID := uuid.New()

	err := s.userTechRepo.ReplaceForUser(ctx, userID, []technology.Selection{
		{TechnologyID: s.catalog[0].ID, SkillLevel: technology.SkillBeginner},
		{TechnologyID: s.catalog[1].ID, SkillLevel: technology.SkillAdvanced},
	})
	s.NoError(err)

	uts, err := s.userTechRepo.ListByUser(ctx, userID)
	s.NoError(err)
	s.Len(uts, 2)

	byID := make(map[uuid.UUID]*technology.UserTechnology, len(uts))
	for _, ut := range uts {
		s.Require().NotNil(ut.Technology)
		byID[ut.TechnologyID] = ut
	}
	s.Require().Contains(byID, s.catalog[0].ID)
	s.Require().Contains(byID, s.catalog[1].ID)
	s.Equal(s.catalog[0].Name, byID[s.catalog[0].ID].Technology.Name)
	s.Equal(technology.SkillBeginner, byID[s.catalog[0].ID].SkillLevel)
	s.Equal(technology.SkillAdvanced, byID[s.catalog[1].ID].SkillLevel)

	// The replace also marks onboarding complete.
	prefs, err := s.prefsRepo.GetByUserID(ctx, userID)
	s.NoError(err)
	s.True(prefs.OnboardingCompleted)
}

func (s *UserTechnologyRepoIntegrationTestSuite) Test_ReplaceForUser_Wholesale() {
	ctx := context.Background()
	userID := uuid.New()

	err := s.userTechRepo.ReplaceForUser(ctx, userID, []technology.Selection{
		{TechnologyID: s.catalog[0].ID, SkillLevel: technology.SkillBeginner},
		{TechnologyID: s.catalog[1].ID, SkillLevel: technology.SkillIntermediate},
	})
	s.NoError(err)

	err = s.userTechRepo.ReplaceForUser(ctx, userID, []technology.Selection{
		{TechnologyID: s.catalog[2].ID, SkillLevel: technology.SkillAdvanced},
	})
	s.NoError(err)

	uts, err := s.userTechRepo.ListByUser(ctx, userID)
	s.NoError(err)
	s.Len(uts, 1)
	s.Equal(s.catalog[2].ID, uts[0].TechnologyID)
	s.Equal(technology.SkillAdvanced, uts[0].SkillLevel)
}

func (s *UserTechnologyRepoIntegrationTestSuite) Test_ReplaceForUser_EmptyClears() {
	ctx := context.Background()
	userID := uuid.New()

	err := s.userTechRepo.ReplaceForUser(ctx, userID, []technology.Selection{
		{TechnologyID: s.catalog[0].ID, SkillLevel: technology.SkillBeginner},
	})
	s.NoError(err)

	err = s.userTechRepo.ReplaceForUser(ctx, userID, nil)
	s.NoError(err)

	uts, err := s.userTechRepo.ListByUser(ctx, userID)
	s.NoError(err)
	s.Empty(uts)
}

func (s *UserTechnologyRepoIntegrationTestSuite) Test_Preferences_DefaultAndUpsert() {
	ctx := context.Background()
	userID := uuid.New()

	prefs, err := s.prefsRepo.GetByUserID(ctx, userID)
	s.NoError(err)
	s.False(prefs.OnboardingCompleted)

	err = s.prefsRepo.Upsert(ctx, &user.Preferences{UserID: userID, OnboardingCompleted: true})
	s.NoError(err)

	prefs, err = s.prefsRepo.GetByUserID(ctx, userID)
	s.NoError(err)
	s.True(prefs.OnboardingCompleted)
}
