package dashboard

import (
	"time"

	"github.com/stackhunt/stackhunt/internal/domain/technology"
	"github.com/stackhunt/stackhunt/internal/domain/user"
)

// State is the coarse dashboard state tag persisted facts resolve to.
type State string

const (
	StateInitial     State = "initial"
	StateDiscovering State = "discovering"
	StateReady       State = "ready"
	StateActive      State = "active"
)

type User struct {
	user.Identity
	OnboardingCompleted bool
}

type Technologies struct {
	Selected    []*technology.UserTechnology
	Count       int
	LastUpdated *time.Time
}

type GitHub struct {
	Connected         bool
	Username          *string
	RepositoriesFound int
	LastSync          *time.Time
	SyncInProgress    bool
}

type Discovery struct {
	Status            string
	IssuesFound       int
	RepositoriesFound int
	CanTrigger        bool
}

type IssueRepository struct {
	Name     string
	URL      string
	Language *string
	Stars    int
}

type IssueLabel struct {
	Name  string
	Color string
}

type Issue struct {
	ID               string
	Title            string
	URL              string
	Repository       IssueRepository
	Labels           []IssueLabel
	MatchScore       float64
	MatchReasons     []string
	IsGoodFirstIssue bool
	Difficulty       int
	CreatedAt        time.Time
	DiscoveredAt     time.Time
}

type Issues struct {
	Items   []Issue
	Total   int
	HasMore bool
}

// Snapshot is the aggregated, derived view of a user's dashboard-relevant
// state at a point in time. It is recomputed on every fetch and never
// persisted or cached.
type Snapshot struct {
	User         User
	Technologies Technologies
	GitHub       GitHub
	Discovery    Discovery
	Issues       Issues
	State        State
}
