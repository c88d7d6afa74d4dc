package discovery

import (
	"context"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusReady      = "ready"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Status is what the discovery collaborator knows about a user. The current
// phase has no engine behind it, so every field stays at its zero value.
type Status struct {
	GitHubConnected   bool
	GitHubUsername    *string
	IssuesFound       int
	RepositoriesFound int
	SyncInProgress    bool
}

// Provider is the port to the (future) issue-discovery engine. Keeping it an
// explicit collaborator lets the dashboard derivation stay testable whether
// or not discovery exists.
type Provider interface {
	Status(ctx context.Context, userID uuid.UUID) (*Status, error)
	Trigger(ctx context.Context, userID uuid.UUID) (*Status, error)
}
