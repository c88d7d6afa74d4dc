package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stackhunt/stackhunt/internal/domain/discovery"
	"github.com/stackhunt/stackhunt/pkg/logger"
	"go.uber.org/zap"
)

const triggerMarkerTTL = 24 * time.Hour

// StubProvider stands in for the discovery engine until one exists: status
// is always disconnected and empty. Trigger requests are recorded in Redis
// so the future engine can pick them up.
type StubProvider struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewStubProvider(rdb *redis.Client, log logger.Logger) *StubProvider {
	return &StubProvider{rdb: rdb, logger: log}
}

func triggerKey(userID uuid.UUID) string {
	return fmt.Sprintf("discovery:trigger:%s", userID)
}

func (p *StubProvider) Status(ctx context.Context, userID uuid.UUID) (*discovery.Status, error) {
	return &discovery.Status{}, nil
}

func (p *StubProvider) Trigger(ctx context.Context, userID uuid.UUID) (*discovery.Status, error) {
	err := p.rdb.Set(ctx, triggerKey(userID), time.Now().UTC().Format(time.RFC3339), triggerMarkerTTL).Err()
	if err != nil {
		// Losing a marker only delays the future engine; the stub status
		// is the same either way.
		p.logger.Warn("Failed to record discovery trigger", zap.String("user_id", userID.String()), zap.Error(err))
	} else {
		p.logger.Info("Recorded discovery trigger request", zap.String("user_id", userID.String()))
	}
	return &discovery.Status{}, nil
}

var _ discovery.Provider = (*StubProvider)(nil)
