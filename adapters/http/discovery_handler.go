package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stackhunt/stackhunt/internal/domain/discovery"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

type DiscoveryHandler struct {
	provider discovery.Provider
	logger   logger.Logger
}

func NewDiscoveryHandler(p discovery.Provider, log logger.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{provider: p, logger: log}
}

// TriggerDiscovery accepts a discovery request. The engine does not exist
// yet, so the request is recorded and answered with the stub status.
func (h *DiscoveryHandler) TriggerDiscovery(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	status, err := h.provider.Trigger(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"discovery": gin.H{
			"status":            discovery.StatusPending,
			"issuesFound":       status.IssuesFound,
			"repositoriesFound": status.RepositoriesFound,
		},
	})
}
