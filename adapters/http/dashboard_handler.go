package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stackhunt/stackhunt/internal/application/usecase/dashboard"
	domaindash "github.com/stackhunt/stackhunt/internal/domain/dashboard"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

type DashboardHandler struct {
	getDashboard *dashboard.GetDashboardUseCase
	logger       logger.Logger
}

func NewDashboardHandler(uc *dashboard.GetDashboardUseCase, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{getDashboard: uc, logger: log}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	snapshot, err := h.getDashboard.Execute(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ToDashboardSnapshotDTO(snapshot))
}

// GetDashboardLayout serves the derived layout so the UI does not have to
// duplicate the decision table. The derivation is pure and recomputed per
// request.
func (h *DashboardHandler) GetDashboardLayout(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	snapshot, err := h.getDashboard.Execute(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	state := domaindash.DeriveLayoutState(snapshot)
	layout := domaindash.DeriveLayout(snapshot)
	c.JSON(http.StatusOK, ToDashboardLayoutDTO(state, layout))
}
