package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	techUC "github.com/stackhunt/stackhunt/internal/application/usecase/technology"
	"github.com/stackhunt/stackhunt/internal/domain/technology"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

type UserTechnologyHandler struct {
	listUserTechnologies *techUC.ListUserTechnologiesUseCase
	selectTechnologies   *techUC.SelectTechnologiesUseCase
	logger               logger.Logger
}

func NewUserTechnologyHandler(
	listUC *techUC.ListUserTechnologiesUseCase,
	selectUC *techUC.SelectTechnologiesUseCase,
	log logger.Logger,
) *UserTechnologyHandler {
	return &UserTechnologyHandler{
		listUserTechnologies: listUC,
		selectTechnologies:   selectUC,
		logger:               log,
	}
}

func (h *UserTechnologyHandler) ListUserTechnologies(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	uts, err := h.listUserTechnologies.Execute(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"userTechnologies": ToUserTechnologyDTOs(uts)})
}

// UpdateUserTechnologies replaces the caller's whole selection set. All
// validation happens before any write; the replace itself is one
// transaction.
func (h *UserTechnologyHandler) UpdateUserTechnologies(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdateUserTechnologiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": bindingErrorDetails(err),
		})
		return
	}

	selections := make([]technology.Selection, len(req.Selections))
	var badIDs []string
	for i, sel := range req.Selections {
		id, err := uuid.Parse(sel.TechnologyID)
		if err != nil {
			badIDs = append(badIDs, sel.TechnologyID)
			continue
		}
		selections[i] = technology.Selection{
			TechnologyID: id,
			SkillLevel:   sel.SkillLevel,
		}
	}
	if len(badIDs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": []string{"malformed technology ids: " + strings.Join(badIDs, ", ")},
		})
		return
	}

	uts, err := h.selectTechnologies.Execute(c.Request.Context(), techUC.SelectTechnologiesInput{
		UserID:     identity.ID,
		Selections: selections,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"userTechnologies": ToUserTechnologyDTOs(uts),
	})
}
