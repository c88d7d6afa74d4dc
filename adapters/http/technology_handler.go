package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	techUC "github.com/stackhunt/stackhunt/internal/application/usecase/technology"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

type TechnologyHandler struct {
	listTechnologies *techUC.ListTechnologiesUseCase
	logger           logger.Logger
}

func NewTechnologyHandler(uc *techUC.ListTechnologiesUseCase, log logger.Logger) *TechnologyHandler {
	return &TechnologyHandler{listTechnologies: uc, logger: log}
}

func (h *TechnologyHandler) ListTechnologies(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	annotated, err := h.listTechnologies.Execute(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	dtos := make([]TechnologyWithSelectionDTO, len(annotated))
	for i, ws := range annotated {
		dtos[i] = ToTechnologyWithSelectionDTO(ws)
	}
	c.JSON(http.StatusOK, gin.H{"technologies": dtos})
}
