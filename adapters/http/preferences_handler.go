package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	prefsUC "github.com/stackhunt/stackhunt/internal/application/usecase/preferences"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

type PreferencesHandler struct {
	completeOnboarding *prefsUC.CompleteOnboardingUseCase
	logger             logger.Logger
}

func NewPreferencesHandler(uc *prefsUC.CompleteOnboardingUseCase, log logger.Logger) *PreferencesHandler {
	return &PreferencesHandler{completeOnboarding: uc, logger: log}
}

func (h *PreferencesHandler) CompleteOnboarding(c *gin.Context) {
	identity, ok := GetIdentityFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	prefs, err := h.completeOnboarding.Execute(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"preferences": gin.H{
			"userId":              prefs.UserID.String(),
			"onboardingCompleted": prefs.OnboardingCompleted,
		},
	})
}
