package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stackhunt/stackhunt/pkg/apperror"
	"github.com/stackhunt/stackhunt/pkg/logger"
	"go.uber.org/zap"
)

// respondError logs the full error server-side and writes the client-facing
// body. Internal causes never reach the response.
func respondError(c *gin.Context, log logger.Logger, err error) {
	status := apperror.ToHTTPStatus(err)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err, zap.String("path", c.Request.URL.Path))
		} else {
			log.Warn("Request rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
		c.JSON(status, appErr.ToJSON())
		return
	}

	log.Error("Request failed with unclassified error", err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred"})
}

// bindingErrorDetails turns gin binding failures into field-level details
// for the 400 body.
func bindingErrorDetails(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, len(verrs))
		for i, fe := range verrs {
			switch fe.Tag() {
			case "required":
				details[i] = fmt.Sprintf("%s is required", fe.Field())
			case "oneof":
				details[i] = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
			default:
				details[i] = fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
			}
		}
		return details
	}
	return []string{err.Error()}
}
