package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stackhunt/stackhunt/internal/domain/user"
	"github.com/stackhunt/stackhunt/pkg/auth"
	"github.com/stackhunt/stackhunt/pkg/logger"
	"go.uber.org/zap"
)

const GinContextKeyIdentity = "sessionIdentity"

// AuthMiddleware validates the bearer token minted by the identity provider
// and stores the session identity in the request context. Every failure mode
// is the same 401 body so callers cannot probe token state.
func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(GinContextKeyIdentity, user.Identity{
			ID:    claims.UserID,
			Name:  claims.Name,
			Email: claims.Email,
			Image: claims.Image,
		})

		c.Next()
	}
}

// ErrorMiddleware keeps panics from escaping a request handler: they are
// logged server-side and answered with the generic internal error body.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Panic recovered in request handler", nil,
					zap.Any("panic", r), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "An internal server error occurred",
				})
			}
		}()
		c.Next()
	}
}

func GetIdentityFromGinContext(c *gin.Context) (user.Identity, bool) {
	v, ok := c.Get(GinContextKeyIdentity)
	if !ok {
		return user.Identity{}, false
	}
	identity, ok := v.(user.Identity)
	if !ok {
		return user.Identity{}, false
	}
	return identity, true
}
