package http

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/auth"
	"github.com/folioforge/folioforge/pkg/logger"
)

const (
	GinContextKeyOwnerID = "ownerID"
)

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyOwnerID, claims.OwnerID)

		c.Next()
	}
}

func GetOwnerIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(GinContextKeyOwnerID)
	if !ok {
		return uuid.Nil, false
	}
	ownerIDUUID, ok := ownerID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return ownerIDUUID, true
}

// ErrorMiddleware turns errors collected on the gin context into one JSON
// response. Internal errors are logged with their cause and answered with a
// neutral body.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unexpected error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", appErr.Err,
				zap.String("path", c.Request.URL.Path),
				zap.String("details", appErr.Details),
			)
		}

		c.JSON(status, appErr.ToJSON())
	}
}

// InFlightGuard rejects a request while the same owner still has one running
// for the same action, closing the double-submit window that duplicate
// records used to slip through.
func InFlightGuard(action string) gin.HandlerFunc {
	var inFlight sync.Map

	return func(c *gin.Context) {
		ownerID, ok := GetOwnerIDFromGinContext(c)
		if !ok {
			c.Next()
			return
		}

		key := ownerID.String() + ":" + action
		if _, loaded := inFlight.LoadOrStore(key, struct{}{}); loaded {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "a previous request is still being processed"})
			return
		}
		defer inFlight.Delete(key)

		c.Next()
	}
}
