package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"snaplink-be/internal/apperrors"
	"snaplink-be/internal/entities"
	"snaplink-be/internal/models"
)

const currentUserKey = "current_user"

// CredentialsErrorDetail is the single message for every rejected bearer token.
const CredentialsErrorDetail = "Could not validate credentials"

// Authenticator resolves a bearer token to the user it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores the resolved user in the gin context.
func AuthMiddleware(auth Authenticator, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				logger.DebugContext(c.Request.Context(), "bearer token rejected", "error", err)
				abortUnauthorized(c)
				return
			}
			logger.ErrorContext(c.Request.Context(), "failed to authenticate request", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Internal server error"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok && user != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Detail: CredentialsErrorDetail})
}
