package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"hotelms/internal/domain"
	"hotelms/internal/pkg/jwt"
	"hotelms/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionChecker looks up the server-side session behind a token id.
type SessionChecker interface {
	GetByTokenID(ctx context.Context, tokenID string) (*domain.Session, error)
}

// Auth validates the bearer token and the session it belongs to. A
// token whose session was revoked (logout, deactivation) is rejected
// even while the JWT itself is still within its expiry.
func Auth(jwtService *jwt.Service, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		session, err := sessions.GetByTokenID(c.Request.Context(), claims.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusUnauthorized, "NO_ACTIVE_SESSION", "Session is not active")
				c.Abort()
				return
			}
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify session")
			c.Abort()
			return
		}
		if !session.ActiveAt(time.Now()) {
			response.Error(c, http.StatusUnauthorized, "NO_ACTIVE_SESSION", "Session is not active")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("token_id", claims.ID)

		c.Next()
	}
}
