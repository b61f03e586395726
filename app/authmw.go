package app

import (
	"net/http"
	"strings"

	"school_equipment_lending/auth"
	"school_equipment_lending/db"
	"school_equipment_lending/models"
	"school_equipment_lending/session"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token, rejects revoked ones, and puts
// the caller's identity into the request context.
func AuthRequired(tokens *session.TokenStore, cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}

		claims, err := auth.ValidateToken(cfg.JWTSecret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid token"})
			return
		}

		revoked, err := tokens.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, H{"error": "session check failed"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "token revoked"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userName", claims.Name)
		c.Set("role", claims.Role)
		c.Set("jti", claims.ID)
		c.Set("tokenExp", claims.ExpiresAt.Time)
		c.Next()
	}
}

// AdminOnly gates a route group to admin callers. AuthRequired must run
// first.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// ActorFrom rebuilds the acting user from the context values AuthRequired
// stored.
func ActorFrom(c *gin.Context) db.Actor {
	return db.Actor{
		ID:   c.GetString("userID"),
		Name: c.GetString("userName"),
		Role: c.GetString("role"),
	}
}
