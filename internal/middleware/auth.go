package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/solarsense-dev/solarsense/db"
	"github.com/solarsense-dev/solarsense/internal/auth"
	"github.com/solarsense-dev/solarsense/internal/models"
	"github.com/solarsense-dev/solarsense/internal/types"
)

// AuthenticatedUser is the identity the middleware stores in the gin context
// for handlers to read back.
type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthMiddleware verifies the bearer token and loads the account it names.
// The DB lookup means a deleted account is rejected even while its token is
// still within its expiry window.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw, found := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")

		if !found || raw == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		token, err := auth.VerifyJWT(raw)

		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		// Numeric JSON claims decode as float64.
		userID, ok := claims["user_id"].(float64)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token claims"})
			return
		}

		var user models.User

		if err := db.DB.First(&user, uint(userID)).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
		ctx.Next()
	}
}
