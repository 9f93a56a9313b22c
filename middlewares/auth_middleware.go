package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Githubuser289/Calories-BE/services"
	"github.com/Githubuser289/Calories-BE/utils"
)

// AuthMiddleware verifies the bearer token and loads the matching
// account. The presented token must also equal the token stored on the
// user row, which is how logout revokes tokens before they expire.
// On success the gin context carries "userID" (public UUID) and "email".
func AuthMiddleware(tokens *utils.TokenMaker, auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication is required for this route"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		user, err := auth.FindByPublicID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error: " + err.Error()})
			return
		}

		if user.Token != tokenString {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		c.Set("userID", user.PublicID)
		c.Set("email", user.Email)
		c.Next()
	}
}
