package middleware

import (
	"net/http"
	"strings"

	"pokedex-server/auth"
	"pokedex-server/repositories"
	"pokedex-server/usecases"

	"github.com/gin-gonic/gin"
)

// TrainerIDKey is the context key holding the authenticated trainer id.
const TrainerIDKey = "trainerID"

// Auth validates the bearer token and stores the caller's trainer id in
// the request context.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		splitToken := strings.Split(authHeader, "Bearer ")
		if len(splitToken) != 2 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token format"})
			c.Abort()
			return
		}

		trainerID, err := tokens.Verify(splitToken[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(TrainerIDKey, trainerID)
		c.Next()
	}
}

// AdminOnly allows only callers whose stored trainer record carries the
// admin flag. The flag is re-read from the store on every request, not
// taken from the token.
func AdminOnly(trainers repositories.TrainerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		trainerID := c.GetString(TrainerIDKey)

		trainer, err := trainers.GetByID(trainerID)
		if err != nil || !trainer.Admin {
			c.JSON(http.StatusForbidden, gin.H{"error": usecases.ErrAdminRequired.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}
