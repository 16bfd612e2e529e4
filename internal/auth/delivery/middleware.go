package delivery

import (
	"net/http"
	"strings"

	"medagenda-backend/internal/auth/repository"
	"medagenda-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// userIDKey is the context key the gate stores the verified identity
// under. Handlers must read it from here, never from the request body.
const userIDKey = "userID"

// UserID returns the identity attached by LoginRequired.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// LoginRequired guards protected routes. It extracts the bearer
// credential, verifies it and resolves it to a live user before
// letting the request through. All verification failures, including a
// valid token whose user has since been deleted, answer with the same
// generic 401 so a caller cannot probe which accounts exist.
func LoginRequired(tokens *usecase.TokenService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": []string{"Login required"}})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": []string{"Token inválido"}})
			c.Abort()
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": []string{"Token inválido"}})
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
			c.Abort()
			return
		}
		if user == nil {
			// Stale credential: signature is fine but the account is gone
			c.JSON(http.StatusUnauthorized, gin.H{"error": []string{"Token inválido"}})
			c.Abort()
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}
