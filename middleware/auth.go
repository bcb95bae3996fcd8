package middleware

import (
	"net/http"
	"strings"

	"codebank/utils"

	"github.com/gin-gonic/gin"
)

// TokenVerifier is the narrow trust boundary the guard depends on.
type TokenVerifier interface {
	Verify(token string) (*utils.Identity, error)
}

// Auth requires an "Authorization: Bearer <token>" header and puts the
// decoded identity into the request context. It is a pure function of the
// headers and never touches a store.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No token, authorization denied"})
			c.Abort()
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is not valid"})
			c.Abort()
			return
		}

		identity, err := verifier.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is not valid"})
			c.Abort()
			return
		}

		c.Set("userId", identity.UserID)
		c.Set("username", identity.Username)

		c.Next()
	}
}
