package delivery

import (
	"log"
	"net/http"
	"strings"

	"lifeops-backend/internal/auth/usecase"
	"lifeops-backend/internal/backing"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer Google access token into a session. A
// missing or rejected token leaves the request signed out rather than
// aborting it: data endpoints answer signed-out callers with empty
// collections.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("signedIn", false)

		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		token := parts[1]
		session, err := authUsecase.ValidateToken(c.Request.Context(), token)
		if err != nil {
			if !usecase.IsSignedOut(err) {
				log.Printf("[Auth] Token validation failed: %v", err)
			}
			c.Next()
			return
		}

		c.Set("userID", session.UserID)
		c.Set("email", session.Email)
		c.Set("signedIn", true)
		c.Set("session", session)
		c.Request = c.Request.WithContext(backing.WithAccessToken(c.Request.Context(), token))
		c.Next()
	}
}

// RequireSession aborts signed-out requests with 401
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("signedIn") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "로그인이 필요합니다"})
			c.Abort()
			return
		}
		c.Next()
	}
}
