package delivery

import (
	"net/http"

	authdomain "lifeops-backend/internal/auth/domain"
	authdto "lifeops-backend/internal/auth/dto"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the session endpoint
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Me describes the caller's session
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	resp := authdto.MeResponse{SignedIn: c.GetBool("signedIn")}
	if v, ok := c.Get("session"); ok {
		if s, ok := v.(*authdomain.Session); ok {
			resp.UserID = s.UserID
			resp.Email = s.Email
			resp.ExpiresAt = &s.ExpiresAt
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": resp})
}
