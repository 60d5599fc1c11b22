package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/apierror"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
)

// BearerAuth guards the admin routes with the single shared token handed
// out by the login endpoint.
func BearerAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Unauthorized"))
			return
		}
		presented := strings.TrimPrefix(header, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Unauthorized"))
			return
		}
		c.Next()
	}
}

// APIKeyAuth guards the webhook routes with the X-API-KEY configured in
// settings. A missing header is 401; a key that doesn't match (including
// when no key has been generated yet) is 403.
func APIKeyAuth(settings repository.SettingsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader("X-API-KEY")
		if presented == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("API key required"))
			return
		}
		current, err := settings.Get(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Internal server error"))
			return
		}
		if current.APIKey == "" ||
			subtle.ConstantTimeCompare([]byte(presented), []byte(current.APIKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Invalid API key"))
			return
		}
		c.Next()
	}
}
