package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/apierror"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/service"
)

// Startup gates every request behind the one-time seed and data migration.
// The bootstrap service does the single-flight bookkeeping; this just turns
// a failed initialization into a 500 so the next request can retry.
func Startup(bootstrap service.BootstrapService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := bootstrap.Ensure(c.Request.Context()); err != nil {
			log.Error().Err(err).Msg("startup initialization failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Failed to initialize application data."))
			return
		}
		c.Next()
	}
}
