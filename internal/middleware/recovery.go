package middleware

import (
	"auth-srv/pkg/discord"
	"auth-srv/pkg/log"
	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Recovery recovers from panics and logs the error to Discord. The verified
// subject, when the request carried one, goes into the report so a crashing
// auth flow can be traced back to the principal that triggered it.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				subject := scope.GetScopeFromContext(ctx).UserID
				if subject == "" {
					subject = "anonymous"
				}
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s | IP: %s | Subject: %s",
					err, c.Request.Method, c.Request.URL.Path, c.ClientIP(), subject)

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
