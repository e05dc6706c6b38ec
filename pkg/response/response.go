package response

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"auth-srv/pkg/discord"
	pkgErrors "auth-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeOK,
		Message:   MessageOK,
		Data:      data,
	})
}

// Unauthorized writes a 401 with the given message, or the generic
// MessageUnauthorized when none is supplied.
func Unauthorized(c *gin.Context, message ...string) {
	msg := MessageUnauthorized
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   msg,
	})
}

// Error maps err to an HTTP response. Known *errors.HTTPError values keep
// their status and message; anything else becomes a 500 with a generic body
// and is reported to Discord when a client is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.Status, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	notify(d, fmt.Sprintf("Unhandled error: %v | %s %s", err, c.Request.Method, c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

// PanicError writes a 500 after a recovered panic and reports it to Discord.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	notify(d, fmt.Sprintf("Panic: %v | %s %s", recovered, c.Request.Method, c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternal,
	})
}

func notify(d discord.IDiscord, message string) {
	if d == nil {
		return
	}
	// Detached context so the report outlives the request.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = d.ReportBug(ctx, message)
	}()
}
