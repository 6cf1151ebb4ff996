package response

import (
	"context"
	"fmt"
	"net/http"

	"portfolio-srv/pkg/discord"
	pkgErrors "portfolio-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: codeSuccess,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status and
// message; anything else is treated as a bad request from binding or a
// malformed payload. Unexpected 5xx errors are reported to Discord when a
// client is configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		if httpErr.Status >= http.StatusInternalServerError {
			notifyDiscord(c, discordClient, httpErr)
		}
		c.JSON(httpErr.Status, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: codeBadRequest,
		Message:   err.Error(),
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: codeUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: codeForbidden,
		Message:   "Forbidden",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	if discordClient != nil {
		_ = discordClient.SendError(context.Background(),
			"Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   "Internal server error",
	})
}

func notifyDiscord(c *gin.Context, discordClient discord.IDiscord, httpErr *pkgErrors.HTTPError) {
	if discordClient == nil {
		return
	}
	_ = discordClient.SendError(c.Request.Context(),
		fmt.Sprintf("HTTP %d", httpErr.Status),
		fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
		httpErr)
}
