package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

const (
	headerAllowOrigin = "Access-Control-Allow-Origin"
	contentTypeText   = "text/plain; charset=utf-8"
)

// shape attaches the headers every response carries.
func (h *Handler) shape(c *gin.Context) {
	if c.Writer.Header().Get(headerAllowOrigin) == "" {
		c.Header(headerAllowOrigin, h.allowOrigin)
	}
}

func (h *Handler) respondJSON(c *gin.Context, body any) {
	h.shape(c)
	c.JSON(http.StatusOK, body)
}

func (h *Handler) respondText(c *gin.Context, body string) {
	h.shape(c)
	c.Data(http.StatusOK, contentTypeText, []byte(body))
}

func (h *Handler) respondEmpty(c *gin.Context) {
	h.shape(c)
	c.Status(http.StatusOK)
}

// RespondError is the single place a failure becomes a response: the status
// comes from statusFor and the body is the error message as plain text.
func (h *Handler) RespondError(c *gin.Context, err error) {
	status := statusFor(err)
	zap.S().Named("handler").Debugw("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"kind", srvErrors.KindOf(err).String(),
		"status", status,
		"error", err,
	)

	h.shape(c)
	c.Data(status, contentTypeText, []byte(err.Error()))
}

// statusFor maps an error to a response status. Every handled failure,
// not-found and pool timeouts included, is reported as 400.
func statusFor(err error) int {
	return http.StatusBadRequest
}
