package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-api/pkg/errors"
)

// OK sends 200 with {"status":"success"} merged with the given payload keys.
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, newSuccessBody(payload))
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes err as a failure envelope. An *errors.HTTPError keeps its status and message;
// anything else becomes a 500 with DefaultErrorMessage.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		InternalError(c, err)
		return
	}
	c.AbortWithStatusJSON(httpErr.StatusCode, Resp{
		Status:  statusFor(httpErr.StatusCode),
		Message: httpErr.Message,
	})
}

// InternalError sends 500 without leaking err to the client.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		Status:  StatusError,
		Message: DefaultErrorMessage,
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		Status:  StatusFail,
		Message: "too many requests",
	})
}

func newSuccessBody(payload gin.H) gin.H {
	body := gin.H{"status": StatusSuccess}
	for k, v := range payload {
		if k == "status" {
			continue
		}
		body[k] = v
	}
	return body
}

// statusFor returns "fail" for client errors and "error" for server errors.
func statusFor(code int) string {
	if code >= http.StatusInternalServerError {
		return StatusError
	}
	return StatusFail
}
