// Package httperr defines the error payload every surface of the API emits:
// a flat {"error": "<message>"} object with an optional detail field.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is serialized to the client as-is; Status travels out-of-band so
// the error middleware can replay the payload with the right code.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Detail  any    `json:"detail,omitempty"`
}

// AbortWithError writes the payload and records the cause on the gin error
// stack, where the logging and error middleware can still reach it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
