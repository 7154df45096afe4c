package apperr

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Success bool        `json:"success"`
	Code    Code        `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Abort writes the error as a JSON body and aborts the request. Errors outside
// the apperr family are logged and masked as a generic internal failure.
func Abort(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		log.Printf("[error] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		appErr = Internal("Something went wrong. Please try again later.")
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus(), errorBody{
		Success: false,
		Code:    appErr.Code,
		Message: appErr.Message,
		Data:    nil,
	})
}
