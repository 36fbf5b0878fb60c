package response

import "github.com/gin-gonic/gin"

// ErrorBody is the one failure shape every endpoint speaks: a JSON
// object with a single user-safe error string. No codes, no stack
// traces, no provider detail.
type ErrorBody struct {
	Error string `json:"error"`
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}
