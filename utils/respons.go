package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse is the envelope of every API answer. Status mirrors whether the
// HTTP code is 2xx; Data is left out when empty.
type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError answers with err's text as the message and no data.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{Message: err.Error()})
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, code int, err error) {
	RespondError(c, code, err)
	c.Abort()
}
