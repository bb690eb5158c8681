package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/kostify/utils"
)

var ErrOwnerOnly = errors.New("owner access required")

// RequireRole lets the request through only for the listed roles. It must run
// after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.AbortWithError(c, http.StatusUnauthorized, utils.ErrInvalidToken)
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			utils.AbortWithError(c, http.StatusForbidden, ErrOwnerOnly)
			return
		}
		c.Next()
	}
}
