package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

const currentUserKey = "current_user"

// AuthMiddleware resolves the bearer token to the stored user record and puts
// it on the context. Every failure answers the same 401.
func AuthMiddleware(db *gorm.DB, tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, utils.ErrInvalidToken)
			return
		}

		claims, err := tokens.ParseToken(token)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, utils.ErrInvalidToken)
			return
		}

		var user models.User
		err = db.WithContext(c.Request.Context()).
			Omit("password").
			First(&user, "id = ?", claims.Subject).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.ErrorLogger.Errorf("auth user lookup failed: %v", err)
			}
			utils.AbortWithError(c, http.StatusUnauthorized, utils.ErrInvalidToken)
			return
		}

		c.Set(currentUserKey, &user)
		c.Next()
	}
}

// bearerToken extracts the credentials of a "Bearer <token>" header. The scheme
// is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
