package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/kostify/services"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

const (
	smallPageSize   = 100
	defaultPageSize = 500
)

var (
	ErrEmailTaken     = errors.New("email already registered")
	ErrNothingToApply = errors.New("no fields to update")
)

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.RespondValidationError(c, err)
		return false
	}
	return true
}

// respondStoreError maps a store or service error to a response. what names
// the resource in the not-found message.
func respondStoreError(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, services.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("%s not found", what))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		utils.RespondError(c, http.StatusConflict, ErrEmailTaken)
	case errors.Is(err, services.ErrPaymentReviewed):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.WithField("path", c.FullPath()).Errorf("%s: %v", what, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

// changeSet collects the non-nil fields of a partial update payload.
type changeSet map[string]interface{}

func setIf[T any](cs changeSet, column string, v *T) {
	if v != nil {
		cs[column] = *v
	}
}
