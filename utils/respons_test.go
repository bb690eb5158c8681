package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
}

func TestRespondValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	UseJSONFieldNames()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := bindSignup(t, signup{Email: "nope"})
	RespondValidationError(c, err)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Errors []FieldError `json:"errors"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Status)
	assert.Equal(t, "validation failed", resp.Message)
	assert.ElementsMatch(t, []FieldError{
		{Field: "email", Rule: "email"},
		{Field: "full_name", Rule: "required"},
	}, resp.Data.Errors)
}

func TestRespondValidationErrorPlain(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondValidationError(c, errors.New("unexpected EOF"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":false,"message":"unexpected EOF"}`, w.Body.String())
}

func TestRespondJSONStatusFlag(t *testing.T) {
	for code, ok := range map[int]bool{200: true, 201: true, 404: false, 503: false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		RespondJSON(c, code, "m", nil)

		var resp JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ok, resp.Status, "code %d", code)
	}
}

func bindSignup(t *testing.T, v signup) error {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst signup
	return c.ShouldBindJSON(&dst)
}
