package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/utils"
)

type authPayload struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

func registerBody(email string) map[string]string {
	return map[string]string{
		"email":     email,
		"password":  "password123",
		"full_name": "Budi Santoso",
		"phone":     "081234567890",
	}
}

func TestRegisterAndMe(t *testing.T) {
	h := newHarness(t)

	w, resp := h.do(t, http.MethodPost, "/api/auth/register", "", registerBody("budi@example.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, resp.Status)

	payload := decode[authPayload](t, resp.Data)
	assert.NotEmpty(t, payload.AccessToken)
	assert.Equal(t, models.RoleOwner, payload.User.Role)
	assert.NotContains(t, string(resp.Data), "password")

	w, resp = h.do(t, http.MethodGet, "/api/auth/me", payload.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	me := decode[models.User](t, resp.Data)
	assert.Equal(t, "budi@example.com", me.Email)
	assert.Equal(t, models.SubscriptionTrial, me.SubscriptionStatus)
	assert.True(t, me.IsOwner)
	require.NotNil(t, me.TrialEndDate)
	assert.WithinDuration(t, time.Now().Add(14*24*time.Hour), *me.TrialEndDate, time.Minute)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newHarness(t)

	w, _ := h.do(t, http.MethodPost, "/api/auth/register", "", registerBody("dup@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := h.do(t, http.MethodPost, "/api/auth/register", "", registerBody("dup@example.com"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, resp.Status)
	assert.Equal(t, "email already registered", resp.Message)
}

func TestRegisterValidation(t *testing.T) {
	h := newHarness(t)

	w, resp := h.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "password123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[struct {
		Errors []utils.FieldError `json:"errors"`
	}](t, resp.Data)
	assert.Contains(t, body.Errors, utils.FieldError{Field: "email", Rule: "email"})
	assert.Contains(t, body.Errors, utils.FieldError{Field: "full_name", Rule: "required"})
}

// Self-registration only creates owners; pengelola come from their owner.
func TestRegisterRole(t *testing.T) {
	h := newHarness(t)

	body := registerBody("staff@example.com")
	body["role"] = "pengelola"
	w, resp := h.do(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decode[struct {
		Errors []utils.FieldError `json:"errors"`
	}](t, resp.Data)
	assert.Contains(t, errs.Errors, utils.FieldError{Field: "role", Rule: "oneof"})

	var count int64
	require.NoError(t, h.db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)

	body = registerBody("owner@example.com")
	body["role"] = "owner"
	w, resp = h.do(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := decode[authPayload](t, resp.Data).User
	assert.Equal(t, models.RoleOwner, user.Role)
	assert.Nil(t, user.OwnerID)
}

func TestLogin(t *testing.T) {
	h := newHarness(t)
	h.seedOwner(t, "owner@example.com")

	t.Run("wrong password", func(t *testing.T) {
		w, resp := h.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "owner@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid credentials", resp.Message)
	})

	t.Run("unknown email", func(t *testing.T) {
		w, resp := h.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid credentials", resp.Message)
	})

	t.Run("correct password", func(t *testing.T) {
		w, resp := h.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "owner@example.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, string(resp.Data), "password")

		payload := decode[authPayload](t, resp.Data)
		w, _ = h.do(t, http.MethodGet, "/api/properties", payload.AccessToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthGateRejects(t *testing.T) {
	h := newHarness(t)
	user, _ := h.seedOwner(t, "gone@example.com")

	staleToken, err := h.tokens.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)
	require.NoError(t, h.db.Delete(&models.User{}, "id = ?", user.ID).Error)

	otherKey, err := utils.NewTokenService("other-secret", time.Hour).GenerateToken(user.ID, user.Email)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"missing":      "",
		"garbage":      "not-a-jwt",
		"wrong secret": otherKey,
		"unknown user": staleToken,
	} {
		t.Run(name, func(t *testing.T) {
			w, resp := h.do(t, http.MethodGet, "/api/auth/me", token, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "invalid or expired token", resp.Message)
		})
	}
}

func TestAuthSchemeCaseInsensitive(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedOwner(t, "owner@example.com")

	for _, header := range []string{
		"Bearer " + token,
		"bearer " + token,
		"BEARER " + token,
		"Bearer   " + token,
	} {
		w, resp := h.doAuth(t, http.MethodGet, "/api/auth/me", header, nil)
		assert.Equal(t, http.StatusOK, w.Code, "%q", header)
		assert.Equal(t, "owner@example.com", decode[models.User](t, resp.Data).Email)
	}

	for _, header := range []string{
		token,
		"Basic " + token,
		"Bearer",
		"Bearer " + token + " extra",
	} {
		w, _ := h.doAuth(t, http.MethodGet, "/api/auth/me", header, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%q", header)
	}
}

// The advertised token_type works as the Authorization scheme.
func TestTokenTypeRoundTrip(t *testing.T) {
	h := newHarness(t)

	w, resp := h.do(t, http.MethodPost, "/api/auth/register", "", registerBody("rina@example.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	payload := decode[authPayload](t, resp.Data)

	w, _ = h.doAuth(t, http.MethodGet, "/api/auth/me", payload.TokenType+" "+payload.AccessToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
