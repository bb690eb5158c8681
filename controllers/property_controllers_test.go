package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/kostify/models"
)

func createProperty(t *testing.T, h *harness, token, name string) models.Property {
	t.Helper()
	w, resp := h.do(t, http.MethodPost, "/api/properties", token, map[string]interface{}{
		"name":        name,
		"address":     "Jl. Merdeka 1",
		"total_rooms": 10,
		"facilities":  []string{"wifi", "parkir"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Property](t, resp.Data)
}

func TestPropertyCRUD(t *testing.T) {
	h := newHarness(t)
	owner, token := h.seedOwner(t, "owner@example.com")

	property := createProperty(t, h, token, "Kost Melati")
	assert.NotEmpty(t, property.ID)
	assert.Equal(t, owner.ID, property.OwnerID)
	assert.Equal(t, []string{"wifi", "parkir"}, []string(property.Facilities))

	w, resp := h.do(t, http.MethodGet, "/api/properties/"+property.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kost Melati", decode[models.Property](t, resp.Data).Name)

	w, resp = h.do(t, http.MethodPut, "/api/properties/"+property.ID, token, map[string]interface{}{
		"name": "Kost Mawar",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.Property](t, resp.Data)
	assert.Equal(t, "Kost Mawar", updated.Name)
	assert.Equal(t, "Jl. Merdeka 1", updated.Address)
	assert.Equal(t, 10, updated.TotalRooms)

	w, resp = h.do(t, http.MethodGet, "/api/properties", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Property](t, resp.Data), 1)

	w, _ = h.do(t, http.MethodDelete, "/api/properties/"+property.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(t, http.MethodGet, "/api/properties/"+property.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPropertyOwnerScoping(t *testing.T) {
	h := newHarness(t)
	_, ownerToken := h.seedOwner(t, "owner@example.com")
	_, otherToken := h.seedOwner(t, "other@example.com")

	property := createProperty(t, h, ownerToken, "Kost Melati")

	w, resp := h.do(t, http.MethodGet, "/api/properties", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Property](t, resp.Data))

	w, _ = h.do(t, http.MethodGet, "/api/properties/"+property.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = h.do(t, http.MethodPut, "/api/properties/"+property.ID, otherToken, map[string]interface{}{"name": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = h.do(t, http.MethodDelete, "/api/properties/"+property.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPropertyUpdateEmptyPayload(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedOwner(t, "owner@example.com")
	property := createProperty(t, h, token, "Kost Melati")

	w, resp := h.do(t, http.MethodPut, "/api/properties/"+property.ID, token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no fields to update", resp.Message)
}

func TestNotFoundOnMissingIDs(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedOwner(t, "owner@example.com")

	cases := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPut, "/api/properties/missing", map[string]interface{}{"name": "x"}},
		{http.MethodDelete, "/api/properties/missing", nil},
		{http.MethodGet, "/api/rooms/missing", nil},
		{http.MethodPut, "/api/rooms/missing", map[string]interface{}{"room_type": "vip"}},
		{http.MethodDelete, "/api/rooms/missing", nil},
		{http.MethodGet, "/api/tenants/missing", nil},
		{http.MethodPut, "/api/tenants/missing", map[string]interface{}{"phone": "1"}},
		{http.MethodPut, "/api/payments/missing/approve", nil},
		{http.MethodPut, "/api/payments/missing/reject", nil},
		{http.MethodGet, "/api/canteen/products/missing", nil},
		{http.MethodPut, "/api/canteen/products/missing", map[string]interface{}{"stock": 1}},
		{http.MethodDelete, "/api/canteen/products/missing", nil},
		{http.MethodPut, "/api/complaints/missing/status", map[string]interface{}{"status": "resolved"}},
		{http.MethodDelete, "/api/pengelola/missing", nil},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w, resp := h.do(t, tc.method, tc.path, token, tc.body)
			assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
			assert.False(t, resp.Status)
		})
	}
}
