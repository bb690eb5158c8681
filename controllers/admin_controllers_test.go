package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/services"
)

func TestUtilityMeterCost(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedOwner(t, "owner@example.com")

	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{"normal", 150, 100, 75000},
		{"no previous reading", 20, 0, 30000},
		{"meter rollback", 90, 100, -15000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := map[string]interface{}{
				"room_id":         "room-1",
				"property_id":     "prop-1",
				"meter_type":      "electricity",
				"reading_date":    time.Now().UTC(),
				"current_reading": tc.current,
				"cost_per_unit":   1500,
			}
			if tc.previous != 0 {
				body["previous_reading"] = tc.previous
			}
			w, resp := h.do(t, http.MethodPost, "/api/utility-meters", token, body)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			assert.Equal(t, tc.expected, decode[models.UtilityMeter](t, resp.Data).TotalCost)
		})
	}

	w, resp := h.do(t, http.MethodGet, "/api/utility-meters?room_id=room-1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.UtilityMeter](t, resp.Data), 3)

	w, resp = h.do(t, http.MethodGet, "/api/utility-meters?property_id=prop-9", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.UtilityMeter](t, resp.Data))
}

func TestDashboardStatsEmpty(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedOwner(t, "owner@example.com")

	w, resp := h.do(t, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Dashboard stats retrieved successfully", resp.Message)
	stats := decode[services.DashboardStats](t, resp.Data)
	assert.Zero(t, stats.TotalRooms)
	assert.Zero(t, stats.OccupancyRate)
	assert.Zero(t, stats.TotalRevenue)
}

func TestDashboardStats(t *testing.T) {
	h := newHarness(t)
	_, token := h.seedOwner(t, "owner@example.com")
	_, otherToken := h.seedOwner(t, "other@example.com")

	createProperty(t, h, token, "Kost A")
	createProperty(t, h, otherToken, "Kost B")

	rooms := []models.Room{
		{PropertyID: "prop-1", RoomNumber: "1", RoomType: "std", Price: 1, Status: models.RoomOccupied},
		{PropertyID: "prop-1", RoomNumber: "2", RoomType: "std", Price: 1, Status: models.RoomAvailable},
		{PropertyID: "prop-1", RoomNumber: "3", RoomType: "std", Price: 1, Status: models.RoomAvailable},
		{PropertyID: "prop-2", RoomNumber: "1", RoomType: "std", Price: 1, Status: models.RoomOccupied},
	}
	require.NoError(t, h.db.Create(&rooms).Error)

	tenant := seedTenant(t, h, "prop-1")
	approved := createPayment(t, h, token, tenant, 1000000)
	createPayment(t, h, token, tenant, 500000)
	w, _ := h.do(t, http.MethodPut, "/api/payments/"+approved.ID+"/approve", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	createComplaint(t, h, token, nil)

	w, resp := h.do(t, http.MethodGet, "/api/dashboard/stats?property_id=prop-1", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stats := decode[services.DashboardStats](t, resp.Data)
	assert.EqualValues(t, 1, stats.PropertiesCount)
	assert.EqualValues(t, 3, stats.TotalRooms)
	assert.EqualValues(t, 1, stats.OccupiedRooms)
	assert.EqualValues(t, 2, stats.AvailableRooms)
	assert.Equal(t, 33.33, stats.OccupancyRate)
	assert.EqualValues(t, 1, stats.TenantsCount)
	assert.EqualValues(t, 1, stats.PendingPayments)
	assert.Equal(t, 1000000.0, stats.TotalRevenue)
	assert.EqualValues(t, 1, stats.OpenComplaints)

	w, resp = h.do(t, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[services.DashboardStats](t, resp.Data)
	assert.EqualValues(t, 4, all.TotalRooms)
	assert.Equal(t, 50.0, all.OccupancyRate)
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	w, resp := h.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Status)
}
