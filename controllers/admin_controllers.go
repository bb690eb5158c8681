package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/kostify/middlewares"
	"github.com/yeremiapane/kostify/services"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

type AdminController struct {
	DB    *gorm.DB
	Stats *services.StatsService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Stats: services.NewStatsService(db)}
}

// GetDashboardStats mengambil statistik untuk dashboard
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	stats, err := ac.Stats.Dashboard(c.Request.Context(), user.ID, c.Query("property_id"))
	if err != nil {
		respondStoreError(c, err, "dashboard stats")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// Health pings the store.
func (ac *AdminController) Health(c *gin.Context) {
	sqlDB, err := ac.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		utils.ErrorLogger.Errorf("health check failed: %v", err)
		utils.RespondJSON(c, http.StatusServiceUnavailable, "store unavailable", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "ok", nil)
}
