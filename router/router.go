package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yeremiapane/kostify/config"
	"github.com/yeremiapane/kostify/controllers"
	"github.com/yeremiapane/kostify/middlewares"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middlewares.NewMetrics(reg)

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.AllowedOrigins()))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(metrics.Handler())
	if cfg.RateLimitRPS > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit())
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	tokens := utils.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	userCtrl := controllers.NewUserController(db, tokens)
	propertyCtrl := controllers.NewPropertyController(db)
	roomCtrl := controllers.NewRoomController(db)
	tenantCtrl := controllers.NewTenantController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	pengelolaCtrl := controllers.NewPengelolaController(db)
	canteenCtrl := controllers.NewCanteenController(db)
	meterCtrl := controllers.NewUtilityMeterController(db)
	complaintCtrl := controllers.NewComplaintController(db)
	adminCtrl := controllers.NewAdminController(db)

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	api.GET("/health", adminCtrl.Health)
	api.POST("/auth/register", userCtrl.Register)
	api.POST("/auth/login", userCtrl.Login)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := api.Group("")
	auth.Use(middlewares.AuthMiddleware(db, tokens))

	auth.GET("/auth/me", userCtrl.Me)

	// PROPERTIES (owner scoped)
	auth.POST("/properties", propertyCtrl.CreateProperty)
	auth.GET("/properties", propertyCtrl.GetAllProperties)
	auth.GET("/properties/:property_id", propertyCtrl.GetPropertyByID)
	auth.PUT("/properties/:property_id", propertyCtrl.UpdateProperty)
	auth.DELETE("/properties/:property_id", propertyCtrl.DeleteProperty)

	// ROOMS
	auth.POST("/rooms", roomCtrl.CreateRoom)
	auth.GET("/rooms", roomCtrl.GetAllRooms)
	auth.GET("/rooms/:room_id", roomCtrl.GetRoomByID)
	auth.PUT("/rooms/:room_id", roomCtrl.UpdateRoom)
	auth.DELETE("/rooms/:room_id", roomCtrl.DeleteRoom)

	// TENANTS
	auth.POST("/tenants", tenantCtrl.CreateTenant)
	auth.GET("/tenants", tenantCtrl.GetAllTenants)
	auth.GET("/tenants/:tenant_id", tenantCtrl.GetTenantByID)
	auth.PUT("/tenants/:tenant_id", tenantCtrl.UpdateTenant)

	// PAYMENTS
	auth.POST("/payments", paymentCtrl.CreatePayment)
	auth.GET("/payments", paymentCtrl.GetPayments)
	auth.PUT("/payments/:payment_id/approve", paymentCtrl.ApprovePayment)
	auth.PUT("/payments/:payment_id/reject", paymentCtrl.RejectPayment)

	// PENGELOLA (owner only)
	owner := auth.Group("/pengelola")
	owner.Use(middlewares.RequireRole(models.RoleOwner))
	{
		owner.POST("", pengelolaCtrl.CreatePengelola)
		owner.GET("", pengelolaCtrl.GetAllPengelola)
		owner.DELETE("/:pengelola_id", pengelolaCtrl.DeletePengelola)
	}

	// CANTEEN
	auth.POST("/canteen/products", canteenCtrl.CreateProduct)
	auth.GET("/canteen/products", canteenCtrl.GetProducts)
	auth.GET("/canteen/products/:product_id", canteenCtrl.GetProductByID)
	auth.PUT("/canteen/products/:product_id", canteenCtrl.UpdateProduct)
	auth.DELETE("/canteen/products/:product_id", canteenCtrl.DeleteProduct)
	auth.POST("/canteen/transactions", canteenCtrl.CreateTransaction)
	auth.GET("/canteen/transactions", canteenCtrl.GetTransactions)
	auth.GET("/canteen/sales-report", canteenCtrl.GetSalesReport)

	// UTILITY METERS
	auth.POST("/utility-meters", meterCtrl.CreateUtilityMeter)
	auth.GET("/utility-meters", meterCtrl.GetUtilityMeters)

	// COMPLAINTS
	auth.POST("/complaints", complaintCtrl.CreateComplaint)
	auth.GET("/complaints", complaintCtrl.GetComplaints)
	auth.PUT("/complaints/:complaint_id/status", complaintCtrl.UpdateComplaintStatus)

	// DASHBOARD
	auth.GET("/dashboard/stats", adminCtrl.GetDashboardStats)

	return r
}
