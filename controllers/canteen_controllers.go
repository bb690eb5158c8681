package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/services"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

type CanteenController struct {
	DB      *gorm.DB
	Canteen *services.CanteenService
	Stats   *services.StatsService
}

func NewCanteenController(db *gorm.DB) *CanteenController {
	return &CanteenController{
		DB:      db,
		Canteen: services.NewCanteenService(db),
		Stats:   services.NewStatsService(db),
	}
}

type createProductRequest struct {
	PropertyID string   `json:"property_id" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	Price      *float64 `json:"price" binding:"required,gte=0"`
	Stock      *int     `json:"stock" binding:"required"`
	Category   string   `json:"category"`
	PhotoURL   *string  `json:"photo_url"`
}

type updateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	PhotoURL    *string  `json:"photo_url"`
	IsAvailable *bool    `json:"is_available"`
}

// changes re-derives is_available from a new stock unless the caller set it.
func (r updateProductRequest) changes() changeSet {
	cs := changeSet{}
	setIf(cs, "name", r.Name)
	setIf(cs, "price", r.Price)
	setIf(cs, "stock", r.Stock)
	setIf(cs, "category", r.Category)
	setIf(cs, "photo_url", r.PhotoURL)
	setIf(cs, "is_available", r.IsAvailable)
	if r.Stock != nil && r.IsAvailable == nil {
		cs["is_available"] = *r.Stock > 0
	}
	return cs
}

type createTransactionRequest struct {
	PropertyID string  `json:"property_id" binding:"required"`
	ProductID  string  `json:"product_id" binding:"required"`
	TenantID   *string `json:"tenant_id"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Notes      *string `json:"notes"`
}

func (cc *CanteenController) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Category == "" {
		req.Category = models.DefaultProductCategory
	}

	product := models.CanteenProduct{
		PropertyID:  req.PropertyID,
		Name:        req.Name,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
		PhotoURL:    req.PhotoURL,
		IsAvailable: *req.Stock > 0,
	}
	if err := cc.DB.WithContext(c.Request.Context()).Create(&product).Error; err != nil {
		respondStoreError(c, err, "product")
		return
	}

	utils.InfoLogger.Printf("New canteen product: %s (stock=%d)", product.Name, product.Stock)
	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

func (cc *CanteenController) GetProducts(c *gin.Context) {
	q := cc.DB.WithContext(c.Request.Context())
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}

	products := []models.CanteenProduct{}
	if err := q.Limit(defaultPageSize).Find(&products).Error; err != nil {
		respondStoreError(c, err, "product")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

func (cc *CanteenController) GetProductByID(c *gin.Context) {
	var product models.CanteenProduct
	if err := cc.DB.WithContext(c.Request.Context()).First(&product, "id = ?", c.Param("product_id")).Error; err != nil {
		respondStoreError(c, err, "product")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

func (cc *CanteenController) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	cs := req.changes()
	if len(cs) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNothingToApply)
		return
	}

	db := cc.DB.WithContext(c.Request.Context())
	id := c.Param("product_id")
	var product models.CanteenProduct
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		respondStoreError(c, err, "product")
		return
	}
	if err := db.Model(&models.CanteenProduct{}).Where("id = ?", id).Updates(map[string]interface{}(cs)).Error; err != nil {
		respondStoreError(c, err, "product")
		return
	}
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		respondStoreError(c, err, "product")
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

func (cc *CanteenController) DeleteProduct(c *gin.Context) {
	id := c.Param("product_id")
	res := cc.DB.WithContext(c.Request.Context()).Where("id = ?", id).Delete(&models.CanteenProduct{})
	if res.Error != nil {
		respondStoreError(c, res.Error, "product")
		return
	}
	if res.RowsAffected == 0 {
		respondStoreError(c, gorm.ErrRecordNotFound, "product")
		return
	}

	utils.InfoLogger.Printf("Canteen product %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"id": id})
}

// CreateTransaction sells a product and lowers its stock.
func (cc *CanteenController) CreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := cc.Canteen.Sell(c.Request.Context(), services.SaleRequest{
		PropertyID: req.PropertyID,
		ProductID:  req.ProductID,
		TenantID:   req.TenantID,
		Quantity:   req.Quantity,
		Notes:      req.Notes,
	})
	if err != nil {
		respondStoreError(c, err, "product")
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Transaction created", tx)
}

func (cc *CanteenController) GetTransactions(c *gin.Context) {
	q := cc.DB.WithContext(c.Request.Context())
	if propertyID := c.Query("property_id"); propertyID != "" {
		q = q.Where("property_id = ?", propertyID)
	}

	transactions := []models.CanteenTransaction{}
	if err := q.Limit(defaultPageSize).Find(&transactions).Error; err != nil {
		respondStoreError(c, err, "transaction")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of transactions", transactions)
}

func (cc *CanteenController) GetSalesReport(c *gin.Context) {
	report, err := cc.Stats.CanteenSales(c.Request.Context(), c.Query("property_id"))
	if err != nil {
		respondStoreError(c, err, "sales report")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Canteen sales report", report)
}
