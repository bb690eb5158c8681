package services

import (
	"context"
	"math"

	"github.com/yeremiapane/kostify/models"
	"gorm.io/gorm"
)

// StatsService computes the read-only dashboard figures. Nothing is cached.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type DashboardStats struct {
	PropertiesCount int64   `json:"properties_count"`
	TotalRooms      int64   `json:"total_rooms"`
	OccupiedRooms   int64   `json:"occupied_rooms"`
	AvailableRooms  int64   `json:"available_rooms"`
	OccupancyRate   float64 `json:"occupancy_rate"`
	TenantsCount    int64   `json:"tenants_count"`
	PendingPayments int64   `json:"pending_payments"`
	TotalRevenue    float64 `json:"total_revenue"`
	OpenComplaints  int64   `json:"open_complaints"`
}

type ProductSales struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name,omitempty"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type SalesReport struct {
	TotalRevenue      float64        `json:"total_revenue"`
	TotalTransactions int64          `json:"total_transactions"`
	TopProducts       []ProductSales `json:"top_products"`
}

const topProductsLimit = 5

// OccupancyRate is occupied/total as a percentage rounded to two decimals,
// or 0 when there are no rooms.
func OccupancyRate(occupied, total int64) float64 {
	if total <= 0 {
		return 0
	}
	rate := float64(occupied) / float64(total) * 100
	return math.Round(rate*100) / 100
}

// Dashboard counts the owner's properties and, optionally restricted to one
// property, rooms, tenants, payments and complaints.
func (s *StatsService) Dashboard(ctx context.Context, ownerID, propertyID string) (*DashboardStats, error) {
	db := s.db.WithContext(ctx)
	scoped := func(model interface{}) *gorm.DB {
		q := db.Model(model)
		if propertyID != "" {
			q = q.Where("property_id = ?", propertyID)
		}
		return q
	}

	var st DashboardStats
	if err := db.Model(&models.Property{}).Where("owner_id = ?", ownerID).Count(&st.PropertiesCount).Error; err != nil {
		return nil, err
	}
	if err := scoped(&models.Room{}).Count(&st.TotalRooms).Error; err != nil {
		return nil, err
	}
	if err := scoped(&models.Room{}).Where("status = ?", models.RoomOccupied).Count(&st.OccupiedRooms).Error; err != nil {
		return nil, err
	}
	st.AvailableRooms = st.TotalRooms - st.OccupiedRooms
	st.OccupancyRate = OccupancyRate(st.OccupiedRooms, st.TotalRooms)

	if err := scoped(&models.Tenant{}).Count(&st.TenantsCount).Error; err != nil {
		return nil, err
	}
	if err := scoped(&models.Payment{}).Where("status = ?", models.PaymentPending).Count(&st.PendingPayments).Error; err != nil {
		return nil, err
	}
	err := scoped(&models.Payment{}).
		Where("status = ?", models.PaymentApproved).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&st.TotalRevenue)
	if err != nil {
		return nil, err
	}
	if err := scoped(&models.Complaint{}).Where("status = ?", models.ComplaintOpen).Count(&st.OpenComplaints).Error; err != nil {
		return nil, err
	}

	return &st, nil
}

// CanteenSales sums canteen revenue and ranks the five best selling products
// by quantity.
func (s *StatsService) CanteenSales(ctx context.Context, propertyID string) (*SalesReport, error) {
	db := s.db.WithContext(ctx)
	scoped := func() *gorm.DB {
		q := db.Model(&models.CanteenTransaction{})
		if propertyID != "" {
			q = q.Where("property_id = ?", propertyID)
		}
		return q
	}

	report := SalesReport{TopProducts: []ProductSales{}}
	if err := scoped().Select("COALESCE(SUM(total_price), 0)").Row().Scan(&report.TotalRevenue); err != nil {
		return nil, err
	}
	if err := scoped().Count(&report.TotalTransactions).Error; err != nil {
		return nil, err
	}

	err := scoped().
		Select("product_id, SUM(quantity) AS total_quantity, SUM(total_price) AS total_revenue").
		Group("product_id").
		Order("total_quantity DESC").
		Limit(topProductsLimit).
		Scan(&report.TopProducts).Error
	if err != nil {
		return nil, err
	}
	if len(report.TopProducts) == 0 {
		report.TopProducts = []ProductSales{}
		return &report, nil
	}

	ids := make([]string, len(report.TopProducts))
	for i, p := range report.TopProducts {
		ids[i] = p.ProductID
	}
	var products []models.CanteenProduct
	if err := db.Select("id", "name").Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	for i := range report.TopProducts {
		report.TopProducts[i].ProductName = names[report.TopProducts[i].ProductID]
	}

	return &report, nil
}
