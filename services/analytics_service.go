package services

import (
	"time"

	"campuseats/entity"
	"campuseats/pkg/apperr"
	"campuseats/repository"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB         *gorm.DB
	VendorRepo *repository.VendorRepository
}

func NewAnalyticsService(db *gorm.DB, vendorRepo *repository.VendorRepository) *AnalyticsService {
	return &AnalyticsService{DB: db, VendorRepo: vendorRepo}
}

type TopItem struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Sold       int64  `json:"sold"`
}

type VendorDashboard struct {
	Revenue        int64                        `json:"revenue"` // delivered เท่านั้น
	OrdersByStatus map[entity.OrderStatus]int64 `json:"ordersByStatus"`
	TodayOrders    int64                        `json:"todayOrders"`
	TodayRevenue   int64                        `json:"todayRevenue"`
	TopItems       []TopItem                    `json:"topItems"`
}

func (s *AnalyticsService) VendorDashboard(userID uint) (*VendorDashboard, error) {
	vendor, err := s.VendorRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperr.Forbidden("no vendor registered for this account")
	}

	out := &VendorDashboard{OrdersByStatus: map[entity.OrderStatus]int64{}}

	// รายได้นับเฉพาะออเดอร์ที่ส่งสำเร็จ
	if err := s.DB.Model(&entity.Order{}).
		Where("vendor_id = ? AND status = ?", vendor.ID, entity.OrderDelivered).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&out.Revenue).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Status entity.OrderStatus
		Cnt    int64
	}
	if err := s.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS cnt").
		Where("vendor_id = ?", vendor.ID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out.OrdersByStatus[r.Status] = r.Cnt
	}

	today := time.Now().Truncate(24 * time.Hour)
	if err := s.DB.Model(&entity.Order{}).
		Where("vendor_id = ? AND created_at >= ?", vendor.ID, today).
		Count(&out.TodayOrders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Order{}).
		Where("vendor_id = ? AND status = ? AND created_at >= ?", vendor.ID, entity.OrderDelivered, today).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&out.TodayRevenue).Error; err != nil {
		return nil, err
	}

	// ขายดีสุด 5 อันดับ นับจาก item ที่ไม่ถูก reject ใน delivered orders
	if err := s.DB.Table("order_items AS oi").
		Select("oi.menu_item_id, m.name, SUM(oi.quantity) AS sold").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("JOIN menu_items m ON m.id = oi.menu_item_id").
		Where("o.vendor_id = ? AND o.status = ? AND oi.is_rejected = ?",
			vendor.ID, entity.OrderDelivered, false).
		Group("oi.menu_item_id, m.name").
		Order("sold DESC").Limit(5).
		Scan(&out.TopItems).Error; err != nil {
		return nil, err
	}

	return out, nil
}

type AdminDashboard struct {
	Users           int64 `json:"users"`
	Vendors         int64 `json:"vendors"`
	Orders          int64 `json:"orders"`
	PlatformRevenue int64 `json:"platformRevenue"`
}

func (s *AnalyticsService) AdminDashboardStats() (*AdminDashboard, error) {
	out := &AdminDashboard{}
	if err := s.DB.Model(&entity.User{}).Count(&out.Users).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Vendor{}).Count(&out.Vendors).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Order{}).Count(&out.Orders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Order{}).
		Where("status = ?", entity.OrderDelivered).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&out.PlatformRevenue).Error; err != nil {
		return nil, err
	}
	return out, nil
}
