package repository

import (
	"strings"
	"time"

	"campuseats/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD หลัก) ----------------

// POST /orders → สร้าง order (nested create: items + instructions มากับ struct)
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Preload("Items.SelectedInstructions").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders/:id (ลูกค้า) → รายละเอียด order
func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Preload("Items.SelectedInstructions").
		Preload("Items.MenuItem").
		Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForVendor(vendorID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Preload("Items.SelectedInstructions").
		Preload("Items.MenuItem").
		Where("id = ? AND vendor_id = ?", orderID, vendorID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders (ลูกค้า) → รายการ order ของ user
// ดึงข้อมูลตามนี้ แล้วส่งไป
type OrderSummary struct {
	ID          uint               `json:"id"`
	OrderNumber string             `json:"orderNumber"`
	VendorID    uint               `json:"vendorId"`
	TotalAmount int64              `json:"totalAmount"`
	Status      entity.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, vendor_id, total_amount, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /vendor/orders → รายการ order ของร้าน
type VendorOrderSummary struct {
	ID               uint               `json:"id"`
	OrderNumber      string             `json:"orderNumber"`
	UserID           uint               `json:"userId"`
	CustomerName     string             `json:"customerName"`
	TotalAmount      int64              `json:"totalAmount"`
	Status           entity.OrderStatus `json:"status"`
	HasRejectedItems bool               `json:"hasRejectedItems"`
	CreatedAt        time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForVendor(vendorID uint, status *entity.OrderStatus, page, limit int) ([]VendorOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	// count orders
	var total int64
	dbCount := r.DB.Table("orders AS o").Where("o.vendor_id = ? AND o.deleted_at IS NULL", vendorID)
	if status != nil && *status != "" {
		dbCount = dbCount.Where("o.status = ?", *status)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// join users → ดึงชื่อลูกค้า
	var rows []struct {
		ID               uint
		OrderNumber      string
		UserID           uint
		TotalAmount      int64
		Status           entity.OrderStatus
		HasRejectedItems bool
		CreatedAt        time.Time
		FirstName        string
		LastName         string
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.order_number, o.user_id, o.total_amount, o.status, o.has_rejected_items, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.vendor_id = ? AND o.deleted_at IS NULL", vendorID)
	if status != nil && *status != "" {
		db = db.Where("o.status = ?", *status)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]VendorOrderSummary, 0, len(rows))
	for _, r := range rows {
		name := strings.TrimSpace(r.FirstName + " " + r.LastName)
		out = append(out, VendorOrderSummary{
			ID:               r.ID,
			OrderNumber:      r.OrderNumber,
			UserID:           r.UserID,
			CustomerName:     name,
			TotalAmount:      r.TotalAmount,
			Status:           r.Status,
			HasRejectedItems: r.HasRejectedItems,
			CreatedAt:        r.CreatedAt,
		})
	}
	return out, total, nil
}

// ---------------- Guarded updates ----------------

// PATCH status → อัปเดตสถานะแบบมี guard: where เช็ค status เดิม
// affected == 0 แปลว่า state เปลี่ยนไปแล้ว (แพ้ race หรือ edge ผิด)
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus, extra map[string]any) (int64, error) {
	updates := map[string]any{
		"status":  to,
		"version": gorm.Expr("version + 1"),
	}
	for k, v := range extra {
		updates[k] = v
	}
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// guard ด้วย version สำหรับ mutation ที่แตะ items (partial rejection)
func (r *OrderRepository) UpdateOrderGuardVersion(tx *gorm.DB, orderID uint, version int, updates map[string]any) (int64, error) {
	updates["version"] = gorm.Expr("version + 1")
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND version = ?", orderID, version).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) MarkItemsRejected(tx *gorm.DB, orderID uint, itemIDs []uint) error {
	return tx.Model(&entity.OrderItem{}).
		Where("order_id = ? AND id IN ?", orderID, itemIDs).
		Update("is_rejected", true).Error
}

func (r *OrderRepository) MarkAllItemsRejected(tx *gorm.DB, orderID uint) error {
	return tx.Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).
		Update("is_rejected", true).Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("SelectedInstructions").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}
