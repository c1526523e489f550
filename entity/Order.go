package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload เฉพาะตอนต้องการ user detail

	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `json:"-"` // preload เมื่อจำเป็น

	Status           OrderStatus `gorm:"not null;default:pending" json:"status"`
	HasRejectedItems bool        `json:"hasRejectedItems"`
	RejectionReason  string      `json:"rejectionReason,omitempty"`

	// ยอดรวมเฉพาะ item ที่ไม่ถูก reject (คำนวณใหม่ทุกครั้งที่ reject)
	TotalAmount int64 `json:"totalAmount"`

	DeliveryAddress     string     `json:"deliveryAddress"`
	PaymentMethod       string     `json:"paymentMethod"`
	SpecialInstructions string     `json:"specialInstructions,omitempty"`
	ScheduledFor        *time.Time `json:"scheduledFor,omitempty"`
	CancelledAt         *time.Time `json:"cancelledAt,omitempty"`

	// optimistic concurrency: ทุก mutation ที่แตะ items ต้อง match version เดิม
	Version int `gorm:"not null;default:1" json:"version"`

	Items []OrderItem `json:"items"`
}
