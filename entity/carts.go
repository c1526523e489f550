package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	// cart ล็อกร้านเดียว ห้ามข้ามร้าน (invariant เดียวกับ order)
	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
