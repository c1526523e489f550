package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Picture     string `json:"picture"`

	IsAvailable bool `gorm:"default:true" json:"isAvailable"`

	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `json:"-"` // preload เมื่อจำเป็น

	Instructions []MenuInstruction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"instructions"`
	OrderItems   []OrderItem       `json:"-"`
	Favorites    []Favorite        `json:"-"`
}
