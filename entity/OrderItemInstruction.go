package entity

import (
	"gorm.io/gorm"
)

// snapshot ของ instruction ที่ลูกค้าเลือก เก็บชื่อ/ราคาไว้เลย ไม่อ้าง catalog
type OrderItemInstruction struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	Name          string `json:"name"`
	PriceModifier int64  `json:"priceModifier"`
	Category      string `json:"category"`
}
