package entity

import (
	"gorm.io/gorm"
)

// ตัวเลือกเพิ่มของเมนู เช่น เผ็ดพิเศษ/เพิ่มไข่ บวกราคาเข้า unit price
type MenuInstruction struct {
	gorm.Model
	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Name          string `json:"name"`
	PriceModifier int64  `json:"priceModifier"`
	Category      string `json:"category"`
}
