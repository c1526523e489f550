package entity

import (
	"gorm.io/gorm"
)

type CartItemInstruction struct {
	gorm.Model
	CartItemID uint     `json:"cartItemId"`
	CartItem   CartItem `json:"-"` // ไม่ serialize กลับ เพื่อเลี่ยง loop

	Name          string `json:"name"`
	PriceModifier int64  `json:"priceModifier"`
	Category      string `json:"category"`
}
