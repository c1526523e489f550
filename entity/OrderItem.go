package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"` // preload แค่ตอนต้องการ order detail

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload เฉพาะตอนต้องการชื่อเมนู

	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"` // snapshot ราคาตอนสั่ง ไม่ตามราคาปัจจุบัน

	// unitPrice + sum(instruction modifiers) คำนวณครั้งเดียวตอนสร้าง
	TotalItemPrice int64 `json:"totalItemPrice"`

	CustomInstructions string `gorm:"size:200" json:"customInstructions,omitempty"`

	IsRejected bool `json:"isRejected"`

	SelectedInstructions []OrderItemInstruction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selectedInstructions"`
}
