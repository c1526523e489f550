package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity           int    `json:"quantity"`
	UnitPrice          int64  `json:"unitPrice"`
	TotalItemPrice     int64  `json:"totalItemPrice"`
	CustomInstructions string `gorm:"size:200" json:"customInstructions,omitempty"`

	SelectedInstructions []CartItemInstruction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selectedInstructions"`
}
