package entity

import (
	"gorm.io/gorm"
)

type Vendor struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Picture     string `json:"picture"`
	IsOpen      bool   `gorm:"default:true" json:"isOpen"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
