package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"` // ปลอดภัย
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        Role   `gorm:"not null;default:customer" json:"role"`

	// ต้องยืนยัน OTP ก่อนถึงจะ login ได้
	IsVerified bool `json:"isVerified"`

	// Relations — preload เฉพาะตอนจำเป็น
	VendorsOwned  []Vendor       `gorm:"foreignKey:UserID" json:"-"`
	Orders        []Order        `json:"-"`
	Favorites     []Favorite     `json:"-"`
	Notifications []Notification `json:"-"`
}
