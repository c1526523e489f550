package entity

import (
	"time"

	"gorm.io/gorm"
)

// OTP สำหรับยืนยันอีเมลตอนสมัคร หมดอายุใน 10 นาที
type EmailOTP struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `json:"used"`
}
