package entity

import (
	"gorm.io/gorm"
)

type Favorite struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_fav_user_menu" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_fav_user_menu" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`
}
