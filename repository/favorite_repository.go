package repository

import (
	"errors"

	"campuseats/entity"

	"gorm.io/gorm"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) ListForUser(userID uint) ([]entity.Favorite, error) {
	var out []entity.Favorite
	err := r.DB.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("id DESC").Find(&out).Error
	return out, err
}

// Toggle: มีอยู่ → ลบ, ไม่มี → เพิ่ม คืนค่า true ถ้าตอนนี้ favorite อยู่
func (r *FavoriteRepository) Toggle(userID, menuItemID uint) (bool, error) {
	var fav entity.Favorite
	err := r.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&fav).Error
	if err == nil {
		return false, r.DB.Unscoped().Delete(&fav).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	fav = entity.Favorite{UserID: userID, MenuItemID: menuItemID}
	return true, r.DB.Create(&fav).Error
}
