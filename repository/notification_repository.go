package repository

import (
	"campuseats/entity"

	"gorm.io/gorm"
)

type NotificationRepository struct{ DB *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) ListForUser(userID uint, page, limit int) ([]entity.Notification, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var total int64
	if err := r.DB.Model(&entity.Notification{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.Notification
	err := r.DB.Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}

func (r *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&cnt).Error
	return cnt, err
}

func (r *NotificationRepository) MarkRead(userID, id uint) error {
	return r.DB.Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
}

func (r *NotificationRepository) MarkAllRead(userID uint) error {
	return r.DB.Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
