package repository

import (
	"time"

	"campuseats/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) SetVerified(id uint) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("is_verified", true).Error
}

// ---------------- Email OTP ----------------

func (r *UserRepository) CreateOTP(otp *entity.EmailOTP) error {
	return r.DB.Create(otp).Error
}

// OTP ล่าสุดที่ยังไม่หมดอายุและยังไม่ถูกใช้
func (r *UserRepository) LatestValidOTP(userID uint, now time.Time) (*entity.EmailOTP, error) {
	var otp entity.EmailOTP
	err := r.DB.Where("user_id = ? AND used = ? AND expires_at > ?", userID, false, now).
		Order("id DESC").First(&otp).Error
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *UserRepository) MarkOTPUsed(id uint) error {
	return r.DB.Model(&entity.EmailOTP{}).Where("id = ?", id).Update("used", true).Error
}
