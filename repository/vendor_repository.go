package repository

import (
	"campuseats/entity"

	"gorm.io/gorm"
)

type VendorRepository struct {
	DB *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{DB: db}
}

func (r *VendorRepository) Create(v *entity.Vendor) error {
	return r.DB.Create(v).Error
}

func (r *VendorRepository) FindByID(id uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) FindByUserID(userID uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.Where("user_id = ?", userID).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) List() ([]entity.Vendor, error) {
	var out []entity.Vendor
	err := r.DB.Order("name").Find(&out).Error
	return out, err
}

// เช็คว่า user เป็นเจ้าของร้านนี้มั้ย
func (r *VendorRepository) IsOwnedBy(vendorID, userID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Vendor{}).
		Where("id = ? AND user_id = ?", vendorID, userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *VendorRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Vendor{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
