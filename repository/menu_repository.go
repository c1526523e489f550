package repository

import (
	"campuseats/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Instructions").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) FindByVendor(vendorID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Preload("Instructions").
		Where("vendor_id = ?", vendorID).
		Order("category, name").Find(&out).Error
	return out, err
}

func (r *MenuRepository) SetAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).
		Update("is_available", available).Error
}

// เอาเฉพาะ field ที่ใช้ตีราคา (id, price, vendor_id, is_available, name)
func (r *MenuRepository) GetBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, name, price, vendor_id, is_available").First(&m, id).Error
	return m, err
}

// instructions ต้อง belong กับเมนูนั้นจริง
func (r *MenuRepository) GetInstructions(menuItemID uint, ids []uint) ([]entity.MenuInstruction, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entity.MenuInstruction
	err := r.DB.Where("id IN ? AND menu_item_id = ?", ids, menuItemID).Find(&out).Error
	return out, err
}
