package repository

import (
	"errors"

	"campuseats/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// คืน Cart เดิมของ user (ถ้าไม่มีก็คืน Cart ว่าง ๆ โดยไม่ error เพื่อให้ FE แสดงได้)
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.SelectedInstructions").
		Preload("Items.MenuItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

// สร้างหรืออ่าน Cart ของ user (และตั้ง VendorID ถ้าเพิ่งสร้าง)
func (r *CartRepository) GetOrCreateCart(userID, vendorID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, VendorID: vendorID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// เพิ่มหรือรวม line: merge เมื่อเมนูเดียวกัน + note เดียวกัน และไม่มี selections
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	if len(row.SelectedInstructions) == 0 {
		var exist entity.CartItem
		err := tx.Where("cart_id = ? AND menu_item_id = ? AND custom_instructions = ?",
			cartID, row.MenuItemID, row.CustomInstructions).
			First(&exist).Error
		if err == nil {
			exist.Quantity += row.Quantity
			return tx.Save(&exist).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	// ensure item เป็นของ cart ของ user
	return tx.Exec(`
		UPDATE cart_items
		   SET quantity = ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, itemID, userID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	if err := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// ถ้า cart ว่างแล้ว ปลดล็อกร้าน
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil
	}
	var cnt int64
	tx.Model(&entity.CartItem{}).Where("cart_id = ?", c.ID).Count(&cnt)
	if cnt == 0 {
		return tx.Model(&c).Update("vendor_id", 0).Error
	}
	return nil
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&c).Update("vendor_id", 0).Error
}

func (r *CartRepository) SetVendor(tx *gorm.DB, cartID, vendorID uint) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Update("vendor_id", vendorID).Error
}
