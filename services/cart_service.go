package services

import (
	"campuseats/entity"
	"campuseats/pkg/apperr"
	"campuseats/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID         uint   `json:"menuItemId" binding:"required"`
	Quantity           int    `json:"quantity" binding:"min=1"`
	CustomInstructions string `json:"customInstructions"`
	InstructionIDs     []uint `json:"instructionIds"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, it := range c.Items {
		subtotal += it.TotalItemPrice * int64(it.Quantity)
	}
	return c, subtotal, nil
}

func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	if len(in.CustomInstructions) > maxCustomInstructions {
		return apperr.InvalidArgument("custom instructions too long (max %d chars)", maxCustomInstructions)
	}

	// ตรวจเมนู + คำนวณราคา
	m, err := s.MenuRepo.GetBasics(in.MenuItemID)
	if err != nil {
		return apperr.InvalidArgument("menu item not found")
	}
	if !m.IsAvailable {
		return apperr.InvalidArgument("menu item %q is not available", m.Name)
	}

	c, err := s.CartRepo.GetOrCreateCart(userID, m.VendorID)
	if err != nil {
		return err
	}

	// ถ้าคาร์ทเคยล็อกร้านอื่นไว้ และยังไม่ถูกรีเซ็ต -> ไม่ให้ข้ามร้าน
	if c.VendorID != 0 && c.VendorID != m.VendorID {
		return apperr.InvalidArgument("cart has items from another vendor")
	}
	// ถ้าคาร์ทยังไม่ล็อกร้าน (เช่นเพิ่งถูกล้าง) ให้ตั้งร้านใหม่
	if c.VendorID == 0 {
		c.VendorID = m.VendorID
		if err := s.CartRepo.DB.Save(c).Error; err != nil {
			return err
		}
	}

	instructions, err := s.MenuRepo.GetInstructions(m.ID, in.InstructionIDs)
	if err != nil {
		return err
	}
	if len(instructions) != len(in.InstructionIDs) {
		return apperr.InvalidArgument("invalid instructions")
	}

	unit := m.Price
	totalItem := unit
	selRows := make([]entity.CartItemInstruction, 0, len(instructions))
	for _, ins := range instructions {
		totalItem += ins.PriceModifier
		selRows = append(selRows, entity.CartItemInstruction{
			Name: ins.Name, PriceModifier: ins.PriceModifier, Category: ins.Category,
		})
	}

	line := &entity.CartItem{
		MenuItemID:           m.ID,
		Quantity:             in.Quantity,
		UnitPrice:            unit,
		TotalItemPrice:       totalItem,
		CustomInstructions:   in.CustomInstructions,
		SelectedInstructions: selRows,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
