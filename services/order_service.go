package services

import (
	"errors"
	"fmt"
	"time"

	"campuseats/entity"
	"campuseats/pkg/apperr"
	"campuseats/repository"
	"campuseats/utils"

	"gorm.io/gorm"
)

const maxCustomInstructions = 200

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	CartRepo   *repository.CartRepository
	MenuRepo   *repository.MenuRepository
	VendorRepo *repository.VendorRepository
	Notify     *NotificationService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	menuRepo *repository.MenuRepository,
	vendorRepo *repository.VendorRepository,
	notify *NotificationService,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo,
		MenuRepo: menuRepo, VendorRepo: vendorRepo, Notify: notify,
	}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID         uint   `json:"menuItemId" binding:"required"`
	Quantity           int    `json:"quantity" binding:"required,min=1"`
	InstructionIDs     []uint `json:"instructionIds"`
	CustomInstructions string `json:"customInstructions"`
}

type CreateOrderReq struct {
	VendorID            uint          `json:"vendorId"` // optional: ตรวจกับ items ถ้าส่งมา
	Items               []OrderItemIn `json:"items" binding:"required,min=1"`
	DeliveryAddress     string        `json:"deliveryAddress" binding:"required"`
	PaymentMethod       string        `json:"paymentMethod"`
	ScheduledFor        *time.Time    `json:"scheduledFor"`
	SpecialInstructions string        `json:"specialInstructions"`
}

type CheckoutFromCartReq struct {
	DeliveryAddress     string     `json:"deliveryAddress" binding:"required"`
	PaymentMethod       string     `json:"paymentMethod"`
	ScheduledFor        *time.Time `json:"scheduledFor"`
	SpecialInstructions string     `json:"specialInstructions"`
}

// ----- Create -----

// Create ตีราคาจาก catalog ปัจจุบันครั้งเดียว (price snapshot)
// ราคาที่เปลี่ยนทีหลังไม่กระทบออเดอร์เดิม
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.InvalidArgument("items is required")
	}
	if req.DeliveryAddress == "" {
		return nil, apperr.InvalidArgument("delivery address is required")
	}

	var vendorID uint
	var totalAmount int64
	rows := make([]entity.OrderItem, 0, len(req.Items))

	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, apperr.InvalidArgument("quantity must be positive")
		}
		if len(it.CustomInstructions) > maxCustomInstructions {
			return nil, apperr.InvalidArgument("custom instructions too long (max %d chars)", maxCustomInstructions)
		}

		m, err := s.MenuRepo.GetBasics(it.MenuItemID)
		if err != nil {
			return nil, apperr.InvalidArgument("menu item %d not found", it.MenuItemID)
		}
		if !m.IsAvailable {
			return nil, apperr.InvalidArgument("menu item %q is not available", m.Name)
		}

		// ทุก item ต้องมาจากร้านเดียว
		if vendorID == 0 {
			vendorID = m.VendorID
		} else if m.VendorID != vendorID {
			return nil, apperr.InvalidArgument("items from multiple vendors")
		}

		instructions, err := s.MenuRepo.GetInstructions(m.ID, it.InstructionIDs)
		if err != nil {
			return nil, err
		}
		if len(instructions) != len(it.InstructionIDs) {
			return nil, apperr.InvalidArgument("invalid instructions for menu item %q", m.Name)
		}

		unit := m.Price
		totalItem := unit
		sels := make([]entity.OrderItemInstruction, 0, len(instructions))
		for _, ins := range instructions {
			totalItem += ins.PriceModifier
			sels = append(sels, entity.OrderItemInstruction{
				Name:          ins.Name,
				PriceModifier: ins.PriceModifier,
				Category:      ins.Category,
			})
		}

		totalAmount += totalItem * int64(it.Quantity)
		rows = append(rows, entity.OrderItem{
			MenuItemID:           m.ID,
			Quantity:             it.Quantity,
			UnitPrice:            unit,
			TotalItemPrice:       totalItem,
			CustomInstructions:   it.CustomInstructions,
			SelectedInstructions: sels,
		})
	}

	if req.VendorID != 0 && req.VendorID != vendorID {
		return nil, apperr.InvalidArgument("vendorId does not match items")
	}

	order := &entity.Order{
		OrderNumber:         utils.GenerateOrderNumber(),
		UserID:              userID,
		VendorID:            vendorID,
		Status:              entity.OrderPending,
		TotalAmount:         totalAmount,
		DeliveryAddress:     req.DeliveryAddress,
		PaymentMethod:       req.PaymentMethod,
		ScheduledFor:        req.ScheduledFor,
		SpecialInstructions: req.SpecialInstructions,
		Version:             1,
		Items:               rows,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrder(tx, order)
	})
	if err != nil {
		return nil, err
	}

	s.Notify.OrderEvent(userID, entity.NotifyOrderPlaced, order,
		fmt.Sprintf("Order %s placed", order.OrderNumber))
	return order, nil
}

// สร้างออเดอร์จากตะกร้าใน DB
func (s *OrderService) CreateFromCart(userID uint, in *CheckoutFromCartReq) (*entity.Order, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.InvalidArgument("cart is empty")
	}
	if cart.VendorID == 0 {
		return nil, apperr.InvalidArgument("cart has no vendor")
	}
	if in.DeliveryAddress == "" {
		return nil, apperr.InvalidArgument("delivery address is required")
	}

	// คำนวณราคารวมจาก snapshot ใน cart
	var totalAmount int64
	rows := make([]entity.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		sels := make([]entity.OrderItemInstruction, 0, len(it.SelectedInstructions))
		for _, sel := range it.SelectedInstructions {
			sels = append(sels, entity.OrderItemInstruction{
				Name:          sel.Name,
				PriceModifier: sel.PriceModifier,
				Category:      sel.Category,
			})
		}
		totalAmount += it.TotalItemPrice * int64(it.Quantity)
		rows = append(rows, entity.OrderItem{
			MenuItemID:           it.MenuItemID,
			Quantity:             it.Quantity,
			UnitPrice:            it.UnitPrice,
			TotalItemPrice:       it.TotalItemPrice,
			CustomInstructions:   it.CustomInstructions,
			SelectedInstructions: sels,
		})
	}

	order := &entity.Order{
		OrderNumber:         utils.GenerateOrderNumber(),
		UserID:              userID,
		VendorID:            cart.VendorID,
		Status:              entity.OrderPending,
		TotalAmount:         totalAmount,
		DeliveryAddress:     in.DeliveryAddress,
		PaymentMethod:       in.PaymentMethod,
		ScheduledFor:        in.ScheduledFor,
		SpecialInstructions: in.SpecialInstructions,
		Version:             1,
		Items:               rows,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		// เคลียร์ cart ใน transaction เดียวกัน
		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.Notify.OrderEvent(userID, entity.NotifyOrderPlaced, order,
		fmt.Sprintf("Order %s placed", order.OrderNumber))
	return order, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return o, nil
}

type VendorOrderListOut struct {
	Items []repository.VendorOrderSummary `json:"items"`
	Total int64                           `json:"total"`
	Page  int                             `json:"page"`
	Limit int                             `json:"limit"`
}

func (s *OrderService) ListForVendorUser(userID uint, status *entity.OrderStatus, page, limit int) (*VendorOrderListOut, error) {
	vendor, err := s.vendorOf(userID)
	if err != nil {
		return nil, err
	}
	items, total, err := s.Repo.ListOrdersForVendor(vendor.ID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &VendorOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForVendorUser(userID, orderID uint) (*entity.Order, error) {
	vendor, err := s.vendorOf(userID)
	if err != nil {
		return nil, err
	}
	o, err := s.Repo.GetOrderForVendor(vendor.ID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return o, nil
}

// ----- Reorder -----

type ReorderOut struct {
	Cart    *entity.Cart `json:"cart"`
	Dropped []string     `json:"dropped"` // รายการที่หายไปจาก catalog หรือปิดขายแล้ว
}

// Reorder สร้าง cart ใหม่จาก item ที่ไม่ถูก reject ของออเดอร์เดิม
// เทียบกับ catalog ปัจจุบัน (ราคาใหม่) ไม่แตะออเดอร์เดิม
func (s *OrderService) Reorder(userID, orderID uint) (*ReorderOut, error) {
	o, err := s.DetailForUser(userID, orderID)
	if err != nil {
		return nil, err
	}

	dropped := make([]string, 0)
	rows := make([]entity.CartItem, 0, len(o.Items))
	var vendorID uint

	for _, it := range o.Items {
		if it.IsRejected {
			continue
		}
		m, err := s.MenuRepo.FindByID(it.MenuItemID)
		if err != nil || !m.IsAvailable {
			name := it.MenuItem.Name
			if name == "" {
				name = fmt.Sprintf("menu item %d", it.MenuItemID)
			}
			dropped = append(dropped, name)
			continue
		}
		vendorID = m.VendorID

		// instructions เดิม match ตามชื่อกับ catalog ปัจจุบัน ที่หายไปก็ตัดทิ้ง
		unit := m.Price
		totalItem := unit
		sels := make([]entity.CartItemInstruction, 0, len(it.SelectedInstructions))
		for _, sel := range it.SelectedInstructions {
			for _, ins := range m.Instructions {
				if ins.Name == sel.Name {
					totalItem += ins.PriceModifier
					sels = append(sels, entity.CartItemInstruction{
						Name:          ins.Name,
						PriceModifier: ins.PriceModifier,
						Category:      ins.Category,
					})
					break
				}
			}
		}

		rows = append(rows, entity.CartItem{
			MenuItemID:           m.ID,
			Quantity:             it.Quantity,
			UnitPrice:            unit,
			TotalItemPrice:       totalItem,
			CustomInstructions:   it.CustomInstructions,
			SelectedInstructions: sels,
		})
	}

	if len(rows) == 0 {
		return nil, apperr.InvalidArgument("no items from this order are still available")
	}

	cart, err := s.CartRepo.GetOrCreateCart(userID, vendorID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}
		if err := s.CartRepo.SetVendor(tx, cart.ID, vendorID); err != nil {
			return err
		}
		for i := range rows {
			rows[i].CartID = cart.ID
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cart, err = s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	return &ReorderOut{Cart: cart, Dropped: dropped}, nil
}

// ----- helpers -----

func (s *OrderService) vendorOf(userID uint) (*entity.Vendor, error) {
	vendor, err := s.VendorRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbidden("no vendor registered for this account")
		}
		return nil, err
	}
	return vendor, nil
}
