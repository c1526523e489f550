package services

import (
	"fmt"
	"testing"
	"time"

	"campuseats/entity"
	"campuseats/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlite in-memory แยกต่อ test (ตั้งชื่อ db ตาม test กัน cache ชนกัน)
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.EmailOTP{},
		&entity.Vendor{},
		&entity.MenuItem{}, &entity.MenuInstruction{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemInstruction{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemInstruction{},
		&entity.Favorite{}, &entity.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testEnv struct {
	seq       int
	DB        *gorm.DB
	Orders    *OrderService
	Carts     *CartService
	Menus     *MenuService
	Auth      *AuthService
	Favs      *FavoriteService
	Notify    *NotificationService
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	notify := NewNotificationService(notifRepo, nil)
	return &testEnv{
		DB:        db,
		Orders:    NewOrderService(db, orderRepo, cartRepo, menuRepo, vendorRepo, notify),
		Carts:     NewCartService(db, cartRepo, menuRepo),
		Menus:     NewMenuService(menuRepo, vendorRepo),
		Auth:      NewAuthService(userRepo, "test-secret", time.Hour, 10*time.Minute),
		Favs:      NewFavoriteService(repository.NewFavoriteRepository(db), menuRepo),
		Notify:    notify,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
	}
}

func (e *testEnv) createCustomer(t *testing.T, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: entity.RoleCustomer, IsVerified: true}
	if err := e.DB.Create(u).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return u
}

// คืน user เจ้าของร้าน + ร้าน
func (e *testEnv) createVendor(t *testing.T, email, name string) (*entity.User, *entity.Vendor) {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: entity.RoleVendor, IsVerified: true}
	if err := e.DB.Create(u).Error; err != nil {
		t.Fatalf("create vendor user: %v", err)
	}
	v := &entity.Vendor{Name: name, UserID: u.ID}
	if err := e.DB.Create(v).Error; err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	return u, v
}

func (e *testEnv) createMenuItem(t *testing.T, vendorID uint, name string, price int64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Name: name, Price: price, VendorID: vendorID, IsAvailable: true}
	if err := e.DB.Create(m).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return m
}

func (e *testEnv) reloadOrder(t *testing.T, id uint) *entity.Order {
	t.Helper()
	o, err := e.OrderRepo.GetOrderWithItems(id)
	if err != nil {
		t.Fatalf("reload order %d: %v", id, err)
	}
	return o
}

// order มาตรฐานของ scenario: (ราคา 100 x2) + (ราคา 50 x1) = 250
func (e *testEnv) placeScenarioOrder(t *testing.T) (*entity.User, *entity.User, *entity.Order) {
	t.Helper()
	e.seq++
	customer := e.createCustomer(t, fmt.Sprintf("cust-%d@test.local", e.seq))
	vendorUser, vendor := e.createVendor(t, fmt.Sprintf("vend-%d@test.local", e.seq), "Test Canteen")
	m1 := e.createMenuItem(t, vendor.ID, "Fried Rice", 100)
	m2 := e.createMenuItem(t, vendor.ID, "Iced Tea", 50)

	order, err := e.Orders.Create(customer.ID, &CreateOrderReq{
		Items: []OrderItemIn{
			{MenuItemID: m1.ID, Quantity: 2},
			{MenuItemID: m2.ID, Quantity: 1},
		},
		DeliveryAddress: "Dorm 4, Room 112",
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return customer, vendorUser, order
}

// invariant: totalAmount = Σ totalItemPrice*quantity ของ item ที่ไม่ถูก reject
func assertTotalInvariant(t *testing.T, o *entity.Order) {
	t.Helper()
	var want int64
	for _, it := range o.Items {
		if !it.IsRejected {
			want += it.TotalItemPrice * int64(it.Quantity)
		}
	}
	if o.TotalAmount != want {
		t.Fatalf("totalAmount invariant broken: got %d, want %d", o.TotalAmount, want)
	}
}
