package services

import (
	"strings"
	"testing"

	"campuseats/entity"
	"campuseats/pkg/apperr"
)

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "snap-cust@test.local")
	_, vendor := env.createVendor(t, "snap-vend@test.local", "Snapshot Canteen")
	m1 := env.createMenuItem(t, vendor.ID, "Fried Rice", 100)
	m2 := env.createMenuItem(t, vendor.ID, "Iced Tea", 50)

	order, err := env.Orders.Create(customer.ID, &CreateOrderReq{
		Items: []OrderItemIn{
			{MenuItemID: m1.ID, Quantity: 2},
			{MenuItemID: m2.ID, Quantity: 1},
		},
		DeliveryAddress: "Library, 2nd floor",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if order.Status != entity.OrderPending {
		t.Fatalf("status = %s, want pending", order.Status)
	}
	if order.TotalAmount != 250 {
		t.Fatalf("total = %d, want 250", order.TotalAmount)
	}
	if order.OrderNumber == "" || !strings.HasPrefix(order.OrderNumber, "ORD-") {
		t.Fatalf("order number %q missing prefix", order.OrderNumber)
	}
	if order.Version != 1 {
		t.Fatalf("version = %d, want 1", order.Version)
	}
	assertTotalInvariant(t, order)

	// ราคาเมนูเปลี่ยนทีหลัง ออเดอร์เดิมต้องไม่ขยับ
	if err := env.DB.Model(&entity.MenuItem{}).Where("id = ?", m1.ID).Update("price", 999).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}
	after := env.reloadOrder(t, order.ID)
	if after.TotalAmount != 250 {
		t.Fatalf("total after reprice = %d, want 250", after.TotalAmount)
	}
}

func TestCreateOrderWithInstructionModifiers(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "mods-cust@test.local")
	_, vendor := env.createVendor(t, "mods-vend@test.local", "Mods Canteen")
	m := env.createMenuItem(t, vendor.ID, "Basil Pork", 60)

	extra := &entity.MenuInstruction{MenuItemID: m.ID, Name: "Extra pork", PriceModifier: 20, Category: "protein"}
	egg := &entity.MenuInstruction{MenuItemID: m.ID, Name: "Fried egg", PriceModifier: 10, Category: "addon"}
	if err := env.DB.Create(extra).Error; err != nil {
		t.Fatal(err)
	}
	if err := env.DB.Create(egg).Error; err != nil {
		t.Fatal(err)
	}

	order, err := env.Orders.Create(customer.ID, &CreateOrderReq{
		Items: []OrderItemIn{{
			MenuItemID:     m.ID,
			Quantity:       2,
			InstructionIDs: []uint{extra.ID, egg.ID},
		}},
		DeliveryAddress: "Dorm 2",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// (60 + 20 + 10) ต่อหน่วย x2
	it := order.Items[0]
	if it.TotalItemPrice != 90 {
		t.Fatalf("totalItemPrice = %d, want 90", it.TotalItemPrice)
	}
	if order.TotalAmount != 180 {
		t.Fatalf("total = %d, want 180", order.TotalAmount)
	}
	if len(it.SelectedInstructions) != 2 {
		t.Fatalf("selected instructions = %d, want 2", len(it.SelectedInstructions))
	}

	// instruction ของเมนูอื่นใช้ไม่ได้
	m2 := env.createMenuItem(t, vendor.ID, "Plain Rice", 15)
	_, err = env.Orders.Create(customer.ID, &CreateOrderReq{
		Items:           []OrderItemIn{{MenuItemID: m2.ID, Quantity: 1, InstructionIDs: []uint{extra.ID}}},
		DeliveryAddress: "Dorm 2",
	})
	if !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Fatalf("cross-menu instruction: want invalid argument, got %v", err)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "val-cust@test.local")
	_, vendorA := env.createVendor(t, "val-vend-a@test.local", "Canteen A")
	_, vendorB := env.createVendor(t, "val-vend-b@test.local", "Canteen B")
	ma := env.createMenuItem(t, vendorA.ID, "Item A", 40)
	mb := env.createMenuItem(t, vendorB.ID, "Item B", 40)

	cases := []struct {
		name string
		req  *CreateOrderReq
	}{
		{"no items", &CreateOrderReq{DeliveryAddress: "x"}},
		{"no address", &CreateOrderReq{Items: []OrderItemIn{{MenuItemID: ma.ID, Quantity: 1}}}},
		{"zero quantity", &CreateOrderReq{
			Items:           []OrderItemIn{{MenuItemID: ma.ID, Quantity: 0}},
			DeliveryAddress: "x",
		}},
		{"mixed vendors", &CreateOrderReq{
			Items: []OrderItemIn{
				{MenuItemID: ma.ID, Quantity: 1},
				{MenuItemID: mb.ID, Quantity: 1},
			},
			DeliveryAddress: "x",
		}},
		{"custom instructions too long", &CreateOrderReq{
			Items: []OrderItemIn{{
				MenuItemID: ma.ID, Quantity: 1,
				CustomInstructions: strings.Repeat("a", maxCustomInstructions+1),
			}},
			DeliveryAddress: "x",
		}},
	}
	for _, tc := range cases {
		if _, err := env.Orders.Create(customer.ID, tc.req); !apperr.IsKind(err, apperr.KindInvalidArgument) {
			t.Errorf("%s: want invalid argument, got %v", tc.name, err)
		}
	}

	// เมนูปิดขาย
	if err := env.DB.Model(&entity.MenuItem{}).Where("id = ?", ma.ID).Update("is_available", false).Error; err != nil {
		t.Fatal(err)
	}
	_, err := env.Orders.Create(customer.ID, &CreateOrderReq{
		Items:           []OrderItemIn{{MenuItemID: ma.ID, Quantity: 1}},
		DeliveryAddress: "x",
	})
	if !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Fatalf("unavailable item: want invalid argument, got %v", err)
	}
}

func TestOrderVisibilityPerParty(t *testing.T) {
	env := newTestEnv(t)
	customer, vendorUser, order := env.placeScenarioOrder(t)
	other := env.createCustomer(t, "nosy@test.local")

	if _, err := env.Orders.DetailForUser(customer.ID, order.ID); err != nil {
		t.Fatalf("owner detail: %v", err)
	}
	if _, err := env.Orders.DetailForUser(other.ID, order.ID); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("stranger detail: want not found, got %v", err)
	}
	if _, err := env.Orders.DetailForVendorUser(vendorUser.ID, order.ID); err != nil {
		t.Fatalf("vendor detail: %v", err)
	}

	list, err := env.Orders.ListForUser(customer.ID, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != order.ID {
		t.Fatalf("list = %+v, want just order %d", list, order.ID)
	}

	out, err := env.Orders.ListForVendorUser(vendorUser.ID, nil, 1, 20)
	if err != nil {
		t.Fatalf("vendor list: %v", err)
	}
	if out.Total != 1 {
		t.Fatalf("vendor list total = %d, want 1", out.Total)
	}

	// filter ตาม status
	pending := entity.OrderPending
	out, err = env.Orders.ListForVendorUser(vendorUser.ID, &pending, 1, 20)
	if err != nil {
		t.Fatalf("vendor list filtered: %v", err)
	}
	if out.Total != 1 {
		t.Fatalf("filtered total = %d, want 1", out.Total)
	}
	delivered := entity.OrderDelivered
	out, err = env.Orders.ListForVendorUser(vendorUser.ID, &delivered, 1, 20)
	if err != nil {
		t.Fatalf("vendor list filtered: %v", err)
	}
	if out.Total != 0 {
		t.Fatalf("filtered total = %d, want 0", out.Total)
	}
}

func TestCheckoutFromCartClearsCart(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "chk-cust@test.local")
	_, vendor := env.createVendor(t, "chk-vend@test.local", "Checkout Canteen")
	m1 := env.createMenuItem(t, vendor.ID, "Burger", 120)
	m2 := env.createMenuItem(t, vendor.ID, "Fries", 45)

	if err := env.Carts.Add(customer.ID, &AddToCartIn{MenuItemID: m1.ID, Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := env.Carts.Add(customer.ID, &AddToCartIn{MenuItemID: m2.ID, Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	order, err := env.Orders.CreateFromCart(customer.ID, &CheckoutFromCartReq{
		DeliveryAddress: "Sports Complex",
		PaymentMethod:   "cash",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.TotalAmount != 210 {
		t.Fatalf("total = %d, want 210", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}

	cart, subtotal, err := env.Carts.Get(customer.ID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 0 || subtotal != 0 {
		t.Fatalf("cart not cleared: %d items, subtotal %d", len(cart.Items), subtotal)
	}

	// คาร์ทว่าง checkout ไม่ได้
	_, err = env.Orders.CreateFromCart(customer.ID, &CheckoutFromCartReq{DeliveryAddress: "x"})
	if !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Fatalf("empty cart checkout: want invalid argument, got %v", err)
	}
}

func TestReorderSkipsVanishedItems(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "re-cust@test.local")
	_, vendor := env.createVendor(t, "re-vend@test.local", "Reorder Canteen")
	keep := env.createMenuItem(t, vendor.ID, "Soup", 70)
	gone := env.createMenuItem(t, vendor.ID, "Seasonal Salad", 90)

	order, err := env.Orders.Create(customer.ID, &CreateOrderReq{
		Items: []OrderItemIn{
			{MenuItemID: keep.ID, Quantity: 1},
			{MenuItemID: gone.ID, Quantity: 1},
		},
		DeliveryAddress: "Dorm 9",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := env.DB.Model(&entity.MenuItem{}).Where("id = ?", gone.ID).Update("is_available", false).Error; err != nil {
		t.Fatal(err)
	}
	// ราคาของที่เหลือขึ้นไปแล้ว reorder ต้องใช้ราคาใหม่
	if err := env.DB.Model(&entity.MenuItem{}).Where("id = ?", keep.ID).Update("price", 85).Error; err != nil {
		t.Fatal(err)
	}

	out, err := env.Orders.Reorder(customer.ID, order.ID)
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if len(out.Cart.Items) != 1 {
		t.Fatalf("cart items = %d, want 1", len(out.Cart.Items))
	}
	if out.Cart.Items[0].UnitPrice != 85 {
		t.Fatalf("reorder unit price = %d, want current price 85", out.Cart.Items[0].UnitPrice)
	}
	if len(out.Dropped) != 1 || out.Dropped[0] != "Seasonal Salad" {
		t.Fatalf("dropped = %v, want [Seasonal Salad]", out.Dropped)
	}

	// ออเดอร์เดิมต้องไม่ถูกแตะ
	after := env.reloadOrder(t, order.ID)
	if after.TotalAmount != 160 {
		t.Fatalf("original order total = %d, want 160", after.TotalAmount)
	}

	// ทุก item หายหมด -> error
	if err := env.DB.Model(&entity.MenuItem{}).Where("id = ?", keep.ID).Update("is_available", false).Error; err != nil {
		t.Fatal(err)
	}
	if _, err := env.Orders.Reorder(customer.ID, order.ID); !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Fatalf("all items gone: want invalid argument, got %v", err)
	}
}
