package services

import (
	"testing"

	"campuseats/entity"
	"campuseats/pkg/apperr"
)

func TestCartLocksToSingleVendor(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "lock-cust@test.local")
	_, vendorA := env.createVendor(t, "lock-vend-a@test.local", "Canteen A")
	_, vendorB := env.createVendor(t, "lock-vend-b@test.local", "Canteen B")
	ma := env.createMenuItem(t, vendorA.ID, "Pad Thai", 55)
	mb := env.createMenuItem(t, vendorB.ID, "Som Tam", 45)

	if err := env.Carts.Add(customer.ID, &AddToCartIn{MenuItemID: ma.ID, Quantity: 1}); err != nil {
		t.Fatalf("add from vendor A: %v", err)
	}

	err := env.Carts.Add(customer.ID, &AddToCartIn{MenuItemID: mb.ID, Quantity: 1})
	if !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Fatalf("cross-vendor add: want invalid argument, got %v", err)
	}

	// ล้างแล้วร้านปลดล็อก เพิ่มของร้าน B ได้
	if err := env.Carts.Clear(customer.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := env.Carts.Add(customer.ID, &AddToCartIn{MenuItemID: mb.ID, Quantity: 1}); err != nil {
		t.Fatalf("add after clear: %v", err)
	}
	cart, subtotal, err := env.Carts.Get(customer.ID)
	if err != nil {
		t.Fatal(err)
	}
	if cart.VendorID != vendorB.ID {
		t.Fatalf("cart vendor = %d, want %d", cart.VendorID, vendorB.ID)
	}
	if subtotal != 45 {
		t.Fatalf("subtotal = %d, want 45", subtotal)
	}
}

func TestCartMergesPlainLines(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "merge-cust@test.local")
	_, vendor := env.createVendor(t, "merge-vend@test.local", "Merge Canteen")
	m := env.createMenuItem(t, vendor.ID, "Rice Bowl", 65)

	if err := env.Carts.Add(customer.ID, &AddToCartIn{MenuItemID: m.ID, Quantity: 2}); err != nil {
		t.Fatal(err)
	}
	if err := env.Carts.Add(customer.ID, &AddToCartIn{MenuItemID: m.ID, Quantity: 3}); err != nil {
		t.Fatal(err)
	}

	cart, subtotal, err := env.Carts.Get(customer.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("lines = %d, want 1 (same item merges)", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", cart.Items[0].Quantity)
	}
	if subtotal != 325 {
		t.Fatalf("subtotal = %d, want 325", subtotal)
	}

	// line ที่มี selections ไม่ merge
	ins := &entity.MenuInstruction{MenuItemID: m.ID, Name: "Extra rice", PriceModifier: 10, Category: "addon"}
	if err := env.DB.Create(ins).Error; err != nil {
		t.Fatal(err)
	}
	if err := env.Carts.Add(customer.ID, &AddToCartIn{MenuItemID: m.ID, Quantity: 1, InstructionIDs: []uint{ins.ID}}); err != nil {
		t.Fatal(err)
	}
	cart, _, err = env.Carts.Get(customer.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("lines = %d, want 2 (customized line stays separate)", len(cart.Items))
	}
}

func TestCartQtyAndRemoval(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "qty-cust@test.local")
	_, vendor := env.createVendor(t, "qty-vend@test.local", "Qty Canteen")
	m1 := env.createMenuItem(t, vendor.ID, "Curry", 60)
	m2 := env.createMenuItem(t, vendor.ID, "Roti", 25)

	if err := env.Carts.Add(customer.ID, &AddToCartIn{MenuItemID: m1.ID, Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	if err := env.Carts.Add(customer.ID, &AddToCartIn{MenuItemID: m2.ID, Quantity: 1}); err != nil {
		t.Fatal(err)
	}

	cart, _, err := env.Carts.Get(customer.ID)
	if err != nil {
		t.Fatal(err)
	}
	var line1, line2 uint
	for _, it := range cart.Items {
		switch it.MenuItemID {
		case m1.ID:
			line1 = it.ID
		case m2.ID:
			line2 = it.ID
		}
	}

	if err := env.Carts.UpdateQty(customer.ID, line1, 4); err != nil {
		t.Fatalf("update qty: %v", err)
	}
	if err := env.Carts.RemoveItem(customer.ID, line2); err != nil {
		t.Fatalf("remove: %v", err)
	}

	cart, subtotal, err := env.Carts.Get(customer.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 4 {
		t.Fatalf("cart = %+v, want single line qty 4", cart.Items)
	}
	if subtotal != 240 {
		t.Fatalf("subtotal = %d, want 240", subtotal)
	}

	// เอา line สุดท้ายออก ร้านต้องปลดล็อก
	if err := env.Carts.RemoveItem(customer.ID, cart.Items[0].ID); err != nil {
		t.Fatal(err)
	}
	cart, _, err = env.Carts.Get(customer.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 || cart.VendorID != 0 {
		t.Fatalf("empty cart should unlock vendor, got vendor %d with %d items", cart.VendorID, len(cart.Items))
	}
}

func TestCartRejectsUnavailableItem(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "unavail-cust@test.local")
	_, vendor := env.createVendor(t, "unavail-vend@test.local", "Unavail Canteen")
	m := env.createMenuItem(t, vendor.ID, "Special", 100)

	if err := env.DB.Model(&entity.MenuItem{}).Where("id = ?", m.ID).Update("is_available", false).Error; err != nil {
		t.Fatal(err)
	}
	err := env.Carts.Add(customer.ID, &AddToCartIn{MenuItemID: m.ID, Quantity: 1})
	if !apperr.IsKind(err, apperr.KindInvalidArgument) {
		t.Fatalf("unavailable item: want invalid argument, got %v", err)
	}
}
