package services

import (
	"testing"

	"campuseats/entity"
	"campuseats/pkg/apperr"
	"campuseats/repository"
)

func TestVendorDashboardCountsDeliveredOnly(t *testing.T) {
	env := newTestEnv(t)
	analytics := NewAnalyticsService(env.DB, repository.NewVendorRepository(env.DB))

	customer := env.createCustomer(t, "dash-cust@test.local")
	vendorUser, vendor := env.createVendor(t, "dash-vend@test.local", "Dash Canteen")
	m := env.createMenuItem(t, vendor.ID, "Signature Bowl", 100)

	place := func(qty int) *entity.Order {
		o, err := env.Orders.Create(customer.ID, &CreateOrderReq{
			Items:           []OrderItemIn{{MenuItemID: m.ID, Quantity: qty}},
			DeliveryAddress: "Main Gate",
		})
		if err != nil {
			t.Fatalf("place: %v", err)
		}
		return o
	}

	delivered := place(2) // 200
	place(1)              // ค้างเป็น pending ไม่ควรนับเป็นรายได้

	for _, next := range []entity.OrderStatus{
		entity.OrderAccepted, entity.OrderPreparing,
		entity.OrderOutForDelivery, entity.OrderDelivered,
	} {
		if _, err := env.Orders.VendorUpdateStatus(vendorUser.ID, delivered.ID, &StatusUpdateReq{Status: next}); err != nil {
			t.Fatalf("move to %s: %v", next, err)
		}
	}

	dash, err := analytics.VendorDashboard(vendorUser.ID)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.Revenue != 200 {
		t.Fatalf("revenue = %d, want 200 (delivered only)", dash.Revenue)
	}
	if dash.OrdersByStatus[entity.OrderDelivered] != 1 || dash.OrdersByStatus[entity.OrderPending] != 1 {
		t.Fatalf("ordersByStatus = %+v", dash.OrdersByStatus)
	}
	if dash.TodayOrders != 2 {
		t.Fatalf("todayOrders = %d, want 2", dash.TodayOrders)
	}
	if len(dash.TopItems) != 1 || dash.TopItems[0].Sold != 2 {
		t.Fatalf("topItems = %+v, want Signature Bowl sold 2", dash.TopItems)
	}

	// คนไม่มีร้านดู dashboard ไม่ได้
	if _, err := analytics.VendorDashboard(customer.ID); !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("customer dashboard: want forbidden, got %v", err)
	}
}

func TestAdminDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	analytics := NewAnalyticsService(env.DB, repository.NewVendorRepository(env.DB))

	_, vendorUser, order := env.placeScenarioOrder(t)
	for _, next := range []entity.OrderStatus{
		entity.OrderAccepted, entity.OrderPreparing,
		entity.OrderOutForDelivery, entity.OrderDelivered,
	} {
		if _, err := env.Orders.VendorUpdateStatus(vendorUser.ID, order.ID, &StatusUpdateReq{Status: next}); err != nil {
			t.Fatalf("move to %s: %v", next, err)
		}
	}

	stats, err := analytics.AdminDashboardStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Users != 2 || stats.Vendors != 1 || stats.Orders != 1 {
		t.Fatalf("stats = %+v, want 2 users / 1 vendor / 1 order", stats)
	}
	if stats.PlatformRevenue != 250 {
		t.Fatalf("platform revenue = %d, want 250", stats.PlatformRevenue)
	}
}
