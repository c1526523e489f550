package entity

// OrderStatus แทน lookup table เดิม ใช้ enum ปิดแทน
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderAccepted       OrderStatus = "accepted"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
	OrderRejected       OrderStatus = "rejected"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderPreparing, OrderOutForDelivery,
		OrderDelivered, OrderCancelled, OrderRejected:
		return true
	}
	return false
}

// Terminal = จบแล้ว ห้ามแก้ order อีก
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderDelivered, OrderCancelled, OrderRejected:
		return true
	}
	return false
}
