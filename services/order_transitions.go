// services/order_transitions.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"campuseats/entity"
	"campuseats/pkg/apperr"

	"gorm.io/gorm"
)

// edge ของ state graph: ใครมีสิทธิ์เดินเส้นไหน
type edge struct{ from, to entity.OrderStatus }

var transitionActor = map[edge]entity.Role{
	{entity.OrderPending, entity.OrderAccepted}:         entity.RoleVendor,
	{entity.OrderAccepted, entity.OrderPreparing}:       entity.RoleVendor,
	{entity.OrderPreparing, entity.OrderOutForDelivery}: entity.RoleVendor,
	{entity.OrderOutForDelivery, entity.OrderDelivered}: entity.RoleVendor,

	// vendor reject ได้จากทุก state ที่ยังไม่จบ
	{entity.OrderPending, entity.OrderRejected}:        entity.RoleVendor,
	{entity.OrderAccepted, entity.OrderRejected}:       entity.RoleVendor,
	{entity.OrderPreparing, entity.OrderRejected}:      entity.RoleVendor,
	{entity.OrderOutForDelivery, entity.OrderRejected}: entity.RoleVendor,

	// ลูกค้า cancel ได้แค่ก่อนร้านเริ่มทำอาหาร
	{entity.OrderPending, entity.OrderCancelled}:  entity.RoleCustomer,
	{entity.OrderAccepted, entity.OrderCancelled}: entity.RoleCustomer,
}

// AllowedTransition เช็ค edge + actor ก่อนเขียนอะไรลง DB
func AllowedTransition(from, to entity.OrderStatus, actor entity.Role) error {
	role, ok := transitionActor[edge{from, to}]
	if !ok {
		return apperr.InvalidTransition("cannot move order from %s to %s", from, to)
	}
	if role != actor {
		return apperr.Forbidden("%s may not move order from %s to %s", actor, from, to)
	}
	return nil
}

var notifyByStatus = map[entity.OrderStatus]entity.NotificationType{
	entity.OrderAccepted:       entity.NotifyOrderAccepted,
	entity.OrderPreparing:      entity.NotifyOrderPreparing,
	entity.OrderOutForDelivery: entity.NotifyOrderReady,
	entity.OrderDelivered:      entity.NotifyOrderDelivered,
	entity.OrderCancelled:      entity.NotifyOrderCancelled,
	entity.OrderRejected:       entity.NotifyOrderRejected,
}

type StatusUpdateReq struct {
	Status          entity.OrderStatus `json:"status"`
	RejectionReason string             `json:"rejectionReason"`
	RejectedItems   []uint             `json:"rejectedItems"`
}

// ----- Vendor actions -----

// VendorUpdateStatus เดิน state graph หนึ่งก้าว หรือถ้าแนบ rejectedItems มา
// จะกลายเป็น partial rejection แทน (status ไม่เปลี่ยน ยกเว้นโดน reject หมด)
func (s *OrderService) VendorUpdateStatus(userID, orderID uint, in *StatusUpdateReq) (*entity.Order, error) {
	vendor, err := s.vendorOf(userID)
	if err != nil {
		return nil, err
	}

	if len(in.RejectedItems) > 0 {
		return s.rejectItems(vendor.ID, orderID, in.RejectedItems, in.RejectionReason)
	}

	o, err := s.Repo.GetOrderForVendor(vendor.ID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	target := in.Status
	if !target.Valid() {
		return nil, apperr.InvalidArgument("unknown status %q", string(target))
	}
	if err := AllowedTransition(o.Status, target, entity.RoleVendor); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		extra := map[string]any{}
		if target == entity.OrderRejected {
			// full rejection: ทุก item โดน และยอดรวมเหลือศูนย์
			if err := s.Repo.MarkAllItemsRejected(tx, o.ID); err != nil {
				return err
			}
			extra["total_amount"] = 0
			extra["has_rejected_items"] = true
			extra["rejection_reason"] = in.RejectionReason
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, target, extra)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order was modified concurrently")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetOrderForVendor(vendor.ID, orderID)
	if err != nil {
		return nil, err
	}

	if typ, ok := notifyByStatus[target]; ok {
		s.Notify.OrderEvent(updated.UserID, typ, updated,
			fmt.Sprintf("Order %s is now %s", updated.OrderNumber, target))
	}
	return updated, nil
}

// ----- Customer actions -----

// CustomerCancel ยกเลิกได้เฉพาะ pending/accepted
// ร้านเริ่มทำอาหารแล้ว (preparing) ยกเลิกไม่ได้
func (s *OrderService) CustomerCancel(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	if err := AllowedTransition(o.Status, entity.OrderCancelled, entity.RoleCustomer); err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.OrderCancelled,
			map[string]any{"cancelled_at": &now})
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order was modified concurrently")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}

	s.Notify.OrderEvent(userID, entity.NotifyOrderCancelled, updated,
		fmt.Sprintf("Order %s cancelled", updated.OrderNumber))
	return updated, nil
}

// ----- Partial rejection -----

// rejectItems ตัด item บางตัวออกจากออเดอร์
// subset แท้ → status เดิม คำนวณยอดใหม่จาก item ที่เหลือ
// โดนครบทุกตัว → กลายเป็น full rejection (status=rejected, total=0)
func (s *OrderService) rejectItems(vendorID, orderID uint, itemIDs []uint, reason string) (*entity.Order, error) {
	if len(itemIDs) == 0 {
		return nil, apperr.InvalidArgument("no items to reject")
	}

	o, err := s.Repo.GetOrderForVendor(vendorID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, apperr.InvalidTransition("order is already %s", o.Status)
	}

	// ทุก id ต้องเป็น item ของออเดอร์นี้จริง
	byID := make(map[uint]*entity.OrderItem, len(o.Items))
	for i := range o.Items {
		byID[o.Items[i].ID] = &o.Items[i]
	}
	reject := make(map[uint]bool, len(itemIDs))
	for _, id := range itemIDs {
		if _, ok := byID[id]; !ok {
			return nil, apperr.InvalidArgument("item %d does not belong to this order", id)
		}
		reject[id] = true
	}

	// สถานะปลายทางหลัง apply
	allRejected := true
	var newTotal int64
	droppedNames := make([]string, 0, len(itemIDs))
	for _, it := range o.Items {
		if it.IsRejected || reject[it.ID] {
			if reject[it.ID] && !it.IsRejected {
				name := it.MenuItem.Name
				if name == "" {
					name = fmt.Sprintf("item %d", it.ID)
				}
				droppedNames = append(droppedNames, name)
			}
			continue
		}
		allRejected = false
		newTotal += it.TotalItemPrice * int64(it.Quantity)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"has_rejected_items": true,
			"rejection_reason":   reason,
		}
		if allRejected {
			updates["status"] = entity.OrderRejected
			updates["total_amount"] = 0
		} else {
			updates["total_amount"] = newTotal
		}

		// version guard: แพ้ race → rollback ทั้งก้อน ไม่มี partial write
		affected, err := s.Repo.UpdateOrderGuardVersion(tx, o.ID, o.Version, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("order was modified concurrently")
		}
		return s.Repo.MarkItemsRejected(tx, o.ID, itemIDs)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.GetOrderForVendor(vendorID, orderID)
	if err != nil {
		return nil, err
	}

	if allRejected {
		s.Notify.OrderEvent(updated.UserID, entity.NotifyOrderRejected, updated,
			fmt.Sprintf("Order %s was rejected: %s", updated.OrderNumber, reason))
	} else {
		s.Notify.OrderEvent(updated.UserID, entity.NotifyOrderPartiallyRejected, updated,
			fmt.Sprintf("Some items in order %s are unavailable: %s",
				updated.OrderNumber, strings.Join(droppedNames, ", ")))
	}
	return updated, nil
}

// RejectItems เปิดให้ controller เรียกตรง ๆ (PATCH ที่ส่งเฉพาะ rejectedItems)
func (s *OrderService) RejectItems(userID, orderID uint, itemIDs []uint, reason string) (*entity.Order, error) {
	vendor, err := s.vendorOf(userID)
	if err != nil {
		return nil, err
	}
	return s.rejectItems(vendor.ID, orderID, itemIDs, reason)
}
