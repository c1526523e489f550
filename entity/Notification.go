package entity

import (
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotifyOrderPlaced            NotificationType = "order_placed"
	NotifyOrderAccepted          NotificationType = "order_accepted"
	NotifyOrderPreparing         NotificationType = "order_preparing"
	NotifyOrderReady             NotificationType = "order_ready"
	NotifyOrderDelivered         NotificationType = "order_delivered"
	NotifyOrderCancelled         NotificationType = "order_cancelled"
	NotifyOrderRejected          NotificationType = "order_rejected"
	NotifyOrderPartiallyRejected NotificationType = "order_partially_rejected"
)

type Notification struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Type NotificationType `json:"type"`

	OrderID     uint   `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Amount      int64  `json:"amount"`
	Message     string `json:"message"`

	IsRead bool `json:"isRead"`
}
