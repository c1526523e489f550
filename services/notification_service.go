package services

import (
	"log"

	"campuseats/entity"
	"campuseats/repository"
)

// Pusher ส่ง payload ไปหา connection ของ user (ws hub)
type Pusher interface {
	Send(userID uint, payload any)
}

type NotificationService struct {
	Repo *repository.NotificationRepository
	Hub  Pusher // nil ได้ (เช่นใน test)
}

func NewNotificationService(repo *repository.NotificationRepository, hub Pusher) *NotificationService {
	return &NotificationService{Repo: repo, Hub: hub}
}

// OrderEvent บันทึก notification + push แบบ fire-and-forget
// ห้าม fail transition เพราะ notification พัง: log แล้วไปต่อ
func (s *NotificationService) OrderEvent(userID uint, typ entity.NotificationType, o *entity.Order, message string) {
	n := &entity.Notification{
		UserID:      userID,
		Type:        typ,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Amount:      o.TotalAmount,
		Message:     message,
	}
	if err := s.Repo.Create(n); err != nil {
		log.Printf("notification save failed (order %s, type %s): %v", o.OrderNumber, typ, err)
	}
	if s.Hub != nil {
		s.Hub.Send(userID, n)
	}
}

func (s *NotificationService) ListForUser(userID uint, page, limit int) ([]entity.Notification, int64, error) {
	return s.Repo.ListForUser(userID, page, limit)
}

func (s *NotificationService) CountUnread(userID uint) (int64, error) {
	return s.Repo.CountUnread(userID)
}

func (s *NotificationService) MarkRead(userID, id uint) error {
	return s.Repo.MarkRead(userID, id)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.Repo.MarkAllRead(userID)
}
