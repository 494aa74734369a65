package service

import (
	"math"
	"time"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/repository"
	"github.com/litmart/litmart-backend/internal/ws"
	"github.com/litmart/litmart-backend/pkg/logger"
)

// NotificationService handles notification business logic
type NotificationService struct {
	repo *repository.NotificationRepository
	hub  *ws.Hub
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(repo *repository.NotificationRepository, hub *ws.Hub) *NotificationService {
	return &NotificationService{repo: repo, hub: hub}
}

// Notify persists a notification and pushes it to the member's open
// connections. Persist failure is logged, not returned: notifications are
// best-effort and must never fail the triggering operation.
func (s *NotificationService) Notify(memberID int64, notifType, title, content, url string) {
	notification := &domain.Notification{
		MemberID: memberID,
		Type:     notifType,
		Title:    title,
		Content:  content,
		URL:      url,
	}

	if err := s.repo.Create(notification); err != nil {
		logger.Warn("failed to persist notification for member %d: %v", memberID, err)
		return
	}

	if s.hub != nil {
		s.hub.SendToMember(memberID, &ws.Message{
			Type:    "notification",
			Payload: notification,
		})
	}
}

// GetUnreadCount returns the unread notification count for a member
func (s *NotificationService) GetUnreadCount(memberID int64) (*domain.NotificationSummaryResponse, error) {
	count, err := s.repo.GetUnreadCount(memberID)
	if err != nil {
		return nil, err
	}
	return &domain.NotificationSummaryResponse{TotalUnread: int(count)}, nil
}

// GetList returns paginated notifications for a member
func (s *NotificationService) GetList(memberID int64, page, limit int) (*domain.NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit
	notifications, total, err := s.repo.GetList(memberID, offset, limit)
	if err != nil {
		return nil, err
	}

	unreadCount, err := s.repo.GetUnreadCount(memberID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.NotificationItem, len(notifications))
	for i, n := range notifications {
		items[i] = domain.NotificationItem{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Content:   n.Content,
			URL:       n.URL,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &domain.NotificationListResponse{
		Items:       items,
		Total:       total,
		UnreadCount: unreadCount,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
	}, nil
}

// MarkAsRead marks a notification as read after ownership check
func (s *NotificationService) MarkAsRead(memberID int64, notificationID int64) error {
	n, err := s.repo.FindByID(notificationID)
	if err != nil {
		return err
	}
	if n == nil {
		return common.ErrNotFound
	}
	if n.MemberID != memberID {
		return common.ErrForbidden
	}
	return s.repo.MarkAsRead(notificationID)
}

// MarkAllAsRead marks all of a member's notifications as read
func (s *NotificationService) MarkAllAsRead(memberID int64) error {
	return s.repo.MarkAllAsRead(memberID)
}
