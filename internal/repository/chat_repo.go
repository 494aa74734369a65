package repository

import (
	"github.com/litmart/litmart-backend/internal/domain"
	"gorm.io/gorm"
)

// ChatRepository handles chat message data operations
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// GetHistory returns paginated messages for a member's conversation, oldest first
func (r *ChatRepository) GetHistory(memberID int64, offset, limit int) ([]domain.ChatMessage, int64, error) {
	var messages []domain.ChatMessage
	var total int64

	if err := r.db.Model(&domain.ChatMessage{}).
		Where("member_id = ?", memberID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("member_id = ?", memberID).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// Create inserts a new chat message
func (r *ChatRepository) Create(message *domain.ChatMessage) error {
	return r.db.Create(message).Error
}

// MarkConversationRead marks incoming messages as read for one side of a
// conversation (staff reads member messages and vice versa)
func (r *ChatRepository) MarkConversationRead(memberID int64, fromStaff bool) error {
	return r.db.Model(&domain.ChatMessage{}).
		Where("member_id = ? AND from_staff = ? AND is_read = ?", memberID, fromStaff, false).
		Update("is_read", true).Error
}
