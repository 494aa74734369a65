package domain

import "time"

// ChatMessage represents one message in a member's support conversation.
// Each member has a single conversation with the store staff.
// Table: chat_messages
type ChatMessage struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MemberID   int64     `gorm:"column:member_id;index" json:"member_id"`
	SenderID   int64     `gorm:"column:sender_id" json:"sender_id"`
	SenderName string    `gorm:"column:sender_name;type:varchar(100)" json:"sender_name"`
	FromStaff  bool      `gorm:"column:from_staff;default:false" json:"from_staff"`
	Content    string    `gorm:"column:content;type:text" json:"content"`
	IsRead     bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_messages" }

// SendChatMessageRequest is the request body for sending a chat message
type SendChatMessageRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// ChatMessageResponse is the API response format for a chat message
type ChatMessageResponse struct {
	ID         int64  `json:"id"`
	SenderID   int64  `json:"sender_id"`
	SenderName string `json:"sender_name"`
	FromStaff  bool   `json:"from_staff"`
	Content    string `json:"content"`
	IsRead     bool   `json:"is_read"`
	CreatedAt  string `json:"created_at"`
}

// ToResponse converts ChatMessage to ChatMessageResponse
func (m *ChatMessage) ToResponse() ChatMessageResponse {
	return ChatMessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		FromStaff:  m.FromStaff,
		Content:    m.Content,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}

// ChatHistoryResponse is the response for a conversation history
type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
	Total    int64                 `json:"total"`
}
